package view

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

const (
	LayoutPublic    = "layouts/public"
	LayoutDashboard = "layouts/dashboard"
)

// NewEngine parses the embedded templates. Template names are their paths
// under templates/ without the extension, e.g. "dashboard/interviews".
func NewEngine(reload bool) *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.Reload(reload)
	engine.AddFuncMap(map[string]interface{}{
		"label": Label,
		"lower": strings.ToLower,
		"words": strings.Fields,
		"initial": func(s string) string {
			s = strings.TrimSpace(s)
			if s == "" {
				return "?"
			}
			return strings.ToUpper(string([]rune(s)[:1]))
		},
	})
	return engine
}
