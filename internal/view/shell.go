// Package view holds the view models and embedded templates for every HTML
// page the server renders.
package view

import (
	"time"

	"recruai-web/internal/navigation"
	"recruai-web/internal/session"
)

const (
	BannerError   = "error"
	BannerSuccess = "success"
	BannerInfo    = "info"
)

// Banner is the dismissible inline message at the top of a view.
type Banner struct {
	Kind    string
	Message string
	Details []string
}

func ErrorBanner(message string, details ...string) *Banner {
	return &Banner{Kind: BannerError, Message: message, Details: details}
}

func SuccessBanner(message string) *Banner {
	return &Banner{Kind: BannerSuccess, Message: message}
}

// Shell is everything the layouts need around a page's own content.
//
// Authenticated is the guard's verified answer. The navbar renders from it and
// never verifies again, and nothing here is an authorization check.
type Shell struct {
	Title         string
	Path          string
	Authenticated bool
	Role          string
	Plan          string
	UserName      string
	Navbar        navigation.Navbar
	Sidebar       []navigation.Entry
	Banner        *Banner
	RefreshOn     string
	Year          int
}

func NewShell(st session.State, path, title string) Shell {
	s := Shell{
		Title:         title,
		Path:          path,
		Authenticated: st.IsAuthenticated(),
		Role:          st.Role.String(),
		Plan:          st.Plan.String(),
		Navbar:        navigation.NavbarFor(st.Role),
		Sidebar:       navigation.MarkActive(navigation.SidebarEntries(st.Role, st.Plan), path),
		Year:          time.Now().Year(),
	}
	if st.User != nil {
		s.UserName = st.User.Name
		if s.UserName == "" {
			s.UserName = st.User.Email
		}
	}
	return s
}

// Page pairs the shell with page-specific content.
type Page[T any] struct {
	Shell
	Content T
}

func NewPage[T any](shell Shell, content T) Page[T] {
	return Page[T]{Shell: shell, Content: content}
}

// PublicShell is the shell of marketing and sign-in pages: the same verified
// navbar, no sidebar.
func PublicShell(st session.State, path, title string) Shell {
	s := NewShell(st, path, title)
	s.Sidebar = nil
	return s
}
