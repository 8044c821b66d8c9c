package navigation

import "recruai-web/internal/session"

type Navbar string

const (
	NavbarIndividual   Navbar = "individual"
	NavbarOrganization Navbar = "organization"
)

// NavbarFor picks the top bar from the role alone; the plan never matters here.
func NavbarFor(role session.Role) Navbar {
	if role == session.RoleOrganization {
		return NavbarOrganization
	}
	return NavbarIndividual
}
