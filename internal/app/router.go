package app

import "strings"

// Page identifies one of the fixed set of navigable pages.
type Page string

const (
	PageLanding   Page = "landing"
	PageLogin     Page = "login"
	PageSignup    Page = "signup"
	PageDashboard Page = "dashboard"
	PageTickets   Page = "tickets"
)

// pagesByPath maps navigable paths 1:1 to pages. Anything not listed resolves
// to the landing page.
var pagesByPath = map[string]Page{
	"/":          PageLanding,
	"/login":     PageLogin,
	"/signup":    PageSignup,
	"/dashboard": PageDashboard,
	"/tickets":   PageTickets,
}

// pathsByPage is the reverse mapping, used for programmatic redirects.
var pathsByPage = map[Page]string{
	PageLanding:   "/",
	PageLogin:     "/login",
	PageSignup:    "/signup",
	PageDashboard: "/dashboard",
	PageTickets:   "/tickets",
}

// ResolvePath parses a navigable path into a page. Paths are hash-style: a
// leading "#" is stripped and an empty path means the root. Unrecognized
// paths resolve to the landing page.
func ResolvePath(raw string) Page {
	path := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if path == "" {
		path = "/"
	}
	if page, ok := pagesByPath[path]; ok {
		return page
	}
	return PageLanding
}

// Path returns the navigable path for the page.
func (p Page) Path() string { return pathsByPage[p] }

// RequiresSession reports whether the page sits behind the session guard.
func (p Page) RequiresSession() bool {
	return p == PageDashboard || p == PageTickets
}

// showsTickets reports whether entering the page triggers a ticket-list load.
func (p Page) showsTickets() bool {
	return p == PageDashboard || p == PageTickets
}
