package auth

import (
	"net/url"
	"strings"
)

// Area roots and the login page the gate redirects to
const (
	AdminArea     = "/admin"
	DashboardArea = "/dashboard"
	LoginPath     = "/login"
)

// Session is the authenticated principal of a request. A nil *Session is anonymous.
type Session struct {
	UserID string
	Email  string
	Admin  bool
}

// Authenticated reports whether the session belongs to a signed-in user
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}

// Home returns the area a signed-in user lands in
func (s *Session) Home() string {
	if s != nil && s.Admin {
		return AdminArea
	}
	return DashboardArea
}

// DecisionKind is the outcome of the authorization gate
type DecisionKind int

const (
	Allow DecisionKind = iota
	Deny
	Redirect
)

func (k DecisionKind) String() string {
	switch k {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision is what the gate tells the router to do. Location is set for Deny and Redirect.
type Decision struct {
	Kind     DecisionKind
	Location string
}

// Authorize decides access to path. The admin area is reserved for admins and the dashboard
// for everyone else; signed-in users hitting any other page are sent to their own area.
func Authorize(session *Session, path string) Decision {
	authenticated := session.Authenticated()

	switch {
	case InArea(path, AdminArea):
		if authenticated && session.Admin {
			return Decision{Kind: Allow}
		}
		return deny(path)
	case InArea(path, DashboardArea):
		if authenticated && !session.Admin {
			return Decision{Kind: Allow}
		}
		return deny(path)
	case authenticated:
		return Decision{Kind: Redirect, Location: session.Home()}
	default:
		return Decision{Kind: Allow}
	}
}

func deny(path string) Decision {
	return Decision{Kind: Deny, Location: LoginPath + "?callbackUrl=" + url.QueryEscape(path)}
}

// InArea reports whether path is area itself or lies beneath it, matching whole segments
func InArea(path, area string) bool {
	if path == area {
		return true
	}
	return strings.HasPrefix(path, area+"/")
}
