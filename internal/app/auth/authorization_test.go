package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	admin := &Session{UserID: "u1", Email: "admin@nextmail.com", Admin: true}
	member := &Session{UserID: "u2", Email: "user@nextmail.com"}

	tests := []struct {
		name    string
		session *Session
		path    string
		want    Decision
	}{
		{"admin in admin area", admin, "/admin/courses", Decision{Kind: Allow}},
		{"admin root", admin, "/admin", Decision{Kind: Allow}},
		{"admin in dashboard", admin, "/dashboard", Decision{Kind: Deny, Location: "/login?callbackUrl=%2Fdashboard"}},
		{"member in dashboard", member, "/dashboard/courses", Decision{Kind: Allow}},
		{"member in admin area", member, "/admin/invoices", Decision{Kind: Deny, Location: "/login?callbackUrl=%2Fadmin%2Finvoices"}},
		{"anonymous in admin area", nil, "/admin", Decision{Kind: Deny, Location: "/login?callbackUrl=%2Fadmin"}},
		{"anonymous in dashboard", nil, "/dashboard", Decision{Kind: Deny, Location: "/login?callbackUrl=%2Fdashboard"}},
		{"anonymous elsewhere", nil, "/login", Decision{Kind: Allow}},
		{"admin elsewhere", admin, "/login", Decision{Kind: Redirect, Location: "/admin"}},
		{"member elsewhere", member, "/", Decision{Kind: Redirect, Location: "/dashboard"}},
		{"segment match only", nil, "/administrator", Decision{Kind: Allow}},
		{"empty session is anonymous", &Session{}, "/admin", Decision{Kind: Deny, Location: "/login?callbackUrl=%2Fadmin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.session, tt.path))
		})
	}
}

func TestInArea(t *testing.T) {
	assert.True(t, InArea("/admin", AdminArea))
	assert.True(t, InArea("/admin/", AdminArea))
	assert.False(t, InArea("/admins", AdminArea))
	assert.False(t, InArea("/", AdminArea))
}

func TestDecisionKindString(t *testing.T) {
	assert.Equal(t, "deny", Deny.String())
	assert.Equal(t, "redirect", Redirect.String())
}
