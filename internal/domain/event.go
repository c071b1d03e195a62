package domain

import "net/http"

// Event is the browsable upstream event summary. ConstraintID is zero when
// the event references no participation constraint.
type Event struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ConstraintID int64   `json:"constraint_id,omitempty"`
}

// EventRef is what constraint resolution needs to know about an event.
type EventRef struct {
	ID           int64
	ConstraintID int64
}

// Credentials carry the caller's upstream session cookies for the duration of
// one request. They are never stored; a token refresh updates them in place
// so the handler can propagate the new cookies back to the caller.
type Credentials struct {
	Cookies    []*http.Cookie
	SetCookies []*http.Cookie
}

// Merge replaces or appends refreshed cookies and remembers them for
// propagation back to the caller.
func (c *Credentials) Merge(refreshed []*http.Cookie) {
	for _, rc := range refreshed {
		replaced := false
		for i, existing := range c.Cookies {
			if existing.Name == rc.Name {
				c.Cookies[i] = rc
				replaced = true
				break
			}
		}
		if !replaced {
			c.Cookies = append(c.Cookies, rc)
		}
		c.SetCookies = append(c.SetCookies, rc)
	}
}
