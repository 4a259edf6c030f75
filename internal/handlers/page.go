package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/navigation"
	"github.com/skybook/skybook-web/internal/session"
	"github.com/skybook/skybook-web/internal/toast"
)

const defaultTitle = "SkyBook"

// ToastFeed lists the notifications currently on screen.
type ToastFeed interface {
	List() []toast.Message
}

// NavView is the navigation bar of a page.
type NavView struct {
	Profile string            `json:"profile"`
	Links   []navigation.Link `json:"links"`
}

// Page is the envelope every page view model is served in.
type Page struct {
	Title   string          `json:"title"`
	Path    string          `json:"path"`
	Nav     NavView         `json:"nav"`
	Session session.State   `json:"session"`
	Toasts  []toast.Message `json:"toasts"`
	Data    any             `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Pages renders view models inside the shared page envelope.
type Pages struct {
	toasts ToastFeed
}

func NewPages(toasts ToastFeed) *Pages {
	return &Pages{toasts: toasts}
}

func (p *Pages) build(c *gin.Context, data any) Page {
	state := session.FromContext(c.Request.Context()).State()
	profile := navigation.ProfileFor(state.User)

	title := defaultTitle
	if route, ok := navigation.Lookup(c.Request.URL.Path); ok {
		title = route.Title
	}

	toasts := p.toasts.List()
	if toasts == nil {
		toasts = []toast.Message{}
	}

	return Page{
		Title:   title,
		Path:    c.Request.URL.Path,
		Nav:     NavView{Profile: profile.Name(), Links: profile.Links()},
		Session: state,
		Toasts:  toasts,
		Data:    data,
	}
}

// Render serves data with status.
func (p *Pages) Render(c *gin.Context, status int, data any) {
	c.JSON(status, p.build(c, data))
}

// Fail serves data alongside the message for err.
func (p *Pages) Fail(c *gin.Context, err error, fallback string, data any) {
	attachError(c, err)
	page := p.build(c, data)
	page.Error = messageFor(err, fallback)
	c.JSON(statusFor(err), page)
}

// navigated turns a navigation requested while handling c into a 303.
func navigated(c *gin.Context) bool {
	nav, ok := navigation.FromContext(c.Request.Context())
	if !ok {
		return false
	}
	rec, ok := nav.(*navigation.Recorder)
	if !ok || rec.Target() == "" {
		return false
	}
	c.Redirect(http.StatusSeeOther, rec.Target())
	return true
}

func currentUser(c *gin.Context) *models.User {
	return session.FromContext(c.Request.Context()).State().User
}
