package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/navigation"
	"github.com/skybook/skybook-web/internal/services"
	"github.com/skybook/skybook-web/internal/session"
)

const (
	loginFailedMessage        = "Invalid email or password"
	registrationFailedMessage = "Registration failed. Please try again."
)

type AuthHandler struct {
	auth  services.AuthServiceInterface
	pages *Pages
}

func NewAuthHandler(auth services.AuthServiceInterface, pages *Pages) *AuthHandler {
	return &AuthHandler{auth: auth, pages: pages}
}

// redirectSignedIn sends a signed-in visitor to their home page.
func redirectSignedIn(c *gin.Context) bool {
	state := session.FromContext(c.Request.Context()).State()
	if !state.IsAuthenticated {
		return false
	}
	c.Redirect(http.StatusFound, navigation.HomeFor(state.Role()))
	return true
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	if redirectSignedIn(c) {
		return
	}
	h.pages.Render(c, http.StatusOK, models.LoginForm{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.auth.Login(c.Request.Context(), form)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusNotFound || status == http.StatusForbidden {
			status = http.StatusUnauthorized
		}
		attachError(c, err)
		page := h.pages.build(c, models.LoginForm{Email: form.Email})
		page.Error = messageFor(err, loginFailedMessage)
		c.JSON(status, page)
		return
	}

	if navigated(c) {
		return
	}
	h.pages.Render(c, http.StatusOK, user)
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if redirectSignedIn(c) {
		return
	}
	h.pages.Render(c, http.StatusOK, models.RegisterForm{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.auth.Register(c.Request.Context(), form); err != nil {
		h.pages.Fail(c, err, registrationFailedMessage,
			models.RegisterForm{Name: form.Name, Email: form.Email})
		return
	}

	if navigated(c) {
		return
	}
	h.pages.Render(c, http.StatusCreated, nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	if navigated(c) {
		return
	}
	c.Status(http.StatusNoContent)
}
