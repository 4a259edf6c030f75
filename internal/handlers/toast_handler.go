package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skybook/skybook-web/internal/toast"
)

// ToastDismisser lists and removes on-screen notifications.
type ToastDismisser interface {
	ToastFeed
	Dismiss(id string) bool
}

type ToastHandler struct {
	toasts ToastDismisser
}

func NewToastHandler(toasts ToastDismisser) *ToastHandler {
	return &ToastHandler{toasts: toasts}
}

func (h *ToastHandler) List(c *gin.Context) {
	list := h.toasts.List()
	if list == nil {
		list = []toast.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"toasts": list})
}

func (h *ToastHandler) Dismiss(c *gin.Context) {
	if !h.toasts.Dismiss(c.Param("id")) {
		respondError(c, http.StatusNotFound, "Notification not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
