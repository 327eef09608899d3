package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/ynot-advisory/landing/views"
)

func (h *Handler) Home(c *gin.Context) {
	h.renderHome(c, http.StatusOK, views.FormState{})
}

func (h *Handler) NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, views.NotFoundPage(h.BasePath))
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) renderHome(c *gin.Context, status int, state views.FormState) {
	state.Action = h.formAction()
	state.APIEndpoint = "/api/contact"
	state.TurnstileSiteKey = h.TurnstileSiteKey
	render(c, status, views.HomePage(state))
}

func render(c *gin.Context, status int, page g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := page.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
