package handlers

import (
	"net/http"
	"strings"

	"history-browser/pkg/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// htmxHeader marks partial page requests issued by the nav links and the
// search form. They get the content container plus out-of-band nav and input.
const htmxHeader = "HX-Request"

type pageData struct {
	Links []services.NavLink
	Query string
	View  services.View
	OOB   bool
}

func (h *Handlers) Index(c *gin.Context) {
	b := services.NewBrowser(h.library, loadState(c))
	b.Load()
	h.render(c, b)
}

func (h *Handlers) ShowEra(c *gin.Context) {
	b := services.NewBrowser(h.library, loadState(c))
	b.Navigate(c.Param("era"))
	h.render(c, b)
}

func (h *Handlers) Search(c *gin.Context) {
	query := c.Query("q")
	h.logger.Debug("search", zap.String("query", query))

	b := services.NewBrowser(h.library, loadState(c))
	b.Search(query)
	h.render(c, b)
}

// Content re-renders the visitor's current view from the session.
func (h *Handlers) Content(c *gin.Context) {
	b := services.NewBrowser(h.library, loadState(c))
	b.Restore()
	h.render(c, b)
}

func (h *Handlers) render(c *gin.Context, b *services.Browser) {
	if err := saveState(c, b.State()); err != nil {
		h.logger.Warn("save session", zap.Error(err))
	}

	data := pageData{
		Links: b.Links(),
		Query: b.State().Query,
		View:  b.View(),
	}
	if strings.EqualFold(c.GetHeader(htmxHeader), "true") {
		data.OOB = true
		c.HTML(http.StatusOK, "fragment.html", data)
		return
	}
	c.HTML(http.StatusOK, "index.html", data)
}
