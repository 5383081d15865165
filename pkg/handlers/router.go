package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"history-browser/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the page templates. html/template escapes article text.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Handlers serves the browser pages and the JSON API from one library.
type Handlers struct {
	library *services.Library
	logger  *zap.Logger
}

func New(library *services.Library, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{library: library, logger: logger}
}

// NewRouter wires middleware, templates and routes into a gin engine.
func NewRouter(library *services.Library, logger *zap.Logger, store sessions.Store, sessionName string) (*gin.Engine, error) {
	h := New(library, logger)

	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(h.logger))
	r.Use(sessions.Sessions(sessionName, store))
	r.SetHTMLTemplate(tmpl)

	h.Register(r)
	return r, nil
}

func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Index)
	r.GET("/era/:era", h.ShowEra)
	r.GET("/search", h.Search)
	r.GET("/content", h.Content)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		api.GET("/eras", h.ListEras)
		api.GET("/era/:era", h.GetEra)
		api.GET("/search", h.SearchArticles)
	}
}
