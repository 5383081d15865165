package handlers

import (
	"net/http"
	"strings"

	"history-browser/pkg/models"

	"github.com/gin-gonic/gin"
)

type eraSummary struct {
	Era   models.Era `json:"era"`
	Label string     `json:"label"`
	Count int        `json:"count"`
}

type searchHit struct {
	Era     models.Era `json:"era"`
	Label   string     `json:"label"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
}

func summarizeEras(counts map[models.Era]int) []eraSummary {
	eras := models.Eras()
	out := make([]eraSummary, 0, len(eras))
	for _, era := range eras {
		out = append(out, eraSummary{Era: era, Label: era.Label(), Count: counts[era]})
	}
	return out
}

func (h *Handlers) ListEras(c *gin.Context) {
	c.JSON(http.StatusOK, summarizeEras(h.library.Counts()))
}

func (h *Handlers) GetEra(c *gin.Context) {
	era, ok := models.ParseEra(c.Param("era"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown era"})
		return
	}
	articles, ok := h.library.Articles(era)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown era"})
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}
	c.JSON(http.StatusOK, gin.H{"era": era, "label": era.Label(), "articles": articles})
}

func (h *Handlers) SearchArticles(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query"})
		return
	}

	results := h.library.Search(query)
	hits := make([]searchHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, searchHit{Era: r.Era, Label: r.Era.Label(), Title: r.Title, Content: r.Content})
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "results": hits})
}
