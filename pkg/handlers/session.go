package handlers

import (
	"history-browser/pkg/models"
	"history-browser/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionActiveKey = "active_era"
	sessionQueryKey  = "query"
	sessionShownKey  = "shown_era"

	// Longer keys name no era and would only bloat the cookie.
	maxShownKeyLen = 64
)

// loadState restores the visitor's browser state. Missing or stale values
// fall back to the zero state.
func loadState(c *gin.Context) services.State {
	session := sessions.Default(c)
	var state services.State
	if v, ok := session.Get(sessionActiveKey).(string); ok {
		if era, ok := models.ParseEra(v); ok {
			state.Active, state.HasActive = era, true
		}
	}
	if q, ok := session.Get(sessionQueryKey).(string); ok {
		state.Query = q
	}
	if shown, ok := session.Get(sessionShownKey).(string); ok {
		state.Shown = shown
	}
	return state
}

func saveState(c *gin.Context, state services.State) error {
	session := sessions.Default(c)
	if state.HasActive {
		session.Set(sessionActiveKey, string(state.Active))
	} else {
		session.Delete(sessionActiveKey)
	}
	if state.Query != "" {
		session.Set(sessionQueryKey, state.Query)
	} else {
		session.Delete(sessionQueryKey)
	}
	shown := state.Shown
	if len(shown) > maxShownKeyLen {
		shown = shown[:maxShownKeyLen]
	}
	if shown != "" {
		session.Set(sessionShownKey, shown)
	} else {
		session.Delete(sessionShownKey)
	}
	return session.Save()
}
