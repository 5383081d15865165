package main

import (
	"fmt"
	"net/http"
	"os"

	"history-browser/pkg/config"
	"history-browser/pkg/handlers"
	"history-browser/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"go.uber.org/zap"
)

func main() {
	// Initialize config
	config.Init()

	logger, err := config.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	library, err := services.OpenLibrary(config.ContentDir)
	if err != nil {
		logger.Fatal("Failed to load articles", zap.String("dir", config.ContentDir), zap.Error(err))
	}

	// Session Setup
	store := cookie.NewStore(config.SessionKey())
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})

	r, err := handlers.NewRouter(library, logger, store, config.SessionName)
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	logger.Info("Listening", zap.String("addr", config.ListenAddr))
	if err := r.Run(config.ListenAddr); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
