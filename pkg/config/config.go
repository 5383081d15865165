package config

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ListenAddr = ":8080"

	// Session settings
	SessionSecret = ""
	SessionName   = "history-session"

	// Empty means the articles compiled into the binary.
	ContentDir = ""

	LogLevel = "info"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	ListenAddr = getEnv("LISTEN_ADDR", ":8080")
	SessionSecret = getEnv("SESSION_SECRET", "")
	SessionName = getEnv("SESSION_NAME", "history-session")
	ContentDir = getEnv("CONTENT_DIR", "")
	LogLevel = getEnv("LOG_LEVEL", "info")
}

// SessionKey returns the cookie signing key. Without SESSION_SECRET a random
// key is generated, so sessions do not survive a restart.
func SessionKey() []byte {
	if SessionSecret != "" {
		return []byte(SessionSecret)
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(fmt.Sprintf("generate session key: %v", err))
	}
	return key
}

// NewLogger builds a production zap logger at LogLevel.
func NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
