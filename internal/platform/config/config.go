package config

import (
	"os"
	"strconv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr       string
	LogLevel   string
	BcryptCost int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("STREAMING_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logLevel := os.Getenv("STREAMING_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	// 0 means bcrypt's default cost.
	bcryptCost := 0
	if raw := os.Getenv("STREAMING_BCRYPT_COST"); raw != "" {
		if cost, err := strconv.Atoi(raw); err == nil {
			bcryptCost = cost
		}
	}

	return Server{
		Addr:       addr,
		LogLevel:   logLevel,
		BcryptCost: bcryptCost,
	}
}
