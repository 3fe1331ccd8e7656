package utils

import (
	"os"
	"path/filepath"
)

type Config struct {
	Addr        string
	DataDSN     string
	JikanBase   string
	GeminiKey   string
	GeminiModel string
}

// LoadConfig reads the environment (godotenv has already folded any .env
// file in by the time main calls this) and fills in the defaults.
func LoadConfig() Config {
	cfg := Config{
		Addr:        os.Getenv("ANIHUB_ADDR"),
		DataDSN:     os.Getenv("ANIHUB_DATA"),
		JikanBase:   os.Getenv("ANIHUB_JIKAN_BASE"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: os.Getenv("ANIHUB_GEMINI_MODEL"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	// JikanBase may stay empty; the client falls back to the public API.
	if cfg.DataDSN == "" {
		// local default: ~/.anihub/data.db
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = "."
		}
		cfg.DataDSN = filepath.Join(home, ".anihub", "data.db")
	}
	return cfg
}
