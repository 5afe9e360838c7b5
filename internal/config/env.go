package config

import (
	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads KEY=VALUE files from the working directory.
// Variables already set in the process environment win.
func loadEnvFiles() {
	for _, path := range envFiles {
		_ = godotenv.Load(path)
	}
}
