package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads a .env file from the working directory if one exists. Missing
// files are fine; variables already set in the environment win.
func Load() {
	_ = godotenv.Load()
}

func GetString(key, fallback string) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return val
}

func GetInt(key string, fallback int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	valInt, err := strconv.Atoi(val)

	if err != nil {
		return fallback
	}
	return valInt
}
