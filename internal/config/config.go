package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DataPath    string
	DBPath      string
	Delimiter   rune
	RefreshSpec string
}

func Load() Config {
	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		DataPath:    getEnv("DATA_PATH", "data/jobs_latest.csv"),
		DBPath:      getEnv("DB_PATH", "jobs.db"),
		Delimiter:   getEnvRune("CSV_DELIMITER", ';'),
		RefreshSpec: getEnv("REFRESH_SPEC", "@every 5m"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvRune(key string, fallback rune) rune {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return []rune(v)[0]
}
