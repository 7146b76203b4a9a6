package config

import "os"

// Config holds the environment-driven settings for the API server.
type Config struct {
	Port       string
	DSN        string
	JWTSecret  string
	BaseURL    string
	UploadDir  string
	CORSOrigin string
	DefaultOrg string
}

// Load reads configuration from the environment. godotenv is loaded by
// main before this runs, so .env values are visible here too.
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "9000"),
		DSN:        os.Getenv("DB_DSN"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:9000"),
		UploadDir:  getEnv("UPLOAD_DIR", "./uploads"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		DefaultOrg: os.Getenv("DEFAULT_ORG_MAIL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
