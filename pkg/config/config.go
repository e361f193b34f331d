package config

import "os"

type Config struct {
	Port            string
	Env             string
	PostgresConnStr string
	RedisAddr       string
	RedisPassword   string
	RedisDB         string
	JWTSecret       string
	GeocodeBaseURL  string
	GeocodeAPIKey   string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnv("REDIS_DB", "0"),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretjwtkey"),
		GeocodeBaseURL:  getEnv("GEOCODE_BASE_URL", ""),
		GeocodeAPIKey:   getEnv("GEOCODE_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
