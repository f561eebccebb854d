package config

import "os"

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Addr string
}

// AuthConfig carries the signing secret and token lifetimes. TTL values are
// Go duration strings (e.g. "15m", "720h") parsed once at startup.
type AuthConfig struct {
	JWTSecret     string
	JWTAccessTTL  string
	JWTRefreshTTL string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type CORSConfig struct {
	AllowedOrigins   string
	AllowCredentials string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Addr: getenv("HTTP_ADDR", ":8080"),
		},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			JWTAccessTTL:  getenv("JWT_ACCESS_TTL", "30m"),
			JWTRefreshTTL: getenv("JWT_REFRESH_TTL", "720h"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   os.Getenv("CORS_ALLOWED_ORIGINS"),
			AllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
