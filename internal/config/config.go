package config

import (
	"fmt"
	"os"
)

type Config struct {
	ServerPort string
	JWTSecret  string

	// Backend do snapshot: Redis > Postgres > arquivo (nessa ordem,
	// conforme a variável presente).
	RedisURL string
	DBUrl    string
	DataDir  string

	OperatorEmail        string
	OperatorPasswordHash string

	GeminiAPIKey string
	GeminiModel  string

	Timezone    string
	CountryCode string

	S3Bucket    string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),

		RedisURL: getEnv("REDIS_URL", ""),
		DBUrl:    getEnv("DATABASE_URL", ""),
		DataDir:  getEnv("DATA_DIR", "./data"),

		OperatorEmail:        getEnv("OPERATOR_EMAIL", "operador@rastreador.local"),
		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		Timezone:    getEnv("TIMEZONE", "America/Sao_Paulo"),
		CountryCode: getEnv("WHATSAPP_COUNTRY_CODE", "55"),

		S3Bucket:    getEnv("BACKUP_S3_BUCKET", ""),
		S3Region:    getEnv("BACKUP_S3_REGION", "us-east-1"),
		S3AccessKey: getEnv("BACKUP_S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("BACKUP_S3_SECRET_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
