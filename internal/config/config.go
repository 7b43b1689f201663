package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config contiene la configuración de la aplicación
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Clave para firmar los tokens JWT
	JWTSecret string

	// Artefacto del modelo: ruta local, o bucket/clave S3 si están definidos
	ModelPath     string
	ModelS3Bucket string
	ModelS3Key    string
	AWSRegion     string

	// SMTP para correos de confirmación y recordatorio de citas
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	// Orígenes permitidos para CORS
	CORSOrigins string
}

// LoadConfig carga la configuración desde variables de entorno,
// leyendo antes un archivo .env si existe
func LoadConfig() (*Config, error) {
	// El .env es opcional; en despliegue las variables llegan del entorno
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "acv"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		ModelPath:     getEnv("MODEL_PATH", "./ml/modelo_acv.json"),
		ModelS3Bucket: getEnv("MODEL_S3_BUCKET", ""),
		ModelS3Key:    getEnv("MODEL_S3_KEY", ""),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),

		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Clínica NeuroGuard"),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET es requerido")
	}

	return cfg, nil
}

// GetDBConnString arma la cadena de conexión para lib/pq
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
