package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string
	Port         string
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       string
	DBName       string
	JWTSecret    string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	AlertEmailTo string // alamat staf klinik penerima email peringatan stok menipis
}

var (
	cfg  *Config
	once sync.Once
)

func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		cfg = &Config{
			AppEnv:       os.Getenv("APP_ENV"),
			Port:         os.Getenv("PORT"),
			DBUser:       os.Getenv("DB_USER"),
			DBPassword:   os.Getenv("DB_PASSWORD"),
			DBHost:       os.Getenv("DB_HOST"),
			DBPort:       os.Getenv("DB_PORT"),
			DBName:       os.Getenv("DB_NAME"),
			JWTSecret:    os.Getenv("JWT_SECRET_KEY"),
			SMTPHost:     os.Getenv("SMTP_HOST"),
			SMTPPort:     smtpPort,
			SMTPUser:     os.Getenv("SMTP_USER"),
			SMTPPassword: os.Getenv("SMTP_PASSWORD"),
			AlertEmailTo: os.Getenv("ALERT_EMAIL_TO"),
		}
	})
	return cfg
}
