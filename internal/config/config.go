package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	JWTExpiry time.Duration
	UploadDir string
	BaseURL   string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "beauty-time"
	}

	jwtExpiry := 7 * 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRES_IN_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			jwtExpiry = time.Duration(hours) * time.Hour
		}
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}

	return Config{
		Port:      port,
		MongoURI:  mongoURI,
		DBName:    dbName,
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: jwtExpiry,
		UploadDir: uploadDir,
		BaseURL:   baseURL,
	}
}
