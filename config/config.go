package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	Port                 string
	LoadingDelay         time.Duration
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	ChartJSURL           string
	ChromeDriverPath     string
	UICheckBaseURL       string
	UICheckDriver        string
	AWSRegion            string
	AWSBucketName        string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = getEnv("PORT", "8080")

	// Cosmetic pause before results are shown; 0 disables it
	LoadingDelay = time.Duration(getEnvInt("LOADING_DELAY_MS", 2000)) * time.Millisecond
	SessionTTL = time.Duration(getEnvInt("SESSION_TTL_MINUTES", 30)) * time.Minute
	// 0 disables the background sweep
	SessionSweepInterval = time.Duration(getEnvInt("SESSION_SWEEP_SECONDS", 60)) * time.Second

	ChartJSURL = getEnv("CHARTJS_URL", "https://cdn.jsdelivr.net/npm/chart.js")

	ChromeDriverPath = getEnv("CHROME_DRIVER_PATH", "/usr/local/bin/chromedriver")
	UICheckBaseURL = getEnv("UICHECK_BASE_URL", "http://localhost:"+Port)
	UICheckDriver = getEnv("UICHECK_DRIVER", "chromedp")

	AWSRegion = getEnv("AWS_REGION", "ap-south-1")
	AWSBucketName = os.Getenv("UICHECK_S3_BUCKET")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.Printf("Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
