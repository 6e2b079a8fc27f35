package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

type Config struct {
	// Server
	AppURL string `yaml:"APP_URL"`
	Port   string `yaml:"PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Spoonacular configuration
	SpoonacularAPIKey  string `yaml:"SPOONACULAR_API_KEY"`
	SpoonacularEnabled bool   `yaml:"SPOONACULAR_ENABLED"`

	// MealDB configuration
	MealDBBaseURL string `yaml:"MEALDB_BASE_URL"`

	// OpenAI configuration
	OpenAIAPIKey  string `yaml:"OPENAI_API_KEY"`
	OpenAIModel   string `yaml:"OPENAI_MODEL"`
	OpenAIEnabled bool   `yaml:"OPENAI_ENABLED"`
}

var (
	config       Config
	configLoaded bool
)

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
	configLoaded = true

	// Set environment variables for keys that should be accessible via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	os.Setenv("SPOONACULAR_API_KEY", config.SpoonacularAPIKey)
	os.Setenv("OPENAI_API_KEY", config.OpenAIAPIKey)
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// GetConfig resolves a key from the loaded yaml config, falling back to the
// process environment when the file leaves it blank.
func GetConfig(key string) string {
	if value := configValue(key); value != "" {
		return value
	}
	return os.Getenv(key)
}

func configValue(key string) string {
	switch key {
	case "APP_URL":
		return config.AppURL
	case "PORT":
		return config.Port
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "SPOONACULAR_API_KEY":
		return config.SpoonacularAPIKey
	case "SPOONACULAR_ENABLED":
		if !configLoaded {
			return ""
		}
		return getBoolString(config.SpoonacularEnabled)
	case "MEALDB_BASE_URL":
		if config.MealDBBaseURL == "" {
			return "https://www.themealdb.com/api/json/v1/1"
		}
		return config.MealDBBaseURL
	case "OPENAI_API_KEY":
		return config.OpenAIAPIKey
	case "OPENAI_MODEL":
		if config.OpenAIModel == "" {
			return "gpt-4o-mini"
		}
		return config.OpenAIModel
	case "OPENAI_ENABLED":
		if !configLoaded {
			return ""
		}
		return getBoolString(config.OpenAIEnabled)
	default:
		return ""
	}
}
