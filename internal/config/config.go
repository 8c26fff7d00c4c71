package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL  = "mysql"  // MySQL through gorm.io/driver/mysql
	DriverSQLite = "sqlite" // SQLite through gorm.io/driver/sqlite
)

// Config holds the application configuration
type Config struct {
	AppPort    string // Application port
	DBDriver   string // Database driver: mysql or sqlite
	DBUser     string // Database user
	DBPassword string // Database password
	DBHost     string // Database host
	DBPort     string // Database port
	DBName     string // Database name
	DBPath     string // SQLite database file
	RedisAddr  string // Redis server address, empty disables caching
	RedisPass  string // Redis password
	RedisDB    int    // Redis database number
	LogLevel   string // Logrus level name
	IsProd     bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:    getEnv("APP_PORT", "5000"),        // Application port
		DBDriver:   getEnv("DB_DRIVER", DriverSQLite), // Database driver
		DBUser:     os.Getenv("DB_USER"),              // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),          // Database password
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),    // Database host
		DBPort:     getEnv("DB_PORT", "3306"),         // Database port
		DBName:     os.Getenv("DB_NAME"),              // Database name
		DBPath:     getEnv("DB_PATH", "planets.db"),   // SQLite database file
		RedisAddr:  os.Getenv("REDIS_ADDR"),           // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),           // Redis password
		RedisDB:    redisDB,                           // Redis database number
		LogLevel:   getEnv("LOG_LEVEL", "info"),       // Log level
		IsProd:     os.Getenv("IS_PROD") == "true",    // Is production environment
	}
}

// DSN returns the Data Source Name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == DriverMySQL {
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
	}
	return c.DBPath
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
