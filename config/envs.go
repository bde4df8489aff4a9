package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP             string // Host IP for the server
	RESTPort           int    // Port for the REST API
	RedisAddr          string // Address of the Redis server caching solutions
	RedisPassword      string // Password for the Redis server
	RedisDB            int    // Redis logical database
	SolutionTTLSeconds int    // Lifetime of a cached solution
	DBHost             string // Hostname or IP address for the database
	DBPort             int    // Port number for the database
	DBUser             string // Username for the database
	DBPassword         string // Password for the database
	DBName             string // Name of the database
	GinMode            string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret          string // Secret key for JWT signing
	JWTIssuer          string // Issuer claim for JWTs
	LogLevel           string // Minimum log level (debug, info, warn, error)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	return Config{
		HostIP:             getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:           getEnvAsIntWithDefault("REST_PORT", 8080),
		RedisAddr:          getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsIntWithDefault("REDIS_DB", 0),
		SolutionTTLSeconds: getEnvAsIntWithDefault("SOLUTION_TTL_SECONDS", 3600),
		DBHost:             getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:             getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:             getEnvWithDefault("DB_USER", ""),
		DBPassword:         getEnvWithDefault("DB_PASS", ""),
		DBName:             getEnvWithDefault("DB_NAME", "pathfinder"),
		GinMode:            getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:          getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:          getEnvWithDefault("JWT_ISSUER", "vinom-pathfinder"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "info"),
	}
}

// MongoURI builds the MongoDB connection string from the database settings.
func (c Config) MongoURI() string {
	if c.DBUser == "" {
		return "mongodb://" + c.DBHost + ":" + strconv.Itoa(c.DBPort)
	}
	return "mongodb://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + strconv.Itoa(c.DBPort)
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// or returns defaultValue if it is not set. A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
