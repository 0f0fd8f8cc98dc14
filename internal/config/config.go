package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables

	// Side-effect import: loads a .env file into the process environment
	// before any variable is read, so local runs need no exported vars.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The dataset is a single SQLite file; there
// are no credentials because the service has no write path and no users.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBPath         string // path to the SQLite dataset file
	DBReadOnly     bool   // open the dataset read-only (default true)
	PublishLookups bool   // publish lookup events to the message broker
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            getenv("APP_ENV", "dev"),        // environment (dev/test/prod)
		Port:           must("APP_PORT"),                // port to bind the HTTP server
		DBPath:         must("DB_PATH"),                 // SQLite dataset location
		DBReadOnly:     envBool("DB_READ_ONLY", true),   // dataset is immutable in production
		PublishLookups: envBool("QUEUE_ENABLED", false), // lookup event stream is opt-in
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
