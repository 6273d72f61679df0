// Package config provides functionality for managing configuration options
// for the client and the dev server using command-line flags, a .env file,
// and environment variables.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// BaseURL is the root of the Fintrack API the client talks to.
	BaseURL string

	// CredentialFile is the path of the durable credential document.
	CredentialFile string

	// LogLevel sets the zap logging level ("debug", "info", "warn", "error").
	LogLevel string

	// Addr is the listen address of the dev server (ip:port).
	Addr string

	// JWTSecret signs the bearer tokens issued by the dev server.
	JWTSecret string

	// JWTExpiry bounds the lifetime of issued tokens.
	JWTExpiry time.Duration
}

// options holds the current configuration values.
var options = &Options{JWTExpiry: 24 * time.Hour}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.BaseURL, "url", "http://localhost:8080", "base URL of the Fintrack API")
	flag.StringVar(&options.CredentialFile, "creds", defaultCredentialFile(), "path to the stored credential file")
	flag.StringVar(&options.LogLevel, "log", "info", "log level")
	flag.StringVar(&options.Addr, "a", "localhost:8080", "dev server listen address (ip:port)")
	flag.StringVar(&options.JWTSecret, "secret", "dev-secret", "dev server token signing secret")
}

// Parse parses the command-line flags, an optional .env file, and
// environment variables to set configuration values. It returns a pointer
// to the Options struct containing the parsed configuration values.
// Environment variables take precedence over flags.
func Parse() *Options {
	flag.Parse()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("FINTRACK_API_URL"); v != "" {
		options.BaseURL = v
	}
	if v := os.Getenv("FINTRACK_CREDENTIAL_FILE"); v != "" {
		options.CredentialFile = v
	}
	if v := os.Getenv("FINTRACK_LOG_LEVEL"); v != "" {
		options.LogLevel = v
	}
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		options.Addr = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		options.JWTSecret = v
	}
	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			options.JWTExpiry = d
		}
	}

	return options
}

// defaultCredentialFile places the credential document under the user's
// config directory, falling back to the working directory when the home
// cannot be resolved.
func defaultCredentialFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fintrack_credentials.json"
	}
	return dir + string(os.PathSeparator) + "fintrack" + string(os.PathSeparator) + "credentials.json"
}
