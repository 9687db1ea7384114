package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Merge configuration
	Directory string
	Output    string
	Date      string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// envPrefix namespaces the environment variables viper binds, so that
// FCCDB_DATE sets the reference date, FCCDB_OUTPUT the output file, and
// so on.
const envPrefix = "FCCDB"

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables (FCCDB_*)
//  3. .env files
//  4. Config file (~/.fcc-db.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".fcc-db")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		ConfigFile: viper.ConfigFileUsed(),

		Directory: viper.GetString("directory"),
		Output:    viper.GetString("output"),
		Date:      viper.GetString("date"),

		// Logging prefers this tool's FCCDB_ namespace and the config
		// file, then falls back to the conventional unprefixed variables
		LogLevel:  firstNonEmpty(viper.GetString("log-level"), os.Getenv("LOG_LEVEL")),
		LogFormat: firstNonEmpty(viper.GetString("log-format"), os.Getenv("LOG_FORMAT"), "auto"),
		LogOutput: firstNonEmpty(viper.GetString("log-output"), os.Getenv("LOG_OUTPUT"), "stderr"),
	}

	if config.Directory == "" {
		config.Directory = "."
	}

	return config, nil
}

// loadEnvFiles loads environment variables from .env files. Load never
// overwrites a variable that is already set, so .env.local goes first to
// take precedence over .env.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// firstNonEmpty returns the first of values that is not empty.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
