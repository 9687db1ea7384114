package app

import (
	"os"
	"testing"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	// Note: LogLevel may be empty (triggers precedence logic in logger.go)
	if config.Directory == "" {
		t.Error("Directory not set to default")
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.LogOutput == "" {
		t.Error("LogOutput not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	// Save original env
	oldVerbose := os.Getenv("FCCDB_VERBOSE")
	oldOutput := os.Getenv("FCCDB_OUTPUT")
	oldDate := os.Getenv("FCCDB_DATE")
	defer func() {
		os.Setenv("FCCDB_VERBOSE", oldVerbose)
		os.Setenv("FCCDB_OUTPUT", oldOutput)
		os.Setenv("FCCDB_DATE", oldDate)
	}()

	// Set test environment variables
	os.Setenv("FCCDB_VERBOSE", "true")
	os.Setenv("FCCDB_OUTPUT", "us.db")
	os.Setenv("FCCDB_DATE", "2026-01-01")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !config.Verbose {
		t.Error("FCCDB_VERBOSE environment variable not loaded")
	}
	if config.Output != "us.db" {
		t.Errorf("Output = %s, want us.db", config.Output)
	}
	if config.Date != "2026-01-01" {
		t.Errorf("Date = %s, want 2026-01-01", config.Date)
	}
}

// TestConfig_Directory verifies the extract directory configuration.
func TestConfig_Directory(t *testing.T) {
	// Save original env
	oldDir := os.Getenv("FCCDB_DIRECTORY")
	defer os.Setenv("FCCDB_DIRECTORY", oldDir)

	// Set test value
	testDir := "/tmp/uls-extracts"
	os.Setenv("FCCDB_DIRECTORY", testDir)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Directory != testDir {
		t.Errorf("Directory = %s, want %s", config.Directory, testDir)
	}
}

// TestConfig_BooleanFlags verifies boolean flag parsing.
func TestConfig_BooleanFlags(t *testing.T) {
	tests := []struct {
		name     string
		envVar   string
		envValue string
		check    func(*Config) bool
		want     bool
	}{
		{
			name:     "Quiet",
			envVar:   "FCCDB_QUIET",
			envValue: "true",
			check:    func(c *Config) bool { return c.Quiet },
			want:     true,
		},
		{
			name:     "NoColor",
			envVar:   "FCCDB_NO_COLOR",
			envValue: "1",
			check:    func(c *Config) bool { return c.NoColor },
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save and restore env
			old := os.Getenv(tt.envVar)
			defer os.Setenv(tt.envVar, old)

			os.Setenv(tt.envVar, tt.envValue)

			config, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() failed: %v", err)
			}

			got := tt.check(config)
			if got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

// TestConfig_LoggingOptions verifies logging configuration.
func TestConfig_LoggingOptions(t *testing.T) {
	// Save original env
	oldLevel := os.Getenv("LOG_LEVEL")
	oldFormat := os.Getenv("LOG_FORMAT")
	oldOutput := os.Getenv("LOG_OUTPUT")
	defer func() {
		os.Setenv("LOG_LEVEL", oldLevel)
		os.Setenv("LOG_FORMAT", oldFormat)
		os.Setenv("LOG_OUTPUT", oldOutput)
	}()

	// Set test values
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LOG_OUTPUT", "stdout")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
	if config.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", config.LogFormat)
	}
	if config.LogOutput != "stdout" {
		t.Errorf("LogOutput = %s, want stdout", config.LogOutput)
	}
}

// TestConfig_PrefixedLoggingWins verifies that the tool's own namespace
// takes precedence over the conventional unprefixed variables.
func TestConfig_PrefixedLoggingWins(t *testing.T) {
	oldPrefixed := os.Getenv("FCCDB_LOG_LEVEL")
	oldPlain := os.Getenv("LOG_LEVEL")
	defer func() {
		os.Setenv("FCCDB_LOG_LEVEL", oldPrefixed)
		os.Setenv("LOG_LEVEL", oldPlain)
	}()

	os.Setenv("FCCDB_LOG_LEVEL", "error")
	os.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %s, want error", config.LogLevel)
	}
}
