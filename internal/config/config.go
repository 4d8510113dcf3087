package config

import (
	"errors"
	"fmt"
	"log/slog"
	"lri-engine/internal/types"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	LRI    LRIConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port               int
	GinMode            string // debug, release, test
	StaticDir          string // directory with the map UI assets
	CORSAllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// LRIConfig holds the scoring model constants. The formula constants
// are deliberately configuration, not code: the model parameters are
// placeholders pending calibration against real sensor feeds.
type LRIConfig struct {
	Weights              Weights
	AlertLimits          AlertLimits
	Thresholds           Thresholds
	RequiredVisibilityKm float64 // baseline p_req before the aircraft factor
	MinTerrainScore      float64 // floor applied to the normalized terrain term in the harmonic mean
	HardStop             HardStopConfig
}

// Weights are the w_W / w_N / w_T mixing weights of the final index.
type Weights struct {
	Weather    float64
	Navigation float64
	Terrain    float64
}

// AlertLimits holds the HPL/VPL alert limits per aircraft class.
type AlertLimits struct {
	FixedWing  ClassLimits
	RotaryWing ClassLimits
}

// ClassLimits are the navigation alert limits for one aircraft class.
type ClassLimits struct {
	HorizontalMeters float64 // HAL
	VerticalMeters   float64 // VAL
}

// ForClass returns the alert limits for the given aircraft class.
// Rotary-wing limits are the fallback; the model constants were
// originally derived on a rotary-wing APV-I basis.
func (a AlertLimits) ForClass(class types.AircraftClass) ClassLimits {
	if class == types.AircraftClassFixedWing {
		return a.FixedWing
	}
	return a.RotaryWing
}

// Thresholds are the grade cut lines (tau) on the final index.
type Thresholds struct {
	Severe  float64 // below this the grade is Severe
	Warning float64 // below this the grade is Warning
}

// HardStopConfig holds the unsafe limits that terminate grading
// regardless of the final index.
type HardStopConfig struct {
	CloudTopTempFloorK    float64 // CTBT below this means deep convection over the point
	BackscatterAnomalyDB  float64 // sigma-0 anomaly above this, combined with the core share, is unsafe
	ConvectiveCorePercent int
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.lri-engine")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("server.staticdir", "web")
	viper.SetDefault("server.corsallowedorigins", []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	})
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("lri.weights.weather", 0.45)
	viper.SetDefault("lri.weights.navigation", 0.35)
	viper.SetDefault("lri.weights.terrain", 0.20)
	// APV-I basis for rotary-wing; fixed-wing approaches carry tighter limits
	viper.SetDefault("lri.alertlimits.rotarywing.horizontalmeters", 40.0)
	viper.SetDefault("lri.alertlimits.rotarywing.verticalmeters", 50.0)
	viper.SetDefault("lri.alertlimits.fixedwing.horizontalmeters", 35.0)
	viper.SetDefault("lri.alertlimits.fixedwing.verticalmeters", 45.0)
	viper.SetDefault("lri.thresholds.severe", 60.0)
	viper.SetDefault("lri.thresholds.warning", 80.0)
	viper.SetDefault("lri.requiredvisibilitykm", 30.0)
	viper.SetDefault("lri.minterrainscore", 5.0)
	viper.SetDefault("lri.hardstop.cloudtoptempfloork", 235.0)
	viper.SetDefault("lri.hardstop.backscatteranomalydb", 3.0)
	viper.SetDefault("lri.hardstop.convectivecorepercent", 30)

	// Read from environment variables
	viper.SetEnvPrefix("LRI_ENGINE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
