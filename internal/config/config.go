package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const DefaultMotionBaseURL = "https://api.usemotion.com/v1"

// ErrMissingAPIKey is returned by Load when no Motion API key is configured.
var ErrMissingAPIKey = errors.New("motion API key must be provided via MOTION_API_KEY or --motion-api-key")

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		// Flags are named with dashes, keys with underscores.
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyMotionBaseURL, DefaultMotionBaseURL)
	viper.SetDefault(KeyMotionTimeout, "")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 3000)
	viper.SetDefault(KeyJSONRPCPath, "/mcp/jsonrpc")
}

func MotionAPIKey() string  { return viper.GetString(KeyMotionAPIKey) }
func MotionBaseURL() string { return viper.GetString(KeyMotionBaseURL) }
func MotionTimeout() string { return viper.GetString(KeyMotionTimeout) }
func LogLevel() string      { return viper.GetString(KeyLogLevel) }
func Host() string          { return viper.GetString(KeyHost) }
func Port() int             { return viper.GetInt(KeyPort) }
func JSONRPCPath() string   { return viper.GetString(KeyJSONRPCPath) }

// Settings is the resolved process configuration. It is built once at startup
// and passed down explicitly.
type Settings struct {
	MotionAPIKey  string
	MotionBaseURL string
	MotionTimeout time.Duration // zero means no client-side timeout
	LogLevel      string
	Host          string
	Port          int
	JSONRPCPath   string
}

func Load() (Settings, error) {
	s := Settings{
		MotionAPIKey:  strings.TrimSpace(MotionAPIKey()),
		MotionBaseURL: strings.TrimRight(strings.TrimSpace(MotionBaseURL()), "/"),
		LogLevel:      LogLevel(),
		Host:          Host(),
		Port:          Port(),
		JSONRPCPath:   JSONRPCPath(),
	}
	if s.MotionAPIKey == "" {
		return Settings{}, ErrMissingAPIKey
	}
	if s.MotionBaseURL == "" {
		s.MotionBaseURL = DefaultMotionBaseURL
	}

	timeout, err := parseDuration(MotionTimeout(), 0)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid motion_timeout: %w", err)
	}
	s.MotionTimeout = timeout

	return s, nil
}

func (s Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	return d, nil
}
