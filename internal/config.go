package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WXIMG_SDK_PORT
const EnvPrefix = "WXIMG"

// Config is the resolved runtime configuration
type Config struct {
	Root               string        `mapstructure:"root"`
	Layout             string        `mapstructure:"layout"`
	ScratchDir         string        `mapstructure:"scratch_dir"`
	IndexPath          string        `mapstructure:"index_path"`
	DiagnosticLog      string        `mapstructure:"diagnostic_log"`
	SDK                SDKConfig     `mapstructure:"sdk"`
	Connect            RetryConfig   `mapstructure:"connect"`
	Persist            RetryConfig   `mapstructure:"persist"`
	PollInterval       time.Duration `mapstructure:"poll_interval"`
	HealthInterval     time.Duration `mapstructure:"health_interval"`
	MaxReceiveFailures int           `mapstructure:"max_receive_failures"`
	Reconnect          bool          `mapstructure:"reconnect"`
	MetricsAddr        string        `mapstructure:"metrics_addr"`
	Notify             NotifyConfig  `mapstructure:"notify"`

	// File is the config file that was read, if any
	File string `mapstructure:"-"`
}

// SDKConfig locates the automation SDK's RPC endpoint
type SDKConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	RecvTimeout time.Duration `mapstructure:"recv_timeout"`
}

// RetryConfig is a fixed-backoff retry budget
type RetryConfig struct {
	Attempts int           `mapstructure:"attempts"`
	Delay    time.Duration `mapstructure:"delay"`
}

// NotifyConfig configures stored-image events. Empty AMQPURL disables them.
type NotifyConfig struct {
	AMQPURL    string `mapstructure:"amqp_url"`
	Exchange   string `mapstructure:"exchange"`
	RoutingKey string `mapstructure:"routing_key"`
}

func defaultRoot() string {
	if runtime.GOOS == "windows" {
		return `C:\photo`
	}
	return "~/wechat-photos"
}

// NewViper returns a viper instance with defaults and WXIMG_ environment
// overrides registered. Flags may be bound to it before LoadConfig.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("root", defaultRoot())
	v.SetDefault("layout", string(LayoutSender))
	v.SetDefault("scratch_dir", filepath.Join(os.TempDir(), "wximg-staging"))
	v.SetDefault("index_path", "")
	v.SetDefault("diagnostic_log", "wximg-errors.log")
	v.SetDefault("sdk.host", "127.0.0.1")
	v.SetDefault("sdk.port", 10086)
	v.SetDefault("sdk.recv_timeout", time.Second)
	v.SetDefault("connect.attempts", 5)
	v.SetDefault("connect.delay", 3*time.Second)
	v.SetDefault("persist.attempts", 5)
	v.SetDefault("persist.delay", 2*time.Second)
	v.SetDefault("poll_interval", 100*time.Millisecond)
	v.SetDefault("health_interval", 30*time.Second)
	v.SetDefault("max_receive_failures", 5)
	v.SetDefault("reconnect", true)
	v.SetDefault("metrics_addr", "")
	v.SetDefault("notify.amqp_url", "")
	v.SetDefault("notify.exchange", "wximg.events")
	v.SetDefault("notify.routing_key", "image.stored")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads configFile (or config.yaml from the working directory or
// the user config dir when empty) on top of v's defaults, environment and
// bound flags.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wximg"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		LogDebug("No config file found, using defaults and environment")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	root, err := expandHome(cfg.Root)
	if err != nil {
		return nil, err
	}
	cfg.Root = root
	if cfg.IndexPath == "" && cfg.Root != "" {
		cfg.IndexPath = filepath.Join(cfg.Root, ".wximg-index.db")
	}

	return &cfg, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Validate rejects settings the monitor cannot run with
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Root) == "" {
		errs = append(errs, errors.New("root must not be empty"))
	}
	if _, err := ParseLayout(c.Layout); err != nil {
		errs = append(errs, err)
	}
	if c.Connect.Attempts < 1 {
		errs = append(errs, fmt.Errorf("connect.attempts must be positive, got %d", c.Connect.Attempts))
	}
	if c.Persist.Attempts < 1 {
		errs = append(errs, fmt.Errorf("persist.attempts must be positive, got %d", c.Persist.Attempts))
	}
	if c.Connect.Delay < 0 || c.Persist.Delay < 0 {
		errs = append(errs, errors.New("retry delays must not be negative"))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval))
	}
	if c.SDK.Port < 1 || c.SDK.Port > 65534 {
		errs = append(errs, fmt.Errorf("sdk.port %d out of range", c.SDK.Port))
	}
	return errors.Join(errs...)
}

// ParsedLayout returns the validated layout
func (c *Config) ParsedLayout() Layout {
	l, err := ParseLayout(c.Layout)
	if err != nil {
		return LayoutSender
	}
	return l
}

// ConnectPolicy is the retry budget for establishing a session
func (c *Config) ConnectPolicy() RetryPolicy {
	return RetryPolicy{Attempts: c.Connect.Attempts, Delay: c.Connect.Delay}
}

// PersistPolicy is the retry budget for saving one image
func (c *Config) PersistPolicy() RetryPolicy {
	return RetryPolicy{Attempts: c.Persist.Attempts, Delay: c.Persist.Delay}
}

// MonitorConfig extracts the message loop settings
func (c *Config) MonitorConfig() MonitorConfig {
	return MonitorConfig{
		PollInterval:       c.PollInterval,
		HealthInterval:     c.HealthInterval,
		MaxReceiveFailures: c.MaxReceiveFailures,
		Reconnect:          c.Reconnect,
	}
}

// SDKAddress is the command socket URL; the message socket is on the next port
func (c *Config) SDKAddress() string {
	return fmt.Sprintf("tcp://%s:%d", c.SDK.Host, c.SDK.Port)
}
