package configloader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvConfigPath       = "CONFIG_PATH"
	EnvNetworkChainID   = "NETWORK_CHAIN_ID"
	EnvRPCURL           = "RPC_URL"
	EnvLogLevel         = "LOG_LEVEL"
	DefaultSignerKeyEnv = "SIGNER_PRIVATE_KEY"
	DefaultConfigPath   = "config/config.yml"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// NetworkConfig describes the chain the gateway is expected to transact on.
type NetworkConfig struct {
	// ExpectedChainID is compared verbatim against the chain id the node reports.
	ExpectedChainID          string   `yaml:"expectedChainId"`
	Name                     string   `yaml:"name"`
	PrimaryRPCURL            string   `yaml:"primaryRpcUrl"`
	FallbackRPCURLs          []string `yaml:"fallbackRpcUrls"`
	ConnectionTimeoutSeconds int      `yaml:"connectionTimeoutSeconds"`
	RPCCallTimeoutSeconds    int      `yaml:"rpcCallTimeoutSeconds"`
	ChainIDCacheTTLSeconds   int      `yaml:"chainIdCacheTTLSeconds"`
}

// SignerConfig tells where the relayer key comes from. Both empty means read-only mode.
type SignerConfig struct {
	PrivateKeyFile string `yaml:"privateKeyFile"`
	PrivateKeyEnv  string `yaml:"privateKeyEnv"`
}

// ContractsConfig holds ABI sources and the addresses of singleton contracts.
type ContractsConfig struct {
	ABIDir           string `yaml:"abiDir"`
	AvatarNFTAddress string `yaml:"avatarNftAddress"`
}

// PerformanceConfig holds performance-related configurations.
type PerformanceConfig struct {
	MaxConcurrentRoutines int `yaml:"max_concurrent_routines"`
	MaxBatchCalls         int `yaml:"max_batch_calls"`
}

// RateLimitConfig configures the API token bucket. Zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	Burst             int     `yaml:"burst"`
}

// SwaggerConfig holds configuration for Swagger UI.
type SwaggerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	SpecFile string `yaml:"specFile"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Network     NetworkConfig     `yaml:"network"`
	Signer      SignerConfig      `yaml:"signer"`
	Contracts   ContractsConfig   `yaml:"contracts"`
	Performance PerformanceConfig `yaml:"performance"`
	RateLimit   RateLimitConfig   `yaml:"rateLimit"`
	Swagger     SwaggerConfig     `yaml:"swagger"`
}

// GetEnv returns the environment value for key or fallback when unset.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Load reads the YAML configuration file from the given path and unmarshals it,
// then applies environment overrides and defaults and validates the result.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Config from raw YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := GetEnv(EnvNetworkChainID, ""); v != "" {
		logrus.Infof("Expected chain id overridden from %s: %s", EnvNetworkChainID, v)
		cfg.Network.ExpectedChainID = v
	}
	if v := GetEnv(EnvRPCURL, ""); v != "" {
		logrus.Infof("Primary RPC URL overridden from %s", EnvRPCURL)
		cfg.Network.PrimaryRPCURL = v
	}
	if v := GetEnv(EnvLogLevel, ""); v != "" {
		cfg.Logging.Level = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Network.ConnectionTimeoutSeconds <= 0 {
		cfg.Network.ConnectionTimeoutSeconds = 10
		logrus.Infof("Network.ConnectionTimeoutSeconds not set, defaulting to %d", cfg.Network.ConnectionTimeoutSeconds)
	}
	if cfg.Network.RPCCallTimeoutSeconds <= 0 {
		cfg.Network.RPCCallTimeoutSeconds = 10
		logrus.Infof("Network.RPCCallTimeoutSeconds not set, defaulting to %d", cfg.Network.RPCCallTimeoutSeconds)
	}
	if cfg.Network.ChainIDCacheTTLSeconds <= 0 {
		cfg.Network.ChainIDCacheTTLSeconds = 15
	}

	if cfg.Signer.PrivateKeyEnv == "" {
		cfg.Signer.PrivateKeyEnv = DefaultSignerKeyEnv
	}

	if cfg.Performance.MaxConcurrentRoutines <= 0 {
		cfg.Performance.MaxConcurrentRoutines = 10
		logrus.Infof("Performance.MaxConcurrentRoutines not set, defaulting to %d", cfg.Performance.MaxConcurrentRoutines)
	}
	if cfg.Performance.MaxBatchCalls <= 0 {
		cfg.Performance.MaxBatchCalls = 50
	}

	if cfg.RateLimit.RequestsPerSecond > 0 && cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = int(cfg.RateLimit.RequestsPerSecond)
		if cfg.RateLimit.Burst < 1 {
			cfg.RateLimit.Burst = 1
		}
		logrus.Infof("RateLimit.Burst not set, defaulting to %d", cfg.RateLimit.Burst)
	}

	if cfg.Swagger.SpecFile == "" {
		cfg.Swagger.SpecFile = "./docs/swagger.yaml"
	}
}

// Validate rejects configurations the gateway cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Network.ExpectedChainID) == "" {
		errs = append(errs, fmt.Errorf("network.expectedChainId is required (or set %s)", EnvNetworkChainID))
	}
	if strings.TrimSpace(c.Network.PrimaryRPCURL) == "" {
		errs = append(errs, fmt.Errorf("network.primaryRpcUrl is required (or set %s)", EnvRPCURL))
	}
	if c.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("rateLimit.requestsPerSecond must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
