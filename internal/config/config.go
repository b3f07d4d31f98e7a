package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-token-sale/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration for purchase status events.
// Publishing is disabled when URL is empty.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// PaymentConfig holds the payment-receiving side of the sale
type PaymentConfig struct {
	Address        string       `mapstructure:"address"`
	DefaultChain   domain.Chain `mapstructure:"default_chain"`
	MinPurchaseUSD float64      `mapstructure:"min_purchase_usd"`
}

// ToleranceConfig holds the two-sided tolerance bands as fractions (0.05 = 5%)
type ToleranceConfig struct {
	Locked  float64 `mapstructure:"locked"`
	Current float64 `mapstructure:"current"`
}

// ChainConfig holds the readers for one payment network
type ChainConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	RPCURL         string  `mapstructure:"rpc_url"`
	ExplorerURL    string  `mapstructure:"explorer_url"`
	ExplorerAPIKey string  `mapstructure:"explorer_api_key"`
	ExplorerRPS    float64 `mapstructure:"explorer_rps"`
	Confirmations  uint64  `mapstructure:"confirmations"`
}

// ChainsConfig holds the configuration for the supported payment networks
type ChainsConfig struct {
	Mainnet ChainConfig `mapstructure:"mainnet"`
	Sepolia ChainConfig `mapstructure:"sepolia"`
}

// BlockHeadConfig holds the latest block cache configuration
type BlockHeadConfig struct {
	TTL         time.Duration `mapstructure:"ttl"`
	StaleWindow time.Duration `mapstructure:"stale_window"`
}

// PriceConfig holds ETH/USD price oracle configuration
type PriceConfig struct {
	CacheTTL         time.Duration `mapstructure:"cache_ttl"`
	FallbackUSD      float64       `mapstructure:"fallback_usd"`
	MaxSaneUSD       float64       `mapstructure:"max_sane_usd"`
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
	CoinGeckoURL     string        `mapstructure:"coingecko_url"`
	CryptoCompareURL string        `mapstructure:"cryptocompare_url"`
	BinanceURL       string        `mapstructure:"binance_url"`
	CoinCapURL       string        `mapstructure:"coincap_url"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// SchedulerConfig holds the retry scheduler configuration
type SchedulerConfig struct {
	SweepInterval  time.Duration `mapstructure:"sweep_interval"`
	MinAge         time.Duration `mapstructure:"min_age"`
	MaxAge         time.Duration `mapstructure:"max_age"`
	NotFoundGrace  time.Duration `mapstructure:"not_found_grace"`
	AttemptTimeout time.Duration `mapstructure:"attempt_timeout"`
	OutcomeTTL     time.Duration `mapstructure:"outcome_ttl"`
	OutcomeSize    int           `mapstructure:"outcome_size"`
	Worker         WorkerConfig  `mapstructure:"worker"`
}

// CreditConfig holds the round credit sweeper configuration
type CreditConfig struct {
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	BatchSize     int           `mapstructure:"batch_size"`
	RetryElapsed  time.Duration `mapstructure:"retry_elapsed"`
	Worker        WorkerConfig  `mapstructure:"worker"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int      `mapstructure:"idle_timeout"`  // in seconds
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// AuthConfig holds authentication configuration for the admin endpoints
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the token sale service
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Auth       AuthConfig      `mapstructure:"auth"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Payment    PaymentConfig   `mapstructure:"payment"`
	Tolerance  ToleranceConfig `mapstructure:"tolerance"`
	Chains     ChainsConfig    `mapstructure:"chains"`
	BlockHead  BlockHeadConfig `mapstructure:"block_head"`
	Price      PriceConfig     `mapstructure:"price"`
	Scheduler  SchedulerConfig `mapstructure:"scheduler"`
	Credit     CreditConfig    `mapstructure:"credit"`
}

// MigrateConfig holds configuration for the migrate command
type MigrateConfig struct {
	BaseConfig     `mapstructure:",squash"`
	Database       DatabaseConfig `mapstructure:"database"`
	MigrationsPath string         `mapstructure:"migrations_path"`
}

// LoadAPIConfig loads configuration for the token sale service
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.allow_origins", []string{"*"})
	setDatabaseDefaults(v)
	v.SetDefault("nats.stream_name", "TOKEN_SALE")
	v.SetDefault("nats.subject_prefix", "token_sale.purchases")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "ff-token-sale")
	v.SetDefault("payment.default_chain", string(domain.ChainEthereumMainnet))
	v.SetDefault("payment.min_purchase_usd", 10)
	v.SetDefault("tolerance.locked", 0.05)
	v.SetDefault("tolerance.current", 0.15)
	v.SetDefault("chains.mainnet.enabled", true)
	v.SetDefault("chains.mainnet.explorer_url", "https://api.etherscan.io/v2/api")
	v.SetDefault("chains.mainnet.explorer_rps", 4)
	v.SetDefault("chains.mainnet.confirmations", 3)
	v.SetDefault("chains.sepolia.enabled", false)
	v.SetDefault("chains.sepolia.explorer_url", "https://api.etherscan.io/v2/api")
	v.SetDefault("chains.sepolia.explorer_rps", 4)
	v.SetDefault("chains.sepolia.confirmations", 1)
	v.SetDefault("block_head.ttl", "4s")
	v.SetDefault("block_head.stale_window", "60s")
	v.SetDefault("price.cache_ttl", "30s")
	v.SetDefault("price.fallback_usd", 3500)
	v.SetDefault("price.max_sane_usd", 10000)
	v.SetDefault("price.http_timeout", "5s")
	v.SetDefault("price.coingecko_url", "https://api.coingecko.com/api/v3/simple/price?ids=ethereum&vs_currencies=usd")
	v.SetDefault("price.cryptocompare_url", "https://min-api.cryptocompare.com/data/price?fsym=ETH&tsyms=USD")
	v.SetDefault("price.binance_url", "https://api.binance.com/api/v3/ticker/price?symbol=ETHUSDT")
	v.SetDefault("price.coincap_url", "https://api.coincap.io/v2/assets/ethereum")
	v.SetDefault("scheduler.sweep_interval", "10s")
	v.SetDefault("scheduler.min_age", "10s")
	v.SetDefault("scheduler.max_age", "30m")
	v.SetDefault("scheduler.not_found_grace", "5m")
	v.SetDefault("scheduler.attempt_timeout", "1m")
	v.SetDefault("scheduler.outcome_ttl", "24h")
	v.SetDefault("scheduler.outcome_size", 10000)
	v.SetDefault("scheduler.worker.pool_size", 20)
	v.SetDefault("scheduler.worker.queue_size", 1024)
	v.SetDefault("credit.sweep_interval", "1m")
	v.SetDefault("credit.batch_size", 100)
	v.SetDefault("credit.retry_elapsed", "2m")
	v.SetDefault("credit.worker.pool_size", 4)
	v.SetDefault("credit.worker.queue_size", 1024)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadMigrateConfig loads configuration for the migrate command
func LoadMigrateConfig(configFile string, envPath string) (*MigrateConfig, error) {
	v := configureViper("migrate", configFile, envPath)

	setDatabaseDefaults(v)
	v.SetDefault("migrations_path", "db/migrations")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg MigrateConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields the service cannot start without
func (c *APIConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}

	if _, err := domain.NormalizeAddress(c.Payment.Address); err != nil {
		return fmt.Errorf("payment.address: %w", err)
	}
	if c.Payment.MinPurchaseUSD < 0 {
		return errors.New("payment.min_purchase_usd must not be negative")
	}

	if !validFraction(c.Tolerance.Locked) {
		return fmt.Errorf("tolerance.locked must be between 0 and 1, got %v", c.Tolerance.Locked)
	}
	if !validFraction(c.Tolerance.Current) {
		return fmt.Errorf("tolerance.current must be between 0 and 1, got %v", c.Tolerance.Current)
	}

	enabled := c.EnabledChains()
	if len(enabled) == 0 {
		return errors.New("at least one chain must be enabled")
	}
	for _, chain := range enabled {
		cc, _ := c.ChainConfig(chain)
		if cc.RPCURL == "" && cc.ExplorerURL == "" {
			return fmt.Errorf("chain %s needs rpc_url or explorer_url", chain)
		}
	}

	if _, ok := c.ChainConfig(c.Payment.DefaultChain); !ok {
		return fmt.Errorf("payment.default_chain %q is not enabled", c.Payment.DefaultChain)
	}

	if c.Scheduler.MaxAge <= c.Scheduler.MinAge {
		return errors.New("scheduler.max_age must be greater than scheduler.min_age")
	}

	return nil
}

// EnabledChains returns the enabled payment networks, production first
func (c *APIConfig) EnabledChains() []domain.Chain {
	var chains []domain.Chain
	if c.Chains.Mainnet.Enabled {
		chains = append(chains, domain.ChainEthereumMainnet)
	}
	if c.Chains.Sepolia.Enabled {
		chains = append(chains, domain.ChainEthereumSepolia)
	}
	return chains
}

// ChainConfig returns the configuration of an enabled payment network
func (c *APIConfig) ChainConfig(chain domain.Chain) (ChainConfig, bool) {
	switch chain {
	case domain.ChainEthereumMainnet:
		return c.Chains.Mainnet, c.Chains.Mainnet.Enabled
	case domain.ChainEthereumSepolia:
		return c.Chains.Sepolia, c.Chains.Sepolia.Enabled
	default:
		return ChainConfig{}, false
	}
}

// Validate checks the required database fields
func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return errors.New("database.host is required")
	}
	if c.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

func validFraction(f float64) bool {
	return f > 0 && f < 1
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

// readConfig reads the config file, a missing file falls back to environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search order: current directory, cmd/<service>/, config/
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_TOKEN_SALE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		"migrations_path",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allow_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Payment
		"payment.address",
		"payment.default_chain",
		"payment.min_purchase_usd",
		"tolerance.locked",
		"tolerance.current",
		"block_head.ttl",
		"block_head.stale_window",
		// Price
		"price.cache_ttl",
		"price.fallback_usd",
		"price.max_sane_usd",
		"price.http_timeout",
		"price.coingecko_url",
		"price.cryptocompare_url",
		"price.binance_url",
		"price.coincap_url",
		// Scheduler
		"scheduler.sweep_interval",
		"scheduler.min_age",
		"scheduler.max_age",
		"scheduler.not_found_grace",
		"scheduler.attempt_timeout",
		"scheduler.outcome_ttl",
		"scheduler.outcome_size",
		"scheduler.worker.pool_size",
		"scheduler.worker.queue_size",
		// Credit
		"credit.sweep_interval",
		"credit.batch_size",
		"credit.retry_elapsed",
		"credit.worker.pool_size",
		"credit.worker.queue_size",
	}

	for _, network := range []string{"mainnet", "sepolia"} {
		for _, field := range []string{"enabled", "rpc_url", "explorer_url", "explorer_api_key", "explorer_rps", "confirmations"} {
			keys = append(keys, "chains."+network+"."+field)
		}
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the database connection string in URL form, as golang-migrate expects
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}
