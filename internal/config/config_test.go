package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-sale/internal/domain"
)

const minimalAPIConfig = `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
payment:
  address: "0x194C1D795E1D4D26B5AC5C9EF0D83F319FD6805C"
chains:
  mainnet:
    rpc_url: "http://localhost:8545"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError string
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  port: 9090
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "SALE_TEST"
payment:
  address: "0x194c1d795e1d4d26b5ac5c9ef0d83f319fd6805c"
  default_chain: "eip155:11155111"
  min_purchase_usd: 25
tolerance:
  locked: 0.02
  current: 0.1
chains:
  mainnet:
    enabled: false
  sepolia:
    enabled: true
    rpc_url: "https://sepolia.example.com"
    explorer_api_key: "key"
    confirmations: 2
scheduler:
  sweep_interval: 5s
  max_age: 1h
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "SALE_TEST", cfg.NATS.StreamName)
				assert.Equal(t, domain.ChainEthereumSepolia, cfg.Payment.DefaultChain)
				assert.Equal(t, 25.0, cfg.Payment.MinPurchaseUSD)
				assert.Equal(t, 0.02, cfg.Tolerance.Locked)
				assert.Equal(t, 0.1, cfg.Tolerance.Current)
				assert.Equal(t, []domain.Chain{domain.ChainEthereumSepolia}, cfg.EnabledChains())

				sepolia, ok := cfg.ChainConfig(domain.ChainEthereumSepolia)
				require.True(t, ok)
				assert.Equal(t, "https://sepolia.example.com", sepolia.RPCURL)
				assert.Equal(t, "key", sepolia.ExplorerAPIKey)
				assert.Equal(t, uint64(2), sepolia.Confirmations)

				_, ok = cfg.ChainConfig(domain.ChainEthereumMainnet)
				assert.False(t, ok)

				assert.Equal(t, 5*time.Second, cfg.Scheduler.SweepInterval)
				assert.Equal(t, time.Hour, cfg.Scheduler.MaxAge)
			},
		},
		{
			name:       "config with defaults",
			configFile: minimalAPIConfig,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Empty(t, cfg.NATS.URL)
				assert.Equal(t, "token_sale.purchases", cfg.NATS.SubjectPrefix)
				assert.Equal(t, domain.ChainEthereumMainnet, cfg.Payment.DefaultChain)
				assert.Equal(t, 10.0, cfg.Payment.MinPurchaseUSD)
				assert.Equal(t, 0.05, cfg.Tolerance.Locked)
				assert.Equal(t, 0.15, cfg.Tolerance.Current)
				assert.Equal(t, uint64(3), cfg.Chains.Mainnet.Confirmations)
				assert.Equal(t, uint64(1), cfg.Chains.Sepolia.Confirmations)
				assert.Equal(t, "https://api.etherscan.io/v2/api", cfg.Chains.Mainnet.ExplorerURL)
				assert.Equal(t, 30*time.Second, cfg.Price.CacheTTL)
				assert.Equal(t, 3500.0, cfg.Price.FallbackUSD)
				assert.Equal(t, 10000.0, cfg.Price.MaxSaneUSD)
				assert.Equal(t, 10*time.Second, cfg.Scheduler.SweepInterval)
				assert.Equal(t, 10*time.Second, cfg.Scheduler.MinAge)
				assert.Equal(t, 30*time.Minute, cfg.Scheduler.MaxAge)
				assert.Equal(t, 5*time.Minute, cfg.Scheduler.NotFoundGrace)
				assert.Equal(t, 100, cfg.Credit.BatchSize)
			},
		},
		{
			name: "missing payment address",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			expectError: "payment.address",
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: testdb
payment:
  address: "0x194c1d795e1d4d26b5ac5c9ef0d83f319fd6805c"
`,
			expectError: "database.host is required",
		},
		{
			name:        "tolerance out of range",
			configFile:  minimalAPIConfig + "tolerance:\n  current: 1.5\n",
			expectError: "tolerance.current",
		},
		{
			name: "default chain not enabled",
			configFile: `
database:
  host: localhost
  dbname: testdb
payment:
  address: "0x194c1d795e1d4d26b5ac5c9ef0d83f319fd6805c"
  default_chain: "eip155:11155111"
chains:
  mainnet:
    rpc_url: "http://localhost:8545"
`,
			expectError: "payment.default_chain",
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: "config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadMigrateConfig(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db
  user: sale
  password: secret
  dbname: token_sale
`)

	cfg, err := LoadMigrateConfig(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "db/migrations", cfg.MigrationsPath)
	assert.Equal(t, "postgres://sale:secret@db:5432/token_sale?sslmode=disable", cfg.Database.URL())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	// Viper uses the FF_TOKEN_SALE_ prefix
	envContent := `FF_TOKEN_SALE_DEBUG=true
FF_TOKEN_SALE_DATABASE_HOST=env-host
FF_TOKEN_SALE_DATABASE_PORT=6543
FF_TOKEN_SALE_DATABASE_DBNAME=env-db
FF_TOKEN_SALE_PAYMENT_ADDRESS=0x0000000000000000000000000000000000000001
FF_TOKEN_SALE_CHAINS_MAINNET_CONFIRMATIONS=6
FF_TOKEN_SALE_TOLERANCE_CURRENT=0.2
`
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))
	t.Cleanup(func() {
		for _, key := range []string{
			"FF_TOKEN_SALE_DEBUG",
			"FF_TOKEN_SALE_DATABASE_HOST",
			"FF_TOKEN_SALE_DATABASE_PORT",
			"FF_TOKEN_SALE_DATABASE_DBNAME",
			"FF_TOKEN_SALE_PAYMENT_ADDRESS",
			"FF_TOKEN_SALE_CHAINS_MAINNET_CONFIRMATIONS",
			"FF_TOKEN_SALE_TOLERANCE_CURRENT",
		} {
			_ = os.Unsetenv(key)
		}
	})

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
debug: false
database:
  host: file-host
  port: 5432
  dbname: file-db
chains:
  mainnet:
    rpc_url: "http://localhost:8545"
`), 0600))

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)

	// .env values are loaded with godotenv.Overload and override the config file
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "0x0000000000000000000000000000000000000001", cfg.Payment.Address)
	assert.Equal(t, uint64(6), cfg.Chains.Mainnet.Confirmations)
	assert.Equal(t, 0.2, cfg.Tolerance.Current)
}
