package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Vault    VaultConfig    `mapstructure:"vault"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Protocol ProtocolConfig `mapstructure:"protocol"`
	Swap     SwapConfig     `mapstructure:"swap"`
	Funding  FundingConfig  `mapstructure:"funding"`
	Lock     LockConfig     `mapstructure:"lock"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// PoolSize of zero keeps the driver default.
	PoolSize int `mapstructure:"pool_size"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// VaultConfig holds the operator secret the key vault derives its AES key from.
type VaultConfig struct {
	Secret string `mapstructure:"secret"`
}

type LedgerConfig struct {
	RPCURL         string        `mapstructure:"rpc_url"`
	Commitment     string        `mapstructure:"commitment"`
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	RequestsPerSec float64       `mapstructure:"requests_per_sec"`
	Burst          int           `mapstructure:"burst"`
	USDCMint       string        `mapstructure:"usdc_mint"`
}

type ProtocolConfig struct {
	GatewayURL string        `mapstructure:"gateway_url"`
	ProgramID  string        `mapstructure:"program_id"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type SwapConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	SlippageBps int           `mapstructure:"slippage_bps"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// FundingConfig holds deposit and withdrawal limits. Lamport values are native units.
type FundingConfig struct {
	MinDepositUSD             string        `mapstructure:"min_deposit_usd"`
	RentExemptReserveLamports int64         `mapstructure:"rent_exempt_reserve_lamports"`
	WithdrawFeeBufferLamports int64         `mapstructure:"withdraw_fee_buffer_lamports"`
	SwapFeeBufferLamports     int64         `mapstructure:"swap_fee_buffer_lamports"`
	IdempotencyTTL            time.Duration `mapstructure:"idempotency_ttl"`
}

// LockConfig selects the per-wallet lock backend. The redis lock is refreshed
// while held; TTL bounds how long a crashed holder blocks the wallet.
type LockConfig struct {
	Backend string        `mapstructure:"backend"` // local, redis
	TTL     time.Duration `mapstructure:"ttl"`
	Wait    time.Duration `mapstructure:"wait"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Vault.Secret == "" {
		errs = append(errs, errors.New("vault.secret is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if c.Ledger.RPCURL == "" {
		errs = append(errs, errors.New("ledger.rpc_url is required"))
	}
	if c.Ledger.ConfirmTimeout <= 0 {
		errs = append(errs, errors.New("ledger.confirm_timeout must be positive"))
	}
	if c.Protocol.ProgramID == "" {
		errs = append(errs, errors.New("protocol.program_id is required"))
	}
	if c.Lock.Backend != "local" && c.Lock.Backend != "redis" {
		errs = append(errs, fmt.Errorf("lock.backend must be local or redis, got %q", c.Lock.Backend))
	}
	if c.Lock.Backend == "redis" && c.Lock.TTL < c.Ledger.ConfirmTimeout {
		errs = append(errs, fmt.Errorf("lock.ttl %s must be at least ledger.confirm_timeout %s", c.Lock.TTL, c.Ledger.ConfirmTimeout))
	}
	if c.Lock.Wait <= 0 {
		errs = append(errs, errors.New("lock.wait must be positive"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: DTG_ (Delegated Trading Gateway).
// Nested keys use underscore: DTG_VAULT_SECRET, DTG_LEDGER_RPC_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "trading_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "delegated-trading-gateway")
	v.SetDefault("vault.secret", "")
	v.SetDefault("ledger.rpc_url", "https://api.devnet.solana.com")
	v.SetDefault("ledger.commitment", "confirmed")
	v.SetDefault("ledger.confirm_timeout", "60s")
	v.SetDefault("ledger.poll_interval", "500ms")
	v.SetDefault("ledger.requests_per_sec", 10)
	v.SetDefault("ledger.burst", 20)
	v.SetDefault("ledger.usdc_mint", "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU")
	v.SetDefault("protocol.gateway_url", "http://localhost:8090")
	v.SetDefault("protocol.program_id", "dRiftyHA39MWEi3m9aunc5MzRF1JYuBsbn6VPcn33UH")
	v.SetDefault("protocol.timeout", "15s")
	v.SetDefault("swap.base_url", "https://quote-api.jup.ag/v6")
	v.SetDefault("swap.slippage_bps", 50)
	v.SetDefault("swap.timeout", "15s")
	v.SetDefault("funding.min_deposit_usd", "5")
	v.SetDefault("funding.rent_exempt_reserve_lamports", 890880)
	v.SetDefault("funding.withdraw_fee_buffer_lamports", 5000)
	v.SetDefault("funding.swap_fee_buffer_lamports", 5000000)
	v.SetDefault("funding.idempotency_ttl", "24h")
	v.SetDefault("lock.backend", "redis")
	v.SetDefault("lock.ttl", "2m")
	v.SetDefault("lock.wait", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: DTG_LEDGER_RPC_URL -> ledger.rpc_url
	v.SetEnvPrefix("DTG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
