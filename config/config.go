// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/sprintertech/sprinter-htlc/auction"
	"github.com/sprintertech/sprinter-htlc/config/chain"
	"github.com/sprintertech/sprinter-htlc/finality"
	"github.com/sprintertech/sprinter-htlc/gas"
	"github.com/sprintertech/sprinter-htlc/relay"
	"github.com/sprintertech/sprinter-htlc/secrets"
	"github.com/sprintertech/sprinter-htlc/security"
)

const (
	ENV_PREFIX = "SWAP"
	// CHAINS_ENV holds the chain configurations as a JSON array
	CHAINS_ENV = "SWAP_CHAINS"
	TOKENS_ENV = "SWAP_TOKENS"
)

type Config struct {
	Service          ServiceConfig
	Auction          auction.Config
	Secrets          secrets.Config
	Finality         finality.Config
	Gas              gas.Config
	Security         security.Config
	SwapDefaults     chain.SwapOverrides
	TimelockDuration time.Duration
	Relay            relay.Config
	Coinmarketcap    CoinmarketcapConfig
	Tokens           TokenStore
	ChainConfigs     []map[string]interface{}
}

type ServiceConfig struct {
	LogLevel                  zerolog.Level
	LogPretty                 bool
	APIAddr                   string
	HealthPort                uint16
	OpenTelemetryCollectorURL string
	Env                       string
	Id                        string
	ArchivePath               string
	MonitorInterval           time.Duration
}

type CoinmarketcapConfig struct {
	Url    string
	ApiKey string
}

type RawConfig struct {
	Service       RawServiceConfig         `mapstructure:"service"`
	Auction       RawAuctionConfig         `mapstructure:"auction"`
	Secrets       RawSecretsConfig         `mapstructure:"secrets"`
	Finality      RawFinalityConfig        `mapstructure:"finality"`
	Gas           RawGasConfig             `mapstructure:"gas"`
	Security      RawSecurityConfig        `mapstructure:"security"`
	Swap          RawSwapConfig            `mapstructure:"swap"`
	Relay         RawRelayConfig           `mapstructure:"relay"`
	Coinmarketcap RawCoinmarketcapConfig   `mapstructure:"coinmarketcap"`
	Tokens        []RawTokenConfig         `mapstructure:"tokens"`
	ChainConfigs  []map[string]interface{} `mapstructure:"chains"`
}

type RawServiceConfig struct {
	LogLevel                  string `mapstructure:"logLevel" default:"info"`
	LogPretty                 bool   `mapstructure:"logPretty"`
	APIAddr                   string `mapstructure:"apiAddr" default:":3000"`
	HealthPort                uint16 `mapstructure:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL"`
	Env                       string `mapstructure:"env" default:"local"`
	Id                        string `mapstructure:"id"`
	ArchivePath               string `mapstructure:"archivePath" default:"./archive"`
	MonitorInterval           uint64 `mapstructure:"monitorInterval" default:"5"`
}

type RawAuctionConfig struct {
	StartDelay            uint64 `mapstructure:"startDelay" default:"300"`
	Duration              uint64 `mapstructure:"duration" default:"3600"`
	StartRateMultiplier   string `mapstructure:"startRateMultiplier" default:"6.0"`
	MinimumReturnRate     string `mapstructure:"minimumReturnRate" default:"0.8"`
	DecreaseRatePerMinute string `mapstructure:"decreaseRatePerMinute" default:"0.01"`
	PriceCurveSegments    uint   `mapstructure:"priceCurveSegments" default:"3"`
}

type RawSecretsConfig struct {
	Depth           uint  `mapstructure:"depth" default:"5"`
	Segments        uint  `mapstructure:"segments" default:"16"`
	ReusePrevention *bool `mapstructure:"reusePrevention" default:"true"`
}

type RawFinalityConfig struct {
	SecretSharingDelay uint64   `mapstructure:"secretSharingDelay" default:"300"`
	PollInterval       uint64   `mapstructure:"pollInterval" default:"5"`
	Whitelist          []string `mapstructure:"whitelist"`
}

type RawGasConfig struct {
	Enabled                      *bool  `mapstructure:"enabled" default:"true"`
	VolatilityThreshold          string `mapstructure:"volatilityThreshold" default:"0.2"`
	AdjustmentFactor             string `mapstructure:"adjustmentFactor" default:"1.5"`
	ExecutionThresholdMultiplier string `mapstructure:"executionThresholdMultiplier" default:"1.2"`
	HistorySize                  int    `mapstructure:"historySize" default:"100"`
}

type RawSecurityConfig struct {
	ReentrancyProtection *bool    `mapstructure:"reentrancyProtection" default:"true"`
	ReentrancyCooldown   uint64   `mapstructure:"reentrancyCooldown" default:"60"`
	EmergencyPause       *bool    `mapstructure:"emergencyPause" default:"true"`
	Admins               []string `mapstructure:"admins"`
	Resolvers            []string `mapstructure:"resolvers"`
	PauseGuardian        string   `mapstructure:"pauseGuardian"`
}

// RawSwapConfig holds the swap parameters applied to chains that do not
// override them.
type RawSwapConfig struct {
	Finality         uint64 `mapstructure:"finality" default:"64"`
	DepositRate      string `mapstructure:"depositRate" default:"0.1"`
	DepositMin       string `mapstructure:"depositMin" default:"1000000000000000"`
	TimelockDuration uint64 `mapstructure:"timelockDuration" default:"3600"`
}

type RawRelayConfig struct {
	Enabled         *bool  `mapstructure:"enabled" default:"true"`
	NotifyResolvers *bool  `mapstructure:"notifyResolvers" default:"true"`
	URL             string `mapstructure:"url" default:"nats://127.0.0.1:4222"`
	SubjectPrefix   string `mapstructure:"subjectPrefix" default:"swap"`
	Timeout         uint64 `mapstructure:"timeout" default:"10"`
}

type RawCoinmarketcapConfig struct {
	Url    string `mapstructure:"url" default:"https://pro-api.coinmarketcap.com"`
	ApiKey string `mapstructure:"apiKey"`
}

type RawTokenConfig struct {
	ChainID  uint64 `mapstructure:"chainId"`
	Symbol   string `mapstructure:"symbol"`
	Decimals uint8  `mapstructure:"decimals"`
}

// GetConfigFromFile reads a JSON or YAML configuration file.
func GetConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
	}

	var raw RawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, err
	}
	return processConfig(raw)
}

// GetConfigFromENV reads the configuration from SWAP_ prefixed environment
// variables. Nested keys are joined with an underscore, for example
// SWAP_AUCTION_DURATION. Chains and tokens are JSON arrays.
func GetConfigFromENV() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v, reflect.TypeOf(RawConfig{}), ""); err != nil {
		return nil, err
	}

	var raw RawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, err
	}

	if chains, ok := os.LookupEnv(CHAINS_ENV); ok {
		if err := json.Unmarshal([]byte(chains), &raw.ChainConfigs); err != nil {
			return nil, fmt.Errorf("failed parsing %s: %w", CHAINS_ENV, err)
		}
	}
	if tokens, ok := os.LookupEnv(TOKENS_ENV); ok {
		if err := json.Unmarshal([]byte(tokens), &raw.Tokens); err != nil {
			return nil, fmt.Errorf("failed parsing %s: %w", TOKENS_ENV, err)
		}
	}
	return processConfig(raw)
}

// bindEnv registers every scalar key of the raw config so that Unmarshal
// picks it up from the environment.
func bindEnv(v *viper.Viper, t reflect.Type, prefix string) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		switch field.Type.Kind() {
		case reflect.Struct:
			if err := bindEnv(v, field.Type, key); err != nil {
				return err
			}
		case reflect.Map:
			continue
		case reflect.Slice:
			if field.Type.Elem().Kind() != reflect.String {
				continue
			}
			if err := v.BindEnv(key); err != nil {
				return err
			}
		default:
			if err := v.BindEnv(key); err != nil {
				return err
			}
		}
	}
	return nil
}

func processConfig(raw RawConfig) (*Config, error) {
	if err := defaults.Set(&raw); err != nil {
		return nil, err
	}
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	logLevel, err := zerolog.ParseLevel(raw.Service.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", raw.Service.LogLevel, err)
	}

	auctionConfig, err := raw.Auction.auctionConfig()
	if err != nil {
		return nil, err
	}
	gasConfig, err := raw.Gas.gasConfig()
	if err != nil {
		return nil, err
	}
	whitelist, err := addresses(raw.Finality.Whitelist)
	if err != nil {
		return nil, err
	}
	securityConfig, err := raw.Security.securityConfig()
	if err != nil {
		return nil, err
	}

	tokens := TokenStore{Tokens: make(map[uint64]TokenConfig)}
	for _, token := range raw.Tokens {
		tokens.Tokens[token.ChainID] = TokenConfig{
			Symbol:   token.Symbol,
			Decimals: token.Decimals,
		}
	}

	// nolint:gosec
	config := &Config{
		Service: ServiceConfig{
			LogLevel:                  logLevel,
			LogPretty:                 raw.Service.LogPretty,
			APIAddr:                   raw.Service.APIAddr,
			HealthPort:                raw.Service.HealthPort,
			OpenTelemetryCollectorURL: raw.Service.OpenTelemetryCollectorURL,
			Env:                       raw.Service.Env,
			Id:                        raw.Service.Id,
			ArchivePath:               raw.Service.ArchivePath,
			MonitorInterval:           time.Duration(raw.Service.MonitorInterval) * time.Second,
		},
		Auction: auctionConfig,
		Secrets: secrets.Config{
			Depth:           raw.Secrets.Depth,
			Segments:        raw.Secrets.Segments,
			ReusePrevention: *raw.Secrets.ReusePrevention,
		},
		Finality: finality.Config{
			Confirmations:      make(map[uint64]uint64),
			SecretSharingDelay: time.Duration(raw.Finality.SecretSharingDelay) * time.Second,
			PollInterval:       time.Duration(raw.Finality.PollInterval) * time.Second,
			Whitelist:          whitelist,
		},
		Gas:      gasConfig,
		Security: securityConfig,
		SwapDefaults: chain.SwapOverrides{
			Finality:    raw.Swap.Finality,
			DepositRate: raw.Swap.DepositRate,
			DepositMin:  raw.Swap.DepositMin,
		},
		TimelockDuration: time.Duration(raw.Swap.TimelockDuration) * time.Second,
		Relay: relay.Config{
			Enabled:         *raw.Relay.Enabled,
			NotifyResolvers: *raw.Relay.NotifyResolvers,
			URL:             raw.Relay.URL,
			SubjectPrefix:   raw.Relay.SubjectPrefix,
			Timeout:         time.Duration(raw.Relay.Timeout) * time.Second,
		},
		Coinmarketcap: CoinmarketcapConfig{
			Url:    raw.Coinmarketcap.Url,
			ApiKey: raw.Coinmarketcap.ApiKey,
		},
		Tokens:       tokens,
		ChainConfigs: raw.ChainConfigs,
	}
	return config, nil
}

func (c *RawConfig) Validate() error {
	if len(c.ChainConfigs) == 0 {
		return fmt.Errorf("no chains configured")
	}
	if c.Service.MonitorInterval == 0 {
		return fmt.Errorf("monitor interval must be positive")
	}
	if c.Swap.TimelockDuration == 0 {
		return fmt.Errorf("timelock duration must be positive")
	}
	if c.Secrets.Segments == 0 {
		return fmt.Errorf("secret segments must be positive")
	}
	if _, ok := new(big.Int).SetString(c.Swap.DepositMin, 10); !ok {
		return fmt.Errorf("invalid minimum deposit %s", c.Swap.DepositMin)
	}
	if c.Relay.Enabled != nil && *c.Relay.Enabled && c.Relay.URL == "" {
		return fmt.Errorf("relay url required when relay is enabled")
	}
	for _, token := range c.Tokens {
		if token.Symbol == "" {
			return fmt.Errorf("token symbol missing for chain %d", token.ChainID)
		}
	}
	return nil
}

func (c RawAuctionConfig) auctionConfig() (auction.Config, error) {
	rates := make([]decimal.Decimal, 3)
	for i, value := range []string{c.StartRateMultiplier, c.MinimumReturnRate, c.DecreaseRatePerMinute} {
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return auction.Config{}, fmt.Errorf("invalid auction rate %s: %w", value, err)
		}
		rates[i] = rate
	}

	// nolint:gosec
	config := auction.Config{
		StartDelay:            time.Duration(c.StartDelay) * time.Second,
		Duration:              time.Duration(c.Duration) * time.Second,
		StartRateMultiplier:   rates[0],
		MinimumReturnRate:     rates[1],
		DecreaseRatePerMinute: rates[2],
		PriceCurveSegments:    c.PriceCurveSegments,
	}
	return config, config.Validate()
}

func (c RawGasConfig) gasConfig() (gas.Config, error) {
	threshold, err := decimal.NewFromString(c.VolatilityThreshold)
	if err != nil {
		return gas.Config{}, fmt.Errorf("invalid volatility threshold %s: %w", c.VolatilityThreshold, err)
	}
	factor, err := decimal.NewFromString(c.AdjustmentFactor)
	if err != nil {
		return gas.Config{}, fmt.Errorf("invalid adjustment factor %s: %w", c.AdjustmentFactor, err)
	}
	multiplier, err := decimal.NewFromString(c.ExecutionThresholdMultiplier)
	if err != nil {
		return gas.Config{}, fmt.Errorf("invalid execution threshold multiplier %s: %w", c.ExecutionThresholdMultiplier, err)
	}

	return gas.Config{
		Enabled:                      *c.Enabled,
		VolatilityThreshold:          threshold,
		AdjustmentFactor:             factor,
		ExecutionThresholdMultiplier: multiplier,
		HistorySize:                  c.HistorySize,
	}, nil
}

func (c RawSecurityConfig) securityConfig() (security.Config, error) {
	admins, err := addresses(c.Admins)
	if err != nil {
		return security.Config{}, err
	}
	resolvers, err := addresses(c.Resolvers)
	if err != nil {
		return security.Config{}, err
	}

	var guardian common.Address
	if c.PauseGuardian != "" {
		if !common.IsHexAddress(c.PauseGuardian) {
			return security.Config{}, fmt.Errorf("invalid pause guardian %s", c.PauseGuardian)
		}
		guardian = common.HexToAddress(c.PauseGuardian)
	}

	// nolint:gosec
	return security.Config{
		ReentrancyProtection: *c.ReentrancyProtection,
		ReentrancyCooldown:   time.Duration(c.ReentrancyCooldown) * time.Second,
		EmergencyPause:       *c.EmergencyPause,
		Admins:               admins,
		Resolvers:            resolvers,
		PauseGuardian:        guardian,
	}, nil
}

func addresses(hexAddresses []string) ([]common.Address, error) {
	addresses := make([]common.Address, 0, len(hexAddresses))
	for _, hexAddress := range hexAddresses {
		if !common.IsHexAddress(hexAddress) {
			return nil, fmt.Errorf("invalid address %s", hexAddress)
		}
		addresses = append(addresses, common.HexToAddress(hexAddress))
	}
	return addresses, nil
}
