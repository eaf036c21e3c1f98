// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/sprintertech/sprinter-htlc/api"
	"github.com/sprintertech/sprinter-htlc/api/handlers"
	"github.com/sprintertech/sprinter-htlc/cache"
	"github.com/sprintertech/sprinter-htlc/chains"
	"github.com/sprintertech/sprinter-htlc/chains/evm"
	"github.com/sprintertech/sprinter-htlc/chains/memory"
	"github.com/sprintertech/sprinter-htlc/config"
	"github.com/sprintertech/sprinter-htlc/config/chain"
	"github.com/sprintertech/sprinter-htlc/coordinator"
	"github.com/sprintertech/sprinter-htlc/deposit"
	"github.com/sprintertech/sprinter-htlc/finality"
	"github.com/sprintertech/sprinter-htlc/gas"
	"github.com/sprintertech/sprinter-htlc/health"
	"github.com/sprintertech/sprinter-htlc/metrics"
	"github.com/sprintertech/sprinter-htlc/observability"
	"github.com/sprintertech/sprinter-htlc/price"
	"github.com/sprintertech/sprinter-htlc/relay"
	"github.com/sprintertech/sprinter-htlc/secrets"
	"github.com/sprintertech/sprinter-htlc/security"
	"github.com/sprintertech/sprinter-htlc/store"
)

const (
	SECRET_BUFFER = 256
)

var Version string

type swapRelay interface {
	coordinator.Relay
	cache.SecretPublisher
}

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)

	var configuration *config.Config
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV()
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag)
		panicOnError(err)
	}

	observability.ConfigureLogger(configuration.Service.LogLevel, os.Stdout, configuration.Service.LogPretty)

	log.Info().Msg("Successfully loaded configuration")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adapters := make(chains.Adapters)
	deposits := make(map[uint64]coordinator.DepositCalculator)
	finalityConfig := configuration.Finality
	confirmationsPerChain := make(map[uint64]uint64)
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				c, err := evm.NewEVMConfig(chainConfig, configuration.SwapDefaults)
				panicOnError(err)

				client, err := ethclient.DialContext(ctx, c.GeneralChainConfig.Endpoint)
				panicOnError(err)

				transactor, err := evm.NewKeyTransactor(client, c.Key)
				panicOnError(err)

				log.Info().Uint64("chain", *c.GeneralChainConfig.Id).Str("from", transactor.From().Hex()).Msgf("Registering EVM escrow chain")

				chainID := *c.GeneralChainConfig.Id
				adapters[chainID] = evm.NewEscrowClient(chainID, client, transactor, c.Escrow, c.ReceiptRetryInterval)
				deposits[chainID] = newDepositCalculator(c.GeneralChainConfig.Name, c.Swap)
				confirmationsPerChain[chainID] = c.Swap.Finality
			}
		case "memory":
			{
				c, err := memory.NewMemoryConfig(chainConfig, configuration.SwapDefaults)
				panicOnError(err)

				log.Info().Uint64("chain", *c.GeneralChainConfig.Id).Msgf("Registering in-process escrow ledger")

				chainID := *c.GeneralChainConfig.Id
				ledger := memory.NewLedger(chainID, c.Maker, nil)
				go ledger.Produce(ctx, c.BlockInterval())

				adapters[chainID] = ledger
				deposits[chainID] = newDepositCalculator(c.GeneralChainConfig.Name, c.Swap)
				confirmationsPerChain[chainID] = c.Swap.Finality
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}
	for chainID, confirmations := range confirmationsPerChain {
		finalityConfig.Confirmations[chainID] = confirmations
	}

	archive, err := store.OpenArchive(configuration.Service.ArchivePath)
	panicOnError(err)
	defer archive.Close()

	mp, err := observability.InitMetricProvider(ctx, configuration.Service.OpenTelemetryCollectorURL, "sprinter-htlc")
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	swapMetrics, err := metrics.NewSwapMetrics(ctx, mp.Meter("swap-metric-provider"), configuration.Service.Env, configuration.Service.Id, Version)
	panicOnError(err)
	defer swapMetrics.Stop()

	var r swapRelay
	if configuration.Relay.Enabled {
		conn, err := relay.Connect(configuration.Relay)
		panicOnError(err)
		defer conn.Close()

		r = relay.NewNATSRelay(conn, configuration.Relay.SubjectPrefix)
		log.Info().Msgf("Relaying orders over NATS at %s", configuration.Relay.URL)
	} else {
		r = relay.LogRelay{}
		log.Info().Msg("Relay disabled, orders are only logged")
	}

	guard := security.NewGuard(configuration.Security)
	go guard.Start()
	defer guard.Stop()

	opts := []coordinator.Option{
		coordinator.WithMetrics(swapMetrics),
	}
	if configuration.Coinmarketcap.ApiKey != "" {
		priceAPI := price.NewCoinmarketcapAPI(configuration.Coinmarketcap.Url, configuration.Coinmarketcap.ApiKey)
		opts = append(opts, coordinator.WithRateSource(price.NewRateSource(priceAPI, &configuration.Tokens)))
	}

	secretChn := make(chan coordinator.FillSecret, SECRET_BUFFER)
	opts = append(opts, coordinator.WithSecretSink(secretChn))

	swapCoordinator := coordinator.NewCoordinator(
		coordinator.Config{
			Auction:          configuration.Auction,
			Segments:         configuration.Secrets.Segments,
			TimelockDuration: configuration.TimelockDuration,
			NotifyResolvers:  configuration.Relay.NotifyResolvers,
		},
		adapters,
		guard,
		secrets.NewGenerator(configuration.Secrets),
		finality.NewGate(finalityConfig, adapters),
		gas.NewAdjuster(configuration.Gas, adapters),
		deposits,
		r,
		archive,
		opts...,
	)

	secretCache := cache.NewSecretCache(r)
	go secretCache.Watch(ctx, secretChn)

	go swapCoordinator.Monitor(ctx, configuration.Service.MonitorInterval)
	go health.StartHealthEndpoint(configuration.Service.HealthPort, swapCoordinator)

	router := api.NewRouter(
		handlers.NewOrderHandler(swapCoordinator),
		handlers.NewFillHandler(ctx, swapCoordinator, secretCache),
		handlers.NewAdminHandler(swapCoordinator),
		handlers.NewConfirmationsHandler(confirmationsPerChain),
	)
	go api.Serve(ctx, configuration.Service.APIAddr, router)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started swap coordinator: %s with PID: %d. Version: v%s", configuration.Service.Id, os.Getpid(), Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func newDepositCalculator(name string, swap chain.SwapOverrides) *deposit.Calculator {
	rate, err := swap.DepositRatePerMille()
	panicOnError(err)
	minAmount, err := swap.DepositMinAmount()
	panicOnError(err)

	depositConfig := deposit.Config{
		Chain:        name,
		RatePerMille: rate,
		MinAmount:    minAmount,
	}
	panicOnError(depositConfig.Validate())
	return deposit.NewCalculator(depositConfig)
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
