package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-token-sale/internal/adapter"
	"github.com/feral-file/ff-token-sale/internal/api/middleware"
	"github.com/feral-file/ff-token-sale/internal/api/server"
	"github.com/feral-file/ff-token-sale/internal/api/shared/executor"
	"github.com/feral-file/ff-token-sale/internal/block"
	"github.com/feral-file/ff-token-sale/internal/chain"
	"github.com/feral-file/ff-token-sale/internal/config"
	"github.com/feral-file/ff-token-sale/internal/domain"
	"github.com/feral-file/ff-token-sale/internal/logger"
	"github.com/feral-file/ff-token-sale/internal/messaging"
	"github.com/feral-file/ff-token-sale/internal/price"
	"github.com/feral-file/ff-token-sale/internal/providers/ethereum"
	"github.com/feral-file/ff-token-sale/internal/providers/etherscan"
	"github.com/feral-file/ff-token-sale/internal/providers/jetstream"
	"github.com/feral-file/ff-token-sale/internal/store"
	"github.com/feral-file/ff-token-sale/internal/sweeper"
	"github.com/feral-file/ff-token-sale/internal/verifier"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "token-sale-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Token Sale API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	explorerHTTP := adapter.NewHTTPClientWithRetry(15*time.Second, adapter.DefaultRetryConfig)
	ethDialer := adapter.NewEthClientDialer()

	// Build the readers of every enabled payment network
	registry := chain.NewRegistry()
	for _, c := range cfg.EnabledChains() {
		cc, _ := cfg.ChainConfig(c)
		network, closeFn, err := buildNetwork(ctx, c, cc, cfg.BlockHead, ethDialer, explorerHTTP, jsonAdapter, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to initialize payment network", zap.Error(err), zap.String("chain", string(c)))
		}
		defer closeFn()

		if err := registry.Register(network); err != nil {
			logger.FatalCtx(ctx, "Failed to register payment network", zap.Error(err), zap.String("chain", string(c)))
		}
		logger.InfoCtx(ctx, "Payment network ready",
			zap.String("chain", string(c)),
			zap.Bool("rpc", cc.RPCURL != ""),
			zap.Bool("explorer", cc.ExplorerURL != ""),
			zap.Uint64("confirmations", cc.Confirmations),
		)
	}
	registered := registry.Chains()
	chainNames := make([]string, 0, len(registered))
	for _, c := range registered {
		chainNames = append(chainNames, string(c))
	}
	logger.InfoCtx(ctx, "Payment networks registered", zap.Strings("chains", chainNames))

	// Initialize ETH/USD price oracle
	priceHTTP := adapter.NewHTTPClient(cfg.Price.HTTPTimeout)
	sources := []price.Source{
		price.NewCoinGeckoSource(cfg.Price.CoinGeckoURL, priceHTTP),
		price.NewCryptoCompareSource(cfg.Price.CryptoCompareURL, priceHTTP),
		price.NewBinanceSource(cfg.Price.BinanceURL, priceHTTP),
		price.NewCoinCapSource(cfg.Price.CoinCapURL, priceHTTP),
	}
	oracle := price.NewCachedOracle(price.NewChainOracle(sources, price.ChainConfig{
		MaxSaneUSD:    decimal.NewFromFloat(cfg.Price.MaxSaneUSD),
		FallbackUSD:   decimal.NewFromFloat(cfg.Price.FallbackUSD),
		SourceTimeout: cfg.Price.HTTPTimeout,
	}, clock), cfg.Price.CacheTTL, clock)

	// Initialize purchase status publisher
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, purchase status events are not published")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	// Initialize round crediter, verifier and retry scheduler
	crediter := sweeper.NewRoundCrediter(sweeper.RoundCreditConfig{
		SweepInterval:   cfg.Credit.SweepInterval,
		BatchSize:       cfg.Credit.BatchSize,
		RetryElapsed:    cfg.Credit.RetryElapsed,
		WorkerPoolSize:  cfg.Credit.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Credit.Worker.WorkerQueueSize,
	}, dataStore, clock)

	engine, err := verifier.NewVerifier(verifier.Config{
		PaymentAddress:   cfg.Payment.Address,
		DefaultChain:     cfg.Payment.DefaultChain,
		LockedTolerance:  decimal.NewFromFloat(cfg.Tolerance.Locked),
		CurrentTolerance: decimal.NewFromFloat(cfg.Tolerance.Current),
	}, registry, oracle, dataStore, crediter, clock, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize verifier", zap.Error(err))
	}

	scheduler := sweeper.NewScheduler(sweeper.SchedulerConfig{
		SweepInterval:   cfg.Scheduler.SweepInterval,
		MinAge:          cfg.Scheduler.MinAge,
		MaxAge:          cfg.Scheduler.MaxAge,
		NotFoundGrace:   cfg.Scheduler.NotFoundGrace,
		AttemptTimeout:  cfg.Scheduler.AttemptTimeout,
		OutcomeTTL:      cfg.Scheduler.OutcomeTTL,
		OutcomeSize:     cfg.Scheduler.OutcomeSize,
		WorkerPoolSize:  cfg.Scheduler.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Scheduler.Worker.WorkerQueueSize,
	}, engine, publisher, clock)

	// Start sweepers
	errCh := make(chan error, 3)
	for _, s := range []sweeper.Sweeper{crediter, scheduler} {
		go func(s sweeper.Sweeper) {
			if err := s.Start(ctx); err != nil {
				errCh <- fmt.Errorf("%s: %w", s.Name(), err)
			}
		}(s)
	}

	// Hold the HTTP server until submissions can be accepted
	select {
	case <-scheduler.Ready():
	case err := <-errCh:
		logger.FatalCtx(ctx, "Failed to start sweepers", zap.Error(err))
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowOrigins: cfg.Server.AllowOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	exec := executor.NewExecutor(executor.Config{
		MinPurchaseUSD: decimal.NewFromFloat(cfg.Payment.MinPurchaseUSD),
		DefaultChain:   cfg.Payment.DefaultChain,
	}, dataStore, scheduler, oracle)

	srv := server.New(serverConfig, exec)

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "token-sale-api"))
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	// Stop taking submissions, then let in-flight verifications and credits finish
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", scheduler.Name()))
	}
	if err := crediter.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", crediter.Name()))
	}
	cancel()

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("Token sale API stopped")
}

// buildNetwork wires the readers of one payment network.
// With both configured, the JSON-RPC node is asked first and the explorer covers its failures.
func buildNetwork(
	ctx context.Context,
	c domain.Chain,
	cc config.ChainConfig,
	headCfg config.BlockHeadConfig,
	dialer adapter.EthClientDialer,
	httpClient adapter.HTTPClient,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
) (*chain.Network, func(), error) {
	closeFn := func() {}

	var rpcReader, explorerReader chain.Reader
	if cc.RPCURL != "" {
		client, err := ethereum.Dial(ctx, dialer, c, cc.RPCURL)
		if err != nil {
			return nil, closeFn, err
		}
		rpcReader = client
		closeFn = client.Close
	}
	if cc.ExplorerURL != "" {
		explorerReader = etherscan.NewClient(c, etherscan.Config{
			BaseURL:           cc.ExplorerURL,
			APIKey:            cc.ExplorerAPIKey,
			RequestsPerSecond: cc.ExplorerRPS,
		}, httpClient, jsonAdapter)
	}

	var reader chain.Reader
	switch {
	case rpcReader != nil && explorerReader != nil:
		reader = chain.NewFallbackReader(rpcReader, explorerReader)
	case rpcReader != nil:
		reader = rpcReader
	case explorerReader != nil:
		reader = explorerReader
	default:
		return nil, closeFn, fmt.Errorf("chain %s has no reader configured", c)
	}

	head := block.NewHeadProvider(block.FetcherFunc(reader.LatestBlock), block.Config{
		TTL:         headCfg.TTL,
		StaleWindow: headCfg.StaleWindow,
	}, clock)

	return &chain.Network{
		Chain:                 c,
		Reader:                reader,
		Head:                  head,
		RequiredConfirmations: cc.Confirmations,
	}, closeFn, nil
}
