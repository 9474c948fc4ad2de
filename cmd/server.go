package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"loopdrop/internal/config"
	"loopdrop/internal/core"
	"loopdrop/internal/db"
	"loopdrop/internal/ethereum"
	"loopdrop/internal/http/handler"
	"loopdrop/internal/http/handler/middleware"
	"loopdrop/internal/http/payload"
	"loopdrop/internal/http/server"
	"loopdrop/internal/repository"
	"loopdrop/internal/safe"
	"loopdrop/pkg/jwt"
	"loopdrop/pkg/log"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const sentryFlushTimeout = 2 * time.Second

var errInvalidAddress error = errors.New("invalid address")

func Start() error {
	logger := log.NewZapLogger("loopdrop", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		logger.Errorw("invalid log level", "error", err)
		return err
	}
	logger = log.NewZapLogger("loopdrop", level)

	if config.SentryDSN != "" {
		var flush func(time.Duration) bool
		logger, flush, err = log.AttachSentry(logger, log.SentryConfig{
			DSN:  config.SentryDSN,
			Tags: map[string]string{"service": "loopdrop"},
		})
		if err != nil {
			return fmt.Errorf("attach sentry: %w", err)
		}
		defer flush(sentryFlushTimeout)
	}
	defer func() {
		_ = logger.Sync()
	}()

	storage, err := newStorage(config, logger)
	if err != nil {
		logger.Errorw("failed to set up storage", "error", err, "backend", config.StorageBackend)
		return err
	}

	// repository
	repo := repository.NewDistributionRepository(storage)

	client, err := ethclient.Dial(config.RPCURL)
	if err != nil {
		logger.Errorw("rpc connection failed", "error", err)
		return err
	}
	defer client.Close()

	// multisig gateway
	gateway, err := newGateway(client, config)
	if err != nil {
		logger.Errorw("failed to create safe gateway", "error", err)
		return err
	}
	logger.Infow("safe gateway ready",
		"safe", config.SafeAddress,
		"signer", gateway.SignerAddress(),
		"chain_id", config.ChainID)

	receipts := ethereum.NewReceiptService(client, config.ReceiptWorkers)
	defer receipts.Stop()

	// distributor
	distributor := core.NewDistributor(
		logger,
		repo,
		gateway,
		receipts,
		config.DistributorAddress)

	stopReconciler := core.NewReconciler(logger, distributor, config.ReconcileInterval).Start(context.Background())
	defer stopReconciler()

	// handlers
	decoder := payload.Decoder{}
	healthHlr := handler.NewHealthHandler(logger)
	distHlr := handler.NewDistributionHandler(logger, decoder, distributor)
	safeHlr := handler.NewSafeHandler(logger, decoder, distributor)

	mux := http.NewServeMux()

	// register routes
	mux.HandleFunc(handler.Health, healthHlr.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc(handler.ListDistributions, distHlr.HandleList)
	mux.HandleFunc(handler.GetDistribution, distHlr.HandleGet)
	mux.HandleFunc(handler.DistributionStats, distHlr.HandleStats)
	mux.HandleFunc(handler.CreateDistribution, distHlr.HandleCreate)
	mux.HandleFunc(handler.UploadDistributionCSV, distHlr.HandleUploadCSV)
	mux.HandleFunc(handler.ProposeDistribution, distHlr.HandlePropose)
	mux.HandleFunc(handler.ExecuteDistribution, distHlr.HandleExecute)
	mux.HandleFunc(handler.FailDistribution, distHlr.HandleFail)
	mux.HandleFunc(handler.DistributionTemplate, distHlr.HandleTemplate)
	mux.HandleFunc(handler.ListAuditLogs, distHlr.HandleAuditLogs)
	mux.HandleFunc(handler.GetSafeInfo, safeHlr.HandleInfo)
	mux.HandleFunc(handler.ConfirmSafeTransaction, safeHlr.HandleConfirm)
	mux.HandleFunc(handler.ExecuteSafeTransaction, safeHlr.HandleExecute)

	// middleware
	hdlr := middleware.NewMetricsMiddleware().Metrics(mux)
	if config.JWTSecret != "" {
		hdlr = middleware.NewIdentityMiddleware(jwt.NewJWTService([]byte(config.JWTSecret)), logger).Identity(hdlr)
	} else {
		logger.Warnw("JWT_SECRET is not set, bearer tokens are ignored")
	}
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRecoverMiddleware(logger).Recover(hdlr)
	hdlr = cors.New(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func newStorage(cfg config.App, logger *zap.SugaredLogger) (repository.Storage, error) {
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warnw("using in-memory storage, distributions are lost on restart")
		return db.NewMemoryDB(), nil
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		return nil, err
	}

	if err := dbConn.Migrate(repository.Counters()...); err != nil {
		return nil, fmt.Errorf("migrate tables: %w", err)
	}
	return dbConn, nil
}

func newGateway(client safe.ChainClient, cfg config.App) (*safe.Gateway, error) {
	if !common.IsHexAddress(cfg.SafeAddress) {
		return nil, fmt.Errorf("%w: safe %q", errInvalidAddress, cfg.SafeAddress)
	}
	if !common.IsHexAddress(cfg.DistributorAddress) {
		return nil, fmt.Errorf("%w: distributor %q", errInvalidAddress, cfg.DistributorAddress)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.SignerPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse signer private key: %w", err)
	}

	return safe.NewGateway(client, safe.Config{
		SafeAddress: common.HexToAddress(cfg.SafeAddress),
		ChainID:     big.NewInt(cfg.ChainID),
		PrivateKey:  key,
	}), nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
