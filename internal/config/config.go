package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidEnvVar  error = errors.New("invalid environment variable")
)

const (
	apiPortEnvKey            = "API_PORT"
	ethRPCEnvKey             = "ETH_RPC_URL"
	safeAddressEnvKey        = "SAFE_ADDRESS"
	signerKeyEnvKey          = "SIGNER_PRIVATE_KEY"
	distributorAddressEnvKey = "DISTRIBUTOR_CONTRACT_ADDRESS"
	chainIDEnvKey            = "CHAIN_ID"
	storageBackendEnvKey     = "STORAGE_BACKEND"
	dbConnEnvKey             = "DB_CONNECTION_URL"
	jwtSecretEnvKey          = "JWT_SECRET"
	sentryDSNEnvKey          = "SENTRY_DSN"
	reconcileIntervalEnvKey  = "RECONCILE_INTERVAL"
	receiptWorkersEnvKey     = "RECEIPT_WORKERS"
	logLevelEnvKey           = "LOG_LEVEL"
	corsAllowedOriginsEnvKey = "CORS_ALLOWED_ORIGINS"

	defaultChainID           = 998
	defaultReconcileInterval = 30 * time.Second
	defaultReceiptWorkers    = 8
	defaultLogLevel          = "info"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type App struct {
	Port               string
	RPCURL             string
	SafeAddress        string
	SignerPrivateKey   string
	DistributorAddress string
	ChainID            int64
	StorageBackend     string
	DBConnectionURL    string
	JWTSecret          string
	SentryDSN          string
	ReconcileInterval  time.Duration
	ReceiptWorkers     int
	LogLevel           string
	CORSAllowedOrigins []string
}

// NewApp reads the configuration from the environment. Values from a .env
// file in the working directory are loaded first and never override
// variables that are already set.
func NewApp() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	var (
		app App
		err error
	)

	required := []struct {
		key string
		dst *string
	}{
		{apiPortEnvKey, &app.Port},
		{ethRPCEnvKey, &app.RPCURL},
		{safeAddressEnvKey, &app.SafeAddress},
		{signerKeyEnvKey, &app.SignerPrivateKey},
		{distributorAddressEnvKey, &app.DistributorAddress},
	}
	for _, r := range required {
		value, ok := os.LookupEnv(r.key)
		if !ok || value == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, r.key)
		}
		*r.dst = value
	}

	app.ChainID, err = lookupInt(chainIDEnvKey, defaultChainID)
	if err != nil {
		return App{}, err
	}
	if app.ChainID <= 0 {
		return App{}, fmt.Errorf("%w: %s must be positive", errInvalidEnvVar, chainIDEnvKey)
	}

	app.StorageBackend = lookupString(storageBackendEnvKey, StorageMemory)
	switch app.StorageBackend {
	case StorageMemory:
	case StoragePostgres:
		dbConn, ok := os.LookupEnv(dbConnEnvKey)
		if !ok || dbConn == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
		}
		app.DBConnectionURL = dbConn
	default:
		return App{}, fmt.Errorf("%w: %s must be %q or %q", errInvalidEnvVar, storageBackendEnvKey, StorageMemory, StoragePostgres)
	}

	app.ReconcileInterval = defaultReconcileInterval
	if raw, ok := os.LookupEnv(reconcileIntervalEnvKey); ok && raw != "" {
		app.ReconcileInterval, err = time.ParseDuration(raw)
		if err != nil || app.ReconcileInterval <= 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, reconcileIntervalEnvKey, raw)
		}
	}

	workers, err := lookupInt(receiptWorkersEnvKey, defaultReceiptWorkers)
	if err != nil {
		return App{}, err
	}
	if workers <= 0 {
		return App{}, fmt.Errorf("%w: %s must be positive", errInvalidEnvVar, receiptWorkersEnvKey)
	}
	app.ReceiptWorkers = int(workers)

	app.JWTSecret = lookupString(jwtSecretEnvKey, "")
	app.SentryDSN = lookupString(sentryDSNEnvKey, "")
	app.LogLevel = lookupString(logLevelEnvKey, defaultLogLevel)
	app.CORSAllowedOrigins = splitList(lookupString(corsAllowedOriginsEnvKey, "*"))

	return app, nil
}

func lookupString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func lookupInt(key string, fallback int64) (int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, key, raw)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

type Token struct {
	JWTSecret string
}

// NewToken reads the configuration needed to mint operator tokens.
func NewToken() (Token, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Token{}, fmt.Errorf("load .env file: %w", err)
	}

	secret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok || secret == "" {
		return Token{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}
	return Token{JWTSecret: secret}, nil
}
