// cmd/web/main.go
//
// Commerce URL service – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load config (conf/.env → conf/global.yaml → COMMERCE_ env).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Resolve the catalog DB password: env/YAML value, or a Vault KV-v2
//     entry named by database.password_secret.
//
//  4. Open the catalog DB and wrap the SQL repository in the LRU cache.
//
//  5. Resolve the configured product url format.
//
//  6. Build the root router (middleware, components, /metrics) and serve
//     until SIGINT or SIGTERM, then drain.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/adept-commerce/internal/catalog"
	"github.com/yanizio/adept-commerce/internal/component"
	"github.com/yanizio/adept-commerce/internal/config"
	"github.com/yanizio/adept-commerce/internal/database"
	"github.com/yanizio/adept-commerce/internal/logger"
	"github.com/yanizio/adept-commerce/internal/requestinfo"
	"github.com/yanizio/adept-commerce/internal/server"
	"github.com/yanizio/adept-commerce/internal/urlformat"
	"github.com/yanizio/adept-commerce/internal/vault"

	_ "github.com/yanizio/adept-commerce/components/product"
)

const (
	shutdownGrace = 10 * time.Second
	secretTTL     = time.Hour
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY(), cfg.Log.Level)
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	if cfg.GeoIP.Path != "" {
		if err := requestinfo.InitGeo(cfg.GeoIP.Path); err != nil {
			logOut.Warnw("geoip disabled", "err", err)
		}
	}

	//
	// ── 1.  Catalog DB ──────────────────────────────────────────────────
	//
	password, err := dbPassword(ctx, cfg.Database)
	if err != nil {
		logOut.Fatalw("resolve db password", "err", err)
	}
	dsn, err := database.BuildDSN(cfg.Database.DSN, password)
	if err != nil {
		logOut.Fatalw("build dsn", "err", err)
	}

	logOut.Info("connecting to catalog DB …")
	db, err := database.OpenWithOptions(ctx, dsn, cfg.Database.MaxOpen, cfg.Database.MaxIdle)
	if err != nil {
		logOut.Fatalw("connect catalog DB", "err", err)
	}
	defer db.Close()
	logOut.Info("catalog DB online")

	var retriever catalog.Retriever = catalog.NewSQLRepository(db)
	if cfg.Catalog.CacheSize > 0 {
		retriever = catalog.NewCachedRetriever(retriever, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)
	}

	//
	// ── 2.  URL format ──────────────────────────────────────────────────
	//
	format, err := urlformat.Lookup(cfg.URLFormat.Product)
	if err != nil {
		logOut.Fatalw("url format", "err", err)
	}
	logOut.Infow("product url format",
		"name", format.Name(),
		"pattern", format.Pattern(),
		"page", cfg.URLFormat.ProductPage)

	//
	// ── 3.  Router and server ───────────────────────────────────────────
	//
	handler, err := server.NewRouter(component.Services{
		Catalog:     retriever,
		Format:      format,
		ProductPage: cfg.URLFormat.ProductPage,
		StrictURLs:  cfg.URLFormat.Strict,
	}, server.RouterOptions{ForceHTTPS: cfg.HTTP.ForceHTTPS})
	if err != nil {
		logOut.Fatalw("build router", "err", err)
	}

	srv := server.New(cfg.HTTP.ListenAddr, handler, server.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
		Idle:  cfg.HTTP.IdleTimeout,
	})
	if err := server.Run(ctx, srv, shutdownGrace); err != nil {
		zap.S().Errorw("http server", "err", err)
	}
}

// dbPassword prefers a Vault secret when one is configured.
func dbPassword(ctx context.Context, db config.Database) (string, error) {
	if db.PasswordSecret == "" {
		return db.Password, nil
	}
	path, key, err := config.SplitSecretRef(db.PasswordSecret)
	if err != nil {
		return "", err
	}
	cli, err := vault.New(ctx)
	if err != nil {
		return "", err
	}
	return cli.GetKV(ctx, path, key, secretTTL)
}
