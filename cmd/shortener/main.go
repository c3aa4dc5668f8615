package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/atinyakov/go-url-redirector/internal/app/server"
	grpcserver "github.com/atinyakov/go-url-redirector/internal/app/server/grpc"
	"github.com/atinyakov/go-url-redirector/internal/app/service"
	"github.com/atinyakov/go-url-redirector/internal/config"
	"github.com/atinyakov/go-url-redirector/internal/logger"
	"github.com/atinyakov/go-url-redirector/internal/middleware"
	"github.com/atinyakov/go-url-redirector/internal/repository"
	"github.com/atinyakov/go-url-redirector/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

const pprofAddr = "localhost:6060"

func main() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))

	options, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New()
	if err := log.Init(options.LogLevel, options.ProjectName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, options, log.Log)
	stop()

	if err != nil {
		log.Log.Error("redirector stopped", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
	log.Sync()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// stores groups the store implementations chosen at start-up.
type stores struct {
	urls     service.URLStorage
	statuses service.StatusStorage
	pinger   storage.Pinger
	close    func() error
}

// openStores picks Postgres when a DSN is configured, then SQLite, then memory.
func openStores(ctx context.Context, options config.Options, log *zap.Logger) (stores, error) {
	var dialect repository.Dialect
	var dsn string

	switch {
	case options.DatabaseDSN != "":
		dialect, dsn = repository.Postgres, options.DatabaseDSN
		log.Info("using postgres")
	case options.SQLitePath != "":
		dialect, dsn = repository.SQLite, options.SQLitePath
		log.Info("using sqlite", zap.String("path", dsn))
	default:
		log.Info("using in memory storage")
		mem, err := storage.CreateMemoryStorage()
		if err != nil {
			return stores{}, err
		}
		return stores{urls: mem, statuses: mem, pinger: mem, close: func() error { return nil }}, nil
	}

	db, err := repository.InitDB(ctx, dialect, dsn, log)
	if err != nil {
		return stores{}, err
	}
	return stores{
		urls:     repository.CreateURLRepository(db, dialect, log),
		statuses: repository.CreateStatusRepository(db, dialect, log),
		pinger:   repository.NewDB(db, dialect),
		close:    db.Close,
	}, nil
}

// run serves until ctx is cancelled, then shuts every listener down.
func run(ctx context.Context, options config.Options, log *zap.Logger) error {
	hosts, err := middleware.NewHostFilter(options.BannedHosts, options.RedirectBannedHosts, log)
	if err != nil {
		return err
	}

	st, err := openStores(ctx, options, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Warn("close store", zap.Error(err))
		}
	}()

	urls := service.NewURL(st.urls, st.pinger, log)
	resolver := service.NewResolver(st.urls, st.statuses, log, nil)
	r := server.Init(urls, service.NewStatus(st.statuses), resolver, hosts, log, nil)

	srv := &http.Server{
		Addr:              options.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if options.EnablePprof {
		go func() {
			log.Info("Starting pprof server", zap.String("addr", pprofAddr))
			if err := http.ListenAndServe(pprofAddr, nil); err != nil {
				log.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 2)

	var grpcSrv *grpcserver.Server
	if options.GRPCAddress != "" {
		grpcSrv = grpcserver.New(options.GRPCAddress, resolver, hosts, log)
		go func() {
			if err := grpcSrv.Start(); err != nil {
				errCh <- fmt.Errorf("grpc: %w", err)
			}
		}()
	}

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(options.TLSHosts...),
		}
		srv.Addr = ":443"
		srv.TLSConfig = manager.TLSConfig()
	}

	go func() {
		var err error
		if options.EnableHTTPS {
			log.Info("Server is running with TLS", zap.Strings("hosts", options.TLSHosts))
			err = srv.ListenAndServeTLS("", "")
		} else {
			log.Info("Server is running", zap.String("addr", srv.Addr))
			err = srv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), options.ShutdownTimeout)
	defer cancel()
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		log.Warn("http shutdown", zap.Error(serr))
	}
	return err
}
