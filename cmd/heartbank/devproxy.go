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

	"heartbank/internal/devproxy"

	"github.com/urfave/cli/v2"
)

var devproxyCommand = &cli.Command{
	Name:  "devproxy",
	Usage: "Forward /api/* to the local functions emulator with the /api prefix stripped",
	Action: func(cCtx *cli.Context) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := loadConfig(cCtx)
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		target, err := devproxy.FunctionsTarget(cfg)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.DevProxyPort),
			Handler:           devproxy.New(target, logger),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			logger.WithField("target", target.String()).Infof("dev proxy listening on http://localhost:%d%s", cfg.DevProxyPort, devproxy.Prefix)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.WithError(err).Fatal("dev proxy failed")
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	},
}
