// Package main starts the in-memory Fintrack dev server: an API double
// speaking the production envelope contract so the client can run
// against localhost.
package main

import (
	"cmp"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/PreciousIfeaka/fintrack-fe/internal/config"
	"github.com/PreciousIfeaka/fintrack-fe/internal/devserver"
	"github.com/PreciousIfeaka/fintrack-fe/internal/logger"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log, err := logger.NewServer(options.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	srv := devserver.New(options.JWTSecret, options.JWTExpiry, log)

	server := &http.Server{
		Addr:    options.Addr,
		Handler: srv.Router(),
	}

	log.Info("starting dev server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("dev server stopped", zap.Error(err))
	}
}
