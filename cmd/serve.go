// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/venue-tenancy/internal/authorization"
	"github.com/canonical/venue-tenancy/internal/config"
	"github.com/canonical/venue-tenancy/internal/db"
	"github.com/canonical/venue-tenancy/internal/logging"
	"github.com/canonical/venue-tenancy/internal/monitoring/prometheus"
	"github.com/canonical/venue-tenancy/internal/storage"
	"github.com/canonical/venue-tenancy/internal/tracing"
	"github.com/canonical/venue-tenancy/pkg/authentication"
	"github.com/canonical/venue-tenancy/pkg/elevation"
	"github.com/canonical/venue-tenancy/pkg/permissions"
	"github.com/canonical/venue-tenancy/pkg/session"
	"github.com/canonical/venue-tenancy/pkg/status"
	"github.com/canonical/venue-tenancy/pkg/tenant"
	"github.com/canonical/venue-tenancy/pkg/venue"
	"github.com/canonical/venue-tenancy/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// loadSpecs sources the environment the same way for every server side command.
func loadSpecs() *config.EnvSpec {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	return specs
}

func newDBClient(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor *prometheus.Monitor, logger logging.LoggerInterface) (*db.DBClient, error) {
	return db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
			AppRole:         specs.DBAppRole,
			VerifyHygiene:   specs.DBVerifyHygiene,
			TxTimeout:       specs.TxTimeout,
		},
		tracer,
		monitor,
		logger,
	)
}

func serve() error {
	specs := loadSpecs()

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("venue-tenancy", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := newDBClient(specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	if specs.VerifyIsolationOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := s.VerifyIsolationPolicies(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("refusing to serve: %w", err)
		}
	} else {
		logger.Warn("isolation policy verification is disabled")
	}

	verifier, err := authentication.NewVerifier(
		context.Background(),
		authentication.VerifierConfig{
			Mode:          specs.AuthenticationMode,
			JWTSecret:     specs.JWTSecret,
			JWTIssuer:     specs.JWTIssuer,
			OIDCIssuer:    specs.OIDCIssuer,
			OIDCJWKSURL:   specs.OIDCJWKSURL,
			RequiredScope: specs.OIDCRequiredScope,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create token verifier: %w", err)
	}

	principals := authentication.NewResolver(verifier, s, tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(tracer, monitor, logger)
	permissionResolver := permissions.NewResolver(dbClient, s, tracer, monitor, logger)
	elevationService := elevation.NewService(dbClient, s, permissionResolver, authorizer, tracer, monitor, logger)
	sessions := session.NewManager(dbClient, permissionResolver, elevationService, authorizer, tracer, monitor, logger)

	tenantService := tenant.NewService(sessions, elevationService, s, tracer, monitor, logger)
	venueService := venue.NewService(sessions, s, tracer, monitor, logger)

	router := web.NewRouter(
		web.RouterConfig{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			Dependencies:       map[string]status.PingerInterface{"database": dbClient},
		},
		authentication.NewMiddleware(principals, tracer, monitor, logger),
		sessions,
		tenantService,
		venueService,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
