package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres"
	achievementrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/achievement"
	recordrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/record"
	sessionrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/session"
	tokenrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/token"
	userrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/user"
	wordrepo "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres/word"
	"github.com/promisinganuj/kids-vocabulary-app/internal/adapter/provider/claude"
	jwtauth "github.com/promisinganuj/kids-vocabulary-app/internal/auth"
	"github.com/promisinganuj/kids-vocabulary-app/internal/config"
	authservice "github.com/promisinganuj/kids-vocabulary-app/internal/service/auth"
	"github.com/promisinganuj/kids-vocabulary-app/internal/service/study"
	userservice "github.com/promisinganuj/kids-vocabulary-app/internal/service/user"
	"github.com/promisinganuj/kids-vocabulary-app/internal/service/vocabulary"
	"github.com/promisinganuj/kids-vocabulary-app/internal/transport/middleware"
	"github.com/promisinganuj/kids-vocabulary-app/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires repositories, services and the HTTP router,
// and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	words := wordrepo.New(pool)
	sessions := sessionrepo.NewRepo(pool)
	records := recordrepo.NewRepo(pool)
	achievements := achievementrepo.NewRepo(pool)
	users := userrepo.NewRepo(pool)
	tokens := tokenrepo.NewRepo(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := authservice.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	vocabSvc := vocabulary.NewService(logger, words, cfg.Words)
	if cfg.Lookup.Enabled() {
		vocabSvc.SetLookup(claude.NewProvider(
			cfg.Lookup.APIKey, cfg.Lookup.Model, cfg.Lookup.MaxTokens, cfg.Lookup.Timeout, logger,
		))
		logger.Info("AI word lookup enabled", slog.String("model", cfg.Lookup.Model))
	}
	studySvc := study.NewService(logger, words, sessions, records, achievements,
		txManager, clockwork.NewRealClock(), cfg.Study.DefaultGoalCount)
	userSvc := userservice.NewService(logger, users, words, sessions)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		mws = append(mws, rateLimiter.Limit(cfg.RateLimit.RequestsPerMinute))
	}
	mws = append(mws, middleware.Auth(authSvc))

	router := rest.NewRouter(rest.Handlers{
		Auth:   rest.NewAuthHandler(authSvc, logger),
		Words:  rest.NewWordsHandler(vocabSvc, logger),
		Study:  rest.NewStudyHandler(studySvc, logger),
		User:   rest.NewUserHandler(userSvc, logger),
		Admin:  rest.NewAdminHandler(userSvc, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
	}, middleware.Chain(mws...))

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
