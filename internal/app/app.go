package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/engage-backend/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/engage-backend/internal/adapter/postgres/comment"
	interactionrepo "github.com/heartmarshall/engage-backend/internal/adapter/postgres/interaction"
	messagerepo "github.com/heartmarshall/engage-backend/internal/adapter/postgres/message"
	reactionrepo "github.com/heartmarshall/engage-backend/internal/adapter/postgres/reaction"
	registryrepo "github.com/heartmarshall/engage-backend/internal/adapter/postgres/registry"
	"github.com/heartmarshall/engage-backend/internal/config"
	commentsvc "github.com/heartmarshall/engage-backend/internal/service/comment"
	interactionsvc "github.com/heartmarshall/engage-backend/internal/service/interaction"
	messagesvc "github.com/heartmarshall/engage-backend/internal/service/message"
	reactionsvc "github.com/heartmarshall/engage-backend/internal/service/reaction"
	resolversvc "github.com/heartmarshall/engage-backend/internal/service/resolver"
	"github.com/heartmarshall/engage-backend/internal/transport/middleware"
	"github.com/heartmarshall/engage-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, assembles the service stack, and serves
// HTTP until ctx is cancelled.
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

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	// Repositories.
	registryRepo := registryrepo.New(pool)
	messageRepo := messagerepo.New(pool)
	commentRepo := commentrepo.New(pool)
	reactionRepo := reactionrepo.New(pool)
	interactionRepo := interactionrepo.New(pool)

	// Services.
	resolverService := resolversvc.NewService(logger, registryRepo)
	messageService := messagesvc.NewService(logger, messageRepo)
	commentService := commentsvc.NewService(logger, commentRepo, txm)
	reactionService := reactionsvc.NewService(logger, reactionRepo)
	interactionService := interactionsvc.NewService(logger, interactionRepo, interactionsvc.Limits{
		DefaultListLimit: cfg.Engagement.InteractionListLimit,
		MaxListLimit:     cfg.Engagement.InteractionListMaxLimit,
	})

	// HTTP handlers and router.
	mux := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Messages:     rest.NewMessageHandler(messageService, resolverService, logger),
		Comments:     rest.NewCommentHandler(commentService, resolverService, logger),
		Reactions:    rest.NewReactionHandler(reactionService, resolverService, logger),
		Interactions: rest.NewInteractionHandler(interactionService, resolverService, logger),
	})

	// Identity runs before Logger so the access log sees the actor.
	middlewares := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Identity(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		middlewares = append(middlewares, limiter.Limit(cfg.RateLimit.RequestsPerMinute))
	}

	handler := middleware.Chain(middlewares...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
