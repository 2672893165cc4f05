package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quotekeeper/quotekeeper/modules/auth"
	"github.com/quotekeeper/quotekeeper/modules/categories"
	"github.com/quotekeeper/quotekeeper/modules/consentapi"
	"github.com/quotekeeper/quotekeeper/modules/quotes"
	"github.com/quotekeeper/quotekeeper/modules/share"
	"github.com/quotekeeper/quotekeeper/pkg/config"
	"github.com/quotekeeper/quotekeeper/pkg/consent"
	"github.com/quotekeeper/quotekeeper/pkg/cookie"
	"github.com/quotekeeper/quotekeeper/pkg/email"
	"github.com/quotekeeper/quotekeeper/pkg/failover"
	"github.com/quotekeeper/quotekeeper/pkg/httpserver"
	"github.com/quotekeeper/quotekeeper/pkg/logger"
	"github.com/quotekeeper/quotekeeper/pkg/pg"
	"github.com/quotekeeper/quotekeeper/pkg/redis"
	"github.com/quotekeeper/quotekeeper/pkg/session"
)

type appConfig struct {
	// Secret signs password reset and share tokens.
	Secret string `env:"APP_SECRET,required"`

	// BaseURL is the public origin used in reset links and share URLs.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// SessionFallback selects the non-durable session store: "memory"
	// (default) or "redis".
	SessionFallback string `env:"SESSION_STORE" envDefault:"memory"`
}

func main() {
	ctx := context.Background()

	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		slog.Error("failed to load logger config", logger.Error(err))
		os.Exit(1)
	}
	log := logger.NewFromConfig(logCfg)
	logger.SetAsDefault(log)

	if err := run(ctx, log); err != nil {
		log.Error("quotekeeper exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		appCfg     appConfig
		pgCfg      pg.Config
		redisCfg   redis.Config
		cookieCfg  cookie.Config
		sessionCfg session.Config
		emailCfg   email.Config
		httpCfg    httpserver.Config
	)
	for _, err := range []error{
		config.Load(&appCfg),
		config.Load(&pgCfg),
		config.Load(&redisCfg),
		config.Load(&cookieCfg),
		config.Load(&sessionCfg),
		config.Load(&emailCfg),
		config.Load(&httpCfg),
	} {
		if err != nil {
			return err
		}
	}

	// Postgres being down must never take the application down with it:
	// without a pool everything runs from the in-memory fallback stores, and
	// the selector reports fallback mode until the database comes back.
	pool := connectDurable(ctx, log, pgCfg)
	if pool != nil {
		defer pool.Close()
	}

	probe := durableProbe(pool)
	selector := failover.NewSelector(probe)

	cookies := cookie.NewFromConfig(cookieCfg)
	gate := consent.NewGate(cookies)
	analytics := consent.NewAnalytics(gate, log)
	functional := consent.NewFunctional(gate)

	sessionStore := buildSessionStore(ctx, log, appCfg, sessionCfg, redisCfg, pool, selector)
	sessions := session.NewManager(sessionStore, cookies,
		session.WithConfig(sessionCfg),
		session.WithLogger(log.With(logger.Component("session"))),
	)

	userStorage := auth.Storage(auth.NewMemoryStorage())
	quoteStorage := quotes.Storage(quotes.NewMemoryStorage())
	categoryStorage := categories.Storage(categories.NewMemoryStorage())
	if pool != nil {
		userStorage = auth.NewFailoverStorage(auth.NewPGStorage(pool), userStorage, selector)
		quoteStorage = quotes.NewFailoverStorage(quotes.NewPGStorage(pool), quoteStorage, selector)
		categoryStorage = categories.NewFailoverStorage(categories.NewPGStorage(pool), categoryStorage, selector)
	}

	mailer, err := email.NewFromConfig(emailCfg)
	if err != nil {
		return err
	}

	categoriesSvc := categories.NewService(categoryStorage,
		categories.WithLogger(log.With(logger.Component("categories"))))

	authSvc := auth.NewService(userStorage, appCfg.Secret,
		auth.WithLogger(log.With(logger.Component("auth"))),
		auth.WithMailer(mailer),
		auth.WithBaseURL(appCfg.BaseURL),
		auth.WithAfterSignUp(func(ctx context.Context, u *auth.User) error {
			return categoriesSvc.SeedDefaults(ctx, u.ID)
		}),
	)

	quotesSvc := quotes.NewService(quoteStorage,
		quotes.WithLogger(log.With(logger.Component("quotes"))))

	shareSvc := share.NewService(quoteStorage, appCfg.Secret, appCfg.BaseURL)

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/health", httpserver.HealthCheckHandler(ctx, log, probe))
	router.Mount("/auth", auth.Router(authSvc, sessions, gate, selector))
	router.Mount("/quotes", quotes.Router(quotesSvc, sessions, selector))
	router.Mount("/categories", categories.Router(categoriesSvc, sessions, selector))
	router.Mount("/share", share.Router(shareSvc, sessions))
	router.Mount("/consent", consentapi.Router(gate, analytics, functional))

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log.With(logger.Component("httpserver"))),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("quotekeeper started",
				slog.String("addr", httpCfg.Addr),
				slog.Bool("durable_store", pool != nil))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("quotekeeper stopped")
		}),
	)
	return srv.Run(ctx, router)
}

// connectDurable attempts the Postgres connection and migrations. Any
// failure is logged and absorbed; the caller falls back to in-memory stores.
func connectDurable(ctx context.Context, log *slog.Logger, cfg pg.Config) *pgxpool.Pool {
	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		log.Warn("postgres unavailable, serving from fallback stores", logger.Error(err))
		return nil
	}
	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
		log.Error("migrations failed, serving from fallback stores", logger.Error(err))
		pool.Close()
		return nil
	}
	return pool
}

var errNoDurableStore = errors.New("durable store not configured")

// durableProbe returns the connectivity probe driving failover decisions.
func durableProbe(pool *pgxpool.Pool) func(context.Context) error {
	if pool == nil {
		return func(context.Context) error { return errNoDurableStore }
	}
	return pg.Healthcheck(pool)
}

// buildSessionStore wires the session store chain: durable Postgres when the
// pool is up, with either an in-memory or Redis fallback behind the selector.
func buildSessionStore(ctx context.Context, log *slog.Logger, appCfg appConfig, sessionCfg session.Config, redisCfg redis.Config, pool *pgxpool.Pool, selector *failover.Selector) session.Store {
	var fallback session.Store
	if appCfg.SessionFallback == "redis" {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			log.Warn("redis unavailable, using in-memory session fallback", logger.Error(err))
		} else {
			fallback = session.NewRedisStore(client)
		}
	}
	if fallback == nil {
		fallback = session.NewMemoryStore(sessionCfg.CleanupInterval)
	}

	if pool == nil {
		return fallback
	}
	return session.NewFailoverStore(session.NewPGStore(pool), fallback, selector)
}
