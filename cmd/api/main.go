package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/aarushimanot/ui-mindmirror/internal/auth"
	"github.com/aarushimanot/ui-mindmirror/internal/cache"
	"github.com/aarushimanot/ui-mindmirror/internal/config"
	"github.com/aarushimanot/ui-mindmirror/internal/database"
	"github.com/aarushimanot/ui-mindmirror/internal/handler"
	"github.com/aarushimanot/ui-mindmirror/internal/journal"
	"github.com/aarushimanot/ui-mindmirror/internal/logger"
	"github.com/aarushimanot/ui-mindmirror/internal/player"
	"github.com/aarushimanot/ui-mindmirror/internal/prompt"
	"github.com/aarushimanot/ui-mindmirror/internal/repository"
	"github.com/aarushimanot/ui-mindmirror/pkg"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type application struct {
	DB         *pgxpool.Pool
	Redis      *redis.Client
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Players    *player.Manager
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg := config.MustLoad()

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infow("config loaded", "config", cfg.String())

	app := &application{Logger: log, Config: cfg}

	if cfg.DB.DSN != "" {
		pool, err := database.Connect(ctx, cfg.DB.DSN, database.Options{
			MaxConns:        cfg.DB.MaxConns,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			sugar.Fatalw("database connect failed", "err", err)
		}
		defer pool.Close()
		if err := database.Migrate(ctx, pool); err != nil {
			sugar.Fatalw("database migrate failed", "err", err)
		}
		app.DB = pool
		app.Repository = repository.NewRepository(pool)
	} else {
		sugar.Infow("no DATABASE_URL set, using in-memory store")
		app.Repository = repository.NewMemoryRepository(time.Now)
	}

	if cfg.Redis.Addr != "" {
		rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx, rdb); err != nil {
			sugar.Fatalw("redis ping failed", "err", err)
		}
		defer rdb.Close()
		app.Redis = rdb
		app.Repository.Reset = cache.NewResetStore(rdb)
	}

	if cfg.Crypto.Secret != "" {
		c, err := pkg.NewCrypto(cfg.Crypto.Secret)
		if err != nil {
			sugar.Fatalw("journal encryption setup failed", "err", err)
		}
		app.Repository.Journal = repository.NewSealedJournal(app.Repository.Journal, c)
	}

	app.Players = player.NewManager(
		player.DefaultCatalog(log),
		player.SystemClock(),
		cfg.Player.TickInterval,
		log.Named("player"),
	)

	seed := cfg.Affirmation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	app.Handler = &handler.Handler{
		Logger:          log,
		Repository:      app.Repository,
		TokenMaker:      auth.NewJWTMaker(cfg.JWT.Secret, time.Now),
		Hasher:          pkg.PasswordHasher{Cost: bcrypt.DefaultCost},
		AccessTTL:       cfg.JWT.AccessTokenTTL,
		KeepSignedInTTL: cfg.JWT.KeepSignedInTTL,
		ResetTokenTTL:   cfg.Simulation.ResetTokenTTL,
		Delays: handler.Delays{
			Login:  cfg.Simulation.LoginDelay,
			Signup: cfg.Simulation.SignupDelay,
			Reset:  cfg.Simulation.ResetDelay,
			Resend: cfg.Simulation.ResendDelay,
		},
		Players:      app.Players,
		Navigator:    journal.NewNavigator(time.Now),
		Affirmations: prompt.NewAffirmationPicker(rand.NewSource(seed)),
		Now:          time.Now,
	}

	if err := app.serve(); err != nil {
		sugar.Fatalw("server stopped", "err", err)
	}
}
