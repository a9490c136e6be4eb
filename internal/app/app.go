package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/ekinsoyer/theatre-reservation-system/internal/domain"
	"github.com/ekinsoyer/theatre-reservation-system/internal/mailer"
	"github.com/ekinsoyer/theatre-reservation-system/internal/repository"
	appvalidator "github.com/ekinsoyer/theatre-reservation-system/internal/validator"
	"github.com/ekinsoyer/theatre-reservation-system/internal/vcs"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

var version = vcs.Version()

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          *redis.Client
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager

	userRepo        domain.UserRepository
	tokenRepo       domain.TokenRepository
	actorRepo       domain.ActorRepository
	genreRepo       domain.GenreRepository
	playRepo        domain.PlayRepository
	hallRepo        domain.TheatreHallRepository
	performanceRepo domain.PerformanceRepository
	reservationRepo domain.ReservationRepository
}

type Config struct {
	Port             int
	Env              string
	DefaultPageSize  int
	OtelCollectorUrl string
	DB               DBConfig
	Redis            RedisConfig
	SMTP             SMTPConfig
	Upload           UploadConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

func NewApplication(cfg Config, logger *slog.Logger) (*Application, error) {
	db, err := NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		NewSessionManager(redisClient),
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresTokenRepository(db),
		repository.NewPostgresActorRepository(db),
		repository.NewPostgresGenreRepository(db),
		repository.NewPostgresPlayRepository(db),
		repository.NewPostgresTheatreHallRepository(db),
		repository.NewPostgresPerformanceRepository(db),
		repository.NewPostgresReservationRepository(db),
	)

	return app, nil
}

// NewApp wires an Application from already constructed dependencies. Tests
// use it to inject mocks and containers.
func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient *redis.Client,
	validate *validator.Validate,
	mailSender mailer.Mailer,
	sessionManager *scs.SessionManager,
	userRepo domain.UserRepository,
	tokenRepo domain.TokenRepository,
	actorRepo domain.ActorRepository,
	genreRepo domain.GenreRepository,
	playRepo domain.PlayRepository,
	hallRepo domain.TheatreHallRepository,
	performanceRepo domain.PerformanceRepository,
	reservationRepo domain.ReservationRepository,
) *Application {
	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      validate,
		mailer:         mailSender,
		sessionManager: sessionManager,

		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		actorRepo:       actorRepo,
		genreRepo:       genreRepo,
		playRepo:        playRepo,
		hallRepo:        hallRepo,
		performanceRepo: performanceRepo,
		reservationRepo: reservationRepo,
	}
}

func (app *Application) Close() {
	if app.redis != nil {
		app.redis.Close()
	}
	if app.db != nil {
		app.db.Close()
	}
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
