package integration_test

import (
	"log/slog"
	"os"

	"github.com/ekinsoyer/theatre-reservation-system/internal/app"
	"github.com/ekinsoyer/theatre-reservation-system/internal/mailer"
	"github.com/ekinsoyer/theatre-reservation-system/internal/repository"
	appvalidator "github.com/ekinsoyer/theatre-reservation-system/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mockMailer := &mailer.MockMailer{}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mockMailer,
		sessionManager,
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresTokenRepository(db),
		repository.NewPostgresActorRepository(db),
		repository.NewPostgresGenreRepository(db),
		repository.NewPostgresPlayRepository(db),
		repository.NewPostgresTheatreHallRepository(db),
		repository.NewPostgresPerformanceRepository(db),
		repository.NewPostgresReservationRepository(db),
	)

	return &TestApp{
		App:    application,
		DB:     db,
		Mailer: mockMailer,
	}, nil
}
