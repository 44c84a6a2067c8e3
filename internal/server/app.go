// Package server wires the tokenkeeper server: it opens the database, runs
// migrations, builds the services and the event publisher, and serves gRPC
// until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/config"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/events"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/tokenkeeper/internal/server/grpc"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	publisher    events.Publisher
	userService  *services.UserService
	tokenService *services.TokenService
}

// NewApp connects to the database, applies migrations and builds the
// services. The NATS publisher is added only when a URL is configured.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	publisher, err := newPublisher(ctx, c, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		publisher:    publisher,
		userService:  services.NewUserService(db, rm, c, logger),
		tokenService: services.NewTokenService(db, rm, publisher, logger),
	}, nil
}

func newPublisher(ctx context.Context, c *config.Config, logger logging.Logger) (events.Publisher, error) {
	fan := events.Fanout{events.NewLogPublisher(logger)}
	if c.NATSURL == "" {
		return fan, nil
	}

	np, err := events.DialNATS(ctx, events.NATSConfig{
		URL:            c.NATSURL,
		Stream:         c.NATSStream,
		SubjectPrefix:  c.NATSSubjectPrefix,
		ConnectionName: "tokenkeeper-server",
		MaxReconnects:  -1,
		ReconnectWait:  2 * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("nats init error: %w", err)
	}
	return append(fan, np), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.tokenService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal is received,
// then closes the publisher and the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.publisher.Close()
	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}
	app.logger.Info(context.Background(), "Stopped")
}
