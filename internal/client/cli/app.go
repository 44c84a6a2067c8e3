package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/cache"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/client"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/config"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// tokenCache is the part of *cache.Cache the CLI uses.
type tokenCache interface {
	Put(ctx context.Context, id registry.TokenID, rec registry.Record, seenAt time.Time) error
	Get(ctx context.Context, id registry.TokenID) (cache.Entry, bool, error)
	Delete(ctx context.Context, id registry.TokenID) error
	List(ctx context.Context) ([]cache.Entry, error)
	Clear(ctx context.Context) error
	Close() error
}

type App struct {
	config *config.Config
	client client.Client
	cache  tokenCache
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	mu       sync.Mutex
	userName string
	mode     Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	tc, err := cache.Open(ctx, c.CacheDSN)
	if err != nil {
		log.Printf("error initializing cache: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewTokenKeeperClient(c.ServerEndpointAddr)
	if err != nil {
		_ = tc.Close()
		return nil, err
	}

	return newApp(c, apiClient, tc, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, tc tokenCache, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		client: cl,
		cache:  tc,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

// withTimeout bounds a single remote call by the configured request timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.client.Close()
		_ = a.cache.Close()
	}()
	a.Root(ctx)
}

// checkOnline pings the server once and records the result.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
