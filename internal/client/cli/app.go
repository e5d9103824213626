package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/sharefile/internal/client/api"
	"github.com/dmitrijs2005/sharefile/internal/client/auth"
	"github.com/dmitrijs2005/sharefile/internal/client/config"
	"github.com/dmitrijs2005/sharefile/internal/client/history"
	"github.com/dmitrijs2005/sharefile/internal/client/transfer"
	"github.com/dmitrijs2005/sharefile/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single connectivity probe.
const pingTimeout = 3 * time.Second

type App struct {
	config  *config.Config
	client  api.Client
	orch    *transfer.Orchestrator
	history history.Repository
	jar     http.CookieJar
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	// current selection
	files         []transfer.File
	recipients    transfer.RecipientList
	message       string
	expiresInDays int

	identity string

	modeMu sync.Mutex
	mode   Mode
}

// NewApp builds the client from c. The returned function releases the
// history database.
func NewApp(ctx context.Context, c *config.Config) (*App, func() error, error) {
	logger, err := logging.New(c.LogLevel, c.LogFormat, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	httpClient, err := auth.NewClient(c.ServerURL, c.SessionCookieName, c.SessionToken, c.HTTPTimeout)
	if err != nil {
		return nil, nil, err
	}

	// uploads go straight to blob storage: no session cookies, no timeout
	// beyond the context, since files may be large
	apiClient, err := api.NewHTTPClient(c.ServerURL,
		api.WithHTTPClient(httpClient),
		api.WithBlobClient(&http.Client{}),
	)
	if err != nil {
		return nil, nil, err
	}

	ck, err := transfer.NewChecksummer(c.ChecksumMode)
	if err != nil {
		return nil, nil, err
	}

	orch := transfer.NewOrchestrator(apiClient,
		transfer.WithChecksummer(ck),
		transfer.WithLogger(logger),
		transfer.WithMaxFileSize(c.MaxFileSize),
		transfer.WithConcurrency(c.Concurrency),
	)

	var repo history.Repository
	closeFn := func() error { return nil }
	if c.HistoryDSN != "" {
		r, closeDB, err := history.Open(ctx, c.HistoryDSN)
		if err != nil {
			logger.Error(ctx, "error initializing history database", "dsn", c.HistoryDSN, "error", err)
			return nil, nil, err
		}
		repo, closeFn = r, closeDB
	}

	a := newApp(c, apiClient, orch, repo, logger, bufio.NewReader(os.Stdin), os.Stdout)
	a.jar = httpClient.Jar
	if c.SessionToken != "" {
		if claims, err := auth.ParseClaims(c.SessionToken); err == nil {
			a.identity = claims.Identity()
		}
	}

	return a, closeFn, nil
}

func newApp(c *config.Config, client api.Client, orch *transfer.Orchestrator, repo history.Repository,
	logger logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		config:        c,
		client:        client,
		orch:          orch,
		history:       repo,
		logger:        logger,
		reader:        reader,
		out:           out,
		message:       c.Message,
		expiresInDays: c.ExpiresInDays,
	}
	orch.Session().OnChange(a.printProgress)
	return a
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

// checkOnline pings the server once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.logger.Debug(ctx, "ping failed", "error", err)
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
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

func (a *App) printProgress(s transfer.Snapshot) {
	if s.Uploading {
		fmt.Fprintf(a.out, "\rUploading... %3d%%", s.Progress)
		return
	}
	fmt.Fprintln(a.out)
}
