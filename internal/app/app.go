package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agei/internal/adapter/api"
	"github.com/heartmarshall/agei/internal/adapter/localstore"
	"github.com/heartmarshall/agei/internal/config"
	"github.com/heartmarshall/agei/internal/service/auth"
	"github.com/heartmarshall/agei/internal/service/emotional"
	"github.com/heartmarshall/agei/internal/service/tasks"
	"github.com/heartmarshall/agei/internal/service/training"
	"github.com/heartmarshall/agei/internal/session"
	"github.com/heartmarshall/agei/internal/workspace"
)

// App is the wired client: one credential, one HTTP gateway, the resource
// services on top of it, and the session and workspace stores.
type App struct {
	Config     config.Config
	Log        *slog.Logger
	Credential *localstore.Credential
	Client     *api.Client

	Auth      *auth.Service
	Tasks     *tasks.Service
	Emotional *emotional.Service
	Training  *training.Service

	Session   *session.Store
	Workspace *workspace.Workspace
}

type options struct {
	storage    localstore.Storage
	httpClient *http.Client
}

// Option customises New.
type Option func(*options)

// WithStorage replaces the file-backed storage, e.g. with a MemoryStore.
func WithStorage(s localstore.Storage) Option {
	return func(o *options) { o.storage = s }
}

// WithHTTPClient replaces the *http.Client used by the API gateway.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// New wires every component from cfg. Nothing touches the network or the
// disk until a component is used.
func New(cfg config.Config, logger *slog.Logger, opts ...Option) *App {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.storage == nil {
		o.storage = localstore.NewFileStore(cfg.Storage.Path, logger)
	}

	ua := cfg.API.UserAgent
	if ua == "" {
		ua = UserAgent()
	}

	credential := localstore.NewCredential(o.storage, cfg.Storage.CredentialKey)
	client := api.NewClient(cfg.API.BaseURL, credential, logger,
		api.WithUserAgent(ua),
		api.WithHTTPClient(o.httpClient),
	)

	authSvc := auth.NewService(logger, client, credential)
	taskSvc := tasks.NewService(logger, client)
	emotionalSvc := emotional.NewService(logger, client)
	trainingSvc := training.NewService(logger, client)

	return &App{
		Config:     cfg,
		Log:        logger,
		Credential: credential,
		Client:     client,
		Auth:       authSvc,
		Tasks:      taskSvc,
		Emotional:  emotionalSvc,
		Training:   trainingSvc,
		Session:    session.New(logger, authSvc, credential),
		Workspace:  workspace.New(logger, taskSvc, emotionalSvc, trainingSvc),
	}
}

// Bootstrap loads configuration, initializes the logger on logOut, wires the
// App, and restores the session from storage.
func Bootstrap(ctx context.Context, logOut io.Writer, opts ...Option) (*App, session.RestoreStatus, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, session.RestoreNone, err
	}

	logger := NewLogger(logOut, cfg.Log)
	logger.Debug("starting client",
		slog.String("version", BuildVersion()),
		slog.String("base_url", cfg.API.BaseURL),
		slog.String("storage", cfg.Storage.Path),
	)

	a := New(*cfg, logger, opts...)
	status := a.Session.Restore(ctx)
	return a, status, nil
}
