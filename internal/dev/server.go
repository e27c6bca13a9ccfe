package dev

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/viewy-dev/viewy/internal/iconpack"
	"github.com/viewy-dev/viewy/internal/logger"
	"github.com/viewy-dev/viewy/pkg/assets"
	"github.com/viewy-dev/viewy/pkg/config"
	"github.com/viewy-dev/viewy/pkg/server"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// Options configures the development server.
type Options struct {
	// Root is the project root.
	Root string

	// Config is the configuration loaded from Root.
	Config *config.Config

	// Server serves the pages. The reload endpoint is mounted on it.
	Server *server.Server

	// Compile builds the assets for a configuration. Defaults to
	// assets.Compile with AssetOptions.
	Compile func(*config.Config) assets.Assets

	// LoadConfig reloads the configuration. Defaults to config.Load.
	LoadConfig func(root string) (*config.Config, error)

	// GenerateIcons regenerates the icon packs. Defaults to iconpack.Build
	// on Root unless NoIcons is set.
	GenerateIcons func(ctx context.Context) error

	// NoIcons disables icon regeneration.
	NoIcons bool

	// Watch adds paths to the watched configuration files and icon packs.
	Watch []string

	// Debounce is the polling interval (default 100ms).
	Debounce time.Duration

	// Log receives change and rebuild logs. Defaults to logger.Default().
	Log *logger.Logger

	// OnReload is called after browsers were notified.
	OnReload func(clients int)
}

// AssetOptions returns the assets.Compile options of development builds:
// every registered widget plus the reload client.
func AssetOptions() []assets.Option {
	regs := widget.Registrations()
	withReload := make([]widget.Registration, 0, len(regs)+1)
	withReload = append(withReload, regs...)
	withReload = append(withReload, Registration())
	return []assets.Option{assets.WithRegistrations(withReload)}
}

// Server watches a project and keeps a server.Server and its browsers up
// to date.
type Server struct {
	options  Options
	watcher  *Watcher
	reload   *ReloadServer
	log      *logger.Logger
	changeCh chan Change

	mu      sync.Mutex
	config  *config.Config
	running bool
}

// NewServer creates a development server and mounts the reload endpoint on
// options.Server.
func NewServer(options Options) *Server {
	if options.Log == nil {
		options.Log = logger.Default()
	}
	if options.Config == nil {
		options.Config = config.Default()
	}
	if options.LoadConfig == nil {
		options.LoadConfig = config.Load
	}
	log := options.Log.WithField("component", "dev")
	if options.Compile == nil {
		options.Compile = func(cfg *config.Config) assets.Assets {
			return assets.Compile(cfg, append(AssetOptions(), assets.WithLogger(log))...)
		}
	}
	if options.GenerateIcons == nil && !options.NoIcons {
		root := options.Root
		options.GenerateIcons = func(ctx context.Context) error {
			_, err := iconpack.Build(ctx, iconpack.Options{Root: root, Log: log})
			return err
		}
	}

	packs, err := iconpack.LoadPacks(options.Root)
	if err != nil {
		log.Warn(err, "icon packs are not watched")
	}

	s := &Server{
		options: options,
		watcher: NewWatcher(WatcherConfig{
			Paths:    CollectWatchPaths(options.Root, packs, options.Watch...),
			Debounce: options.Debounce,
		}),
		reload: NewReloadServer(log),
		log:    log,
		config: options.Config,
	}
	if options.Server != nil {
		options.Server.Handle(ReloadPath, s.reload)
	}
	return s
}

// Config returns the current configuration. It changes when a
// configuration file is edited.
func (s *Server) Config() *config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// Reload returns the reload server.
func (s *Server) Reload() *ReloadServer {
	return s.reload
}

// Start watches until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.changeCh = make(chan Change, 64)
	s.mu.Unlock()

	s.watcher.OnChange(func(change Change) {
		select {
		case s.changeCh <- change:
		default:
		}
	})

	go s.processChanges(ctx)
	s.log.WithField("paths", strings.Join(s.watcher.Paths(), ", ")).Info("watching for changes")

	err := s.watcher.Start(ctx)
	s.Stop()
	if err == context.Canceled {
		return nil
	}
	return err
}

// Stop stops watching and disconnects browsers.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	s.watcher.Stop()
	s.reload.Close()
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(ctx, changes)
		}
	}
}

// handleChanges handles a batch of file changes.
func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	if len(changes) == 0 {
		return
	}

	hasConfig := false
	hasIcon := false
	hasGo := false

	for _, change := range changes {
		s.log.WithFields(map[string]any{"path": change.Path, "type": change.Type.String()}).Info("changed")
		switch change.Type {
		case ChangeConfig:
			hasConfig = true
		case ChangeIcon:
			hasIcon = true
		case ChangeGo:
			hasGo = true
		}
	}

	if hasGo {
		s.log.Info("Go sources changed, restart the server to pick them up")
	}

	if hasIcon && s.options.GenerateIcons != nil {
		if err := s.options.GenerateIcons(ctx); err != nil {
			s.fail(err, "icon generation failed")
			return
		}
		s.log.Info("icons regenerated, restart the server to use new constants")
	}

	if hasConfig {
		if !s.rebuild() {
			return
		}
	}

	if hasIcon || hasConfig {
		s.reload.ClearError()
		s.reload.NotifyReload()
		s.log.WithFields(map[string]any{"clients": s.reload.ClientCount()}).Info("reloaded browsers")
		if s.options.OnReload != nil {
			s.options.OnReload(s.reload.ClientCount())
		}
	}
}

// rebuild reloads the configuration and swaps the assets of the server.
func (s *Server) rebuild() bool {
	cfg, err := s.options.LoadConfig(s.options.Root)
	if err != nil {
		s.fail(err, "configuration reload failed")
		return false
	}

	start := time.Now()
	a := s.options.Compile(cfg)
	if s.options.Server != nil {
		s.options.Server.SetAssets(a)
	}

	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()

	s.log.WithFields(map[string]any{
		"duration": time.Since(start).Round(time.Millisecond).String(),
		"css":      len(a.CSS),
		"js":       len(a.JS),
	}).Info("assets rebuilt")
	return true
}

func (s *Server) fail(err error, msg string) {
	s.log.Error(err, msg)
	s.reload.NotifyError(err.Error())
}
