package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/viewy-dev/viewy/internal/dev"
	"github.com/viewy-dev/viewy/internal/errors"
	"github.com/viewy-dev/viewy/internal/logger"
	"github.com/viewy-dev/viewy/pkg/assets"
	"github.com/viewy-dev/viewy/pkg/config"
	"github.com/viewy-dev/viewy/pkg/server"
)

type serveOptions struct {
	root     string
	host     string
	port     int
	reload   bool
	metrics  string
	tracing  bool
	noIcons  bool
	watch    []string
	prodMode bool
}

func serveCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the widget demo with live reload",
		Long: `Serve a demo site built from the catalog widgets.

In development mode (the default) assets are not cached, and editing
viewy.toml recompiles the assets and reloads connected browsers.
Editing an SVG of a local icon pack regenerates the icon code.

Examples:
  viewy serve
  viewy serve --port=8080 --metrics=/metrics
  viewy serve --prod`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.port < 0 || opts.port > 65535 {
				return errors.New("E403").
					WithField("flag", "port").
					WithField("value", strconv.Itoa(opts.port)).
					WithSuggestion("Use a port between 0 and 65535")
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return runServe(ctx, cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "Project root (default: nearest directory with viewy.toml)")
	cmd.Flags().StringVarP(&opts.host, "host", "H", "", "Host to bind to (default from viewy.toml)")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "Port to run on (default from viewy.toml)")
	cmd.Flags().BoolVar(&opts.reload, "reload", true, "Reload browsers on changes")
	cmd.Flags().StringVar(&opts.metrics, "metrics", "", "Expose Prometheus metrics at this path")
	cmd.Flags().BoolVar(&opts.tracing, "tracing", false, "Trace requests with OpenTelemetry")
	cmd.Flags().BoolVar(&opts.noIcons, "no-icons", false, "Do not regenerate icon packs on SVG changes")
	cmd.Flags().StringSliceVar(&opts.watch, "watch", nil, "Additional paths to watch")
	cmd.Flags().BoolVar(&opts.prodMode, "prod", false, "Cache assets and disable live reload")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, opts serveOptions) error {
	out := cmd.OutOrStdout()

	cfg, root, err := loadConfig(opts.root)
	if err != nil {
		return err
	}
	if opts.host != "" {
		cfg.Server.Host = opts.host
	}
	if opts.port != 0 {
		cfg.Server.Port = opts.port
	}
	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	devMode := !opts.prodMode
	live := devMode && opts.reload

	var a assets.Assets
	if live {
		a = assets.Compile(cfg, append(dev.AssetOptions(), assets.WithLogger(logger.Default()))...)
	} else {
		a = compileAssets(cfg)
	}

	serverOpts := []server.Option{
		server.WithAddr(addr),
		server.WithDevMode(devMode),
		server.WithMetrics(opts.metrics),
	}
	if opts.tracing {
		serverOpts = append(serverOpts, server.WithTracing(nil))
	}
	srv := server.New(a, serverOpts...)

	current := func() *config.Config { return cfg }
	if live {
		d := dev.NewServer(dev.Options{
			Root:    root,
			Config:  cfg,
			Server:  srv,
			NoIcons: opts.noIcons,
			Watch:   opts.watch,
			OnReload: func(clients int) {
				success(out, "Reloaded %d browsers", clients)
			},
		})
		current = d.Config
		go func() {
			if err := d.Start(ctx); err != nil {
				logger.Default().Error(err, "watcher stopped")
			}
		}()
	}

	for _, route := range demoRoutes {
		srv.Page(route.path, demoPage(current, route))
	}

	fmt.Fprint(out, bannerStyle.Render(banner))
	fmt.Fprintln(out)
	success(out, "Serving %s at http://%s", cfg.App.Name, addr)
	if live {
		info(out, "%s", dimStyle.Render("live reload on, watching "+root))
	}
	if opts.metrics != "" {
		info(out, "%s", dimStyle.Render("metrics at "+opts.metrics))
	}
	fmt.Fprintln(out)

	return srv.ListenAndServe(ctx)
}
