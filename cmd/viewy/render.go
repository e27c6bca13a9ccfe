package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viewy-dev/viewy/internal/errors"
	"github.com/viewy-dev/viewy/pkg/config"
	"github.com/viewy-dev/viewy/pkg/page"
)

func renderCmd() *cobra.Command {
	var root, mode, path string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a demo page as HTML",
		Long: `Compile one page of the widget demo and print it.

--mode selects what is rendered:
  Complete     the document with layout and content
  ContentOnly  the body of the content
  LayoutOnly   the document with a placeholder for the content

Examples:
  viewy render
  viewy render --mode=ContentOnly --path=/demo/forms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := page.LookupRenderMode(mode)
			if err != nil {
				return err
			}
			cfg, _, err := loadConfig(root)
			if err != nil {
				return err
			}
			return runRender(cmd, cfg, m, path)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Project root (default: nearest directory with viewy.toml)")
	cmd.Flags().StringVarP(&mode, "mode", "m", page.Complete.String(), "Render mode (Complete, ContentOnly, LayoutOnly)")
	cmd.Flags().StringVar(&path, "path", "/", "Demo page to render")

	return cmd
}

func runRender(cmd *cobra.Command, cfg *config.Config, mode page.RenderMode, path string) error {
	for _, route := range demoRoutes {
		if route.path != path {
			continue
		}
		build := demoPage(func() *config.Config { return cfg }, route)
		html := build(nil).CompileContext(cmd.Context(), mode)
		fmt.Fprintln(cmd.OutOrStdout(), html)
		return nil
	}

	paths := make([]string, 0, len(demoRoutes))
	for _, route := range demoRoutes {
		paths = append(paths, route.path)
	}
	return errors.New("E403").
		WithField("flag", "path").
		WithField("value", path).
		WithSuggestion(fmt.Sprintf("Use one of %v", paths))
}
