package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/viewy-dev/viewy/internal/iconpack"
)

func iconsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Manage icon packs",
	}
	cmd.AddCommand(iconsGenCmd())
	return cmd
}

func iconsGenCmd() *cobra.Command {
	var opts iconpack.Options

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go code for the configured icon packs",
		Long: `Generate Go code for the icon packs declared in viewy.toml.

Each [icon-packs.<name>] entry is resolved, by shallow clone for git
packs or from the project for local ones, and every SVG becomes a
constant of a generated type. Packs that cannot be resolved are
skipped with a warning.

Examples:
  viewy icons gen
  viewy icons gen --output=ui/icons/icons_gen.go --package=icons`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return runIconsGen(ctx, cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Root, "root", "", "Project root (default: nearest directory with viewy.toml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Generated file (default: <root>/icons/icons_gen.go)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "Package name (default: output directory name)")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Directory receiving cloned packs")

	return cmd
}

func runIconsGen(ctx context.Context, cmd *cobra.Command, opts iconpack.Options) error {
	out := cmd.OutOrStdout()

	result, err := iconpack.Build(ctx, opts)
	if err != nil {
		return err
	}

	for _, p := range result.Packs {
		info(out, "%s %s", p.Name, dimStyle.Render("("+pluralIcons(len(p.Icons))+")"))
	}
	for _, name := range result.Skipped {
		warn(out, "skipped %s", name)
	}
	success(out, "Generated %s", result.Output)
	return nil
}

func pluralIcons(n int) string {
	if n == 1 {
		return "1 icon"
	}
	return fmt.Sprintf("%d icons", n)
}
