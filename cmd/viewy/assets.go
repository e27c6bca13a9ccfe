package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/viewy-dev/viewy/internal/logger"
	"github.com/viewy-dev/viewy/pkg/assets"
	"github.com/viewy-dev/viewy/pkg/config"
)

// compileAssets builds the assets of a configuration.
var compileAssets = func(cfg *config.Config) assets.Assets {
	return assets.Compile(cfg, assets.WithLogger(logger.Default()))
}

// newPutClient creates the client uploading published assets.
var newPutClient = func(region, endpoint string) assets.PutObjectAPI {
	return assets.NewS3Client(region, endpoint)
}

func assetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Compile and publish app.css and app.js",
	}
	cmd.AddCommand(assetsBuildCmd(), assetsPublishCmd())
	return cmd
}

// loadConfig loads the configuration of root, or of the nearest project
// above the working directory when root is empty.
func loadConfig(root string) (*config.Config, string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		root, _ = config.FindRoot(wd)
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, "", err
	}
	return cfg, root, nil
}

func assetsBuildCmd() *cobra.Command {
	var root, output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the assets into the output directory",
		Long: `Compile the stylesheet and script of every registered widget.

The output directory receives app.css, app.js, their fingerprinted
copies and manifest.json mapping the plain names to the copies.

Examples:
  viewy assets build
  viewy assets build --output=public`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, root, err := loadConfig(root)
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.Assets.Output
			}
			if !filepath.IsAbs(output) {
				output = filepath.Join(root, output)
			}
			return runAssetsBuild(cmd, cfg, output)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Project root (default: nearest directory with viewy.toml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from viewy.toml)")

	return cmd
}

func runAssetsBuild(cmd *cobra.Command, cfg *config.Config, output string) error {
	out := cmd.OutOrStdout()

	a := compileAssets(cfg)
	m, err := a.Write(output)
	if err != nil {
		return err
	}

	success(out, "Assets written to %s", output)
	info(out, "%s  %s", m.Resolve(assets.StylesheetName), dimStyle.Render(formatBytes(len(a.CSS))))
	info(out, "%s  %s", m.Resolve(assets.ScriptName), dimStyle.Render(formatBytes(len(a.JS))))
	return nil
}

func assetsPublishCmd() *cobra.Command {
	var root, bucket, prefix, region, endpoint string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the assets to an S3 bucket",
		Long: `Compile the assets and upload them with their manifest.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN. Fingerprinted files are uploaded as immutable.

Examples:
  viewy assets publish --bucket=my-site --prefix=static
  viewy assets publish --endpoint=http://localhost:9000 --bucket=dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(root)
			if err != nil {
				return err
			}
			if bucket == "" {
				bucket = cfg.Assets.Bucket
			}
			if prefix == "" {
				prefix = cfg.Assets.Prefix
			}
			if region == "" {
				region = cfg.Assets.Region
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return runAssetsPublish(ctx, cmd, cfg, bucket, prefix, region, endpoint)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Project root (default: nearest directory with viewy.toml)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Bucket name (default from viewy.toml)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from viewy.toml)")
	cmd.Flags().StringVar(&region, "region", "", "Bucket region (default from viewy.toml)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3 compatible endpoint")

	return cmd
}

func runAssetsPublish(ctx context.Context, cmd *cobra.Command, cfg *config.Config, bucket, prefix, region, endpoint string) error {
	out := cmd.OutOrStdout()

	a := compileAssets(cfg)
	pub := assets.NewPublisher(newPutClient(region, endpoint), bucket, prefix).WithLogger(logger.Default())
	keys, err := pub.Publish(ctx, a)
	if err != nil {
		return err
	}

	for _, key := range keys {
		info(out, "s3://%s/%s", bucket, key)
	}
	success(out, "Published %d files", len(keys))
	return nil
}
