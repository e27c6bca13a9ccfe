package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewy-dev/viewy/internal/errors"
	"github.com/viewy-dev/viewy/pkg/assets"
	"github.com/viewy-dev/viewy/pkg/config"
	"github.com/viewy-dev/viewy/pkg/page"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func stubAssets(t *testing.T) {
	t.Helper()
	prev := compileAssets
	compileAssets = func(cfg *config.Config) assets.Assets {
		css := ":root{--name:\"" + cfg.App.Name + "\"}"
		js := "console.log(1)"
		return assets.Assets{CSS: css, JS: js, CSSETag: assets.ETag(css), JSETag: assets.ETag(js)}
	}
	t.Cleanup(func() { compileAssets = prev })
}

func projectRoot(t *testing.T, toml string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte(toml), 0644))
	return root
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Go version:")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "version", "--log-level=loud")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E403"))
}

func TestRenderModes(t *testing.T) {
	root := projectRoot(t, "[app]\nname = \"Docs\"\n")

	tests := []struct {
		mode     string
		contains []string
		excludes []string
	}{
		{"Complete", []string{"<!doctype html>", "<title>Home · Docs</title>", "tab-container"}, nil},
		{"contentonly", []string{"tab-container"}, []string{"<!doctype html>"}},
		{"LayoutOnly", []string{"<!--" + page.ContentPlaceholder + "-->", "Docs"}, []string{"tab-container"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			out, err := run(t, "render", "--root", root, "--mode", tt.mode)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderInvalidMode(t *testing.T) {
	_, err := run(t, "render", "--mode", "Partial")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E402"))
}

func TestRenderUnknownPath(t *testing.T) {
	root := projectRoot(t, "")
	_, err := run(t, "render", "--root", root, "--path", "/nope")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E403"))
}

func TestRenderDemoPages(t *testing.T) {
	root := projectRoot(t, "")
	for _, route := range demoRoutes {
		out, err := run(t, "render", "--root", root, "--path", route.path, "--mode", "ContentOnly")
		require.NoError(t, err, route.path)
		assert.NotEmpty(t, strings.TrimSpace(out), route.path)
	}
}

func TestAssetsBuild(t *testing.T) {
	stubAssets(t)
	root := projectRoot(t, "[app]\nname = \"Docs\"\n\n[assets]\noutput = \"public\"\n")

	out, err := run(t, "assets", "build", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Assets written to")

	css, err := os.ReadFile(filepath.Join(root, "public", assets.StylesheetName))
	require.NoError(t, err)
	assert.Contains(t, string(css), "Docs")

	m, err := assets.LoadManifest(filepath.Join(root, "public", assets.ManifestName))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
}

func TestAssetsBuildOutputFlag(t *testing.T) {
	stubAssets(t)
	root := projectRoot(t, "")
	out := filepath.Join(t.TempDir(), "dist")

	_, err := run(t, "assets", "build", "--root", root, "--output", out)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, assets.ScriptName))
}

type fakeS3 struct {
	keys []string
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.keys = append(f.keys, *in.Key)
	return &s3.PutObjectOutput{}, nil
}

func stubS3(t *testing.T) *fakeS3 {
	t.Helper()
	fake := &fakeS3{}
	prev := newPutClient
	newPutClient = func(string, string) assets.PutObjectAPI { return fake }
	t.Cleanup(func() { newPutClient = prev })
	return fake
}

func TestAssetsPublish(t *testing.T) {
	stubAssets(t)
	fake := stubS3(t)
	root := projectRoot(t, "[assets]\nbucket = \"site\"\nprefix = \"static\"\n")

	out, err := run(t, "assets", "publish", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Published 5 files")
	assert.Contains(t, fake.keys, "static/app.css")
	assert.Contains(t, fake.keys, "static/"+assets.ManifestName)
}

func TestAssetsPublishWithoutBucket(t *testing.T) {
	stubAssets(t)
	stubS3(t)
	root := projectRoot(t, "")

	_, err := run(t, "assets", "publish", "--root", root)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E304"))
}

func TestServeInvalidPort(t *testing.T) {
	_, err := run(t, "serve", "--port", "70000")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E403"))
}

func TestFormatBytes(t *testing.T) {
	tests := map[int]string{
		512:     "512 B",
		2048:    "2.0 KB",
		1572864: "1.5 MB",
	}
	for in, want := range tests {
		if got := formatBytes(in); got != want {
			t.Errorf("formatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}
