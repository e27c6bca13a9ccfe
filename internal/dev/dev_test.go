package dev

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/viewy-dev/viewy/internal/iconpack"
	"github.com/viewy-dev/viewy/internal/logger"
	"github.com/viewy-dev/viewy/pkg/assets"
	"github.com/viewy-dev/viewy/pkg/config"
	"github.com/viewy-dev/viewy/pkg/server"
)

func TestWatcher_Basic(t *testing.T) {
	tmpDir := t.TempDir()

	// Create initial file
	testFile := filepath.Join(tmpDir, "viewy.toml")
	if err := os.WriteFile(testFile, []byte("[app]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	// Wait for initial scan
	time.Sleep(100 * time.Millisecond)

	// Modify file with a later timestamp
	if err := os.WriteFile(testFile, []byte("[app]\nname = \"Docs\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(testFile, later, later); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeConfig {
			t.Errorf("Expected config change, got %v", change.Type)
		}
		if change.Path != testFile {
			t.Errorf("Expected path %q, got %q", testFile, change.Path)
		}
	case <-time.After(time.Second):
		t.Error("Timeout waiting for change")
	}

	watcher.Stop()
}

func TestWatcher_NewFile(t *testing.T) {
	tmpDir := t.TempDir()

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	time.Sleep(100 * time.Millisecond)

	newFile := filepath.Join(tmpDir, "star.svg")
	if err := os.WriteFile(newFile, []byte("<svg></svg>"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeIcon {
			t.Errorf("Expected icon change, got %v", change.Type)
		}
	case <-time.After(time.Second):
		t.Error("Timeout waiting for change")
	}
}

func TestWatcher_Ignore(t *testing.T) {
	w := NewWatcher(WatcherConfig{Ignore: []string{".git", "*.swp", "build/out"}})

	tests := map[string]bool{
		".git/config":      true,
		"icons/a.svg.swp":  true,
		"build/out/x.svg":  true,
		"icons/a.svg":      false,
		"build/x.svg":      false,
		"viewy.toml":       false,
		"gitignored/a.svg": false,
	}
	for path, want := range tests {
		if got := w.shouldIgnore(path); got != want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcher_IgnoreOnlyBelowWatchedPath(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tmp", "site")
	icons := filepath.Join(root, "icons")
	if err := os.MkdirAll(filepath.Join(icons, "tmp"), 0755); err != nil {
		t.Fatal(err)
	}
	files := []string{
		filepath.Join(root, "Viewy.toml"),
		filepath.Join(icons, "star.svg"),
		filepath.Join(icons, "tmp", "draft.svg"),
	}
	for _, f := range files {
		if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	w := NewWatcher(WatcherConfig{Paths: []string{files[0], icons}})
	stamps := w.scan()

	for _, f := range files[:2] {
		if _, ok := stamps[f]; !ok {
			t.Errorf("scan() missed %s", f)
		}
	}
	if _, ok := stamps[files[2]]; ok {
		t.Errorf("scan() included %s below an ignored directory", files[2])
	}
	if w.shouldIgnore(relativeTo(root, files[0])) {
		t.Errorf("config file under a tmp ancestor is ignored")
	}
}

func TestWatcher_ReportsChangesUnderTmpAncestor(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tmp", "site")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}
	cfgFile := filepath.Join(root, "Viewy.toml")
	if err := os.WriteFile(cfgFile, []byte("[app]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(WatcherConfig{Paths: []string{cfgFile}, Debounce: 20 * time.Millisecond})
	changes := make(chan Change, 10)
	w.OnChange(func(c Change) { changes <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	time.Sleep(100 * time.Millisecond)

	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(cfgFile, later, later); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Path != cfgFile || change.Type != ChangeConfig {
			t.Errorf("got %+v, want config change of %s", change, cfgFile)
		}
	case <-time.After(time.Second):
		t.Error("Timeout waiting for change")
	}
}

func TestWatcher_ReportsRemovedFile(t *testing.T) {
	dir := t.TempDir()
	icon := filepath.Join(dir, "star.svg")
	if err := os.WriteFile(icon, []byte("<svg></svg>"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(WatcherConfig{Paths: []string{dir}})
	var got []Change
	w.OnChange(func(c Change) { got = append(got, c) })
	w.stamps = w.scan()

	if err := os.Remove(icon); err != nil {
		t.Fatal(err)
	}
	w.poll()

	if len(got) != 1 || got[0].Path != icon || got[0].Type != ChangeIcon {
		t.Errorf("poll() reported %+v, want removal of %s", got, icon)
	}
}

func TestClassifyChange(t *testing.T) {
	tests := map[string]ChangeType{
		"/p/Viewy.toml":       ChangeConfig,
		"/p/viewy.toml":       ChangeConfig,
		"/p/viewy-icons.toml": ChangeConfig,
		"/p/icons/star.SVG":   ChangeIcon,
		"/p/main.go":          ChangeGo,
		"/p/README.md":        ChangeOther,
	}
	for path, want := range tests {
		if got := classifyChange(path); got != want {
			t.Errorf("classifyChange(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestCollectWatchPaths(t *testing.T) {
	packs := []iconpack.Pack{
		{Name: "local", Path: "assets/icons"},
		{Name: "remote", Git: "https://example.com/icons.git", Path: "svg"},
		{Name: "abs", Path: "/shared/icons"},
	}
	got := CollectWatchPaths("/p", packs, "assets/icons", "extra")
	want := []string{
		"/p/Viewy.toml",
		"/p/viewy.toml",
		"/p/viewy-icons.toml",
		"/p/assets/icons",
		"/shared/icons",
		"/p/extra",
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

// =============================================================================
// Reload server
// =============================================================================

func dialReload(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http")+ReloadPath, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, r *ReloadServer, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for r.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount() = %d, want %d", r.ClientCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	return msg
}

func TestReloadServerBroadcast(t *testing.T) {
	reload := NewReloadServer(logger.Nop())
	srv := server.New(assets.Assets{}, server.WithLogger(logger.Nop()))
	srv.Handle(ReloadPath, reload)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	a := dialReload(t, ts.URL)
	b := dialReload(t, ts.URL)
	waitForClients(t, reload, 2)

	reload.NotifyCSS("/p/viewy.toml")
	for _, conn := range []*websocket.Conn{a, b} {
		msg := readMessage(t, conn)
		if msg.Type != ReloadTypeCSS || msg.File != "/p/viewy.toml" {
			t.Errorf("got %+v", msg)
		}
	}

	reload.NotifyError("boom")
	if msg := readMessage(t, a); msg.Type != ReloadTypeError || msg.Error != "boom" {
		t.Errorf("got %+v", msg)
	}

	a.Close()
	waitForClients(t, reload, 1)

	reload.Close()
	if got := reload.ClientCount(); got != 0 {
		t.Errorf("ClientCount() after Close = %d, want 0", got)
	}
}

func TestRegistrationCarriesClient(t *testing.T) {
	reg := Registration()
	if reg.Script != ClientScript || reg.Style != "" {
		t.Errorf("unexpected registration %+v", reg.Name)
	}
	if !strings.Contains(ClientScript, ReloadPath) {
		t.Error("client script should connect to the reload path")
	}

	opts := AssetOptions()
	if len(opts) != 1 {
		t.Fatalf("len(AssetOptions()) = %d, want 1", len(opts))
	}
}

// =============================================================================
// Development server
// =============================================================================

func TestHandleConfigChangeRebuildsAssets(t *testing.T) {
	srv := server.New(assets.Assets{CSS: "old"}, server.WithLogger(logger.Nop()))
	reloaded := 0

	cfg := config.Default()
	cfg.App.Name = "Docs"
	d := NewServer(Options{
		Root:       t.TempDir(),
		Server:     srv,
		NoIcons:    true,
		Log:        logger.Nop(),
		LoadConfig: func(string) (*config.Config, error) { return cfg, nil },
		Compile: func(c *config.Config) assets.Assets {
			return assets.Assets{CSS: c.App.Name}
		},
		OnReload: func(int) { reloaded++ },
	})

	d.handleChanges(context.Background(), []Change{{Path: "viewy.toml", Type: ChangeConfig}})

	if got := srv.Assets().CSS; got != "Docs" {
		t.Errorf("served CSS = %q, want %q", got, "Docs")
	}
	if d.Config() != cfg {
		t.Error("Config() should return the reloaded configuration")
	}
	if reloaded != 1 {
		t.Errorf("reloaded %d times, want 1", reloaded)
	}
}

func TestHandleConfigErrorKeepsAssets(t *testing.T) {
	srv := server.New(assets.Assets{CSS: "old"}, server.WithLogger(logger.Nop()))
	d := NewServer(Options{
		Root:       t.TempDir(),
		Server:     srv,
		NoIcons:    true,
		Log:        logger.Nop(),
		LoadConfig: func(string) (*config.Config, error) { return nil, errors.New("bad toml") },
		OnReload:   func(int) { t.Error("browsers should not reload on failure") },
	})

	d.handleChanges(context.Background(), []Change{{Path: "viewy.toml", Type: ChangeConfig}})

	if got := srv.Assets().CSS; got != "old" {
		t.Errorf("served CSS = %q, want %q", got, "old")
	}
}

func TestHandleIconChangeRegenerates(t *testing.T) {
	generated := 0
	reloaded := 0
	d := NewServer(Options{
		Root:          t.TempDir(),
		Log:           logger.Nop(),
		GenerateIcons: func(context.Context) error { generated++; return nil },
		OnReload:      func(int) { reloaded++ },
	})

	d.handleChanges(context.Background(), []Change{
		{Path: "icons/a.svg", Type: ChangeIcon},
		{Path: "main.go", Type: ChangeGo},
	})

	if generated != 1 || reloaded != 1 {
		t.Errorf("generated = %d, reloaded = %d, want 1 and 1", generated, reloaded)
	}

	d.handleChanges(context.Background(), []Change{{Path: "main.go", Type: ChangeGo}})
	if generated != 1 || reloaded != 1 {
		t.Errorf("Go changes alone should not regenerate or reload")
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	d := NewServer(Options{Root: t.TempDir(), NoIcons: true, Log: logger.Nop(), Debounce: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return")
	}
}
