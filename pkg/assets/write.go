package assets

import (
	"os"
	"path/filepath"

	"github.com/viewy-dev/viewy/internal/errors"
)

// ManifestName is the manifest file written next to the assets.
const ManifestName = "manifest.json"

// Files returns the files of a deployment: app.css and app.js followed by
// their fingerprinted copies.
func (a Assets) Files() []File {
	css, _ := a.Lookup(StylesheetName)
	js, _ := a.Lookup(ScriptName)

	hashedCSS := css
	hashedCSS.Name = Fingerprint(css.Name, css.Content)
	hashedJS := js
	hashedJS.Name = Fingerprint(js.Name, js.Content)

	return []File{css, js, hashedCSS, hashedJS}
}

// Manifest returns the manifest mapping app.css and app.js to their
// fingerprinted names.
func (a Assets) Manifest() *Manifest {
	m := NewManifest()
	m.Set(StylesheetName, Fingerprint(StylesheetName, a.CSS))
	m.Set(ScriptName, Fingerprint(ScriptName, a.JS))
	return m
}

// Write stores the files and the manifest in dir, creating it if needed.
func (a Assets) Write(dir string) (*Manifest, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E303").WithField("path", dir).Wrap(err)
	}

	for _, f := range a.Files() {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return nil, errors.New("E303").WithField("path", path).Wrap(err)
		}
	}

	m := a.Manifest()
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, errors.New("E303").Wrap(err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return nil, errors.New("E303").WithField("path", path).Wrap(err)
	}
	return m, nil
}
