package icons

import (
	"strings"
	"sync"

	"github.com/viewy-dev/viewy/pkg/node"
)

const (
	// IDAttr is the attribute carrying the symbol id on icon instances.
	IDAttr = "data-v-icon-id"

	// ViewBox is the coordinate system shared by every icon.
	ViewBox = "0 0 24 24"

	// SymbolPrefix starts every symbol id.
	SymbolPrefix = "v-icon-"
)

// IconPack is implemented by generated icon enums.
type IconPack interface {
	// Path returns the inner SVG markup of the icon.
	Path() string

	// SymbolID returns the sprite symbol id, v-icon-<pack>-<icon>.
	SymbolID() string

	// Configure sets the fill and stroke defaults of the pack on an icon
	// instance.
	Configure(n *node.Node)
}

// ConfigureStroked sets the defaults of outline packs.
func ConfigureStroked(n *node.Node) {
	n.SetAttr("fill", "none").SetAttr("stroke", "currentColor")
}

// ConfigureFilled sets the defaults of solid packs.
func ConfigureFilled(n *node.Node) {
	n.SetAttr("fill", "currentColor").SetAttr("stroke", "none")
}

// Symbol builds the sprite symbol for an icon.
func Symbol(id, path string) string {
	var b strings.Builder
	b.Grow(len(id) + len(path) + 48)
	b.WriteString(`<symbol id="`)
	b.WriteString(id)
	b.WriteString(`" viewBox="`)
	b.WriteString(ViewBox)
	b.WriteString(`">`)
	b.WriteString(path)
	b.WriteString(`</symbol>`)
	return b.String()
}

// SymbolLookup returns the complete <symbol> markup for an id.
type SymbolLookup func(id string) (string, bool)

var (
	lookupsMu sync.RWMutex
	lookups   []SymbolLookup
)

// RegisterLookup adds a symbol table. Generated packages call it from init.
func RegisterLookup(l SymbolLookup) {
	if l == nil {
		return
	}
	lookupsMu.Lock()
	lookups = append(lookups, l)
	lookupsMu.Unlock()
}

// SymbolByID returns the symbol markup for id from the registered tables,
// first match wins.
func SymbolByID(id string) (string, bool) {
	lookupsMu.RLock()
	defer lookupsMu.RUnlock()

	for _, l := range lookups {
		if s, ok := l(id); ok {
			return s, true
		}
	}
	return "", false
}

// Sprite returns a hidden <svg> holding one <symbol> per distinct known id,
// in the order given. Unknown ids are skipped. The result is empty when no
// id resolves.
func Sprite(ids []string) string {
	return SpriteFrom(SymbolByID, ids)
}

// SpriteFrom is Sprite with an explicit lookup.
func SpriteFrom(lookup SymbolLookup, ids []string) string {
	seen := make(map[string]struct{}, len(ids))
	var symbols strings.Builder
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if s, ok := lookup(id); ok {
			symbols.WriteString(s)
		}
	}
	if symbols.Len() == 0 {
		return ""
	}
	return `<svg style="display:none" xmlns="http://www.w3.org/2000/svg"><defs>` +
		symbols.String() +
		`</defs></svg>`
}
