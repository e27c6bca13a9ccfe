package assets

import "strings"

// Resolver maps a logical asset name to the URL path it is served from.
type Resolver interface {
	Asset(name string) string
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver resolves names through m and prepends prefix:
//
//	resolver := assets.NewResolver(manifest, "/static/")
//	resolver.Asset("app.css") // "/static/app.1f2e3d4c.css"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{
		manifest: m,
		prefix:   prefix,
	}
}

func (r *manifestResolver) Asset(name string) string {
	return joinURL(r.prefix, r.manifest.Resolve(name))
}

type passthrough struct {
	prefix string
}

// NewPassthroughResolver prepends prefix to names without fingerprinting.
// Pages use NewPassthroughResolver("/") unless configured otherwise, which
// serves /app.css and /app.js.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(name string) string {
	return joinURL(p.prefix, name)
}

// joinURL joins prefix and name with exactly one slash. An empty prefix
// leaves name relative.
func joinURL(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(name, "/")
}
