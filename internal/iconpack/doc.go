// Package iconpack compiles SVG icon packs into Go source.
//
// Packs are declared in viewy.toml:
//
//	[icon-packs.lucide]
//	git = "https://github.com/lucide-icons/lucide"
//	path = "icons"
//	branch = "main"
//	stroked = true
//
//	[icon-packs.brand]
//	path = "assets/brand-icons"
//	prefix = "Brand"
//	stroked = false
//
// Git packs are shallow-cloned and their icon directory copied into a cache
// directory. Local packs are read in place. A pack that cannot be resolved
// is skipped with a warning so a missing network never breaks a build.
//
// For each pack the generated file declares an int enum named after the
// pack with one constant per SVG file, plus Path, SymbolID, Configure and
// String methods. A single SymbolByID function covers every pack and is
// registered with the icons package at init time, so pages can build the
// sprite of the icons they use.
package iconpack
