// Package icons holds the runtime side of Viewy icon packs.
//
// Icon packs are generated at build time by "viewy icons gen" from folders
// of SVG files. Each pack is a Go enum type implementing IconPack; the
// generated file registers a symbol lookup with RegisterLookup so that a
// page can turn the icon ids it uses into one sprite:
//
//	ids := node.CollectAttr(icons.IDAttr, root)
//	sprite := icons.Sprite(ids)
//
// Every <svg> icon instance then references its symbol with
// <use href="#v-icon-pack-name">.
package icons
