// Package lucide is the icon pack bundled with viewy, a subset of the
// Lucide icons (ISC license).
//
// The constants are generated from the files under svg/. Add a file and
// run go generate to extend the pack.
package lucide

//go:generate go run github.com/viewy-dev/viewy/cmd/viewy icons gen --root . --output icons_gen.go
