// Package errors provides the structured errors reported by the viewy
// command and the build steps it drives.
//
// A ViewyError carries a stable code, a category, an optional source
// location with surrounding lines, and a hint on how to fix the problem.
// Codes are grouped by the stage that raises them:
//   - E1xx: configuration (viewy.toml, environment overrides)
//   - E2xx: icon packs (cloning, scanning, code generation)
//   - E3xx: assets (SCSS, script minification, publishing)
//   - E4xx: the development server and the CLI itself
//
// # Usage
//
//	err := errors.New("E102").
//	    WithLocation("viewy.toml", 4, 9).
//	    WithSuggestion("Colors are written as \"#rrggbb\" or \"#rrggbbaa\"")
//
//	errors.PrintError(err)
//	// ERROR E102: Malformed configuration file
//	//
//	//   viewy.toml:4:9
//	//
//	//      2 │ [colors.accent]
//	//      3 │ light = "#0052cc"
//	//   →  4 │ dark = #3385ff
//	//        │         ^
//	//      5 │
//	//
//	//   Hint: Colors are written as "#rrggbb" or "#rrggbbaa"
package errors
