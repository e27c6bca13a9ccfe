// Package assets compiles the stylesheet and script served at /app.css and
// /app.js.
//
// The stylesheet is assembled from a generated SCSS header, the theme
// palette, the built-in fragments and every widget registration, then
// compiled with Dart Sass:
//
//	a := assets.Compile(cfg)
//	w.Write([]byte(a.CSS))
//
// Compilation never fails. When Sass or the minifier report an error the
// raw concatenated source is served instead and the error is logged.
//
// For deployment, Write stores the assets together with fingerprinted
// copies and a manifest.json:
//
//	{
//	  "app.css": "app.1f2e3d4c.css",
//	  "app.js": "app.9a8b7c6d.js"
//	}
//
// A Resolver built from that manifest maps the logical names to the
// fingerprinted files, and Publisher uploads the same files to S3.
package assets
