// Package assets provides the stylesheets injected into compiled pages.
//
// Styles are resolved through a StyleLoader:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - {basePath}/styles/{name}.css on disk
//	    └── StyleResolver     - custom directory first, embedded as fallback
//
// Style names are bare identifiers ("default", "minimal"). Names carrying
// path separators or dots are rejected before touching any filesystem, and
// FilesystemLoader resolves symlinks so a style cannot escape basePath.
package assets
