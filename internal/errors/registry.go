package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Cannot read configuration file",
		Detail:   "The configuration file exists but could not be opened.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Malformed configuration file",
		Detail:   "viewy.toml is not valid TOML.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A value in the configuration failed validation.",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid environment override",
		Detail:   "A VIEWY_ environment variable could not be applied to the configuration.",
	},
	"E105": {
		Category: CategoryConfig,
		Message:  "Project root not found",
		Detail:   "No Viewy.toml, viewy.toml or viewy-icons.toml was found in this directory or any parent.",
	},

	// ============================================
	// Icon Pack Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryIcons,
		Message:  "Icon pack has no source",
		Detail:   "Each icon pack needs either a git URL or a local path.",
	},
	"E202": {
		Category: CategoryIcons,
		Message:  "Icon pack clone failed",
		Detail:   "The git repository of the icon pack could not be cloned.",
	},
	"E203": {
		Category: CategoryIcons,
		Message:  "Icon directory not found",
		Detail:   "The configured path does not exist in the icon pack source.",
	},
	"E204": {
		Category: CategoryIcons,
		Message:  "Cannot read SVG file",
		Detail:   "An SVG file in the icon pack could not be read or parsed.",
	},
	"E205": {
		Category: CategoryIcons,
		Message:  "Duplicate icon symbol id",
		Detail:   "Two icons map to the same sprite symbol id, so one would shadow the other.",
	},
	"E206": {
		Category: CategoryIcons,
		Message:  "Invalid icon pack name",
		Detail:   "Pack names must contain at least one letter or digit.",
	},
	"E207": {
		Category: CategoryIcons,
		Message:  "Icon code generation failed",
		Detail:   "The generated Go source could not be formatted or written.",
	},
	"E208": {
		Category: CategoryIcons,
		Message:  "Cannot copy icon pack",
		Detail:   "The icons of a cloned pack could not be copied into the cache directory.",
	},

	// ============================================
	// Asset Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryAssets,
		Message:  "Stylesheet compilation failed",
		Detail:   "The SCSS bundle could not be compiled to CSS.",
	},
	"E302": {
		Category: CategoryAssets,
		Message:  "Script minification failed",
		Detail:   "The JavaScript bundle could not be minified.",
	},
	"E303": {
		Category: CategoryAssets,
		Message:  "Cannot write asset",
		Detail:   "A compiled asset could not be written to the output directory.",
	},
	"E304": {
		Category: CategoryAssets,
		Message:  "Asset publish failed",
		Detail:   "A compiled asset could not be uploaded to the bucket.",
	},

	// ============================================
	// Server and CLI Errors (E400-E499)
	// ============================================

	"E401": {
		Category: CategoryServer,
		Message:  "Server failed",
		Detail:   "The development server stopped with an error.",
	},
	"E402": {
		Category: CategoryServer,
		Message:  "Invalid render mode",
		Detail:   "The x-viewy-render-mode header must be Complete, ContentOnly or LayoutOnly.",
	},
	"E403": {
		Category: CategoryCLI,
		Message:  "Invalid flag value",
		Detail:   "A command line flag has a value the command cannot use.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
