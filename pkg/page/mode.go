package page

import (
	"strings"

	"github.com/viewy-dev/viewy/internal/errors"
)

// RenderModeHeader is the request header selecting the render mode.
const RenderModeHeader = "x-viewy-render-mode"

// RenderMode selects how Compile wraps the content.
type RenderMode uint8

const (
	// Complete renders the layouted content inside the full document.
	Complete RenderMode = iota

	// ContentOnly renders the content alone, without layout or skeleton.
	ContentOnly

	// LayoutOnly renders the layout around a content placeholder.
	LayoutOnly
)

// String returns the header value of the mode.
func (m RenderMode) String() string {
	switch m {
	case ContentOnly:
		return "ContentOnly"
	case LayoutOnly:
		return "LayoutOnly"
	default:
		return "Complete"
	}
}

// ParseRenderMode reads a header value. Anything unknown, including the
// empty string, is Complete.
func ParseRenderMode(s string) RenderMode {
	m, err := LookupRenderMode(s)
	if err != nil {
		return Complete
	}
	return m
}

// LookupRenderMode is the strict form of ParseRenderMode. Matching is case
// insensitive.
func LookupRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "complete":
		return Complete, nil
	case "contentonly":
		return ContentOnly, nil
	case "layoutonly":
		return LayoutOnly, nil
	}
	return Complete, errors.New("E402").
		WithField("mode", s).
		WithSuggestion("Use Complete, ContentOnly or LayoutOnly")
}
