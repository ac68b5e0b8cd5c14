package domain

import (
	"path"
	"strings"
)

// View is the logical page requesting a payload.
type View string

const (
	// ViewHome is the month index page at the site root.
	ViewHome View = "home"
	// ViewMonth is a single month page under digest/<month>/.
	ViewMonth View = "month"
	// ViewExplore is the cross-month search page under explore/.
	ViewExplore View = "explore"
)

// ParseView validates a view name. An empty name selects ViewHome.
func ParseView(name string) (View, error) {
	switch View(strings.TrimSpace(name)) {
	case "", ViewHome:
		return ViewHome, nil
	case ViewMonth:
		return ViewMonth, nil
	case ViewExplore, "all":
		return ViewExplore, nil
	default:
		return "", ErrInvalidView
	}
}

// PageDir returns the directory of the page rendering view, relative to the site root.
func (v View) PageDir(month string) string {
	switch v {
	case ViewMonth:
		return path.Join("digest", strings.TrimSpace(month))
	case ViewExplore:
		return "explore"
	default:
		return ""
	}
}

// LoadRequest asks for the payload of one month.
type LoadRequest struct {
	Month      string
	SourcePath string
	View       View
	Revision   string
}

// IsPassThrough reports whether p is absolute, protocol-qualified or explicitly relative.
func IsPassThrough(p string) bool {
	return HasScheme(p) ||
		strings.HasPrefix(p, "/") ||
		strings.HasPrefix(p, "./") ||
		strings.HasPrefix(p, "../")
}

// HasScheme reports whether p is an http or https URL.
func HasScheme(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// ResolvePath adapts a manifest json_path to the page requesting it.
// Bare relative paths are manifest-relative and need "../" from the explore page.
func ResolvePath(p string, view View) string {
	if p == "" || IsPassThrough(p) {
		return p
	}
	if view == ViewExplore {
		return "../" + p
	}
	return p
}

// Locate turns a resolved path into a site-root reference for the page of view.
// URLs are returned unchanged; "/"-rooted paths are taken relative to the site root.
func Locate(resolved string, view View, month string) string {
	switch {
	case resolved == "":
		return ""
	case HasScheme(resolved):
		return resolved
	case strings.HasPrefix(resolved, "/"):
		return strings.TrimPrefix(path.Clean(resolved), "/")
	default:
		return path.Join(view.PageDir(month), resolved)
	}
}
