// Package router maps navigation paths onto the views of the shop. Matching is
// a pure function of the path and the current catalog contents.
package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
)

// View enumerates the screens a path can resolve to.
type View int

const (
	ViewLanding View = iota
	ViewList
	ViewDetail
	ViewNotFound
)

func (v View) String() string {
	switch v {
	case ViewLanding:
		return "landing"
	case ViewList:
		return "list"
	case ViewDetail:
		return "detail"
	case ViewNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Route is the resolved navigation state. ID is set for ViewDetail; Path keeps
// the requested path for ViewNotFound.
type Route struct {
	View View
	ID   int
	Path string
}

// Landing returns the landing route.
func Landing() Route { return Route{View: ViewLanding} }

// List returns the catalog list route.
func List() Route { return Route{View: ViewList} }

// Detail returns the detail route for an item.
func Detail(id int) Route { return Route{View: ViewDetail, ID: id} }

// NotFound returns the route for a path that matched nothing.
func NotFound(path string) Route { return Route{View: ViewNotFound, Path: path} }

// Lookup reports whether the catalog holds an item with the given id.
type Lookup func(id int) bool

// Router resolves paths for one catalog section.
type Router struct {
	section catalog.Category
}

// New creates a Router whose canonical section is the given category.
func New(section catalog.Category) Router {
	if !section.Valid() {
		section = catalog.CategoryCookies
	}
	return Router{section: section}
}

// Section returns the canonical catalog section.
func (r Router) Section() catalog.Category {
	return r.section
}

// Resolve maps path onto a Route. "/" matches exactly; "/cookies" and
// "/products" both match the catalog section; a trailing numeric segment selects
// the detail view when exists reports the id as present. Everything else is
// NotFound.
func (r Router) Resolve(path string, exists Lookup) Route {
	segments := split(path)

	if len(segments) == 0 {
		return Landing()
	}

	if !isSection(segments[0]) {
		return NotFound(path)
	}

	switch len(segments) {
	case 1:
		return List()
	case 2:
		id, err := strconv.Atoi(segments[1])
		if err != nil {
			return NotFound(path)
		}
		if exists == nil || !exists(id) {
			return NotFound(path)
		}
		return Detail(id)
	default:
		return NotFound(path)
	}
}

// PathFor is the inverse of Resolve for the canonical section.
func (r Router) PathFor(route Route) string {
	switch route.View {
	case ViewList:
		return "/" + r.section.String()
	case ViewDetail:
		return fmt.Sprintf("/%s/%d", r.section, route.ID)
	case ViewNotFound:
		return route.Path
	default:
		return "/"
	}
}

func split(path string) []string {
	parts := strings.Split(strings.TrimSpace(path), "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

func isSection(segment string) bool {
	return catalog.Category(strings.ToLower(segment)).Valid()
}
