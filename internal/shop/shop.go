// Package shop is the root composition of the catalog browser. It owns the
// catalog and theme stores and hands views two things only: immutable
// snapshots of the current state and an Actions value for requesting changes.
package shop

import (
	"context"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/events"
	"github.com/alexisbeaulieu97/cookieshop/internal/logger"
	"github.com/alexisbeaulieu97/cookieshop/internal/router"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

// Options configures a Shop.
type Options struct {
	Name      string
	Category  catalog.Category
	Theme     theme.Name
	Publisher events.Publisher
	Logger    *logger.Logger
}

// Shop owns all mutable state of a browsing session.
type Shop struct {
	name      string
	catalog   *catalog.Store
	theme     *theme.Store
	router    router.Router
	route     router.Route
	query     string
	publisher events.Publisher
	logger    *logger.Logger
}

// New creates a Shop seeded with items. It starts on the landing view.
func New(items []catalog.Item, opts Options) (*Shop, error) {
	store, err := catalog.New(items)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = "Cookie Shop"
	}

	return &Shop{
		name:      name,
		catalog:   store,
		theme:     theme.NewStore(opts.Theme),
		router:    router.New(opts.Category),
		route:     router.Landing(),
		publisher: opts.Publisher,
		logger:    opts.Logger,
	}, nil
}

// Snapshot is a read-only view of the shop at one point in time. It stays
// valid until the next mutation; later mutations do not change it.
type Snapshot struct {
	Name     string
	Section  catalog.Category
	Items    []catalog.Item
	Visible  []catalog.Item
	Query    string
	Theme    theme.Name
	Palette  theme.Palette
	Route    router.Route
	Path     string
	Selected *catalog.Item
}

// Snapshot captures the current state.
func (s *Shop) Snapshot() Snapshot {
	current := s.theme.Current()
	snap := Snapshot{
		Name:    s.name,
		Section: s.router.Section(),
		Items:   s.catalog.List(),
		Visible: s.catalog.Search(s.query),
		Query:   s.query,
		Theme:   current,
		Palette: theme.PaletteFor(current),
		Route:   s.route,
		Path:    s.router.PathFor(s.route),
	}
	if s.route.View == router.ViewDetail {
		if item, ok := s.catalog.Get(s.route.ID); ok {
			snap.Selected = &item
		}
	}
	return snap
}

// Resolve maps a path against the current catalog without navigating.
func (s *Shop) Resolve(path string) router.Route {
	return s.router.Resolve(path, s.catalog.Contains)
}

// PathFor renders the canonical path of a route.
func (s *Shop) PathFor(route router.Route) string {
	return s.router.PathFor(route)
}

func (s *Shop) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithFields(map[string]any{"event_type": event.Type}).Error(err, "publish shop event")
	}
}
