package shop

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/events"
	"github.com/alexisbeaulieu97/cookieshop/internal/router"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

// Actions are the mutation capabilities handed to views. Every action is
// synchronous and always succeeds for in-domain input.
type Actions struct {
	shop *Shop
	ctx  context.Context
}

// Actions returns the capabilities bound to s. ctx is passed to published
// events.
func (s *Shop) Actions(ctx context.Context) Actions {
	if ctx == nil {
		ctx = context.Background()
	}
	return Actions{shop: s, ctx: ctx}
}

// Delete removes the item with the given id. An absent id is a no-op. When the
// removed item is the one on screen, navigation falls back to the list.
func (a Actions) Delete(id int) []catalog.Item {
	before := a.shop.catalog.Len()
	items := a.shop.catalog.Remove(id)
	a.afterRemove(id, before, items)
	return items
}

// DeleteRaw is Delete for textual ids. Non-numeric ids are rejected and leave
// the collection untouched.
func (a Actions) DeleteRaw(raw string) ([]catalog.Item, error) {
	before := a.shop.catalog.Len()
	items, err := a.shop.catalog.RemoveRaw(raw)
	if err != nil {
		return items, err
	}

	// RemoveRaw accepted raw, so it parses.
	id, _ := catalog.ParseID(raw)
	a.afterRemove(id, before, items)
	return items, nil
}

func (a Actions) afterRemove(id, before int, items []catalog.Item) {
	s := a.shop
	if len(items) == before {
		s.publish(a.ctx, events.New(events.EventItemRemoveMissed, "item_id", id))
		return
	}

	s.publish(a.ctx, events.New(events.EventItemRemoved, "item_id", id, "remaining", len(items)))
	if s.route.View == router.ViewDetail && s.route.ID == id {
		a.setRoute(router.List())
	}
}

// ToggleTheme flips between light and dark.
func (a Actions) ToggleTheme() theme.Name {
	s := a.shop
	previous := s.theme.Current()
	current := s.theme.Toggle()
	s.publish(a.ctx, events.New(events.EventThemeToggled, "from", previous.String(), "to", current.String()))
	return current
}

// Navigate resolves path and moves to the resulting view.
func (a Actions) Navigate(path string) router.Route {
	route := a.shop.Resolve(path)
	a.setRoute(route)
	return route
}

// Show moves to a route directly.
func (a Actions) Show(route router.Route) router.Route {
	if route.View == router.ViewDetail && !a.shop.catalog.Contains(route.ID) {
		route = router.NotFound(a.shop.router.PathFor(route))
	}
	a.setRoute(route)
	return route
}

// Search sets the list filter query.
func (a Actions) Search(query string) []catalog.Item {
	s := a.shop
	query = strings.TrimSpace(query)
	if query != s.query {
		s.query = query
		s.publish(a.ctx, events.New(events.EventSearchChanged, "query", query))
	}
	return s.catalog.Search(query)
}

func (a Actions) setRoute(route router.Route) {
	s := a.shop
	if route == s.route {
		return
	}
	s.route = route
	s.publish(a.ctx, events.New(events.EventRouteChanged, "view", route.View.String(), "path", s.router.PathFor(route)))
}
