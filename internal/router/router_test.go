package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
)

func present(ids ...int) Lookup {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id int) bool { return set[id] }
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := New(catalog.CategoryCookies)
	exists := present(1, 2, 3)

	tests := []struct {
		name     string
		path     string
		expected Route
	}{
		{name: "root", path: "/", expected: Landing()},
		{name: "empty", path: "", expected: Landing()},
		{name: "cookies list", path: "/cookies", expected: List()},
		{name: "trailing slash", path: "/cookies/", expected: List()},
		{name: "products alias", path: "/products", expected: List()},
		{name: "mixed case section", path: "/Cookies", expected: List()},
		{name: "detail", path: "/cookies/2", expected: Detail(2)},
		{name: "detail via alias", path: "/products/3", expected: Detail(3)},
		{name: "detail leading zeros", path: "/cookies/002", expected: Detail(2)},
		{name: "missing id", path: "/cookies/9", expected: NotFound("/cookies/9")},
		{name: "non numeric id", path: "/cookies/abc", expected: NotFound("/cookies/abc")},
		{name: "too deep", path: "/cookies/1/edit", expected: NotFound("/cookies/1/edit")},
		{name: "unknown section", path: "/cakes", expected: NotFound("/cakes")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, r.Resolve(tt.path, exists))
		})
	}
}

func TestResolveWithoutLookupNeverSelectsDetail(t *testing.T) {
	t.Parallel()

	r := New(catalog.CategoryProducts)
	require.Equal(t, ViewNotFound, r.Resolve("/products/1", nil).View)
}

func TestPathForRoundTrips(t *testing.T) {
	t.Parallel()

	exists := present(7)
	for _, section := range []catalog.Category{catalog.CategoryCookies, catalog.CategoryProducts} {
		r := New(section)
		for _, route := range []Route{Landing(), List(), Detail(7)} {
			require.Equal(t, route, r.Resolve(r.PathFor(route), exists))
		}
	}

	require.Equal(t, "/products/7", New(catalog.CategoryProducts).PathFor(Detail(7)))
	require.Equal(t, "/nowhere", New(catalog.CategoryCookies).PathFor(NotFound("/nowhere")))
}

func TestNewFallsBackToCookies(t *testing.T) {
	t.Parallel()

	require.Equal(t, catalog.CategoryCookies, New("").Section())
}

func TestViewString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "landing", ViewLanding.String())
	require.Equal(t, "detail", ViewDetail.String())
	require.Equal(t, "not_found", ViewNotFound.String())
	require.Equal(t, "view(9)", View(9).String())
}
