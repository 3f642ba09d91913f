package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/router"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: 1, Name: "Chocolate Chip", Image: "https://img.example/choc.jpg", Description: "Classic", Price: decimal.RequireFromString("3"), Category: catalog.CategoryCookies},
		{ID: 2, Name: "Oatmeal", Image: "oat.jpg", Description: "Chewy", Price: decimal.RequireFromString("2.5"), Category: catalog.CategoryCookies},
		{ID: 3, Name: "Snickerdoodle", Image: "", Description: "Cinnamon", Price: decimal.RequireFromString("2"), Category: catalog.CategoryCookies},
	}
}

func TestNewItemList(t *testing.T) {
	t.Parallel()

	list := NewItemList(testItems(), 1)
	entries := list.Entries()
	require.Len(t, entries, 3)
	require.False(t, entries[0].Selected)
	require.True(t, entries[1].Selected)
	require.Equal(t, 2, entries[1].Item.ID)
	require.Equal(t, 2, entries[2].Index)

	entries[0].Selected = true
	require.False(t, list.Entries()[0].Selected)
}

func TestItemListViewRendersEveryItem(t *testing.T) {
	t.Parallel()

	view := NewItemList(testItems(), 0).View(theme.For(theme.Light), 120)
	for _, want := range []string{"Chocolate Chip", "Oatmeal", "Snickerdoodle", "3 KD", "2.5 KD", "[choc.jpg]", "[no image]", "Delete [d]"} {
		require.Contains(t, view, want)
	}
}

func TestItemListWrapsRows(t *testing.T) {
	t.Parallel()

	styles := theme.For(theme.Dark)
	narrow := NewItemList(testItems(), 0).View(styles, 10)
	wide := NewItemList(testItems(), 0).View(styles, 200)
	require.Greater(t, strings.Count(narrow, "\n"), strings.Count(wide, "\n"))
	require.Empty(t, NewItemList(nil, 0).View(styles, 80))
}

func TestColumns(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, Columns(0))
	require.Equal(t, 1, Columns(40))
	require.Equal(t, 3, Columns(100))
}

func TestItemDetail(t *testing.T) {
	t.Parallel()

	view := ItemDetail(testItems()[1], catalog.CategoryProducts, theme.For(theme.Light))
	require.Contains(t, view, "Back to Products")
	require.Contains(t, view, "Oatmeal")
	require.Contains(t, view, "Chewy")
	require.Contains(t, view, "2.5 KD")
	require.Contains(t, view, "Delete [d]")
}

func TestNavBarShowsToggleLabel(t *testing.T) {
	t.Parallel()

	light := NavBar(NavBarData{Theme: theme.Light, Section: catalog.CategoryCookies, Active: router.ViewList}, theme.For(theme.Light))
	require.Contains(t, light, "Dark Mode")
	require.Contains(t, light, "Cookies [c]")
	require.Contains(t, light, theme.Logo(theme.Light))

	dark := NavBar(NavBarData{Theme: theme.Dark, Section: catalog.CategoryProducts, Active: router.ViewLanding}, theme.For(theme.Dark))
	require.Contains(t, dark, "Light Mode")
	require.Contains(t, dark, "Products [c]")
}

func TestPages(t *testing.T) {
	t.Parallel()

	styles := theme.For(theme.Light)
	require.Contains(t, Landing("Cookie Shop", catalog.CategoryCookies, styles), "Cookie Shop")
	require.Contains(t, NotFound("/cookies/9", catalog.CategoryCookies, styles), "/cookies/9")
	require.Contains(t, EmptyCatalog(catalog.CategoryCookies, "", styles), "All cookies are gone.")
	require.Contains(t, EmptyCatalog(catalog.CategoryCookies, "mint", styles), `No cookies match "mint".`)
}
