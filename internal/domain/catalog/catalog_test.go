package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

// TestCatalogCategories covers adding, finding and removing categories.
func TestCatalogCategories(t *testing.T) {
	t.Parallel()

	c := New(nil)
	require.NotNil(t, c.Global())

	work, err := c.AddCategory(2, " work ")
	require.NoError(t, err)
	require.Equal(t, "work", work.Name())
	require.Same(t, c.Global(), work.Global())

	_, err = c.AddCategory(1, "home")
	require.NoError(t, err)

	_, err = c.AddCategory(2, "other")
	require.ErrorIs(t, err, ErrAlreadyExists)

	_, err = c.AddCategory(3, "work")
	require.ErrorIs(t, err, ErrAlreadyExists)

	_, err = c.AddCategory(3, "  ")
	require.Error(t, err)

	found, ok := c.FindByName("work")
	require.True(t, ok)
	require.Same(t, work, found)

	found, ok = c.FindByID(2)
	require.True(t, ok)
	require.Same(t, work, found)

	_, ok = c.FindByName("missing")
	require.False(t, ok)

	names := make([]string, 0)
	for _, category := range c.Categories() {
		names = append(names, category.Name())
	}

	require.Equal(t, []string{"home", "work"}, names)
	require.Equal(t, 3, c.NextCategoryID())

	require.NoError(t, c.RemoveCategory(2))
	require.ErrorIs(t, c.RemoveCategory(2), ErrNotFound)

	_, err = c.CategoryByName("work")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestCatalogPOIs covers membership bookkeeping and delegation through the catalog.
func TestCatalogPOIs(t *testing.T) {
	t.Parallel()

	global := alarm.NewGlobalConfig()
	c := New(global)

	home, err := c.AddCategory(1, "home")
	require.NoError(t, err)
	require.NoError(t, home.SetRange(10))

	_, err = c.AddPOI(1, 0, 0, "nowhere", "missing")
	require.ErrorIs(t, err, ErrNotFound)

	poi, err := c.AddPOI(5, 51.5, -0.12, "door", "home")
	require.NoError(t, err)
	require.Equal(t, []int{5}, home.POIIDs())
	require.InDelta(t, 10.0, poi.Range(), 0)

	_, err = c.AddPOI(5, 0, 0, "again", "home")
	require.ErrorIs(t, err, ErrAlreadyExists)

	_, err = c.AddPOI(6, 100, 0, "bad", "home")
	require.ErrorIs(t, err, alarm.ErrInvalidArgument)
	require.Equal(t, []int{5}, home.POIIDs())

	require.ErrorIs(t, c.RemoveCategory(1), ErrCategoryInUse)

	got, err := c.POI(5)
	require.NoError(t, err)
	require.Same(t, poi, got)
	require.Len(t, c.POIs(), 1)
	require.Equal(t, 6, c.NextPOIID())

	require.NoError(t, c.RemovePOI(5))
	require.Empty(t, home.POIIDs())
	require.ErrorIs(t, c.RemovePOI(5), ErrNotFound)

	_, err = c.POI(5)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.RemoveCategory(1))
}
