package pages_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopiadmin/internal/models"
	"kopiadmin/internal/pages"
)

func categoryFixture(n int) []models.Category {
	out := make([]models.Category, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Category{ID: fmt.Sprintf("c-%d", i), Title: fmt.Sprintf("Category %d", i)})
	}
	return out
}

func idSet(items []models.Category) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, c := range items {
		set[c.ID] = true
	}
	return set
}

func TestController_StateMachine(t *testing.T) {
	ctrl := pages.NewController[models.Category](func() ([]models.Category, error) {
		return categoryFixture(2), nil
	})
	assert.Equal(t, pages.Idle, ctrl.State())

	require.NoError(t, ctrl.Load())
	assert.Equal(t, pages.Ready, ctrl.State())
	assert.Equal(t, 2, ctrl.Len())
}

func TestController_LoadFailureWithoutFallback(t *testing.T) {
	ctrl := pages.NewController[models.Category](func() ([]models.Category, error) {
		return nil, fmt.Errorf("connection refused")
	})
	err := ctrl.Load()
	require.Error(t, err)
	assert.Equal(t, pages.Failed, ctrl.State())
	assert.ErrorContains(t, ctrl.Err(), "connection refused")
}

func TestController_LoadIsIdempotent(t *testing.T) {
	ctrl := pages.NewController[models.Category](func() ([]models.Category, error) {
		return categoryFixture(3), nil
	})
	require.NoError(t, ctrl.Load())
	first := idSet(ctrl.Items())
	require.NoError(t, ctrl.Load())
	second := idSet(ctrl.Items())
	assert.Equal(t, first, second)
}

func TestController_FilterDoesNotMutate(t *testing.T) {
	ctrl := pages.NewController[models.Category](func() ([]models.Category, error) {
		return categoryFixture(3), nil
	})
	require.NoError(t, ctrl.Load())

	filtered := ctrl.Filter(func(c models.Category) bool {
		return strings.Contains(c.Title, "2")
	})
	assert.Len(t, filtered, 1)
	assert.Equal(t, 3, ctrl.Len(), "filtering derives a view, it never shrinks the collection")
}

func TestController_ReplaceAndRemove(t *testing.T) {
	ctrl := pages.NewController[models.Category](func() ([]models.Category, error) {
		return categoryFixture(3), nil
	})
	require.NoError(t, ctrl.Load())

	assert.True(t, ctrl.Replace(models.Category{ID: "c-2", Title: "Renamed"}))
	got, ok := ctrl.Get("c-2")
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Title)

	assert.False(t, ctrl.Replace(models.Category{ID: "ghost"}))

	assert.True(t, ctrl.Remove("c-1"))
	assert.Equal(t, 2, ctrl.Len())
	_, ok = ctrl.Get("c-1")
	assert.False(t, ok)
}

func TestController_PendingResolution(t *testing.T) {
	ctrl := pages.NewController[models.Category](func() ([]models.Category, error) {
		return categoryFixture(1), nil
	})
	require.NoError(t, ctrl.Load())

	corrID := ctrl.StagePending(func(tempID string) models.Category {
		return models.Category{ID: tempID, Title: "Seasonal"}
	})
	assert.Equal(t, 2, ctrl.Len())
	assert.Equal(t, 1, ctrl.PendingCount())

	ctrl.ResolvePending(corrID, models.Category{ID: "c-99", Title: "Seasonal"})
	assert.Equal(t, 2, ctrl.Len())
	assert.Zero(t, ctrl.PendingCount())

	_, ok := ctrl.Get("c-99")
	assert.True(t, ok, "authoritative id replaces the placeholder")
	for _, c := range ctrl.Items() {
		assert.False(t, strings.HasPrefix(c.ID, "pending-"), "no placeholder id may survive")
	}
}

func TestController_PendingDrop(t *testing.T) {
	ctrl := pages.NewController[models.Category](func() ([]models.Category, error) {
		return categoryFixture(2), nil
	})
	require.NoError(t, ctrl.Load())

	corrID := ctrl.StagePending(func(tempID string) models.Category {
		return models.Category{ID: tempID, Title: "Doomed"}
	})
	assert.Equal(t, 3, ctrl.Len())

	assert.True(t, ctrl.DropPending(corrID))
	assert.Equal(t, 2, ctrl.Len())
	assert.Zero(t, ctrl.PendingCount())
}
