package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/store"
)

func emptyCategoryStore(t *testing.T) *CategoryService {
	t.Helper()
	stores := newTestStores(t)
	require.NoError(t, stores.Categories.Replace([]models.CategoryModel{}))
	return NewCategoryService(stores.Categories)
}

func TestCategoryService_SeededDefaults(t *testing.T) {
	svc := NewCategoryService(newTestStores(t).Categories)

	categories, err := svc.GetAllCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 10)
}

func TestCategoryService_OrderScopedPerService(t *testing.T) {
	svc := emptyCategoryStore(t)

	a, err := svc.CreateCategory(&models.CategoryInput{Name: "Frontend", ServiceID: 1})
	require.NoError(t, err)
	b, err := svc.CreateCategory(&models.CategoryInput{Name: "Backend", ServiceID: 1})
	require.NoError(t, err)
	c, err := svc.CreateCategory(&models.CategoryInput{Name: "Logos", ServiceID: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, a.Order)
	assert.Equal(t, 2, b.Order)
	// A different service starts its own order sequence.
	assert.Equal(t, 1, c.Order)

	assert.Equal(t, []int{1, 2, 3}, []int{a.ID, b.ID, c.ID})
}

func TestCategoryService_GetByService(t *testing.T) {
	svc := emptyCategoryStore(t)

	_, err := svc.CreateCategory(&models.CategoryInput{Name: "Frontend", ServiceID: 1})
	require.NoError(t, err)
	_, err = svc.CreateCategory(&models.CategoryInput{Name: "Logos", ServiceID: 2})
	require.NoError(t, err)

	filtered, err := svc.GetCategoriesByService(2)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Logos", filtered[0].Name)

	none, err := svc.GetCategoriesByService(99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCategoryService_UpdateAndDelete(t *testing.T) {
	svc := emptyCategoryStore(t)

	created, err := svc.CreateCategory(&models.CategoryInput{Name: "Frontend", ServiceID: 1})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(created.ID, map[string]any{"serviceId": 3})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ServiceID)
	assert.Equal(t, "Frontend", updated.Name)

	require.NoError(t, svc.DeleteCategory(created.ID))
	assert.ErrorIs(t, svc.DeleteCategory(created.ID), store.ErrNotFound)
}
