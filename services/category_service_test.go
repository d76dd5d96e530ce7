package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	setupTestDB(t)
	createTestCategory(t, "Fruit")
	createTestCategory(t, "Vegetables")

	categories, err := ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Fruit", categories[0].Name)
	assert.Equal(t, "Vegetables", categories[1].Name)
}

func TestFindCategoryByName(t *testing.T) {
	setupTestDB(t)
	createTestCategory(t, "Fruit")

	category, err := FindCategoryByName("Fruit")
	require.NoError(t, err)
	assert.Equal(t, "Fruit", category.Name)

	_, err = FindCategoryByName("Desserts")
	require.Error(t, err)
}
