package services

import (
	"fmt"
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, config.DB.Model(model).Count(&n).Error)
	return n
}

func TestCreateFoodWithoutImages(t *testing.T) {
	setupTestDB(t)
	createTestCategory(t, "Fruit")

	store := &fakeImageStore{}
	svc := NewFoodService(store)

	food, err := svc.CreateFood(CreateFoodInput{Name: "Apple", Category: "Fruit", Calories: 52})
	require.NoError(t, err)
	assert.Equal(t, "Apple", food.Name)
	assert.Equal(t, "Fruit", food.Category.Name)

	assert.EqualValues(t, 1, countRows(t, &models.Food{}))
	assert.EqualValues(t, 0, countRows(t, &models.Image{}))
	assert.Equal(t, 0, store.uploads)
}

func TestCreateFoodWithImages(t *testing.T) {
	setupTestDB(t)
	createTestCategory(t, "Fruit")

	store := &fakeImageStore{}
	svc := NewFoodService(store)

	food, err := svc.CreateFood(CreateFoodInput{
		Name:     "Banana",
		Category: "Fruit",
		Images: []string{
			testImageData("image/png", "first"),
			testImageData("image/jpeg", "second"),
		},
	})
	require.NoError(t, err)
	require.Len(t, food.Images, 2)
	assert.Equal(t, "image/png", food.Images[0].ContentType)
	assert.Equal(t, "image/jpeg", food.Images[1].ContentType)

	assert.EqualValues(t, 1, countRows(t, &models.Food{}))
	assert.EqualValues(t, 2, countRows(t, &models.Image{}))
	assert.Equal(t, 2, store.uploads)
}

func TestCreateFoodSkipsEmptySlots(t *testing.T) {
	setupTestDB(t)
	createTestCategory(t, "Fruit")

	store := &fakeImageStore{}
	svc := NewFoodService(store)

	food, err := svc.CreateFood(CreateFoodInput{
		Name:     "Cherry",
		Category: "Fruit",
		Images:   []string{"", testImageData("image/png", "only")},
	})
	require.NoError(t, err)
	assert.Len(t, food.Images, 1)
	assert.EqualValues(t, 1, countRows(t, &models.Image{}))
}

func TestCreateFoodInvalidSlotPersistsNothing(t *testing.T) {
	setupTestDB(t)
	createTestCategory(t, "Fruit")

	store := &fakeImageStore{}
	svc := NewFoodService(store)

	_, err := svc.CreateFood(CreateFoodInput{
		Name:     "Durian",
		Category: "Fruit",
		Images:   []string{testImageData("image/png", "fine"), "not-a-data-uri"},
	})
	require.Error(t, err)

	assert.EqualValues(t, 0, countRows(t, &models.Food{}))
	assert.EqualValues(t, 0, countRows(t, &models.Image{}))
	assert.Equal(t, 0, store.uploads)
}

func TestCreateFoodRejectsTooManySlots(t *testing.T) {
	setupTestDB(t)
	createTestCategory(t, "Fruit")

	svc := NewFoodService(&fakeImageStore{})
	_, err := svc.CreateFood(CreateFoodInput{
		Name:     "Grape",
		Category: "Fruit",
		Images: []string{
			testImageData("image/png", "a"),
			testImageData("image/png", "b"),
			testImageData("image/png", "c"),
		},
	})
	require.Error(t, err)
	assert.EqualValues(t, 0, countRows(t, &models.Food{}))
}

func TestCreateFoodUploadFailureRollsBack(t *testing.T) {
	setupTestDB(t)
	createTestCategory(t, "Fruit")

	svc := NewFoodService(&fakeImageStore{fail: true})
	_, err := svc.CreateFood(CreateFoodInput{
		Name:     "Fig",
		Category: "Fruit",
		Images:   []string{testImageData("image/png", "x")},
	})
	require.Error(t, err)

	assert.EqualValues(t, 0, countRows(t, &models.Food{}))
	assert.EqualValues(t, 0, countRows(t, &models.Image{}))
}

func TestCreateFoodUnknownCategory(t *testing.T) {
	setupTestDB(t)

	svc := NewFoodService(&fakeImageStore{})
	_, err := svc.CreateFood(CreateFoodInput{Name: "Apple", Category: "Nope"})
	require.Error(t, err)
}

func TestListFoodsPagination(t *testing.T) {
	setupTestDB(t)
	category := createTestCategory(t, "Snacks")
	for i := 1; i <= 6; i++ {
		createTestFood(t, fmt.Sprintf("Snack %d", i), category.ID)
	}

	svc := NewFoodService(&fakeImageStore{})

	first, err := svc.ListFoods("")
	require.NoError(t, err)
	assert.Len(t, first.Foods, 4)
	assert.Equal(t, 1, first.Page.Number)
	assert.Equal(t, 2, first.Page.TotalPages)
	assert.True(t, first.Page.HasNext)

	second, err := svc.ListFoods("2")
	require.NoError(t, err)
	assert.Len(t, second.Foods, 2)
	assert.Equal(t, "Snack 5", second.Foods[0].Name)

	// non-integer tokens fall back to page 1
	bad, err := svc.ListFoods("abc")
	require.NoError(t, err)
	assert.Equal(t, first.Foods[0].Name, bad.Foods[0].Name)
	assert.Equal(t, 1, bad.Page.Number)

	// out-of-range tokens clamp to the last page
	clamped, err := svc.ListFoods("99")
	require.NoError(t, err)
	assert.Equal(t, second.Foods[0].Name, clamped.Foods[0].Name)
	assert.Equal(t, 2, clamped.Page.Number)
}

func TestListFoodsAttachesFirstImage(t *testing.T) {
	setupTestDB(t)
	category := createTestCategory(t, "Fruit")
	food := createTestFood(t, "Apple", category.ID)

	earlier := models.Image{FoodID: food.ID, URL: "https://cdn.example.com/a.png"}
	require.NoError(t, config.DB.Create(&earlier).Error)
	later := models.Image{FoodID: food.ID, URL: "https://cdn.example.com/b.png"}
	require.NoError(t, config.DB.Create(&later).Error)

	svc := NewFoodService(&fakeImageStore{})
	out, err := svc.ListFoods("")
	require.NoError(t, err)
	require.Len(t, out.Foods, 1)
	require.NotNil(t, out.Foods[0].FirstImage)
	assert.Equal(t, earlier.ID, out.Foods[0].FirstImage.ID)
}

func TestListFoodsByCategory(t *testing.T) {
	setupTestDB(t)
	fruit := createTestCategory(t, "Fruit")
	veg := createTestCategory(t, "Vegetables")
	for i := 1; i <= 5; i++ {
		createTestFood(t, fmt.Sprintf("Fruit %d", i), fruit.ID)
	}
	createTestFood(t, "Carrot", veg.ID)

	svc := NewFoodService(&fakeImageStore{})

	out, err := svc.ListFoodsByCategory("Fruit", "")
	require.NoError(t, err)
	assert.Equal(t, 5, out.FoodsCount)
	assert.Len(t, out.Foods, 4)
	assert.Equal(t, 2, out.Page.TotalPages)
	for _, f := range out.Foods {
		assert.Equal(t, fruit.ID, f.CategoryID)
	}

	_, err = svc.ListFoodsByCategory("Desserts", "")
	require.Error(t, err)
}

func TestGetFood(t *testing.T) {
	setupTestDB(t)
	category := createTestCategory(t, "Fruit")
	food := createTestFood(t, "Apple", category.ID)
	require.NoError(t, config.DB.Create(&models.Image{FoodID: food.ID, URL: "https://cdn.example.com/a.png"}).Error)
	require.NoError(t, config.DB.Create(&models.Image{FoodID: food.ID, URL: "https://cdn.example.com/b.png"}).Error)

	svc := NewFoodService(&fakeImageStore{})

	got, err := svc.GetFood(food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apple", got.Name)
	assert.Equal(t, "Fruit", got.Category.Name)
	require.Len(t, got.Images, 2)
	assert.Less(t, got.Images[0].ID, got.Images[1].ID)

	_, err = svc.GetFood(9999)
	require.Error(t, err)
}
