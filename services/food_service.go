package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// FoodsPerPage is the catalog page size.
const FoodsPerPage = 4

// MaxImageSlots bounds how many images one food may be created with.
const MaxImageSlots = 2

type FoodService struct {
	images ImageStore
}

func NewFoodService(images ImageStore) *FoodService {
	return &FoodService{images: images}
}

// FoodPage is one page of the catalog listing.
type FoodPage struct {
	Title string        `json:"title"`
	Foods []models.Food `json:"foods"`
	Page  utils.Page    `json:"page"`
}

// CategoryPage is one page of a single category's foods.
type CategoryPage struct {
	Category   models.FoodCategory `json:"category"`
	FoodsCount int                 `json:"foods_count"`
	Foods      []models.Food       `json:"foods"`
	Page       utils.Page          `json:"page"`
}

// ListFoods returns one page of the full catalog. The first image is
// attached to every food of the unpaginated set before slicing, which
// mirrors how the listing has always behaved.
func (s *FoodService) ListFoods(pageToken string) (*FoodPage, error) {
	var foods []models.Food
	if err := config.DB.Preload("Category").Order("id").Find(&foods).Error; err != nil {
		return nil, err
	}

	attachFirstImages(foods)

	page := utils.Paginate(len(foods), FoodsPerPage, pageToken)
	return &FoodPage{
		Title: "Food List",
		Foods: foods[page.Start:page.End],
		Page:  page,
	}, nil
}

// ListFoodsByCategory returns one page of the named category's foods,
// with the same whole-set image attachment as ListFoods.
func (s *FoodService) ListFoodsByCategory(name, pageToken string) (*CategoryPage, error) {
	category, err := FindCategoryByName(name)
	if err != nil {
		return nil, err
	}

	var foods []models.Food
	if err := config.DB.Preload("Category").
		Where("category_id = ?", category.ID).
		Order("id").
		Find(&foods).Error; err != nil {
		return nil, err
	}

	attachFirstImages(foods)

	page := utils.Paginate(len(foods), FoodsPerPage, pageToken)
	return &CategoryPage{
		Category:   *category,
		FoodsCount: len(foods),
		Foods:      foods[page.Start:page.End],
		Page:       page,
	}, nil
}

// GetFood returns one food with all of its images.
func (s *FoodService) GetFood(id uint) (*models.Food, error) {
	var food models.Food
	result := config.DB.Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.id")
		}).
		First(&food, id)
	if result.Error != nil {
		return nil, errors.New("food not found")
	}
	return &food, nil
}

type CreateFoodInput struct {
	Name        string
	Category    string
	Description string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	Images      []string // base64 data URIs, at most MaxImageSlots
}

// CreateFood persists a food plus its image slots. Every populated
// slot must parse before anything is written; empty slots are skipped
// silently. Rows go in inside one transaction so a failed slot leaves
// no partial food behind.
func (s *FoodService) CreateFood(input CreateFoodInput) (*models.Food, error) {
	category, err := FindCategoryByName(input.Category)
	if err != nil {
		return nil, err
	}

	if len(input.Images) > MaxImageSlots {
		return nil, fmt.Errorf("at most %d images may be attached", MaxImageSlots)
	}

	parsed := make([]*utils.ParsedImage, 0, len(input.Images))
	for i, data := range input.Images {
		if data == "" {
			continue
		}
		img, err := utils.ParseBase64Image(data)
		if err != nil {
			return nil, fmt.Errorf("image slot %d: %v", i+1, err)
		}
		parsed = append(parsed, img)
	}

	food := models.Food{
		Name:        input.Name,
		CategoryID:  category.ID,
		Description: input.Description,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&food).Error; err != nil {
			return err
		}
		for _, img := range parsed {
			url, err := s.images.Upload(img, food.Name)
			if err != nil {
				return err
			}
			image := models.Image{
				FoodID:      food.ID,
				URL:         url,
				ContentType: img.ContentType,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
			food.Images = append(food.Images, image)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	food.Category = *category
	return &food, nil
}

// attachFirstImages sets FirstImage on every food in the slice, one
// lookup per food over the whole set, page or not.
func attachFirstImages(foods []models.Food) {
	for i := range foods {
		var img models.Image
		err := config.DB.Where("food_id = ?", foods[i].ID).
			Order("id").
			First(&img).Error
		if err != nil {
			continue
		}
		foods[i].FirstImage = &img
	}
}
