package services_test

import (
	"context"
	"testing"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type mockCategoryRepo struct {
	categories map[uuid.UUID]*models.Category
}

func newMockCategoryRepo(categories ...*models.Category) *mockCategoryRepo {
	m := &mockCategoryRepo{categories: make(map[uuid.UUID]*models.Category)}
	for _, c := range categories {
		m.categories[c.ID] = c
	}
	return m
}

func (m *mockCategoryRepo) FindActive(_ context.Context) ([]models.Category, error) {
	var result []models.Category
	for _, c := range m.categories {
		if c.IsActive {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *mockCategoryRepo) FindByIDWithItems(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return m.FindByID(ctx, id)
}

func (m *mockCategoryRepo) Create(_ context.Context, category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) Update(_ context.Context, category *models.Category) error {
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.categories, id)
	return nil
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

// --- Category tests ---

func TestCategoryService(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("list returns active categories only", func(t *testing.T) {
		active := &models.Category{ID: uuid.New(), Name: "Hot Drinks", IsActive: true}
		hidden := &models.Category{ID: uuid.New(), Name: "Seasonal", IsActive: false}
		svc := services.NewCategoryService(newMockCategoryRepo(active, hidden), logger)

		categories, svcErr := svc.ListCategories(context.Background())

		require.Nil(t, svcErr)
		require.Len(t, categories, 1)
		assert.Equal(t, "Hot Drinks", categories[0].Name)
	})

	t.Run("create defaults to active", func(t *testing.T) {
		svc := services.NewCategoryService(newMockCategoryRepo(), logger)

		category, svcErr := svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{Name: "Pastries"})

		require.Nil(t, svcErr)
		assert.True(t, category.IsActive)
		assert.NotEqual(t, uuid.Nil, category.ID)
	})

	t.Run("create honours an explicit isActive", func(t *testing.T) {
		svc := services.NewCategoryService(newMockCategoryRepo(), logger)

		category, svcErr := svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{
			Name:     "Seasonal",
			IsActive: boolPtr(false),
		})

		require.Nil(t, svcErr)
		assert.False(t, category.IsActive)
	})

	t.Run("update touches only the provided fields", func(t *testing.T) {
		existing := &models.Category{ID: uuid.New(), Name: "Pastries", Description: strPtr("Baked daily"), IsActive: true}
		svc := services.NewCategoryService(newMockCategoryRepo(existing), logger)

		updated, svcErr := svc.UpdateCategory(context.Background(), existing.ID.String(), &models.UpdateCategoryRequest{
			Name: strPtr("Bakery"),
		})

		require.Nil(t, svcErr)
		assert.Equal(t, "Bakery", updated.Name)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "Baked daily", *updated.Description)
		assert.True(t, updated.IsActive)
	})

	t.Run("get of a malformed id is a 404", func(t *testing.T) {
		svc := services.NewCategoryService(newMockCategoryRepo(), logger)

		_, svcErr := svc.GetCategory(context.Background(), "nope")

		require.NotNil(t, svcErr)
		assert.Equal(t, 404, svcErr.StatusCode)
		assert.Equal(t, "Category not found", svcErr.Message)
	})

	t.Run("delete of a missing category is a 404", func(t *testing.T) {
		svc := services.NewCategoryService(newMockCategoryRepo(), logger)

		svcErr := svc.DeleteCategory(context.Background(), uuid.New().String())

		require.NotNil(t, svcErr)
		assert.Equal(t, 404, svcErr.StatusCode)
	})
}

// --- Item tests ---

func newItemTestService(items *mockItemRepo, categories *mockCategoryRepo) services.ItemService {
	logger, _ := zap.NewDevelopment()
	return services.NewItemService(items, categories, logger)
}

func TestItemService(t *testing.T) {
	t.Run("create rounds the price to two decimals", func(t *testing.T) {
		category := &models.Category{ID: uuid.New(), Name: "Hot Drinks", IsActive: true}
		svc := newItemTestService(newMockItemRepo(), newMockCategoryRepo(category))

		item, svcErr := svc.CreateItem(context.Background(), &models.CreateItemRequest{
			Name:       "Flat White",
			Price:      4.255,
			CategoryID: category.ID.String(),
		})

		require.Nil(t, svcErr)
		assert.True(t, item.Price.Equal(decimal.RequireFromString("4.26")),
			"expected 4.26, got %s", item.Price)
		assert.True(t, item.IsActive)
	})

	t.Run("create against an unknown category is a 400", func(t *testing.T) {
		svc := newItemTestService(newMockItemRepo(), newMockCategoryRepo())

		item, svcErr := svc.CreateItem(context.Background(), &models.CreateItemRequest{
			Name:       "Flat White",
			Price:      4.00,
			CategoryID: uuid.New().String(),
		})

		assert.Nil(t, item)
		require.NotNil(t, svcErr)
		assert.Equal(t, 400, svcErr.StatusCode)
		assert.Equal(t, "Category not found", svcErr.Message)
	})

	t.Run("create with a malformed category id is a 400", func(t *testing.T) {
		svc := newItemTestService(newMockItemRepo(), newMockCategoryRepo())

		_, svcErr := svc.CreateItem(context.Background(), &models.CreateItemRequest{
			Name:       "Flat White",
			Price:      4.00,
			CategoryID: "not-a-uuid",
		})

		require.NotNil(t, svcErr)
		assert.Equal(t, 400, svcErr.StatusCode)
		assert.Equal(t, "Category not found", svcErr.Message)
	})

	t.Run("update applies partial fields", func(t *testing.T) {
		category := &models.Category{ID: uuid.New(), Name: "Hot Drinks", IsActive: true}
		existing := menuItem("Latte", "4.50", true)
		existing.CategoryID = category.ID
		svc := newItemTestService(newMockItemRepo(existing), newMockCategoryRepo(category))

		updated, svcErr := svc.UpdateItem(context.Background(), existing.ID.String(), &models.UpdateItemRequest{
			Price:    floatPtr(5.00),
			IsActive: boolPtr(false),
		})

		require.Nil(t, svcErr)
		assert.Equal(t, "Latte", updated.Name)
		assert.True(t, updated.Price.Equal(decimal.RequireFromString("5.00")))
		assert.False(t, updated.IsActive)
	})

	t.Run("listing an unparseable category matches nothing", func(t *testing.T) {
		existing := menuItem("Latte", "4.50", true)
		svc := newItemTestService(newMockItemRepo(existing), newMockCategoryRepo())

		items, svcErr := svc.ListItems(context.Background(), "garbage", "", false)

		require.Nil(t, svcErr)
		assert.Empty(t, items)
	})

	t.Run("set image records the url", func(t *testing.T) {
		existing := menuItem("Latte", "4.50", true)
		svc := newItemTestService(newMockItemRepo(existing), newMockCategoryRepo())

		item, svcErr := svc.SetItemImage(context.Background(), existing.ID.String(), "http://localhost:3000/uploads/abc.png")

		require.Nil(t, svcErr)
		require.NotNil(t, item.ImageURL)
		assert.Equal(t, "http://localhost:3000/uploads/abc.png", *item.ImageURL)
	})

	t.Run("delete of an unknown item is a 404", func(t *testing.T) {
		svc := newItemTestService(newMockItemRepo(), newMockCategoryRepo())

		svcErr := svc.DeleteItem(context.Background(), uuid.New().String())

		require.NotNil(t, svcErr)
		assert.Equal(t, 404, svcErr.StatusCode)
		assert.Equal(t, "Item not found", svcErr.Message)
	})
}
