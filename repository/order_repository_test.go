package repository_test

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testDB connects to the Postgres instance named by the POSTGRES_* env vars.
// The suite is skipped entirely when POSTGRES_HOST is unset so unit runs stay
// self-contained.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		t.Skip("POSTGRES_HOST not set, skipping database-backed tests")
	}

	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD"), os.Getenv("POSTGRES_DB"), port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Item{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// seedCatalog creates a category, two items (one inactive) and a table,
// registering cleanup so repeated runs stay independent.
func seedCatalog(t *testing.T, db *gorm.DB) (active, inactive *models.Item, table *models.Table) {
	t.Helper()

	category := &models.Category{Name: "repo-test-" + uuid.NewString(), IsActive: true}
	require.NoError(t, db.Create(category).Error)

	active = &models.Item{
		Name:       "repo-test-latte-" + uuid.NewString(),
		Price:      decimal.RequireFromString("4.50"),
		IsActive:   true,
		CategoryID: category.ID,
	}
	inactive = &models.Item{
		Name:       "repo-test-retired-" + uuid.NewString(),
		Price:      decimal.RequireFromString("5.00"),
		IsActive:   false,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(active).Error)
	require.NoError(t, db.Create(inactive).Error)

	table = &models.Table{Number: 100000 + rand.Intn(900000), Capacity: 4, IsActive: true}
	require.NoError(t, db.Create(table).Error)

	t.Cleanup(func() {
		db.Where("item_id IN ?", []uuid.UUID{active.ID, inactive.ID}).Delete(&models.OrderItem{})
		db.Where("table_id = ?", table.ID).Delete(&models.Order{})
		db.Delete(table)
		db.Delete(active)
		db.Delete(inactive)
		db.Delete(category)
	})
	return active, inactive, table
}

func TestGormOrderRepository(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	t.Run("CreateWithItems persists order and lines together", func(t *testing.T) {
		active, _, table := seedCatalog(t, db)
		repo := repository.NewGormOrderRepository(db)

		order := &models.Order{
			TableID:     table.ID,
			TableNumber: table.Number,
			TotalPrice:  decimal.RequireFromString("9.00"),
			Status:      models.OrderStatusPending,
		}
		items := []models.OrderItem{{ItemID: active.ID, Quantity: 2, Price: active.Price}}

		require.NoError(t, repo.CreateWithItems(ctx, order, items))

		fetched, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, table.Number, fetched.TableNumber)
		assert.True(t, fetched.TotalPrice.Equal(decimal.RequireFromString("9.00")))
		require.Len(t, fetched.Items, 1)
		assert.Equal(t, 2, fetched.Items[0].Quantity)
		require.NotNil(t, fetched.Items[0].Item)
		assert.Equal(t, active.Name, fetched.Items[0].Item.Name)
		require.NotNil(t, fetched.Table)
		assert.Equal(t, table.ID, fetched.Table.ID)
	})

	t.Run("UpdateStatus reports a missing order", func(t *testing.T) {
		repo := repository.NewGormOrderRepository(db)

		err := repo.UpdateStatus(ctx, uuid.New(), models.OrderStatusReady)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("UpdateStatus changes an existing order", func(t *testing.T) {
		active, _, table := seedCatalog(t, db)
		repo := repository.NewGormOrderRepository(db)

		order := &models.Order{
			TableID:     table.ID,
			TableNumber: table.Number,
			TotalPrice:  active.Price,
			Status:      models.OrderStatusPending,
		}
		require.NoError(t, repo.CreateWithItems(ctx, order, []models.OrderItem{
			{ItemID: active.ID, Quantity: 1, Price: active.Price},
		}))

		require.NoError(t, repo.UpdateStatus(ctx, order.ID, models.OrderStatusPreparing))

		fetched, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusPreparing, fetched.Status)
	})
}

func TestGormItemRepositoryFindActiveByIDs(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	active, inactive, _ := seedCatalog(t, db)
	repo := repository.NewGormItemRepository(db)

	found, err := repo.FindActiveByIDs(ctx, []uuid.UUID{active.ID, inactive.ID})

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, active.ID, found[0].ID)
}
