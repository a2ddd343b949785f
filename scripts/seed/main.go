// Command seed populates the database with a default admin account, the café
// tables and a starter menu. Safe to run repeatedly: existing rows are kept.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/2az2000/fabioCoffee/database"
	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := database.Connect(); err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	defer database.Close()

	db := database.DB
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Item{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	if err := seedAdmin(db); err != nil {
		log.Fatal("Seeding admin failed: ", err)
	}
	if err := seedTables(db); err != nil {
		log.Fatal("Seeding tables failed: ", err)
	}
	if err := seedMenu(db); err != nil {
		log.Fatal("Seeding menu failed: ", err)
	}

	log.Println("Seed completed")
}

func seedAdmin(db *gorm.DB) error {
	email := getEnv("SEED_ADMIN_EMAIL", "admin@fabiocafe.com")
	password := getEnv("SEED_ADMIN_PASSWORD", "admin123")

	var count int64
	if err := db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin already exists, skipping")
		return nil
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return err
	}
	if err := db.Create(&models.Admin{Email: email, Password: hash}).Error; err != nil {
		return err
	}
	log.Println("Created admin ", email)
	return nil
}

func seedTables(db *gorm.DB) error {
	tables := []models.Table{
		{Number: 1, Capacity: 2, IsActive: true},
		{Number: 2, Capacity: 2, IsActive: true},
		{Number: 3, Capacity: 4, IsActive: true},
		{Number: 4, Capacity: 4, IsActive: true},
		{Number: 5, Capacity: 6, IsActive: true},
		{Number: 6, Capacity: 8, IsActive: true},
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "number"}},
		DoNothing: true,
	}).Create(&tables).Error
}

func seedMenu(db *gorm.DB) error {
	menu := map[string][]struct {
		Name        string
		Description string
		Price       string
	}{
		"Hot Drinks": {
			{"Espresso", "Single shot of espresso", "2.50"},
			{"Cappuccino", "Espresso with steamed milk and foam", "4.00"},
			{"Latte", "Espresso with plenty of steamed milk", "4.50"},
			{"Turkish Coffee", "Finely ground coffee brewed in a cezve", "3.50"},
		},
		"Cold Drinks": {
			{"Iced Latte", "Espresso over cold milk and ice", "5.00"},
			{"Lemonade", "Fresh squeezed, lightly sweetened", "3.50"},
			{"Iced Tea", "House-brewed black tea over ice", "3.00"},
		},
		"Pastries": {
			{"Croissant", "All-butter, baked daily", "3.00"},
			{"Cinnamon Roll", "With cream cheese frosting", "4.00"},
		},
		"Desserts": {
			{"Cheesecake", "Classic baked cheesecake slice", "5.50"},
			{"Tiramisu", "Espresso-soaked, house made", "6.00"},
		},
		"Breakfast": {
			{"Omelette", "Three eggs with cheese and herbs", "7.50"},
			{"Avocado Toast", "Sourdough, avocado, poached egg", "8.00"},
		},
	}

	for categoryName, items := range menu {
		var category models.Category
		err := db.Where("name = ?", categoryName).First(&category).Error
		if err == gorm.ErrRecordNotFound {
			category = models.Category{Name: categoryName, IsActive: true}
			if err = db.Create(&category).Error; err != nil {
				return err
			}
			log.Println("Created category ", categoryName)
		} else if err != nil {
			return err
		}

		for _, it := range items {
			var count int64
			if err := db.Model(&models.Item{}).
				Where("name = ? AND category_id = ?", it.Name, category.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			price, err := decimal.NewFromString(it.Price)
			if err != nil {
				return fmt.Errorf("bad price for %s: %w", it.Name, err)
			}
			desc := it.Description
			item := models.Item{
				Name:        it.Name,
				Description: &desc,
				Price:       price,
				IsActive:    true,
				CategoryID:  category.ID,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
