package database

import (
	"fmt"
	"log"

	"gradtrak_backend/internal/config"
	"gradtrak_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Student{},
		&model.Course{},
		&model.CreditCategory{},
		&model.ContactNote{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed a standard 24-credit requirement table on first run so the
	// dashboard works before the school configures its own categories.
	var count int64
	db.Model(&model.CreditCategory{}).Count(&count)
	if count == 0 {
		defaultCategories := []model.CreditCategory{
			{Name: "English", RequiredCredits: 4, DisplayOrder: 1},
			{Name: "Mathematics", RequiredCredits: 3, DisplayOrder: 2},
			{Name: "Science", RequiredCredits: 3, DisplayOrder: 3},
			{Name: "Social Studies", RequiredCredits: 3, DisplayOrder: 4},
			{Name: "PE/Health", RequiredCredits: 2, DisplayOrder: 5},
			{Name: "World Language", RequiredCredits: 2, DisplayOrder: 6},
			{Name: "Arts/CTE", RequiredCredits: 1, DisplayOrder: 7},
			{Name: "Electives", RequiredCredits: 6, DisplayOrder: 8},
		}
		for _, c := range defaultCategories {
			db.Create(&c)
		}
	}

	return db, nil
}
