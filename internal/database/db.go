package database

import (
	"log"

	"github.com/say2me/backend/internal/config"
	"github.com/say2me/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	var err error

	// TranslateError lets the service layer match unique-violations
	// as gorm.ErrDuplicatedKey regardless of driver
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	// Bounded pool; requests queue for a free connection instead of failing
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool:", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxOpenConns)

	log.Println("Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(&models.User{}, &models.Message{})
	if err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Database migration completed")
}
