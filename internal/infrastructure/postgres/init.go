package postgres

import (
	"log"

	"github.com/bu6wer8/student-services-V4-Docker/internal/config"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.OrderConfig) *gorm.DB {
	dsn := cfg.OrderDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.CustomerModel{}, &models.OrderModel{}, &models.PaymentModel{}, &models.OrderSequenceModel{})

	return db
}
