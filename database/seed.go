package database

import (
	"errors"
	"log"

	"github.com/innovatehub-portal/config"
	"github.com/innovatehub-portal/models"
	"github.com/innovatehub-portal/utils"
	"gorm.io/gorm"
)

// SeedAdmin ensures one administrative account exists, keyed on the
// configured admin email. Safe to run on every startup.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.First(&existing, "email = ?", cfg.AdminEmail).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:      cfg.AdminName,
		Email:     cfg.AdminEmail,
		CPF:       "000.000.000-00",
		BirthDate: "1990-01-01",
		Phone:     "(11) 98765-4321",
		Country:   "Brasil",
		City:      "São Paulo",
		State:     "SP",
		Password:  hashed,
		Role:      models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Admin account created: %s", admin.Email)
	return nil
}
