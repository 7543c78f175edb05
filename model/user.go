package model

import (
	"fmt"

	"github.com/jihokang/massage-shop-web/util"
	"gorm.io/gorm"
)

// AdminUsername is the fixed account seeded at every startup.
const AdminUsername = "admin"

// adminDefaultPassword is reset on every process start, regardless of any
// password change made while the previous process was running.
const adminDefaultPassword = "admin@123456789"

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"type:varchar(80);uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"type:varchar(200);not null"`
	Role         string `json:"role" gorm:"type:varchar(20);not null;default:admin"`
}

// SeedAdminUser deletes any existing "admin" row and recreates it with the
// default password, so restarts always leave exactly one admin account in a
// known state.
func SeedAdminUser(db *gorm.DB) error {
	if err := db.Where("username = ?", AdminUsername).Delete(&User{}).Error; err != nil {
		return fmt.Errorf("failed to remove existing admin user: %w", err)
	}

	hash, err := util.HashPassword(adminDefaultPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := User{
		Username:     AdminUsername,
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}
