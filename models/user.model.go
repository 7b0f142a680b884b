package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"default:''" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Phone    string `gorm:"default:''" json:"phone"`
	Role     string `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	Password string `gorm:"not null" json:"-"`

	// Academic profile, filled only for academic-category signups
	University      string `gorm:"default:''" json:"university"`
	Department      string `gorm:"default:''" json:"department"`
	AcademicYear    string `gorm:"default:''" json:"academicYear"`
	AcademicSession string `gorm:"default:''" json:"academicSession"`

	IsEmailVerified bool       `gorm:"default:false" json:"isEmailVerified"`
	LastLogin       *time.Time `gorm:"default:NULL" json:"lastLogin"`
	IsDeleted       bool       `gorm:"default:false" json:"isDeleted"`
}
