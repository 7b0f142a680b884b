package models

import "gorm.io/gorm"

type AmbassadorApplication struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"unique;not null" json:"email"`
	Phone       string `gorm:"default:''" json:"phone"`
	Institution string `gorm:"default:''" json:"institution"`
	Motivation  string `gorm:"type:text" json:"motivation"`
	Status      string `gorm:"type:varchar(20);default:'submitted'" json:"status"` // submitted, approved, rejected
	IsDeleted   bool   `gorm:"default:false" json:"isDeleted"`
}
