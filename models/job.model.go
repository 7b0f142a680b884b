package models

import (
	"time"

	"gorm.io/gorm"
)

type Job struct {
	gorm.Model
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"default:''" json:"location"`
	Deadline    time.Time `json:"deadline"`
	Status      string    `gorm:"type:varchar(20);default:'open'" json:"status"` // open, closed
	IsDeleted   bool      `gorm:"default:false" json:"isDeleted"`
}
