package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title        string  `gorm:"not null" json:"title"`
	Slug         string  `gorm:"unique;not null" json:"slug"`
	Description  string  `gorm:"type:text" json:"description"`
	PriceRegular float64 `gorm:"not null;default:0" json:"priceRegular"`
	PriceOffer   float64 `gorm:"default:0" json:"priceOffer"`
	Status       string  `gorm:"type:varchar(20);default:'draft'" json:"status"` // draft, published, archived
	IsDeleted    bool    `gorm:"default:false" json:"isDeleted"`
}
