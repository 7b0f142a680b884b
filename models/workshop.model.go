package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkshopCategory selects the signup mode shown to anonymous visitors
type WorkshopCategory string

const (
	WorkshopCategoryAcademic WorkshopCategory = "academic"
	WorkshopCategoryOther    WorkshopCategory = "other"
)

// WorkshopStatus defines the lifecycle state of a workshop
type WorkshopStatus string

const (
	WorkshopStatusDraft     WorkshopStatus = "draft"
	WorkshopStatusPublished WorkshopStatus = "published"
	WorkshopStatusCompleted WorkshopStatus = "completed"
	WorkshopStatusCancelled WorkshopStatus = "cancelled"
)

type Workshop struct {
	gorm.Model
	Title       string           `gorm:"not null" json:"title"`
	Slug        string           `gorm:"unique;not null" json:"slug"`
	Description string           `gorm:"type:text" json:"description"`
	Category    WorkshopCategory `gorm:"type:varchar(20);default:'other'" json:"category"`

	// Regular price is always set; 0 means the workshop is free.
	// Offer price, when > 0, must not exceed the regular price.
	// Earlybird price applies only while confirmed enrollments < EarlybirdsCount.
	PriceRegular    float64 `gorm:"not null;default:0" json:"priceRegular"`
	PriceOffer      float64 `gorm:"default:0" json:"priceOffer"`
	PriceEarlybirds float64 `gorm:"default:0" json:"priceEarlybirds"`
	EarlybirdsCount int     `gorm:"default:0" json:"earlybirdsCount"`

	Capacity  int            `gorm:"default:0" json:"capacity"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Status    WorkshopStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
	IsDeleted bool           `gorm:"default:false" json:"isDeleted"`
}
