package models

import "gorm.io/gorm"

// Enrollment joins a user to a workshop or a course. Exactly one of
// WorkshopID/CourseID is set. The unique indexes make confirmation
// idempotent: a duplicate gateway callback hits the constraint instead
// of creating a second row.
type Enrollment struct {
	gorm.Model
	UserID     uint   `gorm:"not null;index;uniqueIndex:idx_user_workshop;uniqueIndex:idx_user_course" json:"userId"`
	WorkshopID *uint  `gorm:"uniqueIndex:idx_user_workshop" json:"workshopId"`
	CourseID   *uint  `gorm:"uniqueIndex:idx_user_course" json:"courseId"`
	Status     string `gorm:"default:'ENROLLED'" json:"status"`
	IsDeleted  bool   `gorm:"default:false" json:"isDeleted"`

	User     User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Workshop *Workshop `gorm:"foreignKey:WorkshopID" json:"workshop,omitempty"`
	Course   *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
