package models

import "gorm.io/gorm"

// Application is one job application. One row per (job, email): the
// composite unique index surfaces a duplicate submission as a conflict
// the controller maps to a duplicate-specific message.
type Application struct {
	gorm.Model
	JobID      uint   `gorm:"not null;uniqueIndex:idx_job_email" json:"jobId"`
	Email      string `gorm:"not null;uniqueIndex:idx_job_email" json:"email"`
	Name       string `gorm:"not null" json:"name"`
	Phone      string `gorm:"default:''" json:"phone"`
	ResumePath string `gorm:"default:''" json:"resumePath"`
	CoverNote  string `gorm:"type:text" json:"coverNote"`
	Status     string `gorm:"type:varchar(20);default:'submitted'" json:"status"`
	IsDeleted  bool   `gorm:"default:false" json:"isDeleted"`

	Job Job `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
