package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentPurpose tells which foreign key is populated on a payment row
type PaymentPurpose string

const (
	PaymentPurposeWorkshop PaymentPurpose = "workshop"
	PaymentPurposeCourse   PaymentPurpose = "course"
	PaymentPurposeBook     PaymentPurpose = "book"
)

// PaymentStatus defines the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusSuccessful PaymentStatus = "successful"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Payment tracks one gateway checkout attempt. Created pending at
// initiation, moved to successful/failed by the gateway callback, and
// afterwards mutable only through the admin correction endpoint.
type Payment struct {
	gorm.Model
	UserID  uint           `gorm:"not null;index" json:"userId"`
	Purpose PaymentPurpose `gorm:"type:varchar(20);not null" json:"purpose"`

	// Exactly one of these is set, matching Purpose
	WorkshopID *uint `json:"workshopId"`
	CourseID   *uint `json:"courseId"`
	BookID     *uint `json:"bookId"`

	// NULL until the gateway callback fills it; pending rows must not
	// collide on the unique index, and only NULLs are distinct there.
	InvoiceID        string  `gorm:"type:varchar(64);uniqueIndex;not null" json:"invoiceId"`
	GatewayPaymentID *string `gorm:"type:varchar(100);uniqueIndex" json:"gatewayPaymentId"` // idempotency key for callbacks

	Amount         float64       `gorm:"not null" json:"amount"`
	Currency       string        `gorm:"type:varchar(10);default:'BDT'" json:"currency"`
	PaymentChannel string        `gorm:"type:varchar(30);default:'bkash'" json:"paymentChannel"`
	Status         PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsVerified     bool          `gorm:"default:false" json:"isVerified"`

	GatewayResponse datatypes.JSON `json:"gatewayResponse"` // raw callback payload, kept for audits

	IsDeleted bool `gorm:"default:false" json:"isDeleted"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
