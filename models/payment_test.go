package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite lives on a single connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&User{}, &Payment{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) User {
	t.Helper()
	user := User{Name: "Test User", Email: email, Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// Every initiation creates a pending row without a gateway payment id.
// Those rows must never collide with each other on the unique index.
func TestPendingPaymentsDoNotCollideOnGatewayID(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "pending@example.com")

	first := Payment{UserID: user.ID, Purpose: PaymentPurposeWorkshop, InvoiceID: "inv-1", Amount: 150}
	require.NoError(t, db.Create(&first).Error)

	second := Payment{UserID: user.ID, Purpose: PaymentPurposeCourse, InvoiceID: "inv-2", Amount: 300}
	require.NoError(t, db.Create(&second).Error)
}

func TestGatewayPaymentIDUniqueOnceSet(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "applied@example.com")

	trx := "TRX12345"
	first := Payment{UserID: user.ID, Purpose: PaymentPurposeWorkshop, InvoiceID: "inv-1", Amount: 150, GatewayPaymentID: &trx}
	require.NoError(t, db.Create(&first).Error)

	second := Payment{UserID: user.ID, Purpose: PaymentPurposeWorkshop, InvoiceID: "inv-2", Amount: 150, GatewayPaymentID: &trx}
	require.Error(t, db.Create(&second).Error)
}

func TestInvoiceIDUnique(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "invoice@example.com")

	first := Payment{UserID: user.ID, Purpose: PaymentPurposeWorkshop, InvoiceID: "inv-1", Amount: 150}
	require.NoError(t, db.Create(&first).Error)

	second := Payment{UserID: user.ID, Purpose: PaymentPurposeWorkshop, InvoiceID: "inv-1", Amount: 150}
	require.Error(t, db.Create(&second).Error)
}
