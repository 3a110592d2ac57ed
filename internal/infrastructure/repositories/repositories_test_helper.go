package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone_number TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		is_phone_verified BOOLEAN NOT NULL DEFAULT 0,
		has_shop_detail BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createWholesalerProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wholesaler_profiles (
		id TEXT PRIMARY KEY,
		wholesaler_id TEXT NOT NULL UNIQUE,
		shop_name TEXT,
		shop_number TEXT,
		shop_address TEXT,
		mandi_region TEXT,
		pincode TEXT,
		mon_to_sat_open TEXT DEFAULT '08:00 AM',
		mon_to_sat_close TEXT DEFAULT '08:00 PM',
		sunday_open TEXT DEFAULT '09:00 AM',
		sunday_close TEXT DEFAULT '06:00 PM',
		gst_number TEXT UNIQUE,
		business_certificate_url TEXT,
		kyc_status TEXT NOT NULL DEFAULT 'Pending',
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		is_shop_open BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE retailer_profiles (
		id TEXT PRIMARY KEY,
		account_id TEXT,
		name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		wholesaler_id TEXT NOT NULL,
		retailer_id TEXT NOT NULL,
		products TEXT NOT NULL DEFAULT '[]',
		delivery_address TEXT NOT NULL,
		delivery_date DATETIME,
		order_total REAL NOT NULL,
		payment_method TEXT NOT NULL DEFAULT 'cod',
		status TEXT NOT NULL DEFAULT 'pending',
		cancellation_reason TEXT,
		notes TEXT,
		vehicle_number TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCategoryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
