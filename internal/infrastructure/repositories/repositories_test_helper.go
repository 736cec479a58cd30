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

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'user',
		avatar_url TEXT,
		password_hash TEXT,
		is_email_verified BOOLEAN NOT NULL DEFAULT 0,
		last_login_at DATETIME,
		is_banned BOOLEAN NOT NULL DEFAULT 0,
		ban_reason TEXT,
		banned_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createEmailVerificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE email_verifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		token TEXT,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		verified_at DATETIME
	);`)
}

func createPasswordResetTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reset_password (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		token TEXT,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		changed_at DATETIME
	);`)
}

func createMenuTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE menu_categories (
		id TEXT PRIMARY KEY,
		language TEXT NOT NULL DEFAULT 'EN',
		title TEXT NOT NULL,
		description TEXT,
		image_url TEXT,
		is_available BOOLEAN NOT NULL DEFAULT 1,
		position INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE menu_items (
		id TEXT PRIMARY KEY,
		category_id TEXT NOT NULL REFERENCES menu_categories(id) ON DELETE CASCADE,
		language TEXT NOT NULL DEFAULT 'EN',
		title TEXT NOT NULL,
		description TEXT,
		price TEXT NOT NULL,
		image_url TEXT,
		is_available BOOLEAN NOT NULL DEFAULT 1,
		position INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
