package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// repo測試需要真實postgres, 沒有設定TEST_DB_HOST就跳過
func testDbDao(t *testing.T) *DbDao {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping repository tests")
	}

	name := os.Getenv("TEST_DB_NAME")
	if name == "" {
		name = "lab_shopcenter"
	}
	port := os.Getenv("TEST_DB_PORT")
	if port == "" {
		port = "5432"
	}
	user := os.Getenv("TEST_DB_USER")
	if user == "" {
		user = "royce"
	}
	pas := os.Getenv("TEST_DB_PASSWORD")
	if pas == "" {
		pas = "password"
	}

	conn, err := GetDbConn(name, host, port, user, pas)
	require.NoError(t, err)

	dbDao := NewDbDao(conn)
	require.NoError(t, dbDao.InitMigrate())
	return dbDao
}
