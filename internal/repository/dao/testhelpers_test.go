package dao

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/bakery-api/internal/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "bakery.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	require.NoError(t, InitTables(gdb))

	return gdb
}

func seedBakery(t *testing.T, gdb *gorm.DB, name string) Bakery {
	t.Helper()

	bakery := Bakery{Name: name}
	require.NoError(t, gdb.Create(&bakery).Error)

	return bakery
}

func seedBakedGood(t *testing.T, gdb *gorm.DB, name string, price float64, bakeryID uint) BakedGood {
	t.Helper()

	good := BakedGood{Name: name, Price: price, BakeryID: bakeryID}
	require.NoError(t, gdb.Create(&good).Error)

	return good
}
