package app_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/floramart/flowerex/internal/app"
	"github.com/floramart/flowerex/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or each pooled conn would see its own empty memory db
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestMigrateAndSeed(t *testing.T) {
	a := app.NewApp(newTestDB(t))
	require.NoError(t, a.MigrateAndSeed())

	var count int64
	require.NoError(t, a.DB.Model(&domain.Flower{}).Count(&count).Error)
	require.EqualValues(t, 6, count)

	// a second run leaves the seeded taxonomy alone
	require.NoError(t, a.MigrateAndSeed())
	require.NoError(t, a.DB.Model(&domain.Flower{}).Count(&count).Error)
	require.EqualValues(t, 6, count)
}

func TestMigrateAndSeedReportsInsertErrors(t *testing.T) {
	db := newTestDB(t)
	a := app.NewApp(db)
	require.NoError(t, a.Migrate())

	// make every insert into flowers fail so the seed surfaces the error
	require.NoError(t, db.Exec(
		"CREATE TRIGGER flowers_ro BEFORE INSERT ON flowers BEGIN SELECT RAISE(ABORT, 'flowers is read only'); END",
	).Error)

	err := a.MigrateAndSeed()
	require.ErrorContains(t, err, "flowers is read only")
}
