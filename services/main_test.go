package services_test

import (
	"fmt"
	"testing"

	"github.com/shaanzeeeee/rate-punk/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Each test gets its own named in-memory database; cache=shared keeps it
// alive across the pool's connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Users{},
		&models.Badge{},
		&models.Game{},
		&models.GameTag{},
		&models.Review{},
		&models.ReviewVote{},
		&models.PerformanceReport{},
		&models.AccessibilityVote{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.Users {
	t.Helper()
	u := models.Users{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func createGame(t *testing.T, db *gorm.DB, slug string) models.Game {
	t.Helper()
	g := models.Game{Slug: slug, Title: slug}
	require.NoError(t, db.Create(&g).Error)
	return g
}

func createReview(t *testing.T, db *gorm.DB, userID, gameID uint, rating int) models.Review {
	t.Helper()
	r := models.Review{UserID: userID, GameID: gameID, Content: "review", Rating: rating}
	require.NoError(t, db.Create(&r).Error)
	return r
}

// sumVotes recomputes the true vote total for a review from the ledger rows.
func sumVotes(t *testing.T, db *gorm.DB, reviewID uint) int {
	t.Helper()
	var sum *int
	require.NoError(t, db.Model(&models.ReviewVote{}).
		Where("review_id = ?", reviewID).
		Select("SUM(value)").
		Scan(&sum).Error)
	if sum == nil {
		return 0
	}
	return *sum
}

func reviewUpvotes(t *testing.T, db *gorm.DB, reviewID uint) int {
	t.Helper()
	var r models.Review
	require.NoError(t, db.First(&r, reviewID).Error)
	return r.Upvotes
}
