package services

import (
	"github.com/shaanzeeeee/rate-punk/log"
	"github.com/shaanzeeeee/rate-punk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CleanupDuplicateReviews deletes every review that duplicates an earlier one
// by the same user for the same game, keeping the row with the earliest
// creation time (ties: lowest id). Running it again deletes nothing. Meant as
// an offline batch repair, not a request-path operation: CreateReview rejects
// new duplicates, this cleans up legacy rows.
func CleanupDuplicateReviews(db *gorm.DB) (int64, error) {
	type pair struct {
		UserID uint
		GameID uint
		N      int64
	}
	var dups []pair
	if err := db.Model(&models.Review{}).
		Select("user_id, game_id, COUNT(*) AS n").
		Group("user_id, game_id").
		Having("COUNT(*) > 1").
		Scan(&dups).Error; err != nil {
		return 0, err
	}

	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, d := range dups {
			var reviews []models.Review
			if err := tx.Where("user_id = ? AND game_id = ?", d.UserID, d.GameID).
				Order("created_at ASC, id ASC").
				Find(&reviews).Error; err != nil {
				return err
			}
			if len(reviews) < 2 {
				continue
			}
			ids := make([]uint, 0, len(reviews)-1)
			for _, r := range reviews[1:] {
				ids = append(ids, r.ID)
			}
			res := tx.Unscoped().Delete(&models.Review{}, ids)
			if res.Error != nil {
				return res.Error
			}
			deleted += res.RowsAffected
			log.L().Info("removed duplicate reviews",
				zap.Uint("user_id", d.UserID),
				zap.Uint("game_id", d.GameID),
				zap.Int("count", len(ids)),
			)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
