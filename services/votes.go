package services

import (
	"errors"

	"github.com/shaanzeeeee/rate-punk/models"

	"gorm.io/gorm"
)

// CastVote applies a helpfulness vote by voterID on reviewID. value is -1, +1,
// or 0 to retract. It returns the resulting vote row (nil after a retraction)
// and the review's new upvote total.
//
// The vote row mutation and the counter adjustment commit as one transaction,
// and the counter is always moved by a relative delta, so after any sequence
// of calls review.upvotes equals the sum of its persisted vote values. The
// unique index on (voter_id, review_id) keeps concurrent same-user votes from
// creating duplicate rows.
func CastVote(db *gorm.DB, voterID, reviewID uint, value int) (*models.ReviewVote, int, error) {
	if value != -1 && value != 0 && value != 1 {
		return nil, 0, ErrInvalidVoteValue
	}

	var result *models.ReviewVote
	var upvotes int
	err := db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.Select("id", "user_id", "upvotes").First(&review, reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReviewNotFound
			}
			return err
		}
		if review.UserID == voterID {
			return ErrSelfVote
		}

		var existing models.ReviewVote
		err := tx.Where("voter_id = ? AND review_id = ?", voterID, reviewID).First(&existing).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var delta int
		switch {
		case value == 0 && !found:
			// nothing to retract
			upvotes = review.Upvotes
			return nil
		case value == 0:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			delta = -existing.Value
		case found && existing.Value == value:
			// idempotent re-vote
			result = &existing
			upvotes = review.Upvotes
			return nil
		case found:
			// Update writes value back into existing, so take the delta first
			delta = value - existing.Value
			if err := tx.Model(&existing).Update("value", value).Error; err != nil {
				return err
			}
			existing.Value = value
			result = &existing
		default:
			vote := models.ReviewVote{VoterID: voterID, ReviewID: reviewID, Value: value}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			delta = value
			result = &vote
		}

		if err := tx.Model(&models.Review{}).
			Where("id = ?", reviewID).
			UpdateColumn("upvotes", gorm.Expr("upvotes + ?", delta)).Error; err != nil {
			return err
		}
		var after models.Review
		if err := tx.Select("upvotes").First(&after, reviewID).Error; err != nil {
			return err
		}
		upvotes = after.Upvotes
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return result, upvotes, nil
}

// GetVote returns voterID's current vote on reviewID, or nil when there is
// none. voterID 0 (unauthenticated) is never an error.
func GetVote(db *gorm.DB, voterID, reviewID uint) (*models.ReviewVote, error) {
	if voterID == 0 {
		return nil, nil
	}
	var vote models.ReviewVote
	err := db.Where("voter_id = ? AND review_id = ?", voterID, reviewID).First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}
