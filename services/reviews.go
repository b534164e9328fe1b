package services

import (
	"errors"

	"github.com/shaanzeeeee/rate-punk/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewInput carries the submittable review fields.
type ReviewInput struct {
	GameID        uint
	Content       string
	Rating        int
	GreedScore    *int
	PlaytimeHours *float64
	GameVersion   *string
}

// CreateReview persists a new review and grants any newly reached badges in
// one transaction. A second review by the same user for the same game is
// rejected with ErrDuplicateReview; the duplicate check runs inside the
// transaction, and CleanupDuplicateReviews remains as the batch repair for
// rows that predate this enforcement.
func CreateReview(db *gorm.DB, userID uint, in ReviewInput) (*models.Review, []models.Badge, error) {
	var game models.Game
	if err := db.Select("id").First(&game, in.GameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrGameNotFound
		}
		return nil, nil, err
	}

	var review models.Review
	var badges []models.Badge
	err := db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Review{}).
			Where("user_id = ? AND game_id = ?", userID, in.GameID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateReview
		}

		review = models.Review{
			UserID:        userID,
			GameID:        in.GameID,
			Content:       in.Content,
			Rating:        in.Rating,
			GreedScore:    in.GreedScore,
			PlaytimeHours: in.PlaytimeHours,
			GameVersion:   in.GameVersion,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var err error
		badges, err = AwardReviewBadges(tx, userID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return &review, badges, nil
}

// ApplyTag attaches a community tag to a game, bumping the occurrence count
// when the tag already exists. The count is only ever incremented.
func ApplyTag(db *gorm.DB, gameID uint, tag string) (*models.GameTag, error) {
	var game models.Game
	if err := db.Select("id").First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	gt := models.GameTag{GameID: gameID, Tag: tag, Count: 1}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "tag"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
	}).Create(&gt).Error; err != nil {
		return nil, err
	}

	var out models.GameTag
	if err := db.Where("game_id = ? AND tag = ?", gameID, tag).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportGame creates a catalog entry, refusing a slug that already exists.
// The create goes straight at the unique slug index so concurrent imports of
// the same slug cannot race past a pre-check; the loser re-reads the winner's
// row and returns it alongside ErrDuplicateSlug so the caller can surface it.
func ImportGame(db *gorm.DB, game *models.Game) (*models.Game, error) {
	if err := db.Create(game).Error; err != nil {
		var existing models.Game
		if lookupErr := db.Where("slug = ?", game.Slug).First(&existing).Error; lookupErr == nil {
			return &existing, ErrDuplicateSlug
		}
		return nil, err
	}
	return game, nil
}
