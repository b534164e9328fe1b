package services

import (
	"errors"
	"fmt"

	"github.com/shaanzeeeee/rate-punk/models"

	"gorm.io/gorm"
)

// Review-count milestones, checked in ascending order.
var badgeMilestones = []struct {
	Count int
	Type  string
}{
	{1, "first_review"},
	{10, "seasoned_reviewer"},
	{50, "critic_legend"},
}

// AwardReviewBadges grants any milestone badges the user has newly earned.
// Each type is granted at most once. Called inside the review-creation
// transaction so a failed award rolls the review back too.
func AwardReviewBadges(tx *gorm.DB, userID uint) ([]models.Badge, error) {
	var reviewCount int64
	if err := tx.Model(&models.Review{}).Where("user_id = ?", userID).Count(&reviewCount).Error; err != nil {
		return nil, err
	}

	var awarded []models.Badge
	for _, m := range badgeMilestones {
		if reviewCount < int64(m.Count) {
			break
		}
		var existing models.Badge
		err := tx.Where("user_id = ? AND type = ?", userID, m.Type).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		badge := models.Badge{
			UserID:   userID,
			Type:     m.Type,
			Metadata: fmt.Sprintf("reviews=%d", m.Count),
		}
		if err := tx.Create(&badge).Error; err != nil {
			return nil, err
		}
		awarded = append(awarded, badge)
	}
	return awarded, nil
}
