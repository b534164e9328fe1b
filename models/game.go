package models

import "gorm.io/gorm"

// Catalog entry. Slug is the public identifier used in URLs.
type Game struct {
	gorm.Model
	Slug           string  `gorm:"uniqueIndex;size:191" json:"slug"`
	Title          string  `gorm:"size:255;not null" json:"title"`
	Description    *string `gorm:"type:text" json:"description,omitempty"`
	CoverURL       *string `gorm:"size:512" json:"cover_url,omitempty"`
	Genre          *string `gorm:"size:64" json:"genre,omitempty"`
	CurrentVersion *string `gorm:"size:64" json:"current_version,omitempty"`

	Reviews            []Review            `gorm:"foreignKey:GameID"`
	GameTags           []GameTag           `gorm:"foreignKey:GameID"`
	PerformanceReports []PerformanceReport `gorm:"foreignKey:GameID"`
	AccessibilityVotes []AccessibilityVote `gorm:"foreignKey:GameID"`
}

func (Game) TableName() string { return "games" }

// Count is bumped each time the tag is re-applied, never recomputed.
type GameTag struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	GameID uint   `gorm:"uniqueIndex:idx_game_tag;not null" json:"game_id"`
	Game   *Game  `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Tag    string `gorm:"uniqueIndex:idx_game_tag;size:64;not null" json:"tag"`
	Count  int    `gorm:"default:1" json:"count"`
}

func (GameTag) TableName() string { return "game_tags" }
