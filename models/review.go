package models

import (
	"time"

	"gorm.io/gorm"
)

// One review per (user, game), enforced by the creation transaction. The
// composite index is deliberately not unique: legacy databases carry
// duplicate rows that the -cleanup-reviews batch repairs, and a unique index
// could not even be migrated over them.
// Upvotes is a materialized counter kept in sync with review_votes inside the
// same transaction that mutates a vote row.
type Review struct {
	gorm.Model
	UserID        uint     `gorm:"index:idx_user_game;not null" json:"user_id"`
	User          *Users   `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	GameID        uint     `gorm:"index:idx_user_game;not null" json:"game_id"`
	Game          *Game    `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Content       string   `gorm:"type:text;not null" json:"content"`
	Rating        int      `gorm:"not null" json:"rating"` // 1-10
	GreedScore    *int     `json:"greed_score,omitempty"`  // 1-10, nil = no monetization data
	PlaytimeHours *float64 `json:"playtime_hours,omitempty"`
	GameVersion   *string  `gorm:"size:64" json:"game_version,omitempty"` // game's version at review time
	Upvotes       int      `gorm:"default:0" json:"upvotes"`

	Votes []ReviewVote `gorm:"foreignKey:ReviewID"`
}

func (Review) TableName() string { return "reviews" }

// Value is -1 or +1; a zero vote is expressed by deleting the row.
// No soft delete here: a removed vote must free the (voter, review) slot
// under the unique index so the user can vote again later.
type ReviewVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VoterID   uint      `gorm:"uniqueIndex:idx_voter_review;not null" json:"voter_id"`
	Voter     *Users    `gorm:"foreignKey:VoterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ReviewID  uint      `gorm:"uniqueIndex:idx_voter_review;not null" json:"review_id"`
	Review    *Review   `gorm:"foreignKey:ReviewID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Value     int       `gorm:"not null" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReviewVote) TableName() string { return "review_votes" }
