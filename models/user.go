package models

import (
	"time"

	"gorm.io/gorm"
)

// Registered account. Password stores the bcrypt hash only.
type Users struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;size:64" json:"username"`
	Email    string `gorm:"uniqueIndex;size:191" json:"email"`
	Password string `json:"-"`

	Reviews            []Review            `gorm:"foreignKey:UserID"`
	Votes              []ReviewVote        `gorm:"foreignKey:VoterID"`
	PerformanceReports []PerformanceReport `gorm:"foreignKey:UserID"`
	AccessibilityVotes []AccessibilityVote `gorm:"foreignKey:UserID"`
	Badges             []Badge             `gorm:"foreignKey:UserID"`
}

func (Users) TableName() string { return "users" }

// Badge types are awarded once per user, keyed by review-count milestones.
type Badge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      *Users    `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Type      string    `gorm:"size:64;not null" json:"type"`
	Metadata  string    `gorm:"size:255" json:"metadata,omitempty"`
	AwardedAt time.Time `gorm:"autoCreateTime" json:"awarded_at"`
}

func (Badge) TableName() string { return "badges" }
