package models

import "time"

// Hardware performance datapoint submitted by a player.
type PerformanceReport struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	User       *Users    `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	GameID     uint      `gorm:"index;not null" json:"game_id"`
	Game       *Game     `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	GPU        string    `gorm:"size:64;not null" json:"gpu"`
	CPU        string    `gorm:"size:64;not null" json:"cpu"`
	Resolution string    `gorm:"size:16;default:1080p" json:"resolution"`
	AvgFps     int       `gorm:"not null" json:"avg_fps"`
	Settings   string    `gorm:"size:16;default:High" json:"settings"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PerformanceReport) TableName() string { return "performance_reports" }

// Per-feature attestation that a game supports it.
type AccessibilityVote struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	User            *Users    `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	GameID          uint      `gorm:"index;not null" json:"game_id"`
	Game            *Game     `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ColorblindMode  bool      `gorm:"default:false" json:"colorblind_mode"`
	Subtitles       bool      `gorm:"default:false" json:"subtitles"`
	RemappableKeys  bool      `gorm:"default:false" json:"remappable_keys"`
	DifficultyModes bool      `gorm:"default:false" json:"difficulty_modes"`
	ScreenReader    bool      `gorm:"default:false" json:"screen_reader"`
	OneHandedMode   bool      `gorm:"default:false" json:"one_handed_mode"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AccessibilityVote) TableName() string { return "accessibility_votes" }
