package models

import (
	"time"

	"gorm.io/gorm"
)

type Reading struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Timestamp     time.Time      `gorm:"not null;index" json:"timestamp"`
	LedMask       uint32         `gorm:"not null;default:0" json:"led_mask"`
	CapsLock      bool           `gorm:"not null;default:false" json:"caps_lock"`
	NumLock       bool           `gorm:"not null;default:false" json:"num_lock"`
	DisplayServer string         `gorm:"not null" json:"display_server"` // protocol the reading was taken over, "x11"
	SessionType   string         `gorm:"not null;default:''" json:"session_type"` // "x11", "wayland" (XWayland) or "unknown"
	CreatedAt     time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
