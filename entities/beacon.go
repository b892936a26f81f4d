package entities

import (
	"time"

	"gorm.io/gorm"
)

// Coordinates is a 2D position on the indoor map grid.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Beacon is a registered BLE beacon. The address is the lookup key and is
// never reassigned after creation.
type Beacon struct {
	BeaconAddress string       `gorm:"primaryKey;type:varchar(64)" json:"beaconAddress"`
	TxPower       *int         `json:"txPower,omitempty"`
	Coordinates   *Coordinates `gorm:"embedded;embeddedPrefix:coordinate_" json:"coordinates,omitempty"`
	CreatedAt     string       `gorm:"type:varchar(64)" json:"created_at"`
	UpdatedAt     string       `gorm:"type:varchar(64)" json:"updated_at"`
}

func (b *Beacon) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now().UTC().Format(time.RFC3339)
	if b.CreatedAt == "" {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	return nil
}
