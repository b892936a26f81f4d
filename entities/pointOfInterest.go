package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointOfInterest is a named circular area on the indoor map.
type PointOfInterest struct {
	ID          string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Coordinates Coordinates `gorm:"embedded;embeddedPrefix:coordinate_" json:"coordinates"`
	Radius      float64     `json:"radius"`
	CreatedAt   string      `gorm:"type:varchar(64)" json:"created_at"`
	UpdatedAt   string      `gorm:"type:varchar(64)" json:"updated_at"`
}

func (PointOfInterest) TableName() string { return "points_of_interest" }

func (p *PointOfInterest) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if p.CreatedAt == "" {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return nil
}
