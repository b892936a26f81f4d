package entities

import (
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"positioning-server/timeid"
)

// Checkpoint marks a processing checkpoint reached at a given moment, used
// to line up recorded measurements with ground-truth positions.
type Checkpoint struct {
	TimeID     snowflake.ID `gorm:"primaryKey;autoIncrement:false" json:"timeId"`
	Timestamp  int64        `gorm:"-" json:"timestamp"`
	Checkpoint int          `gorm:"column:checkpoint" json:"checkpoint"`
}

func (c *Checkpoint) AfterFind(tx *gorm.DB) (err error) {
	c.Timestamp = timeid.Timestamp(c.TimeID)
	return nil
}
