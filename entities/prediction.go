package entities

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"positioning-server/timeid"
)

// PredictedCoordinate is a position fix produced by the positioning
// algorithm. Single global partition, ordered by time identifier.
type PredictedCoordinate struct {
	TimeID     snowflake.ID    `gorm:"primaryKey;autoIncrement:false" json:"timeId"`
	Timestamp  int64           `gorm:"-" json:"timestamp"`
	X          decimal.Decimal `gorm:"type:numeric" json:"x"`
	Y          decimal.Decimal `gorm:"type:numeric" json:"y"`
	Confidence decimal.Decimal `gorm:"type:numeric" json:"confidence"`
}

func (p *PredictedCoordinate) AfterFind(tx *gorm.DB) (err error) {
	p.Timestamp = timeid.Timestamp(p.TimeID)
	return nil
}
