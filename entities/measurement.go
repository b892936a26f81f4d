package entities

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"positioning-server/timeid"
)

func init() {
	// decimal fields go over the wire as bare JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Measurement is a single RSSI reading for a beacon. Rows are write-once:
// the time identifier is derived from the client-supplied timestamp on
// insert and doubles as the sort key within a beacon's partition.
type Measurement struct {
	BeaconAddress string          `gorm:"primaryKey;type:varchar(64)" json:"beaconAddress"`
	TimeID        snowflake.ID    `gorm:"primaryKey;autoIncrement:false" json:"timeId"`
	Timestamp     int64           `gorm:"-" json:"timestamp"`
	RSSI          int             `gorm:"column:rssi" json:"rssi"`
	Distance      decimal.Decimal `gorm:"type:numeric" json:"distance"`
	Channel       int             `json:"channel"`
}

func (m *Measurement) AfterFind(tx *gorm.DB) (err error) {
	m.Timestamp = timeid.Timestamp(m.TimeID)
	return nil
}
