package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"positioning-server/db"
	"positioning-server/entities"
)

type beaconPgRepository struct {
	db db.Database
}

func NewBeaconPgRepository(database db.Database) BeaconRepository {
	return &beaconPgRepository{db: database}
}

func (r *beaconPgRepository) GetAll() ([]entities.Beacon, error) {
	beacons := []entities.Beacon{}
	err := r.db.GetDB().Find(&beacons).Error
	return beacons, err
}

func (r *beaconPgRepository) GetByKey(address string) ([]entities.Beacon, error) {
	beacons := []entities.Beacon{}
	err := r.db.GetDB().Where("beacon_address = ?", address).Find(&beacons).Error
	return beacons, err
}

func (r *beaconPgRepository) Create(beacon *entities.Beacon) error {
	err := r.db.GetDB().Create(beacon).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

// Upsert is a single conditional write: xmax is non-zero only when the row
// version was updated rather than freshly inserted, which is exactly the
// existed-before-write bit the handler needs for its 200/201 split.
func (r *beaconPgRepository) Upsert(beacon *entities.Beacon) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	if beacon.CreatedAt == "" {
		beacon.CreatedAt = now
	}
	beacon.UpdatedAt = now

	var x, y any
	if beacon.Coordinates != nil {
		x, y = beacon.Coordinates.X, beacon.Coordinates.Y
	}

	var existed bool
	err := r.db.GetDB().Raw(`
		INSERT INTO beacons (beacon_address, tx_power, coordinate_x, coordinate_y, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (beacon_address) DO UPDATE SET
			tx_power     = EXCLUDED.tx_power,
			coordinate_x = EXCLUDED.coordinate_x,
			coordinate_y = EXCLUDED.coordinate_y,
			updated_at   = EXCLUDED.updated_at
		RETURNING (xmax <> 0) AS existed`,
		beacon.BeaconAddress, beacon.TxPower, x, y, beacon.CreatedAt, beacon.UpdatedAt,
	).Scan(&existed).Error
	return existed, err
}

func (r *beaconPgRepository) DeleteByKey(address string) error {
	return r.db.GetDB().Where("beacon_address = ?", address).Delete(&entities.Beacon{}).Error
}

func (r *beaconPgRepository) DeleteAll() error {
	return r.db.GetDB().Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Beacon{}).Error
}
