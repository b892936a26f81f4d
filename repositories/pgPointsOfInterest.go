package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"positioning-server/db"
	"positioning-server/entities"
)

type poiPgRepository struct {
	db db.Database
}

func NewPointOfInterestPgRepository(database db.Database) PointOfInterestRepository {
	return &poiPgRepository{db: database}
}

func (r *poiPgRepository) GetAll() ([]entities.PointOfInterest, error) {
	pois := []entities.PointOfInterest{}
	err := r.db.GetDB().Find(&pois).Error
	return pois, err
}

func (r *poiPgRepository) GetByKey(id string) ([]entities.PointOfInterest, error) {
	pois := []entities.PointOfInterest{}
	err := r.db.GetDB().Where("id = ?", id).Find(&pois).Error
	return pois, err
}

func (r *poiPgRepository) Create(poi *entities.PointOfInterest) error {
	// ids are store-assigned; a conflict would mean a uuid collision
	err := r.db.GetDB().Create(poi).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

// Upsert keyed by the caller-supplied id; see beaconPgRepository.Upsert for
// the xmax trick.
func (r *poiPgRepository) Upsert(poi *entities.PointOfInterest) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	if poi.CreatedAt == "" {
		poi.CreatedAt = now
	}
	poi.UpdatedAt = now

	var existed bool
	err := r.db.GetDB().Raw(`
		INSERT INTO points_of_interest (id, name, description, coordinate_x, coordinate_y, radius, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name         = EXCLUDED.name,
			description  = EXCLUDED.description,
			coordinate_x = EXCLUDED.coordinate_x,
			coordinate_y = EXCLUDED.coordinate_y,
			radius       = EXCLUDED.radius,
			updated_at   = EXCLUDED.updated_at
		RETURNING (xmax <> 0) AS existed`,
		poi.ID, poi.Name, poi.Description, poi.Coordinates.X, poi.Coordinates.Y,
		poi.Radius, poi.CreatedAt, poi.UpdatedAt,
	).Scan(&existed).Error
	return existed, err
}

func (r *poiPgRepository) DeleteByKey(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.PointOfInterest{}).Error
}

func (r *poiPgRepository) DeleteAll() error {
	return r.db.GetDB().Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.PointOfInterest{}).Error
}
