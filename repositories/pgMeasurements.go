package repositories

import (
	"positioning-server/db"
	"positioning-server/entities"
	"positioning-server/timeid"
)

type measurementPgRepository struct {
	db  db.Database
	gen *timeid.Generator
}

func NewMeasurementPgRepository(database db.Database, gen *timeid.Generator) MeasurementRepository {
	return &measurementPgRepository{db: database, gen: gen}
}

func (r *measurementPgRepository) Insert(m *entities.Measurement) error {
	m.TimeID = r.gen.Next(m.Timestamp)
	return r.db.GetDB().Create(m).Error
}

func (r *measurementPgRepository) ListAll() ([]entities.Measurement, error) {
	rows := []entities.Measurement{}
	err := r.db.GetDB().Order("time_id ASC").Find(&rows).Error
	return rows, err
}

func (r *measurementPgRepository) ListByPartition(address string) ([]entities.Measurement, error) {
	rows := []entities.Measurement{}
	err := r.db.GetDB().Where("beacon_address = ?", address).Order("time_id ASC").Find(&rows).Error
	return rows, err
}

func (r *measurementPgRepository) DeleteAll() error {
	return r.db.GetDB().Exec("TRUNCATE TABLE measurements").Error
}

func (r *measurementPgRepository) DeleteByPartition(address string) error {
	return r.db.GetDB().Where("beacon_address = ?", address).Delete(&entities.Measurement{}).Error
}
