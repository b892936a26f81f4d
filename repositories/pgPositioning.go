package repositories

import (
	"positioning-server/db"
	"positioning-server/entities"
	"positioning-server/timeid"
)

type predictionPgRepository struct {
	db  db.Database
	gen *timeid.Generator
}

func NewPredictionPgRepository(database db.Database, gen *timeid.Generator) PredictionRepository {
	return &predictionPgRepository{db: database, gen: gen}
}

func (r *predictionPgRepository) Insert(p *entities.PredictedCoordinate) error {
	p.TimeID = r.gen.Next(p.Timestamp)
	return r.db.GetDB().Create(p).Error
}

func (r *predictionPgRepository) ListAll() ([]entities.PredictedCoordinate, error) {
	rows := []entities.PredictedCoordinate{}
	err := r.db.GetDB().Order("time_id ASC").Find(&rows).Error
	return rows, err
}

func (r *predictionPgRepository) DeleteAll() error {
	return r.db.GetDB().Exec("TRUNCATE TABLE predicted_coordinates").Error
}

type checkpointPgRepository struct {
	db  db.Database
	gen *timeid.Generator
}

func NewCheckpointPgRepository(database db.Database, gen *timeid.Generator) CheckpointRepository {
	return &checkpointPgRepository{db: database, gen: gen}
}

func (r *checkpointPgRepository) Insert(cp *entities.Checkpoint) error {
	cp.TimeID = r.gen.Next(cp.Timestamp)
	return r.db.GetDB().Create(cp).Error
}

func (r *checkpointPgRepository) ListAll() ([]entities.Checkpoint, error) {
	rows := []entities.Checkpoint{}
	err := r.db.GetDB().Order("time_id ASC").Find(&rows).Error
	return rows, err
}

func (r *checkpointPgRepository) DeleteAll() error {
	return r.db.GetDB().Exec("TRUNCATE TABLE checkpoints").Error
}
