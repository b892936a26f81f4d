package repositories

import (
	"errors"

	"positioning-server/entities"
)

// ErrConflict reports an insert whose unique key is already taken.
var ErrConflict = errors.New("record already exists")

// EntityStore holds mutable, key-unique records. Implementations may back it
// with any engine that offers an atomic conditional write for Upsert.
type EntityStore[T any] interface {
	GetAll() ([]T, error)
	// GetByKey returns the matching records as a slice; an unknown key
	// yields an empty slice, not an error.
	GetByKey(key string) ([]T, error)
	// Create inserts a new record. ErrConflict when the unique key exists.
	Create(record *T) error
	// Upsert writes the record under its key and reports whether a record
	// existed there before the write. The existed bit must come from the
	// same atomic write that stores the record.
	Upsert(record *T) (existed bool, err error)
	// DeleteByKey removes the record; deleting an unknown key is a no-op.
	DeleteByKey(key string) error
	DeleteAll() error
}

// TimeSeriesStore holds append-only records ordered by a time identifier
// derived from each record's client-supplied timestamp. No update exists.
type TimeSeriesStore[T any] interface {
	// Insert derives the record's time identifier from its timestamp and
	// stores it; the identifier is set on the record before returning.
	Insert(record *T) error
	ListAll() ([]T, error)
	DeleteAll() error
}

// PartitionedTimeSeriesStore adds partition-scoped reads and deletes for
// series keyed by a natural partition key.
type PartitionedTimeSeriesStore[T any] interface {
	TimeSeriesStore[T]
	ListByPartition(key string) ([]T, error)
	// DeleteByPartition removes the partition's rows; an empty partition is
	// a no-op, not an error.
	DeleteByPartition(key string) error
}

type BeaconRepository = EntityStore[entities.Beacon]

type PointOfInterestRepository = EntityStore[entities.PointOfInterest]

type MeasurementRepository = PartitionedTimeSeriesStore[entities.Measurement]

type PredictionRepository = TimeSeriesStore[entities.PredictedCoordinate]

type CheckpointRepository = TimeSeriesStore[entities.Checkpoint]
