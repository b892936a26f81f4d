package httpHandler

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"positioning-server/entities"
	"positioning-server/repositories"
	"positioning-server/timeid"
)

// In-memory stands-ins for the Postgres repositories, honoring the same
// store contracts (tolerant lookup, conflict on create, existed-before-write
// on upsert, idempotent deletes, ascending time order).

type memBeaconStore struct {
	mu      sync.Mutex
	beacons map[string]entities.Beacon
	fail    error
}

func newMemBeaconStore() *memBeaconStore {
	return &memBeaconStore{beacons: map[string]entities.Beacon{}}
}

func (s *memBeaconStore) GetAll() ([]entities.Beacon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	out := []entities.Beacon{}
	for _, b := range s.beacons {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BeaconAddress < out[j].BeaconAddress })
	return out, nil
}

func (s *memBeaconStore) GetByKey(address string) ([]entities.Beacon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	out := []entities.Beacon{}
	if b, ok := s.beacons[address]; ok {
		out = append(out, b)
	}
	return out, nil
}

func (s *memBeaconStore) Create(b *entities.Beacon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	if _, ok := s.beacons[b.BeaconAddress]; ok {
		return repositories.ErrConflict
	}
	s.beacons[b.BeaconAddress] = *b
	return nil
}

func (s *memBeaconStore) Upsert(b *entities.Beacon) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return false, s.fail
	}
	_, existed := s.beacons[b.BeaconAddress]
	s.beacons[b.BeaconAddress] = *b
	return existed, nil
}

func (s *memBeaconStore) DeleteByKey(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	delete(s.beacons, address)
	return nil
}

func (s *memBeaconStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.beacons = map[string]entities.Beacon{}
	return nil
}

type memPoiStore struct {
	mu   sync.Mutex
	pois map[string]entities.PointOfInterest
}

func newMemPoiStore() *memPoiStore {
	return &memPoiStore{pois: map[string]entities.PointOfInterest{}}
}

func (s *memPoiStore) GetAll() ([]entities.PointOfInterest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entities.PointOfInterest{}
	for _, p := range s.pois {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memPoiStore) GetByKey(id string) ([]entities.PointOfInterest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entities.PointOfInterest{}
	if p, ok := s.pois[id]; ok {
		out = append(out, p)
	}
	return out, nil
}

func (s *memPoiStore) Create(p *entities.PointOfInterest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if _, ok := s.pois[p.ID]; ok {
		return repositories.ErrConflict
	}
	s.pois[p.ID] = *p
	return nil
}

func (s *memPoiStore) Upsert(p *entities.PointOfInterest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, existed := s.pois[p.ID]
	s.pois[p.ID] = *p
	return existed, nil
}

func (s *memPoiStore) DeleteByKey(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pois, id)
	return nil
}

func (s *memPoiStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pois = map[string]entities.PointOfInterest{}
	return nil
}

type memMeasurementStore struct {
	mu   sync.Mutex
	gen  *timeid.Generator
	rows []entities.Measurement
}

func newMemMeasurementStore(gen *timeid.Generator) *memMeasurementStore {
	return &memMeasurementStore{gen: gen}
}

func (s *memMeasurementStore) Insert(m *entities.Measurement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.TimeID = s.gen.Next(m.Timestamp)
	s.rows = append(s.rows, *m)
	return nil
}

func (s *memMeasurementStore) ListAll() ([]entities.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]entities.Measurement{}, s.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].TimeID < out[j].TimeID })
	return out, nil
}

func (s *memMeasurementStore) ListByPartition(address string) ([]entities.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entities.Measurement{}
	for _, m := range s.rows {
		if m.BeaconAddress == address {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeID < out[j].TimeID })
	return out, nil
}

func (s *memMeasurementStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	return nil
}

func (s *memMeasurementStore) DeleteByPartition(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rows[:0]
	for _, m := range s.rows {
		if m.BeaconAddress != address {
			kept = append(kept, m)
		}
	}
	s.rows = kept
	return nil
}

type memPredictionStore struct {
	mu   sync.Mutex
	gen  *timeid.Generator
	rows []entities.PredictedCoordinate
}

func newMemPredictionStore(gen *timeid.Generator) *memPredictionStore {
	return &memPredictionStore{gen: gen}
}

func (s *memPredictionStore) Insert(p *entities.PredictedCoordinate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.TimeID = s.gen.Next(p.Timestamp)
	s.rows = append(s.rows, *p)
	return nil
}

func (s *memPredictionStore) ListAll() ([]entities.PredictedCoordinate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]entities.PredictedCoordinate{}, s.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].TimeID < out[j].TimeID })
	return out, nil
}

func (s *memPredictionStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	return nil
}

type memCheckpointStore struct {
	mu   sync.Mutex
	gen  *timeid.Generator
	rows []entities.Checkpoint
}

func newMemCheckpointStore(gen *timeid.Generator) *memCheckpointStore {
	return &memCheckpointStore{gen: gen}
}

func (s *memCheckpointStore) Insert(cp *entities.Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp.TimeID = s.gen.Next(cp.Timestamp)
	s.rows = append(s.rows, *cp)
	return nil
}

func (s *memCheckpointStore) ListAll() ([]entities.Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]entities.Checkpoint{}, s.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].TimeID < out[j].TimeID })
	return out, nil
}

func (s *memCheckpointStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	return nil
}
