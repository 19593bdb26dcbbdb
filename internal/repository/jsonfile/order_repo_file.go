// Package jsonfile persists the order log as a single JSON array on disk.
// Every mutation is a full read-modify-write of the whole collection, so no
// state survives in memory between operations and a process restart loses
// nothing. All mutations run under one mutex: two concurrent creates or a
// patch racing a create would otherwise overwrite each other's writes.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

type Store struct {
	mu     sync.Mutex
	path   string
	lastID int64
	log    zerolog.Logger
}

func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log.With().Str("component", "jsonfile").Logger()}
}

var _ repository.OrderRepository = (*Store)(nil)

func (s *Store) Create(draft domain.OrderDraft) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.read()
	order := domain.Order{
		ID:         s.nextID(orders),
		OrderDraft: draft,
		Status:     domain.StatusPending,
	}
	orders = append(orders, order)
	if err := s.write(orders); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *Store) Get(id int64) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.read() {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, repository.ErrNotFound
}

func (s *Store) List() ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(), nil
}

func (s *Store) Patch(id int64, patch domain.OrderPatch) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.read()
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Apply(patch)
		orders[i].ID = id
		if err := s.write(orders); err != nil {
			return domain.Order{}, err
		}
		return orders[i], nil
	}
	return domain.Order{}, repository.ErrNotFound
}

// nextID derives a time-based id but clamps it to strictly exceed both every
// persisted id and the last id handed out, so two creates inside the same
// millisecond still get distinct, increasing ids.
func (s *Store) nextID(orders []domain.Order) int64 {
	id := time.Now().UnixMilli()
	for _, o := range orders {
		if o.ID >= id {
			id = o.ID + 1
		}
	}
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// read loads the full collection. A missing, unreadable, or corrupt file
// degrades to an empty collection rather than failing the operation.
func (s *Store) read() []domain.Order {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error().Err(err).Str("path", s.path).Msg("reading orders file")
		}
		return []domain.Order{}
	}
	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("decoding orders file")
		return []domain.Order{}
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders
}

// write persists the full collection. Failures propagate to the caller; a
// mutation must never report success when the file was not written.
func (s *Store) write(orders []domain.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write orders file: %w", err)
	}
	return nil
}
