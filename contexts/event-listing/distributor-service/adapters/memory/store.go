package memory

import (
	"context"
	"sort"
	"sync"

	"eventy/contexts/event-listing/distributor-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/distributor-service/domain/errors"
)

type Store struct {
	mu           sync.RWMutex
	distributors map[int64]entities.Distributor
	nextID       int64
}

func NewStore(seed []entities.Distributor) *Store {
	store := &Store{
		distributors: map[int64]entities.Distributor{},
		nextID:       1,
	}
	for _, distributor := range seed {
		store.distributors[distributor.ID] = distributor
		if distributor.ID >= store.nextID {
			store.nextID = distributor.ID + 1
		}
	}
	return store
}

func (s *Store) CreateDistributor(_ context.Context, distributor entities.Distributor) (entities.Distributor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	distributor.ID = s.nextID
	s.nextID++
	s.distributors[distributor.ID] = distributor
	return distributor, nil
}

func (s *Store) GetDistributor(_ context.Context, distributorID int64) (entities.Distributor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	distributor, ok := s.distributors[distributorID]
	if !ok {
		return entities.Distributor{}, domainerrors.ErrDistributorNotFound
	}
	return distributor, nil
}

func (s *Store) ListDistributors(_ context.Context) ([]entities.Distributor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Distributor, 0, len(s.distributors))
	for _, distributor := range s.distributors {
		items = append(items, distributor)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) UpdateDistributor(_ context.Context, distributor entities.Distributor) (entities.Distributor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.distributors[distributor.ID]; !ok {
		return entities.Distributor{}, domainerrors.ErrDistributorNotFound
	}
	s.distributors[distributor.ID] = distributor
	return distributor, nil
}

func (s *Store) DeleteDistributor(_ context.Context, distributorID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.distributors[distributorID]; !ok {
		return domainerrors.ErrDistributorNotFound
	}
	delete(s.distributors, distributorID)
	return nil
}
