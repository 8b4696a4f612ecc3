package memory

import (
	"context"
	"strings"
	"sync"

	"eventy/contexts/identity-access/account-service/domain/entities"
	domainerrors "eventy/contexts/identity-access/account-service/domain/errors"
)

// Store is the in-memory account repository used by tests and the in-memory
// runtime profile.
type Store struct {
	mu       sync.RWMutex
	accounts map[int64]entities.Account
	nextID   int64
}

func NewStore() *Store {
	return &Store{
		accounts: map[int64]entities.Account{},
		nextID:   1,
	}
}

func (s *Store) CreateAccount(_ context.Context, account entities.Account) (entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(account.Email)
	for _, existing := range s.accounts {
		if strings.ToLower(existing.Email) == email {
			return entities.Account{}, domainerrors.ErrEmailTaken
		}
	}

	account.ID = s.nextID
	s.nextID++
	s.accounts[account.ID] = account
	return account, nil
}

func (s *Store) GetAccount(_ context.Context, accountID int64) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) GetAccountByEmail(_ context.Context, email string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(email)
	for _, account := range s.accounts {
		if strings.ToLower(account.Email) == needle {
			return account, nil
		}
	}
	return entities.Account{}, domainerrors.ErrAccountNotFound
}

func (s *Store) SaveAccount(_ context.Context, account entities.Account) (entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.ID]; !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	s.accounts[account.ID] = account
	return account, nil
}

// SetAccount seeds an account with an explicit id.
func (s *Store) SetAccount(account entities.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[account.ID] = account
	if account.ID >= s.nextID {
		s.nextID = account.ID + 1
	}
}
