package memory

import (
	"context"
	"sync"

	"github.com/javiertc/adivina-go/internal/model"
	"github.com/javiertc/adivina-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Values are copied on the way in and out so callers never share
// mutable state with the store.
type Storage struct {
	mu sync.RWMutex

	accounts map[string]*model.Account
	games    map[string]*model.Game
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts: make(map[string]*model.Account),
		games:    make(map[string]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) CreateAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.Username]; ok {
		return model.ErrUserExists
	}
	cp := *account
	s.accounts[account.Username] = &cp
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	cp := *account
	return &cp, nil
}

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *account
	s.accounts[account.Username] = &cp
	return nil
}

func (s *Storage) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts := make([]*model.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		cp := *account
		accounts = append(accounts, &cp)
	}
	return accounts, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *game
	s.games[game.Username] = &cp
	return nil
}

func (s *Storage) GetGame(ctx context.Context, username string) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[username]
	if !ok {
		return nil, model.ErrNoActiveGame
	}
	cp := *game
	return &cp, nil
}
