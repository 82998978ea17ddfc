package storage

import (
	"context"

	"github.com/javiertc/adivina-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations
	// CreateAccount inserts a new account, failing with model.ErrUserExists
	// if the username is already taken.
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, username string) (*model.Account, error)
	SaveAccount(ctx context.Context, account *model.Account) error
	ListAccounts(ctx context.Context) ([]*model.Account, error)

	// Game operations
	// SaveGame stores the user's game, replacing any existing one.
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, username string) (*model.Game, error)
}
