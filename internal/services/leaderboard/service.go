package leaderboard

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/javiertc/adivina-go/internal/model"
	"github.com/javiertc/adivina-go/internal/storage"
)

// maxEntries caps the projection at the top 10 accounts
const maxEntries = 10

// Service maintains a cached top-10 projection of accounts by points.
// The cache is rebuilt in full whenever any account's points change and
// may be momentarily stale relative to concurrent writes.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu      sync.RWMutex
	entries []model.LeaderboardEntry
}

// New creates a new leaderboard Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Recompute rebuilds the projection from a full snapshot of all accounts.
// Entries are sorted by points descending and truncated to the top 10.
// Tie order is unspecified.
func (s *Service) Recompute(ctx context.Context) error {
	accounts, err := s.storage.ListAccounts(ctx)
	if err != nil {
		return err
	}

	entries := make([]model.LeaderboardEntry, 0, len(accounts))
	for _, account := range accounts {
		entries = append(entries, model.LeaderboardEntry{
			Username:    account.Username,
			Points:      account.Points,
			GamesPlayed: account.GamesPlayed,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	s.logger.Debug("leaderboard recomputed", slog.Int("entries", len(entries)))
	return nil
}

// Current returns the most recently computed projection
func (s *Service) Current() []model.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]model.LeaderboardEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}
