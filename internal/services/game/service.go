package game

import (
	"context"
	"log/slog"

	"github.com/javiertc/adivina-go/internal/dependencies/random"
	"github.com/javiertc/adivina-go/internal/model"
	"github.com/javiertc/adivina-go/internal/services/leaderboard"
	"github.com/javiertc/adivina-go/internal/storage"
)

// Secret number range and scoring constants
const (
	secretMin = 1
	secretMax = 100

	basePoints       = 100
	pointsPerAttempt = 10
	minPoints        = 10
)

// Service manages per-user game sessions: start, guess, restart, status.
// It also credits wins to accounts and triggers leaderboard recomputation.
type Service struct {
	storage     storage.Storage
	leaderboard *leaderboard.Service
	random      random.Random
	logger      *slog.Logger
	locks       *userLocks
}

// New creates a new game Service
func New(storage storage.Storage, lb *leaderboard.Service, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage:     storage,
		leaderboard: lb,
		random:      rnd,
		logger:      logger,
		locks:       newUserLocks(),
	}
}

// Start creates a fresh session for the user with a uniformly random secret
// in [1,100], unconditionally replacing any existing session.
func (s *Service) Start(ctx context.Context, username string) error {
	lock := s.locks.get(username)
	lock.Lock()
	defer lock.Unlock()

	game := &model.Game{
		Username:     username,
		SecretNumber: s.random.Intn(secretMax) + secretMin,
	}
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	s.logger.Info("game started", slog.String("username", username))
	return nil
}

// Restart behaves identically to Start; the game defines no semantic
// difference between the two beyond the response message.
func (s *Service) Restart(ctx context.Context, username string) error {
	return s.Start(ctx, username)
}

// Guess applies a single guess to the user's active session.
// Fails with model.ErrNoActiveGame when no session exists and with
// model.ErrGameCompleted when the session is already finished; failed
// requests change no state.
func (s *Service) Guess(ctx context.Context, username string, guess int) (*model.GuessResult, error) {
	lock := s.locks.get(username)
	lock.Lock()
	defer lock.Unlock()

	game, err := s.storage.GetGame(ctx, username)
	if err != nil {
		return nil, err
	}
	if game.Completed {
		return nil, model.ErrGameCompleted
	}

	// The winning guess counts towards the attempt total
	game.Attempts++

	if guess != game.SecretNumber {
		if err := s.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}
		hint := model.HintLesser
		if game.SecretNumber > guess {
			hint = model.HintGreater
		}
		return &model.GuessResult{Hint: hint, Attempts: game.Attempts}, nil
	}

	game.Completed = true
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	points := scoreFor(game.Attempts)
	if err := s.recordWin(ctx, username, points); err != nil {
		return nil, err
	}

	s.logger.Info("game won",
		slog.String("username", username),
		slog.Int("attempts", game.Attempts),
		slog.Int("points", points),
	)

	return &model.GuessResult{
		Won:           true,
		Attempts:      game.Attempts,
		PointsAwarded: points,
	}, nil
}

// Status reports the attempt count and completion flag of the active session
func (s *Service) Status(ctx context.Context, username string) (*model.Game, error) {
	return s.storage.GetGame(ctx, username)
}

// scoreFor computes the points awarded for a win after the given number of
// attempts, the winning guess included: max(100 - attempts*10, 10).
func scoreFor(attempts int) int {
	points := basePoints - attempts*pointsPerAttempt
	if points < minPoints {
		points = minPoints
	}
	return points
}

// recordWin credits a completed game to the user's account and refreshes the
// leaderboard projection. Called at most once per game: Guess flips Completed
// before crediting, and further guesses fail with ErrGameCompleted.
func (s *Service) recordWin(ctx context.Context, username string, points int) error {
	account, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		return err
	}

	account.GamesPlayed++
	account.Points += points
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return err
	}

	if err := s.leaderboard.Recompute(ctx); err != nil {
		// The win is already recorded; a stale projection converges on the
		// next recompute.
		s.logger.Error("leaderboard recompute failed",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
	}
	return nil
}
