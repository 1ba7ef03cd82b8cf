// Package storage keeps the history of finished runs for the current
// session. Nothing is written to disk.
package storage

import (
	"sort"
	"sync"
	"time"
)

// RunEntry represents one finished run.
type RunEntry struct {
	ID       int64
	GameID   string
	Score    int
	Wave     int // Invaders only; 0 when the game has no waves
	Duration time.Duration
	EndedAt  time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Store holds runs in memory. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	runs   []RunEntry
	nextID int64
}

// NewStore creates an empty run store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// SaveRun records a finished run and returns its ID.
// EndedAt defaults to the current time.
func (s *Store) SaveRun(run RunEntry) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}
	run.ID = s.nextID
	s.nextID++
	s.runs = append(s.runs, run)
	return run.ID
}

// Recent returns up to limit runs across all games, newest first.
// A limit of zero or less returns every run.
func (s *Store) Recent(limit int) []RunEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]RunEntry, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		result = append(result, s.runs[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

// TopScores retrieves the top N runs for the given game.
// Results are ordered by score descending, earlier runs first on ties.
func (s *Store) TopScores(gameID string, limit int) []RunEntry {
	if limit <= 0 {
		limit = 10
	}

	s.mu.RLock()
	entries := make([]RunEntry, 0, len(s.runs))
	for _, r := range s.runs {
		if r.GameID == gameID {
			entries = append(entries, r)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// HighScore returns the highest score for the given game.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID string) int {
	top := s.TopScores(gameID, 1)
	if len(top) == 0 {
		return 0
	}
	return top[0].Score
}

// GameStats returns aggregated statistics for a specific game.
func (s *Store) GameStats(gameID string) GameStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := GameStats{GameID: gameID}
	for _, r := range s.runs {
		if r.GameID != gameID {
			continue
		}
		stats.GamesCount++
		stats.TotalScore += int64(r.Score)
		stats.HighScore = max(stats.HighScore, r.Score)
		if r.EndedAt.After(stats.LastPlayed) {
			stats.LastPlayed = r.EndedAt
		}
	}
	if stats.GamesCount > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.GamesCount)
	}
	return stats
}

// Len returns the number of recorded runs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

// Clear deletes every recorded run.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = nil
}
