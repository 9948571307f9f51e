package storage

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/Egor213/NodeLogs/internal/domain"
)

// Ceiling is the maximum number of retained entries. The zero value means
// unlimited.
type Ceiling int

const (
	Unlimited      Ceiling = 0
	DefaultCeiling Ceiling = 10000
)

// AllowedCeilings are the values offered by the storage selector.
var AllowedCeilings = []Ceiling{Unlimited, 1000, 5000, 10000, 50000}

var ErrInvalidCeiling = errors.New("invalid storage ceiling")

func (c Ceiling) IsUnlimited() bool {
	return c <= Unlimited
}

func (c Ceiling) limit() int {
	if c.IsUnlimited() {
		return math.MaxInt
	}
	return int(c)
}

func (c Ceiling) String() string {
	if c.IsUnlimited() {
		return "unlimited"
	}
	return strconv.Itoa(int(c))
}

func ParseCeiling(s string) (Ceiling, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "unlimited" {
		return Unlimited, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidCeiling
	}
	c := Ceiling(n)
	if !IsAllowed(c) {
		return 0, ErrInvalidCeiling
	}
	return c, nil
}

func IsAllowed(c Ceiling) bool {
	for _, a := range AllowedCeilings {
		if a == c {
			return true
		}
	}
	return false
}

// Store is the authoritative, bounded, ordered log sequence of one node
// session. It has a single writer; readers work on snapshots.
type Store struct {
	mu      sync.RWMutex
	entries []domain.LogEntry
	ceiling Ceiling
	version uint64
}

func NewStore(ceiling Ceiling) *Store {
	return &Store{ceiling: ceiling}
}

// Append adds the batch after the existing entries and evicts the oldest
// entries beyond the ceiling.
func (s *Store) Append(batch []domain.LogEntry) {
	if len(batch) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := append(s.entries, batch...)
	if limit := s.ceiling.limit(); len(merged) > limit {
		merged = merged[len(merged)-limit:]
		// Evicted entries would otherwise stay reachable through the backing
		// array until the next reallocation.
		if cap(merged) > 2*len(merged) {
			merged = append(make([]domain.LogEntry, 0, len(merged)), merged...)
		}
	}
	s.entries = merged
	s.version++
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.version++
}

// SetCeiling changes the cap for subsequent appends. Stored history is left
// untouched until the next Append.
func (s *Store) SetCeiling(c Ceiling) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ceiling = c
}

func (s *Store) Ceiling() Ceiling {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ceiling
}

// Snapshot returns the committed sequence. The result must not be modified;
// later appends never change it.
func (s *Store) Snapshot() []domain.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entries[:len(s.entries):len(s.entries)]
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// SnapshotVersion returns a snapshot together with the version it belongs to.
func (s *Store) SnapshotVersion() ([]domain.LogEntry, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entries[:len(s.entries):len(s.entries)], s.version
}
