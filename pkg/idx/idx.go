// Package idx generates and parses the ULID identifiers used for every row,
// challenge token and request id in the tracker.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// Zero is the empty ID. Only use it as a placeholder.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	mu      sync.Mutex
	once    sync.Once
	entropy *ulid.MonotonicEntropy
)

func source() *ulid.MonotonicEntropy {
	once.Do(func() {
		entropy = ulid.Monotonic(rand.Reader, 0)
	})
	return entropy
}

// New returns a lexicographically sortable ID stamped with the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns an ID stamped with t. Handy for tests that need ordering.
func NewAt(t time.Time) ID {
	src := source()

	mu.Lock()
	defer mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), src).String())
}

// Parse validates s as a ULID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

// Valid reports whether s is a well formed ULID.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func (id ID) IsZero() bool   { return id == Zero }
func (id ID) String() string { return string(id) }

// Time extracts the embedded timestamp, or the zero time for bad IDs.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
