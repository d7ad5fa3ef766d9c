package chatbot

import (
	"math/rand"
	"sync"
	"time"
)

// Selector picks one of n template variants.
type Selector interface {
	Pick(n int) int
}

// RandomSelector is a seeded, goroutine-safe Selector.
type RandomSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSelector(seed int64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededSelector seeds from the clock.
func NewTimeSeededSelector() *RandomSelector {
	return NewRandomSelector(time.Now().UnixNano())
}

func (s *RandomSelector) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// FirstSelector always picks the first variant.
type FirstSelector struct{}

func (FirstSelector) Pick(int) int { return 0 }
