package services

import (
	"strconv"
	"sync"
	"time"
)

// idSource hands out prefix_<unix-millis> ids, bumping by one when the clock has not moved
// since the last id so two ids from one source never collide.
type idSource struct {
	mu     sync.Mutex
	prefix string
	last   int64
	now    func() time.Time
}

func newIDSource(prefix string) *idSource {
	return &idSource{prefix: prefix, now: time.Now}
}

func (s *idSource) next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := s.now().UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return s.prefix + strconv.FormatInt(ms, 10)
}
