package viz

import "sync"

// Stage is the terminal area the mover lives in. It is unmounted until the
// first window size is known.
type Stage struct {
	mu      sync.RWMutex
	w, h    float64
	mounted bool
}

func (s *Stage) Size() (float64, float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w, s.h, s.mounted
}

func (s *Stage) Resize(w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w, s.h, s.mounted = w, h, true
}

func (s *Stage) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mounted = false
}
