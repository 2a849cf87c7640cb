// Package navigation keeps the per-visitor history behind the "back" button.
package navigation

import "sync"

// Home is where Back lands when there is nothing to go back to.
const Home = "/"

// MaxPaths bounds a Stack; older paths are dropped first.
const MaxPaths = 50

// History records visited paths.
type History interface {
	Push(path string)
	Back() string
	Clear()
}

// Stack is a History backed by a slice. It is safe for concurrent use.
type Stack struct {
	mu    sync.Mutex
	paths []string
}

// NewStack returns an empty history.
func NewStack() *Stack {
	return &Stack{}
}

// Push records path unless it repeats the current one.
func (s *Stack) Push(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.paths); n > 0 && s.paths[n-1] == path {
		return
	}
	s.paths = append(s.paths, path)
	if n := len(s.paths); n > MaxPaths {
		s.paths = append(s.paths[:0], s.paths[n-MaxPaths:]...)
	}
}

// Back drops the current path and returns the previous one, which the caller
// navigates to and pushes again. With no previous path it returns Home.
func (s *Stack) Back() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.paths) > 0 {
		s.paths = s.paths[:len(s.paths)-1]
	}
	if len(s.paths) == 0 {
		return Home
	}
	prev := s.paths[len(s.paths)-1]
	s.paths = s.paths[:len(s.paths)-1]
	return prev
}

// Clear empties the history.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = nil
}

// Len returns the number of recorded paths.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paths)
}
