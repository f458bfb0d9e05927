//go:build !tinygo

package critical

import "sync"

var mu sync.Mutex

// State is a token returned by Enter. It carries nothing on host builds.
type State struct{}

// Enter locks the host-wide section.
func Enter() State {
	mu.Lock()
	return State{}
}

// Exit unlocks the host-wide section.
func Exit(State) {
	mu.Unlock()
}
