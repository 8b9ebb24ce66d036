package resync

import "sync"

// Once behaves like sync.Once but can be reset to run the function again.
// Useful to reload lazy-loaded singletons from unit tests.
type Once struct {
	mu   sync.Mutex
	done bool
}

func (o *Once) Do(f func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done {
		return
	}
	o.done = true
	f()
}

// Reset makes the next call to Do execute its function again.
func (o *Once) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.done = false
}
