package resilience

import "sync"

// KeyedMutex serializes work per key while letting distinct keys proceed
// concurrently. Locks are created on first use and kept for the lifetime
// of the mutex; the expected key space (clubs, players) is small.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (m *KeyedMutex) Lock(key string) {
	m.lockFor(key).Lock()
}

func (m *KeyedMutex) Unlock(key string) {
	m.lockFor(key).Unlock()
}

// Do runs fn while holding the lock for key.
func (m *KeyedMutex) Do(key string, fn func() error) error {
	lock := m.lockFor(key)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

func (m *KeyedMutex) lockFor(key string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.locks == nil {
		m.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	return lock
}
