package resilience

import (
	"sync"
	"testing"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	m := NewKeyedMutex()

	const iterations = 200
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if err := m.Do("club-1", func() error {
					counter++
					return nil
				}); err != nil {
					t.Errorf("Do: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if counter != 4*iterations {
		t.Fatalf("counter = %d, want %d", counter, 4*iterations)
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	m := NewKeyedMutex()
	m.Lock("club-1")
	defer m.Unlock("club-1")

	done := make(chan struct{})
	go func() {
		m.Lock("club-2")
		m.Unlock("club-2")
		close(done)
	}()

	<-done
}
