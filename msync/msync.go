package msync

import "sync"

type Mu[T any] struct {
	mu   sync.RWMutex
	data T
}

func NewMu[T any](value T) *Mu[T] {
	return &Mu[T]{data: value}
}

func (m *Mu[T]) Get() T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.data
}

func (m *Mu[T]) Update(updateFn func(value T) T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = updateFn(m.data)
}

type MuMap[K comparable, T any] struct {
	mu   sync.Mutex
	data map[K]T
}

func NewMuMap[K comparable, T any]() *MuMap[K, T] {
	return &MuMap[K, T]{data: make(map[K]T)}
}

func (mm *MuMap[K, T]) Get(key K) (T, bool) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	value, ok := mm.data[key]
	return value, ok
}

func (mm *MuMap[K, T]) Set(key K, value T) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.data[key] = value
}
