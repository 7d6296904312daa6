package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotAcquired - блокировку не удалось взять до отмены контекста
var ErrNotAcquired = errors.New("lock not acquired")

type keyedEntry struct {
	ch   chan struct{}
	refs int
}

// KeyedMutex - взаимное исключение по ключу внутри одного процесса.
// Записи для ключей удаляются, когда их больше никто не ждёт.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*keyedEntry
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*keyedEntry)}
}

// Acquire ждёт ключ key и возвращает функцию освобождения
func (m *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &keyedEntry{ch: make(chan struct{}, 1)}
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		m.drop(key, e)
		return nil, fmt.Errorf("key %s: %v: %w", key, ctx.Err(), ErrNotAcquired)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			m.drop(key, e)
		})
	}, nil
}

func (m *KeyedMutex) drop(key string, e *keyedEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
}

// size - число ключей, по которым кто-то держит или ждёт блокировку
func (m *KeyedMutex) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
