package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/entity"
	"github.com/ressKim-io/text-haptics/api-service/internal/domain/repository"
)

// Memory is an in-process result cache bounded by entry count and time-to-live.
// The least recently used entry is evicted when the cache is full.
type Memory struct {
	lru *expirable.LRU[string, *entity.HapticResult]
}

// NewMemory creates a Memory cache holding at most maxSize entries for ttl each
func NewMemory(maxSize int, ttl time.Duration) repository.ResultCache {
	return &Memory{lru: expirable.NewLRU[string, *entity.HapticResult](maxSize, nil, ttl)}
}

// Get returns the cached result for the exact text
func (m *Memory) Get(_ context.Context, text string) (*entity.HapticResult, bool, error) {
	result, ok := m.lru.Get(text)
	return result, ok, nil
}

// Set stores result under the exact text
func (m *Memory) Set(_ context.Context, text string, result *entity.HapticResult) error {
	m.lru.Add(text, result)
	return nil
}

// Len reports the number of live entries
func (m *Memory) Len(_ context.Context) int {
	return m.lru.Len()
}
