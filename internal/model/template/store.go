package template

import (
	"github.com/normalhq/chatbox/server/internal/analysis/emotion"
	"github.com/normalhq/chatbox/server/internal/analysis/intensity"
)

// Store exposes template lookup for the orchestrator.
type Store interface {
	Lookup(level intensity.Level, category emotion.Category) Template
}

// MemoryStore implements Store over a static in-memory table.
type MemoryStore struct {
	table Table
}

// NewMemoryStore returns a MemoryStore backed by the supplied table.
func NewMemoryStore(table Table) *MemoryStore {
	return &MemoryStore{table: table}
}

// Lookup resolves a template for the given assessment. It is total: high
// intensity always maps to the crisis entry whatever the category, and a
// category without a specific low/medium entry falls back to that level's
// unknown entry. Crisis messaging stays identical across emotions because
// it must be consistent and vetted, not emotion-tuned.
func (s *MemoryStore) Lookup(level intensity.Level, category emotion.Category) Template {
	if level == intensity.High {
		return s.table.Crisis
	}

	entries := s.table.Low
	if level == intensity.Medium {
		entries = s.table.Medium
	}

	if entry, ok := entries[category]; ok {
		return entry
	}
	return entries[emotion.Unknown]
}
