package storage

import (
	"maps"
	"slices"
	"sync"
)

// MemoryTable is a volatile table of records keyed by a surrogate id. Ids are assigned on insert
// starting at 1 and are never reused, not even after the record holding the highest id is
// deleted. Records are stored and returned by value so callers never share state with the table.
type MemoryTable[T any] struct {
	mu      sync.RWMutex
	lastID  uint
	records map[uint]T
	setID   func(*T, uint)
}

// NewMemoryTable creates an empty table. setID is called to stamp the assigned id on a record.
func NewMemoryTable[T any](setID func(*T, uint)) *MemoryTable[T] {
	return &MemoryTable[T]{
		records: make(map[uint]T),
		setID:   setID,
	}
}

// Insert assigns the next id to record, stores it and returns the stored copy.
func (m *MemoryTable[T]) Insert(record T) T {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	m.setID(&record, m.lastID)
	m.records[m.lastID] = record
	return record
}

// InsertAll assigns consecutive ids to records under a single lock, so no other writer observes a
// partial batch. It returns the stored copies in the given order.
func (m *MemoryTable[T]) InsertAll(records []T) []T {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]T, len(records))
	for i, record := range records {
		m.lastID++
		m.setID(&record, m.lastID)
		m.records[m.lastID] = record
		stored[i] = record
	}
	return stored
}

// Get returns the record with given id.
func (m *MemoryTable[T]) Get(id uint) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	return record, ok
}

// Replace overwrites every field of the record with given id. The id itself is kept. It returns
// false if no such record exists.
func (m *MemoryTable[T]) Replace(id uint, record T) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		var zero T
		return zero, false
	}
	m.setID(&record, id)
	m.records[id] = record
	return record, true
}

// Delete removes the record with given id. It returns false if no such record exists.
func (m *MemoryTable[T]) Delete(id uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return false
	}
	delete(m.records, id)
	return true
}

// List returns all records ordered by id.
func (m *MemoryTable[T]) List() []T {
	return m.Filter(func(T) bool { return true })
}

// Filter returns the records matching keep ordered by id.
func (m *MemoryTable[T]) Filter(keep func(T) bool) []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]T, 0, len(m.records))
	for _, id := range slices.Sorted(maps.Keys(m.records)) {
		if record := m.records[id]; keep(record) {
			records = append(records, record)
		}
	}
	return records
}

// Len returns the number of stored records.
func (m *MemoryTable[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}
