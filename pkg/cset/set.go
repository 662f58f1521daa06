// Package cset provides a concurrent-safe sharded set.
package cset

import (
	"hash/maphash"
	"sync"
)

// DefaultShardCount is the default number of shards.
const DefaultShardCount = 16

// Set is a concurrent-safe sharded set.
//
// Elements are compared with Go's == operator, so interface elements are
// distinguished by identity when their dynamic type is a pointer. Membership
// operations and Snapshot may run concurrently with each other.
type Set[T comparable] struct {
	shards    []*shard[T]
	shardMask uint64
	seed      maphash.Seed
}

type shard[T comparable] struct {
	mu    sync.RWMutex
	items map[T]struct{}
}

// New creates a new sharded set with the default shard count.
func New[T comparable]() *Set[T] {
	return NewWithShards[T](DefaultShardCount)
}

// NewWithShards creates a new sharded set with the specified shard count.
// shardCount must be a power of 2.
func NewWithShards[T comparable](shardCount int) *Set[T] {
	// Ensure shardCount is a power of 2
	if shardCount <= 0 || shardCount&(shardCount-1) != 0 {
		shardCount = DefaultShardCount
	}

	s := &Set[T]{
		shards:    make([]*shard[T], shardCount),
		shardMask: uint64(shardCount - 1),
		seed:      maphash.MakeSeed(),
	}

	for i := 0; i < shardCount; i++ {
		s.shards[i] = &shard[T]{
			items: make(map[T]struct{}),
		}
	}

	return s
}

// getShard returns the shard for an element using maphash for distribution.
// The hash must agree with the == comparison the shard maps use: pointers
// hash by identity, so an element whose pointed-to fields change still
// lands on the same shard.
func (s *Set[T]) getShard(elem T) *shard[T] {
	idx := maphash.Comparable(s.seed, elem) & s.shardMask
	return s.shards[idx]
}

// Add inserts an element.
// Returns true if the element was added, false if it was already present.
func (s *Set[T]) Add(elem T) bool {
	shard := s.getShard(elem)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if _, ok := shard.items[elem]; ok {
		return false
	}
	shard.items[elem] = struct{}{}
	return true
}

// Remove deletes an element.
// Returns true if the element was removed, false if it was absent.
func (s *Set[T]) Remove(elem T) bool {
	shard := s.getShard(elem)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if _, ok := shard.items[elem]; !ok {
		return false
	}
	delete(shard.items, elem)
	return true
}

// Has checks if an element is present.
func (s *Set[T]) Has(elem T) bool {
	shard := s.getShard(elem)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	_, ok := shard.items[elem]
	return ok
}

// Len returns the total number of elements.
func (s *Set[T]) Len() int {
	count := 0
	for _, shard := range s.shards {
		shard.mu.RLock()
		count += len(shard.items)
		shard.mu.RUnlock()
	}
	return count
}

// Snapshot returns all elements as a slice.
//
// The slice is an independent copy: mutating the set while iterating a
// snapshot is safe, and elements added after Snapshot returns are not
// included. Order is unspecified.
func (s *Set[T]) Snapshot() []T {
	elems := make([]T, 0, s.Len())
	for _, shard := range s.shards {
		shard.mu.RLock()
		for elem := range shard.items {
			elems = append(elems, elem)
		}
		shard.mu.RUnlock()
	}
	return elems
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	for _, shard := range s.shards {
		shard.mu.Lock()
		shard.items = make(map[T]struct{})
		shard.mu.Unlock()
	}
}
