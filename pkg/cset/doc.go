// Package cset provides a concurrent set implementation.
//
// The set is sharded with a per-shard RWMutex so membership updates on
// different elements rarely contend. It backs observer registries where
// registration and removal must be safe while a notification pass is
// iterating: Snapshot copies the membership out under read locks, and the
// caller iterates the copy without holding any lock.
//
// Usage:
//
//	s := cset.New[Listener]()
//	s.Add(l)
//	for _, l := range s.Snapshot() {
//		l.OnLogin(token, url)
//	}
//
// Thread Safety:
//
// All operations are safe for concurrent use. Add, Remove, and Clear take
// per-shard write locks; Has, Len, and Snapshot take read locks.
package cset
