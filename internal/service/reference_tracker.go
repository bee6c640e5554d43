package service

import (
	"context"
	"slices"
	"sync"
)

// ReferenceTracker records which subsystems depend on a client. A client
// with at least one owner cannot be deleted.
//
// Owners are opaque strings chosen by the caller (e.g. a plugin instance
// ID). Acquiring the same owner twice is a no-op.
type ReferenceTracker struct {
	registry *ClientRegistry

	mu     sync.Mutex
	owners map[string]map[string]struct{}
}

func newReferenceTracker(registry *ClientRegistry) *ReferenceTracker {
	return &ReferenceTracker{
		registry: registry,
		owners:   make(map[string]map[string]struct{}),
	}
}

// Acquire records owner as a dependent of client id. It fails with
// ErrClientNotFound when the client is unknown and with ErrInvalidPayload
// when owner is empty.
func (t *ReferenceTracker) Acquire(ctx context.Context, id, owner string) error {
	if owner == "" {
		return ErrInvalidPayload
	}

	// taken so that a reference can't slip in between the delete check and
	// the removal of the client
	unlock := t.registry.locks.Lock(id)
	defer unlock()

	if _, ok := t.registry.Get(ctx, id); !ok {
		return ErrClientNotFound
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.owners[id]
	if !ok {
		set = make(map[string]struct{})
		t.owners[id] = set
	}
	set[owner] = struct{}{}

	return nil
}

// Release drops owner from the dependents of client id. Releasing an unknown
// reference is a no-op.
func (t *ReferenceTracker) Release(id, owner string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.owners[id]
	if !ok {
		return
	}
	delete(set, owner)
	if len(set) == 0 {
		delete(t.owners, id)
	}
}

// References returns the sorted owners of client id.
func (t *ReferenceTracker) References(id string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	refs := make([]string, 0, len(t.owners[id]))
	for owner := range t.owners[id] {
		refs = append(refs, owner)
	}
	slices.Sort(refs)

	return refs
}

func (t *ReferenceTracker) hasReferences(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.owners[id]) > 0
}

func (t *ReferenceTracker) forget(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.owners, id)
}
