package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	k := newKeyedMutex()

	unlock := k.Lock("@a:example.org")

	acquired := make(chan struct{})
	go func() {
		u := k.Lock("@a:example.org")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first is held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second lock not acquired after unlock")
	}
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	k := newKeyedMutex()

	unlockA := k.Lock("@a:example.org")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		k.Lock("@b:example.org")()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyedMutex_ForgetsReleasedKeys(t *testing.T) {
	k := newKeyedMutex()

	unlock := k.Lock("@a:example.org")
	assert.Equal(t, 1, k.size())

	unlock()
	unlock()
	assert.Zero(t, k.size())
}
