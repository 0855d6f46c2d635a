package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	store.Set("k", []byte("v"), time.Minute)

	value, ok := store.Get("k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), value)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	store.Set("k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get("k")
	assert.False(t, ok)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	store.Set("k", []byte("v"), time.Minute)
	store.Delete("k")

	_, ok := store.Get("k")
	assert.False(t, ok)
}
