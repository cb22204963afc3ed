package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("github.owner", "octo"))
	require.NoError(t, store.Set("github.owner", "octocat"))

	val, ok := store.Get("github.owner")
	assert.True(t, ok)
	assert.Equal(t, "octocat", val)

	_, ok = store.Get("github.repo")
	assert.False(t, ok)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("site.base_url", "https://blog.example.com")
	_ = store.Set("http.port", 8080)

	assert.Equal(t, "https://blog.example.com", store.GetString("site.base_url"))
	assert.Equal(t, "8080", store.GetString("http.port"))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"int", 42, 42},
		{"int64", int64(42), 42},
		{"float64", float64(42), 42},
		{"string", "42", 42},
		{"bad string", "forty", 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore()
			_ = store.Set("posts.max_pages", tt.value)
			assert.Equal(t, tt.want, store.GetInt("posts.max_pages"))
		})
	}
	assert.Equal(t, 0, NewConfigStore().GetInt("missing"))
}

func TestConfigStore_Saves(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Save())
	require.NoError(t, store.Save())

	assert.Equal(t, 2, store.Saves())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("posts.page_size", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("posts.page_size")
		}()
	}
	wg.Wait()

	_, ok := store.Get("posts.page_size")
	assert.True(t, ok)
}
