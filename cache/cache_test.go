package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/cyclo/cache"
	"github.com/TFMV/cyclo/types"
)

func TestKeyIsContentAddressed(t *testing.T) {
	assert.Equal(t, cache.Key([]byte("int f(void) {}")), cache.Key([]byte("int f(void) {}")))
	assert.NotEqual(t, cache.Key([]byte("int f(void) {}")), cache.Key([]byte("int g(void) {}")))
}

func TestGetPut(t *testing.T) {
	c := cache.NewResultCache(8)
	key := cache.Key([]byte("int f(void) {}"))

	_, ok := c.Get(key)
	assert.False(t, ok)

	records := []types.FunctionComplexity{{Line: 1, Name: "f", Complexity: 1}}
	c.Put(key, records)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, records, got)
}

func TestClear(t *testing.T) {
	c := cache.NewResultCache(8)
	key := cache.Key([]byte("x"))
	c.Put(key, nil)
	c.Clear()

	_, ok := c.Get(key)
	assert.False(t, ok)
}
