package registry_test

import (
	"testing"

	"github.com/nfrund/ecoshare/internal/config"
	"github.com/nfrund/ecoshare/internal/registry"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	cfg := &config.Config{ServerAddr: ":1234"}
	reg := registry.New(cfg)
	assert.Equal(t, ":1234", reg.Config().GetServerAddr())

	counterKey := registry.Key[int]("test.counter")
	_, ok := registry.Get(reg, counterKey)
	assert.False(t, ok)
	assert.Panics(t, func() { registry.MustGet(reg, counterKey) })

	registry.Set(reg, counterKey, 7)
	got, ok := registry.Get(reg, counterKey)
	assert.True(t, ok)
	assert.Equal(t, 7, got)

	// A key with the same name but another type does not match.
	_, ok = registry.Get(reg, registry.Key[string]("test.counter"))
	assert.False(t, ok)
}
