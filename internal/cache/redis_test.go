package cache

import (
	"context"
	"testing"

	"wiki-quiz/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_MissingAddress(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{})
	assert.Nil(t, client)
	assert.Error(t, err)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{Address: "127.0.0.1:1"})
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "127.0.0.1:1")
}
