package barbers

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedBarber_ToDomain(t *testing.T) {
	id := uuid.New()

	barber, err := cachedBarber{ID: id.String(), Name: "Ahmed", IsActive: true}.toDomain()
	require.NoError(t, err)
	assert.Equal(t, id, barber.ID)
	assert.Equal(t, "Ahmed", barber.Name)

	_, err = cachedBarber{ID: "not-a-uuid"}.toDomain()
	assert.Error(t, err)
}

func TestCache_UnavailableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()

	cache := NewCache(client, time.Minute)

	_, err := cache.GetActive(context.Background())
	assert.ErrorIs(t, err, ErrCache)
	assert.NotErrorIs(t, err, ErrCacheMiss)

	assert.ErrorIs(t, cache.Invalidate(context.Background()), ErrCache)
}
