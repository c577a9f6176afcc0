package barbers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

const activeBarbersKey = "barbershop:barbers:active"

var (
	// ErrCacheMiss возвращается, когда в кэше нет значения
	ErrCacheMiss = errors.New("barbers.cache: miss")

	// ErrCache возвращается при ошибках Redis или сериализации
	ErrCache = errors.New("barbers.cache: redis error")
)

// Cache кэш списка активных барберов в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш поверх клиента Redis
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// NewClient создает клиента Redis и проверяет соединение
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrCache, err)
	}

	return client, nil
}

type cachedBarber struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetActive возвращает закэшированный список активных барберов
func (c *Cache) GetActive(ctx context.Context) ([]*domain.Barber, error) {
	data, err := c.client.Get(ctx, activeBarbersKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrCache, err)
	}

	var cached []cachedBarber
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCache, err)
	}

	result := make([]*domain.Barber, 0, len(cached))
	for _, b := range cached {
		barber, err := b.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: decode: %v", ErrCache, err)
		}
		result = append(result, barber)
	}

	return result, nil
}

// SetActive сохраняет список активных барберов с TTL
func (c *Cache) SetActive(ctx context.Context, barbers []*domain.Barber) error {
	cached := make([]cachedBarber, 0, len(barbers))
	for _, b := range barbers {
		cached = append(cached, cachedBarber{
			ID:        b.ID.String(),
			Name:      b.Name,
			IsActive:  b.IsActive,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, activeBarbersKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCache, err)
	}

	return nil
}

// Invalidate удаляет список из кэша
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, activeBarbersKey).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCache, err)
	}
	return nil
}
