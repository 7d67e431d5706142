package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

const (
	keyPublicServices = "public:services"
	keyPublicBarbers  = "public:barbers"
)

type CatalogSource interface {
	GetAllServices(ctx context.Context, category string) ([]models.Service, error)
	GetAllBarbers(ctx context.Context, activeOnly bool) ([]models.Barber, error)
}

// PublicCatalog guarda por alguns minutos as listas do site público.
// Com rdb nil tudo vai direto ao banco.
type PublicCatalog struct {
	src CatalogSource
	rdb *redis.Client
	ttl time.Duration
}

func NewPublicCatalog(src CatalogSource, rdb *redis.Client) *PublicCatalog {
	return &PublicCatalog{src: src, rdb: rdb, ttl: 5 * time.Minute}
}

func (c *PublicCatalog) Services(ctx context.Context) ([]models.Service, error) {
	return cached(ctx, c, keyPublicServices, func() ([]models.Service, error) {
		return c.src.GetAllServices(ctx, "")
	})
}

func (c *PublicCatalog) ActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	return cached(ctx, c, keyPublicBarbers, func() ([]models.Barber, error) {
		return c.src.GetAllBarbers(ctx, true)
	})
}

// Invalidate é chamado após qualquer escrita em serviços ou barbeiros
func (c *PublicCatalog) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, keyPublicServices, keyPublicBarbers).Err(); err != nil {
		log.Printf("[cache] invalidate failed: %v", err)
	}
}

func cached[T any](ctx context.Context, c *PublicCatalog, key string, load func() ([]T, error)) ([]T, error) {
	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var items []T
			if err := json.Unmarshal(data, &items); err == nil {
				return items, nil
			}
			log.Printf("[cache] corrupt %s, reloading", key)
		case errors.Is(err, redis.Nil):
		default:
			log.Printf("[cache] redis error (continuing with DB): %v", err)
		}
	}

	items, err := load()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	if c.rdb != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
				log.Printf("[cache] set %s failed: %v", key, err)
			}
		}
	}
	return items, nil
}
