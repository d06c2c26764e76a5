package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

const (
	productSeqKey   = "products:seq"
	productsListKey = "products"

	maxCreateRetries = 5
)

func productKey(productID string) string {
	return "product:" + productID
}

// RedisProductRepository stores each product as a JSON value under product:<productId>.
// The products sorted set, scored by id, gives GetAll its id order.
type RedisProductRepository struct {
	rdb     *redis.Client
	timeout time.Duration
}

func NewRedisProductRepository(rdb *redis.Client, timeout time.Duration) *RedisProductRepository {
	return &RedisProductRepository{rdb: rdb, timeout: timeout}
}

// Create checks the productId under WATCH before taking an id from products:seq,
// so a rejected duplicate does not consume one. Only a lost race between two
// creates of the same productId can still leave a gap.
func (r *RedisProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	if p.Specs == nil {
		p.Specs = models.Specs{}
	}
	key := productKey(p.ProductID)

	for attempt := 0; attempt < maxCreateRetries; attempt++ {
		created := p
		err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
			exists, err := tx.Exists(ctx, key).Result()
			if err != nil {
				return fmt.Errorf("failed to check product: %w", err)
			}
			if exists > 0 {
				return ErrDuplicatedValueUnique
			}

			id, err := tx.Incr(ctx, productSeqKey).Result()
			if err != nil {
				return fmt.Errorf("failed to allocate product id: %w", err)
			}
			created.ID = int(id)

			data, err := json.Marshal(created)
			if err != nil {
				return fmt.Errorf("failed to encode product: %w", err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, data, 0)
				pipe.ZAdd(ctx, productsListKey, redis.Z{Score: float64(created.ID), Member: created.ProductID})
				return nil
			})
			return err
		}, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			if errors.Is(err, ErrDuplicatedValueUnique) {
				return models.Product{}, err
			}
			return models.Product{}, fmt.Errorf("failed to store product: %w", err)
		}
		return created, nil
	}
	return models.Product{}, fmt.Errorf("failed to store product %q: too much contention", p.ProductID)
}

func (r *RedisProductRepository) GetByProductID(ctx context.Context, productID string) (models.Product, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	data, err := r.rdb.Get(ctx, productKey(productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to fetch product: %w", err)
	}

	var p models.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return models.Product{}, fmt.Errorf("failed to decode product: %w", err)
	}
	return p, nil
}

func (r *RedisProductRepository) GetMany(ctx context.Context, productIDs []string) (map[string]models.Product, error) {
	found := make(map[string]models.Product, len(productIDs))
	if len(productIDs) == 0 {
		return found, nil
	}

	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	products, err := r.mget(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		found[p.ProductID] = p
	}
	return found, nil
}

func (r *RedisProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	ids, err := r.rdb.ZRange(ctx, productsListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	return r.mget(ctx, ids)
}

// mget returns the stored products for productIDs in the same order, skipping misses.
func (r *RedisProductRepository) mget(ctx context.Context, productIDs []string) ([]models.Product, error) {
	keys := make([]string, len(productIDs))
	for i, id := range productIDs {
		keys[i] = productKey(id)
	}

	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	products := make([]models.Product, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var p models.Product
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}
