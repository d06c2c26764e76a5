package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

const (
	scanSeqKey   = "scans:seq"
	scanListKey  = "scans"
	scanKeyBase  = "scan:"
	scanQrPrefix = "scans:qr:"
)

func scanKey(id int) string {
	return scanKeyBase + strconv.Itoa(id)
}

// RedisScanRepository keeps each event under scan:<id>. The scans sorted set and one
// sorted set per qrId are scored by id, so enumeration follows id order even when
// concurrent writers finish out of order.
type RedisScanRepository struct {
	rdb     *redis.Client
	timeout time.Duration
	now     func() time.Time
}

func NewRedisScanRepository(rdb *redis.Client, timeout time.Duration) *RedisScanRepository {
	return &RedisScanRepository{rdb: rdb, timeout: timeout, now: time.Now}
}

func (r *RedisScanRepository) Create(ctx context.Context, s models.ScannedData) (models.ScannedData, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	id, err := r.rdb.Incr(ctx, scanSeqKey).Result()
	if err != nil {
		return models.ScannedData{}, fmt.Errorf("failed to allocate scan id: %w", err)
	}
	s.ID = int(id)
	if s.ScannedAt.IsZero() {
		s.ScannedAt = r.now()
	}
	s.ScannedAt = s.ScannedAt.UTC()

	data, err := json.Marshal(s)
	if err != nil {
		return models.ScannedData{}, fmt.Errorf("failed to encode scanned data: %w", err)
	}

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, scanKey(s.ID), data, 0)
		member := redis.Z{Score: float64(s.ID), Member: s.ID}
		pipe.ZAdd(ctx, scanListKey, member)
		pipe.ZAdd(ctx, scanQrPrefix+s.QrID, member)
		return nil
	})
	if err != nil {
		return models.ScannedData{}, fmt.Errorf("failed to store scanned data: %w", err)
	}
	return s, nil
}

func (r *RedisScanRepository) GetByID(ctx context.Context, id int) (models.ScannedData, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	return r.get(ctx, id)
}

func (r *RedisScanRepository) GetByQrID(ctx context.Context, qrID string) (models.ScannedData, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	ids, err := r.rdb.ZRange(ctx, scanQrPrefix+qrID, 0, 0).Result()
	if err != nil {
		return models.ScannedData{}, fmt.Errorf("failed to look up scanned data: %w", err)
	}
	if len(ids) == 0 {
		return models.ScannedData{}, ErrScanNotFound
	}

	id, err := strconv.Atoi(ids[0])
	if err != nil {
		return models.ScannedData{}, fmt.Errorf("corrupt scan index for %q: %w", qrID, err)
	}
	return r.get(ctx, id)
}

func (r *RedisScanRepository) GetAll(ctx context.Context) ([]models.ScannedData, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	ids, err := r.rdb.ZRange(ctx, scanListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list scanned data: %w", err)
	}
	scans := make([]models.ScannedData, 0, len(ids))
	if len(ids) == 0 {
		return scans, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = scanKeyBase + id
	}
	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scanned data: %w", err)
	}
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var s models.ScannedData
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, fmt.Errorf("failed to decode scanned data: %w", err)
		}
		scans = append(scans, s)
	}
	return scans, nil
}

func (r *RedisScanRepository) get(ctx context.Context, id int) (models.ScannedData, error) {
	data, err := r.rdb.Get(ctx, scanKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ScannedData{}, ErrScanNotFound
	}
	if err != nil {
		return models.ScannedData{}, fmt.Errorf("failed to fetch scanned data: %w", err)
	}

	var s models.ScannedData
	if err := json.Unmarshal(data, &s); err != nil {
		return models.ScannedData{}, fmt.Errorf("failed to decode scanned data: %w", err)
	}
	return s, nil
}
