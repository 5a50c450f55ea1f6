package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const (
	rankKeyPrefix  = "landonclicker:board:"
	entryKeyPrefix = "landonclicker:entry:"
)

// RedisRepo keeps each score type in a sorted set, member = entry ID,
// with the full entry JSON alongside. Scores are negated so a plain
// ascending ZRange yields best-first; the timestamp term breaks ties in
// favor of the earlier entry.
type RedisRepo struct {
	client *redis.Client
}

func NewRedisRepo(addr string) *RedisRepo {
	return &RedisRepo{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func (r *RedisRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepo) Close() error {
	return r.client.Close()
}

func (r *RedisRepo) Add(ctx context.Context, e Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	rankScore := -e.Score*1e9 - float64(e.RecordedAt.Unix())

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, entryKeyPrefix+e.ID, raw, 0)
	pipe.ZAdd(ctx, rankKeyPrefix+string(e.Type), &redis.Z{
		Score:  rankScore,
		Member: e.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add entry: %w", err)
	}
	return nil
}

func (r *RedisRepo) Top(ctx context.Context, t ScoreType, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	ids, err := r.client.ZRange(ctx, rankKeyPrefix+string(t), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("range board: %w", err)
	}

	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		raw, err := r.client.Get(ctx, entryKeyPrefix+id).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("get entry %s: %w", id, err)
		}
		var e Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
