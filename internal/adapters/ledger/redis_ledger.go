package ledger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const (
	itemsSetKey   = "inventory:items"
	itemKeyPrefix = "inventory:item:"
)

// Check-and-decrement runs server side so two orders cannot both pass the
// stock check. -1 means missing item, -2 short stock.
var reserveScript = redis.NewScript(`
local q = redis.call('HGET', KEYS[1], 'quantity')
if not q then
	return -1
end
local n = tonumber(ARGV[1])
if tonumber(q) < n then
	return -2
end
return redis.call('HINCRBY', KEYS[1], 'quantity', -n)
`)

var releaseScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
return redis.call('HINCRBY', KEYS[1], 'quantity', ARGV[1])
`)

// Returns 0 when the item hash already exists, 1 once it is written.
var addScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], 'quantity', ARGV[2], 'unit_weight', ARGV[3], 'category', ARGV[4])
redis.call('SADD', KEYS[2], ARGV[1])
return 1
`)

// RedisLedger keeps one hash per item plus a set of item names.
type RedisLedger struct {
	rdb *redis.Client
}

func NewRedisLedger(rdb *redis.Client) *RedisLedger {
	return &RedisLedger{rdb: rdb}
}

// NewRedisLedgerFromURL parses a redis:// URL and connects lazily.
func NewRedisLedgerFromURL(url string) (*RedisLedger, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis ledger: parse url: %w", err)
	}
	return &RedisLedger{rdb: redis.NewClient(opt)}, nil
}

func (l *RedisLedger) Client() *redis.Client { return l.rdb }

func (l *RedisLedger) Close() error { return l.rdb.Close() }

func itemKey(name string) string { return itemKeyPrefix + name }

func (l *RedisLedger) ItemWeight(ctx context.Context, name string) (_ float64, err error) {
	defer obs.Time(ctx, "ledger.redis.ItemWeight")(&err)

	w, err := l.rdb.HGet(ctx, itemKey(name), "unit_weight").Float64()
	if errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("redis ledger: %q: %w", name, domain.ErrItemNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("redis ledger: item weight %q: %w", name, err)
	}
	return w, nil
}

func (l *RedisLedger) Reserve(ctx context.Context, name string, quantity int) (err error) {
	defer obs.Time(ctx, "ledger.redis.Reserve")(&err)

	if quantity <= 0 {
		return fmt.Errorf("redis ledger: reserve quantity=%d: %w", quantity, domain.ErrInvalidQuantity)
	}

	n, err := reserveScript.Run(ctx, l.rdb, []string{itemKey(name)}, quantity).Int64()
	if err != nil {
		return fmt.Errorf("redis ledger: reserve %q: %w", name, err)
	}
	switch n {
	case -1:
		return fmt.Errorf("redis ledger: %q: %w", name, domain.ErrItemNotFound)
	case -2:
		return fmt.Errorf("redis ledger: %q want %d: %w", name, quantity, domain.ErrInsufficientStock)
	}
	return nil
}

func (l *RedisLedger) Release(ctx context.Context, name string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("redis ledger: release quantity=%d: %w", quantity, domain.ErrInvalidQuantity)
	}

	n, err := releaseScript.Run(ctx, l.rdb, []string{itemKey(name)}, quantity).Int64()
	if err != nil {
		return fmt.Errorf("redis ledger: release %q: %w", name, err)
	}
	if n == -1 {
		return fmt.Errorf("redis ledger: %q: %w", name, domain.ErrItemNotFound)
	}
	return nil
}

func (l *RedisLedger) ListItems(ctx context.Context) ([]domain.Item, error) {
	names, err := l.rdb.SMembers(ctx, itemsSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis ledger: list items: %w", err)
	}
	slices.Sort(names)

	pipe := l.rdb.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(names))
	for i, n := range names {
		cmds[i] = pipe.HGetAll(ctx, itemKey(n))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis ledger: list items: %w", err)
	}

	items := make([]domain.Item, 0, len(names))
	for i, n := range names {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			continue
		}
		it, err := itemFromHash(n, fields)
		if err != nil {
			return nil, fmt.Errorf("redis ledger: list items: %w", err)
		}
		items = append(items, it)
	}
	return items, nil
}

func (l *RedisLedger) PutItem(ctx context.Context, item domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("redis ledger: put item: %w", err)
	}

	name := strings.TrimSpace(item.Name)
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, itemKey(name),
			"quantity", item.Quantity,
			"unit_weight", strconv.FormatFloat(item.UnitWeight, 'g', -1, 64),
			"category", string(item.Category),
		)
		pipe.SAdd(ctx, itemsSetKey, name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis ledger: put item %q: %w", name, err)
	}
	return nil
}

func (l *RedisLedger) AddItem(ctx context.Context, item domain.Item) (bool, error) {
	if err := item.Validate(); err != nil {
		return false, fmt.Errorf("redis ledger: add item: %w", err)
	}

	name := strings.TrimSpace(item.Name)
	n, err := addScript.Run(ctx, l.rdb, []string{itemKey(name), itemsSetKey},
		name,
		item.Quantity,
		strconv.FormatFloat(item.UnitWeight, 'g', -1, 64),
		string(item.Category),
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis ledger: add item %q: %w", name, err)
	}
	return n == 1, nil
}

func itemFromHash(name string, fields map[string]string) (domain.Item, error) {
	qty, err := strconv.Atoi(fields["quantity"])
	if err != nil {
		return domain.Item{}, fmt.Errorf("item %q: quantity: %w", name, err)
	}
	w, err := strconv.ParseFloat(fields["unit_weight"], 64)
	if err != nil {
		return domain.Item{}, fmt.Errorf("item %q: unit weight: %w", name, err)
	}
	return domain.Item{
		Name:       name,
		Quantity:   qty,
		UnitWeight: w,
		Category:   domain.ItemCategory(fields["category"]),
	}, nil
}
