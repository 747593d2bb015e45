package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rescueops/internal/admission"

	goredis "github.com/redis/go-redis/v9"
)

const admissionPrefix = "admission:"

// admitScript checks every key and only then counts the attempt on all of
// them, so concurrent callers on the same key cannot both take the last slot.
// It returns a flat list of blocked key, remaining ttl in ms.
var admitScript = goredis.NewScript(`
local limit = tonumber(ARGV[2])
local blocked = {}
for _, key in ipairs(KEYS) do
	local count = tonumber(redis.call('GET', key) or '0')
	if count >= limit then
		local ttl = redis.call('PTTL', key)
		if ttl > 0 then
			table.insert(blocked, key)
			table.insert(blocked, ttl)
		end
	end
end
if #blocked > 0 then
	return blocked
end
for _, key in ipairs(KEYS) do
	if redis.call('INCR', key) == 1 then
		redis.call('PEXPIRE', key, ARGV[1])
	end
end
return blocked
`)

// AdmissionBackend keeps admission windows in Redis so that every instance
// shares them. Windows expire through key TTLs on the Redis clock, so Sweep
// has nothing to do and the now argument of Admit is not used.
type AdmissionBackend struct {
	client *goredis.Client
}

var _ admission.Backend = (*AdmissionBackend)(nil)

func NewAdmissionBackend(r *Redis) *AdmissionBackend {
	return &AdmissionBackend{client: r.Client}
}

func (b *AdmissionBackend) Admit(ctx context.Context, keys []string, _ time.Time, window time.Duration, limit int) (map[string]time.Duration, error) {
	const op = "redis.Admission.Admit"

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = admissionPrefix + k
	}

	res, err := admitScript.Run(ctx, b.client, prefixed, window.Milliseconds(), limit).Slice()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(res) == 0 {
		return nil, nil
	}

	blocked := make(map[string]time.Duration, len(res)/2)
	for i := 0; i+1 < len(res); i += 2 {
		key, _ := res[i].(string)
		ttl, _ := res[i+1].(int64)
		blocked[strings.TrimPrefix(key, admissionPrefix)] = time.Duration(ttl) * time.Millisecond
	}
	return blocked, nil
}

func (b *AdmissionBackend) Sweep(time.Time) int { return 0 }

// Close leaves the shared client open; components closes it.
func (b *AdmissionBackend) Close() error { return nil }
