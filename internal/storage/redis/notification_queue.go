package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rescueops/internal/domain"
	"rescueops/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

// NotificationQueue hands notices to the mailer through a Redis list. Producers
// LPUSH, the consumer BRPOPs.
type NotificationQueue struct {
	client *goredis.Client
	key    string
	now    func() time.Time
}

func NewNotificationQueue(client *goredis.Client, key string) *NotificationQueue {
	return &NotificationQueue{client: client, key: key, now: time.Now}
}

func (q *NotificationQueue) RequestSubmitted(ctx context.Context, notice domain.SubmissionNotice) error {
	return q.enqueue(ctx, domain.NoticeRequestSubmitted, notice)
}

func (q *NotificationQueue) MissionCreated(ctx context.Context, notice domain.MissionNotice) error {
	return q.enqueue(ctx, domain.NoticeMissionCreated, notice)
}

func (q *NotificationQueue) enqueue(ctx context.Context, typ string, notice any) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}
	b, err := json.Marshal(domain.Envelope{Type: typ, Payload: payload, EnqueuedAt: q.now().UTC()})
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// Dequeue blocks up to timeout for the oldest envelope. e.ErrQueueEmpty means
// the timeout passed with nothing queued.
func (q *NotificationQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.Envelope, error) {
	var env domain.Envelope

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return env, e.ErrQueueEmpty
		}
		return env, err
	}
	if len(res) < 2 {
		return env, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &env); err != nil {
		return env, err
	}
	return env, nil
}

func (q *NotificationQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
