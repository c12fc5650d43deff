package redisrepo

import (
	"context"
	"errors"
	"time"

	"go-internmatch-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// consumeIfMatch deletes the key only when its value equals the supplied
// code. Running it as a script makes verify exactly-once even when two
// calls race for the same email.
var consumeIfMatch = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type otpRepo struct {
	client *redis.Client
}

func NewOTPRepository(client *redis.Client) domain.OTPRepository {
	return &otpRepo{client: client}
}

func (r *otpRepo) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	return r.client.Set(ctx, otpKeyPrefix+email, code, ttl).Err()
}

func (r *otpRepo) Get(ctx context.Context, email string) (string, error) {
	code, err := r.client.Get(ctx, otpKeyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return code, nil
}

func (r *otpRepo) ConsumeIfMatch(ctx context.Context, email, code string) (bool, error) {
	deleted, err := consumeIfMatch.Run(ctx, r.client, []string{otpKeyPrefix + email}, code).Int()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}
