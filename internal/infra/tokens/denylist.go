package tokens

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "auth:revoked:"

// Denylist revoca tokens JWT por jti hasta su expiración. Es el
// equivalente a "cerrar sesión" con tokens stateless: lo usa el
// logout y el gate de admin cuando niega acceso (fail-closed).
type Denylist struct {
	client *redis.Client
}

func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

func (d *Denylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, keyPrefix+jti, "1", ttl).Err()
}

func (d *Denylist) Revoked(ctx context.Context, jti string) (bool, error) {
	_, err := d.client.Get(ctx, keyPrefix+jti).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
