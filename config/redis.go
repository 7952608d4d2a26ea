package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis dials Redis for the response cache. A dead Redis is not
// fatal: the service runs with caching disabled and returns nil.
func ConnectRedis(settings Settings) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.RedisAddr(),
		Password: settings.RedisPass,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("⚠️ redis unavailable at %s, response cache disabled: %v", settings.RedisAddr(), err)
		_ = client.Close()
		return nil
	}

	logrus.Infof("✅ redis connection successful at %s", settings.RedisAddr())
	return client
}
