package storage

import (
	"fmt"

	"github.com/clinicdesk/calendar/pkg/config"
	"github.com/go-redis/redis"
)

// NewRedis connects to the configured Redis instance and verifies it answers.
func NewRedis(c config.Redis) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %v", addr, err)
	}

	return client, nil
}
