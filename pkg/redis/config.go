package redis

import "time"

// Config describes the Redis connection used for reset notifications.
// The togglekit command loads it from the REDIS_* variables only when
// REDIS_URL is set, for -watch and -publish.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required"`                     // redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // connection attempts before giving up
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`   // delay between attempts
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"` // overall timeout for Connect
}
