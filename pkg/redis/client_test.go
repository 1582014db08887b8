package redis

import (
	"testing"
	"time"

	"github.com/raizapp/raizapp-backend/pkg/config"
)

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error without url or address")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{
		URL:      "redis://:pw@localhost:6379/2",
		PoolSize: 5,
	})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("unexpected db %d", opts.DB)
	}
	if opts.PoolSize != 5 {
		t.Fatalf("expected pool size fallback, got %d", opts.PoolSize)
	}
}

func TestOptionsFromConfigAddressFallback(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{
		Address:     "127.0.0.1:6380",
		Password:    "pw",
		DB:          1,
		DialTimeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Addr != "127.0.0.1:6380" || opts.Password != "pw" || opts.DB != 1 {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.DialTimeout != 2*time.Second {
		t.Fatalf("expected dial timeout to flow through, got %s", opts.DialTimeout)
	}
}

func TestKeyNamespacing(t *testing.T) {
	c := &Client{}
	if got := c.AccessSessionKey("abc"); got != "raiz:session:abc" {
		t.Fatalf("unexpected session key %q", got)
	}
	if got := c.RateLimitKey("login:ip:1.2.3.4"); got != "raiz:rate_limit:login:ip:1.2.3.4" {
		t.Fatalf("unexpected rate limit key %q", got)
	}
}
