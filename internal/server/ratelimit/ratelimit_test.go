package ratelimit

import (
	"testing"
	"time"
)

func TestTokenBucketExhaustsBurst(t *testing.T) {
	tb := newTokenBucket(3, 0.001)

	for i := 0; i < 3; i++ {
		if allowed, _ := tb.allow(); !allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	allowed, info := tb.allow()
	if allowed {
		t.Error("burst exhausted, request should be denied")
	}
	if info.RetryAfter <= 0 {
		t.Errorf("expected positive RetryAfter, got %v", info.RetryAfter)
	}
}

func TestTokenBucketRefills(t *testing.T) {
	tb := newTokenBucket(1, 1000) // effectively instant refill

	if allowed, _ := tb.allow(); !allowed {
		t.Fatal("first request should be allowed")
	}
	time.Sleep(5 * time.Millisecond)
	if allowed, _ := tb.allow(); !allowed {
		t.Error("bucket should have refilled")
	}
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := l.Allow("client", "/auth/login", "POST"); !allowed {
			t.Fatal("disabled limiter should always allow")
		}
	}
}

func TestLimiterEnforcesEndpointBurst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CleanupInterval = 0
	l := NewLimiter(cfg)
	defer l.Stop()

	denied := false
	for i := 0; i < 10; i++ {
		if allowed, _ := l.Allow("client", "/auth/register", "POST"); !allowed {
			denied = true
			break
		}
	}
	if !denied {
		t.Error("register burst of 5 should be exhausted within 10 requests")
	}
}

func TestLimiterIsolatesClients(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CleanupInterval = 0
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		l.Allow("greedy", "/auth/register", "POST")
	}
	if allowed, _ := l.Allow("patient", "/auth/register", "POST"); !allowed {
		t.Error("second client should not share the first client's bucket")
	}
}

func TestMatchEndpointHealthUnlimited(t *testing.T) {
	rule := MatchEndpoint("/health", "GET", DefaultEndpointRules())
	if rule == nil || rule.Limit != 0 {
		t.Errorf("health check should be unlimited, got %+v", rule)
	}
}

func TestMatchEndpointExactAndDefault(t *testing.T) {
	rules := DefaultEndpointRules()

	if rule := MatchEndpoint("/documents", "POST", rules); rule == nil || rule.Limit != 30 {
		t.Errorf("expected documents POST rule, got %+v", rule)
	}
	if rule := MatchEndpoint("/experiences", "GET", rules); rule != nil {
		t.Errorf("expected default (nil) for unmatched endpoint, got %+v", rule)
	}
}
