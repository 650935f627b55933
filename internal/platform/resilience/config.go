package resilience

import "time"

// CircuitBreakerConfig carries breaker tuning for outbound dependencies.
// Zero or negative fields fall back to the defaults during normalization.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// NormalizeCircuitBreakerConfig replaces unusable values with defaults so a
// partially populated config from the environment still yields a working
// breaker.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	base := DefaultCircuitBreakerConfig()
	out := cfg
	if out.FailureThreshold < 1 {
		out.FailureThreshold = base.FailureThreshold
	}
	if out.OpenTimeout <= 0 {
		out.OpenTimeout = base.OpenTimeout
	}
	if out.HalfOpenMaxReq < 1 {
		out.HalfOpenMaxReq = base.HalfOpenMaxReq
	}
	return out
}
