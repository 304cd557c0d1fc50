// Package circuitbreaker guards calls to external stores (MongoDB, Redis) so a
// failing backend is skipped quickly instead of stalling every request.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the circuit breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed means calls pass through normally.
	StateClosed State = iota
	// StateOpen means calls are rejected without reaching the backend.
	StateOpen
	// StateHalfOpen means trial calls are let through to probe recovery.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Level maps the state onto an ordered severity (0 closed, 1 half-open, 2 open),
// which is how it is exported as a gauge.
func (s State) Level() int {
	switch s {
	case StateHalfOpen:
		return 1
	case StateOpen:
		return 2
	default:
		return 0
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures before opening the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive half-open successes needed to close it.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before a trial call is allowed.
	Timeout time.Duration
	// Name identifies the breaker in logs, health output and metrics.
	Name string
	// OnStateChange, if set, is called after every transition with the lock released.
	OnStateChange func(name string, from, to State)
	// IsSuccessful, if set, decides whether an error counts against the backend.
	// Errors it accepts (e.g. "not found") are returned but do not trip the circuit.
	IsSuccessful func(err error) bool
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker implements the circuit breaker pattern.
type CircuitBreaker struct {
	config          Config
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	mu              sync.RWMutex
}

// New creates a new circuit breaker with the given configuration.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 1
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = 1
	}
	cb := &CircuitBreaker{
		config: config,
		state:  StateClosed,
	}
	if config.OnStateChange != nil {
		config.OnStateChange(config.Name, StateClosed, StateClosed)
	}
	return cb
}

// Name returns the breaker's configured name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Execute runs fn with circuit breaker protection.
// It returns ErrCircuitOpen without calling fn if the circuit is open, and
// ctx.Err() if the context is already done.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cb.mu.Lock()
	if cb.state == StateOpen {
		if time.Since(cb.lastFailureTime) < cb.config.Timeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.successCount = 0
		from := cb.setState(StateHalfOpen)
		cb.mu.Unlock()
		cb.notify(from, StateHalfOpen)
	} else {
		cb.mu.Unlock()
	}

	err := fn()

	cb.mu.Lock()
	before := cb.state
	if err != nil && !cb.succeeded(err) {
		cb.onFailure()
	} else {
		cb.onSuccess()
	}
	after := cb.state
	cb.mu.Unlock()

	if before != after {
		cb.notify(before, after)
	}
	return err
}

func (cb *CircuitBreaker) succeeded(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	return cb.config.IsSuccessful != nil && cb.config.IsSuccessful(err)
}

// onFailure requires cb.mu to be held.
func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = time.Now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.setState(StateOpen)
			log.Warn().
				Str("circuit_breaker", cb.config.Name).
				Int("failure_count", cb.failureCount).
				Msg("Circuit breaker opened due to failures")
		}
	case StateHalfOpen:
		cb.failureCount = cb.config.FailureThreshold
		cb.setState(StateOpen)
		log.Warn().
			Str("circuit_breaker", cb.config.Name).
			Msg("Circuit breaker reopened after half-open failure")
	}
}

// onSuccess requires cb.mu to be held.
func (cb *CircuitBreaker) onSuccess() {
	cb.failureCount = 0

	switch cb.state {
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.successCount = 0
			cb.setState(StateClosed)
			log.Info().
				Str("circuit_breaker", cb.config.Name).
				Msg("Circuit breaker closed after successful recovery")
		}
	case StateClosed:
		cb.successCount = 0
	}
}

// setState requires cb.mu to be held and returns the previous state.
func (cb *CircuitBreaker) setState(to State) State {
	from := cb.state
	cb.state = to
	if from == StateOpen && to == StateHalfOpen {
		log.Info().
			Str("circuit_breaker", cb.config.Name).
			Msg("Circuit breaker transitioning to half-open")
	}
	return from
}

func (cb *CircuitBreaker) notify(from, to State) {
	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, from, to)
	}
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen returns true if the circuit breaker is open.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state == StateOpen
}

// Stats is a point-in-time view of a breaker, as reported by /readyz.
type Stats struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
