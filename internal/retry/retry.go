package retry

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/wait"
)

const (
	DefaultTimeout  = 5 * time.Minute
	DefaultInterval = 1 * time.Second
)

var (
	// ErrTimeout is returned when the condition was not met before the timeout elapsed.
	ErrTimeout = errors.New("timed out waiting for the condition")

	// ErrInterrupted is returned when the caller's context was cancelled while polling.
	ErrInterrupted = errors.New("interrupted while waiting for the condition")
)

// ConditionFunc reports whether polling is done. A non-nil error stops
// polling immediately and is returned to the caller as is, unless the poll
// context was already done, in which case the poll ends as a timeout or an
// interruption.
type ConditionFunc func(ctx context.Context) (done bool, err error)

// Retrier re-evaluates a condition at a fixed interval until it holds or the
// timeout elapses. Polling happens on the calling goroutine.
type Retrier struct {
	timeout  time.Duration
	interval time.Duration
}

type Option func(*Retrier)

func WithTimeout(timeout time.Duration) Option {
	return func(r *Retrier) {
		r.timeout = timeout
	}
}

func WithInterval(interval time.Duration) Option {
	return func(r *Retrier) {
		r.interval = interval
	}
}

func New(opts ...Option) *Retrier {
	r := &Retrier{
		timeout:  DefaultTimeout,
		interval: DefaultInterval,
	}

	for _, opt := range opts {
		opt(r)
	}

	// the interval must stay strictly shorter than the timeout
	if r.timeout > 0 && r.interval >= r.timeout {
		r.interval = r.timeout / 2
	}

	if r.interval <= 0 {
		r.interval = time.Millisecond
	}

	return r
}

func (r *Retrier) Timeout() time.Duration {
	return r.timeout
}

func (r *Retrier) Interval() time.Duration {
	return r.interval
}

// Retry blocks until condition returns true, returns an error, the timeout
// elapses (ErrTimeout) or ctx is cancelled (ErrInterrupted). The condition is
// evaluated once immediately and then once per interval.
func (r *Retrier) Retry(ctx context.Context, condition ConditionFunc) error {
	var condErr error

	err := wait.PollUntilContextTimeout(ctx, r.interval, r.timeout, true, func(ctx context.Context) (bool, error) {
		done, err := condition(ctx)
		if err != nil {
			// the condition gave up because the deadline or cancellation hit mid query
			if ctx.Err() != nil {
				return false, nil
			}

			condErr = err
			return false, err
		}

		return done, nil
	})
	if err == nil {
		return nil
	}

	if condErr != nil {
		return condErr
	}

	if ctx.Err() != nil {
		return errors.Wrap(ErrInterrupted, ctx.Err().Error())
	}

	if wait.Interrupted(err) {
		return ErrTimeout
	}

	return err
}

// IsTimeout reports whether err was caused by the timeout elapsing.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsInterrupted reports whether err was caused by cancellation of the caller's context.
func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted)
}
