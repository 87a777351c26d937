package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock detected", &pgconn.PgError{Code: "40P01"}, true},
		{"statement cancelled", &pgconn.PgError{Code: "57014"}, true},
		{"connection failure class", &pgconn.PgError{Code: "08006"}, true},
		{"auth failure", &pgconn.PgError{Code: "28P01"}, false},
		{"syntax error", &pgconn.PgError{Code: "42601"}, false},
		{"undefined column", &pgconn.PgError{Code: "42703"}, false},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped pg error", errors.Join(errors.New("query failed"), &pgconn.PgError{Code: "40001"}), true},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestRetryPolicyDo(t *testing.T) {
	fast := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := fast.Do(context.Background(), func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient then succeeds", func(t *testing.T) {
		calls := 0
		err := fast.Do(context.Background(), func() error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: "40001"}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("fatal error returns immediately", func(t *testing.T) {
		calls := 0
		err := fast.Do(context.Background(), func() error {
			calls++
			return &pgconn.PgError{Code: "42601"}
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		calls := 0
		err := fast.Do(context.Background(), func() error {
			calls++
			return &pgconn.PgError{Code: "40P01"}
		})
		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := fast.Do(ctx, func() error {
			return &pgconn.PgError{Code: "40001"}
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
