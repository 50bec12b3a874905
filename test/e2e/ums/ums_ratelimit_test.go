package ums_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/ums/pkg/umssdk"
)

// TestRateLimitLoginEndpoint verifies that /v1/login is rate limited.
// The strict profile allows 5 requests per minute per IP.
func TestRateLimitLoginEndpoint(t *testing.T) {
	baseURL, cleanup := setupUMSContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := umssdk.NewClient(baseURL)
	ctx := t.Context()

	for i := range 5 {
		_, err := client.Login(ctx, "nobody@example.com", "wrong")
		require.ErrorIs(t, err, umssdk.ErrInvalidCredentials, "request %d should not be rate limited", i+1)
	}

	_, err := client.Login(ctx, "nobody@example.com", "wrong")
	require.ErrorIs(t, err, umssdk.ErrRateLimitExceeded)
}

// TestRateLimitDoesNotAffectHealth verifies health probes use their own bucket.
func TestRateLimitDoesNotAffectHealth(t *testing.T) {
	baseURL, cleanup := setupUMSContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := umssdk.NewClient(baseURL)
	ctx := t.Context()

	for range 6 {
		_, _ = client.Login(ctx, "nobody@example.com", "wrong")
	}

	health, err := client.GetLiveness(ctx)
	assertHealthy(t, health, err)
}
