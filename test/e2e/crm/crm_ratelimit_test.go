package crm_test

import (
	"net/http"
	"testing"

	"github.com/6Ash6/TPIS-CRM-model/pkg/crmsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitWriteEndpoints verifies mutating endpoints throttle once the
// lenient burst is spent. Every request here shares the loopback address, so
// they all drain the same bucket.
func TestRateLimitWriteEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping rate limit exhaustion in short mode")
	}

	ctx := t.Context()
	sdk := setupServer(t)

	// The lenient profile allows a burst of 100 writes; the refill within the
	// few seconds this loop takes is negligible.
	var limited *crmsdk.APIError
	for i := 0; i < 110; i++ {
		_, err := sdk.CreateClient(ctx, crmsdk.ClientPayload{Name: "Bulk", Surname: "Load"})
		if err == nil {
			continue
		}

		var apiErr *crmsdk.APIError
		require.ErrorAs(t, err, &apiErr, "request %d", i+1)
		require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		limited = apiErr
		break
	}

	require.NotNil(t, limited, "expected a 429 before 110 writes")
}

// TestRateLimitReadEndpointsStayOpen verifies the public profile leaves
// plenty of headroom for polling reads.
func TestRateLimitReadEndpointsStayOpen(t *testing.T) {
	ctx := t.Context()
	sdk := setupServer(t)

	for i := 0; i < 50; i++ {
		_, err := sdk.ListClients(ctx, "")
		require.NoError(t, err, "request %d should not be rate limited", i+1)
	}
}
