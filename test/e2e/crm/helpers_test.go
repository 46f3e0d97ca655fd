package crm_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	crmhttp "github.com/6Ash6/TPIS-CRM-model/internal/http"
	"github.com/6Ash6/TPIS-CRM-model/internal/service"
	"github.com/6Ash6/TPIS-CRM-model/internal/store/drivers/sqlite"
	"github.com/6Ash6/TPIS-CRM-model/pkg/crmsdk"
	"github.com/stretchr/testify/require"
)

/*
 * Helpers for the end-to-end suite. Each test gets a fresh in-memory store
 * behind the full router, exercised over a real listener through the typed
 * SDK, so the whole stack short of the process boundary is covered.
 */

func setupServer(t *testing.T) *crmsdk.SDKClient {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := crmhttp.NewRouter("e2e", st, logger, 1<<20)
	router.ClientService = &service.ClientService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return crmsdk.NewSDKClient(server.URL)
}

// seedClient creates a record the test can work against.
func seedClient(t *testing.T, sdk *crmsdk.SDKClient, name, surname string) crmsdk.Client {
	t.Helper()

	created, err := sdk.CreateClient(t.Context(), crmsdk.ClientPayload{
		Name:    name,
		Surname: surname,
	})
	require.NoError(t, err)
	return created
}
