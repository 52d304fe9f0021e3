package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/cinema-tickets/internal/repository"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func truncateTables(t testing.TB, app *TestApp) {
	_, err := app.DB.Exec(context.Background(), "TRUNCATE seat_reservations, payments RESTART IDENTITY")
	require.NoError(t, err)

	require.NoError(t, app.Redis.FlushDB(context.Background()).Err())
}

type storedPurchase struct {
	SeatCounts []int
	Amounts    []string
}

func purchasesOfAccount(t testing.TB, app *TestApp, accountID int) storedPurchase {
	ctx := context.Background()

	var stored storedPurchase

	reservations, err := repository.NewPostgresReservationRepository(app.DB).GetByAccountId(ctx, accountID)
	require.NoError(t, err)
	for _, reservation := range reservations {
		stored.SeatCounts = append(stored.SeatCounts, reservation.SeatCount)
	}

	rows, err := app.DB.Query(ctx, "SELECT amount::text FROM payments WHERE account_id = $1 AND status = 'completed' ORDER BY id", accountID)
	require.NoError(t, err)
	for rows.Next() {
		var amount string
		require.NoError(t, rows.Scan(&amount))
		stored.Amounts = append(stored.Amounts, amount)
	}
	rows.Close()
	require.NoError(t, rows.Err())

	return stored
}

func executeScenarioRequest(app *TestApp, req *http.Request) *http.Response {
	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec.Result()
}
