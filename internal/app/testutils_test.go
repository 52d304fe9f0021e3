package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/validator"
)

const testLockToken = "test-lock-token"

func newTestApplication(opts ...func(*Application)) *Application {
	purchases, err := newPurchaseCounter()
	if err != nil {
		panic(err)
	}

	app := &Application{
		config: Config{
			Env:             "test",
			PurchaseLockTTL: 30 * time.Second,
		},
		validator:    validator.NewValidator(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		purchases:    purchases,
		newLockToken: func() string { return testLockToken },
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// executeRequest builds a request for the handler under test. A string body is
// sent verbatim, anything else is encoded as JSON.
func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
		reader = http.NoBody
	case string:
		reader = strings.NewReader(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

type wantError struct {
	wantStatus     int
	wantErrMessage string
	wantKind       string
	wantValidation bool
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt wantError) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch {
	case tt.wantValidation:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}

		if tt.wantKind != "" && (errorResp.Kind == nil || *errorResp.Kind != tt.wantKind) {
			t.Errorf("Error kind = %v, want %v", errorResp.Kind, tt.wantKind)
		}

		if errorResp.RequestId == "" {
			t.Errorf("Expected request ID in error response")
		}
	}
}
