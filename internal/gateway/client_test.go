package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:     baseURL,
		SecretKey:   "test-secret",
		Currency:    "ETB",
		CallbackURL: "http://localhost:8080/api/payments/verify",
		Timeout:     2 * time.Second,
	}
}

func TestInitialize_SendsProviderProtocol(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/transaction/initialize" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"success","data":{"tx_ref":"booking_42_1","checkout_url":"https://checkout.example/abc"}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	result, err := client.Initialize(context.Background(), InitializeRequest{
		Amount:    150.00,
		TxRef:     "booking_42_1",
		Email:     "guest@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !result.OK {
		t.Error("expected result to be OK")
	}
	if gotAuth != "Bearer test-secret" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}

	want := map[string]any{
		"amount":       150.00,
		"currency":     "ETB",
		"tx_ref":       "booking_42_1",
		"email":        "guest@example.com",
		"first_name":   "Ada",
		"last_name":    "Lovelace",
		"callback_url": "http://localhost:8080/api/payments/verify",
	}
	for key, value := range want {
		if gotBody[key] != value {
			t.Errorf("body field %s: expected %v, got %v", key, value, gotBody[key])
		}
	}
}

func TestInitialize_ProviderRejection_NoError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":"failed","message":"invalid currency"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	result, err := client.Initialize(context.Background(), InitializeRequest{
		Amount: 150.00,
		TxRef:  "booking_42_1",
	})
	if err != nil {
		t.Fatalf("a well-formed rejection must not be an error, got: %v", err)
	}

	if result.OK {
		t.Error("expected result not to be OK")
	}
	if result.Status != "failed" {
		t.Errorf("expected status failed, got %q", result.Status)
	}
	if string(result.Raw) != `{"status":"failed","message":"invalid currency"}` {
		t.Errorf("expected raw payload preserved, got %s", result.Raw)
	}
}

func TestInitialize_MalformedResponse_Unavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	_, err := client.Initialize(context.Background(), InitializeRequest{Amount: 1, TxRef: "ref"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}
}

func TestInitialize_ConnectionRefused_Unavailable(t *testing.T) {
	t.Parallel()

	// A server that is immediately closed leaves a port nothing listens on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	_, err := client.Initialize(context.Background(), InitializeRequest{Amount: 1, TxRef: "ref"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}
}

func TestVerify_QueriesReferencePath(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/transaction/verify/booking_42_1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-secret" {
			t.Errorf("expected bearer auth header, got %q", auth)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"success","data":{"status":"success"}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(testConfig(server.URL))

	result, err := client.Verify(context.Background(), "booking_42_1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !result.OK {
		t.Error("expected result to be OK")
	}
}
