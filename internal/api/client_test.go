package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"ceybyte/terminal/internal/domain"
)

type fakeTokens struct {
	token   string
	cleared int
}

func (f *fakeTokens) Token() string { return f.token }

func (f *fakeTokens) SetToken(token string) error {
	f.token = token
	return nil
}

func (f *fakeTokens) ClearToken() {
	f.token = ""
	f.cleared++
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *fakeTokens, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := &fakeTokens{}
	return New(srv.URL, tokens, zap.NewNop().Sugar()), tokens, srv
}

func TestGetProductSuccess(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"name_en":"Rice 5kg","selling_price":1850.0,"is_active":true}`))
	}))

	result := client.GetProduct(context.Background(), 7)
	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.Data.ID != 7 || result.Data.NameEn != "Rice 5kg" {
		t.Errorf("unexpected data %+v", result.Data)
	}
	if result.Data.SellingPrice != 1850.0 {
		t.Errorf("selling price = %v, want 1850", result.Data.SellingPrice)
	}
}

func TestErrorResponseUsesDetail(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Product not found"}`))
	}))

	result := client.GetProduct(context.Background(), 99)
	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "Product not found" {
		t.Errorf("error = %q, want detail message", result.Error)
	}
	if result.IsNetworkError() {
		t.Error("HTTP error should not count as network error")
	}
	if result.StatusCode != http.StatusNotFound {
		t.Errorf("status code = %d, want 404", result.StatusCode)
	}
	if result.Retryable() {
		t.Error("a 404 is a definitive rejection, not retryable")
	}
}

func TestErrorResponseWithoutDetail(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))

	result := client.Me(context.Background())
	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "request failed with status 500" {
		t.Errorf("error = %q", result.Error)
	}
	if result.StatusCode != http.StatusInternalServerError {
		t.Errorf("status code = %d, want 500", result.StatusCode)
	}
	if !result.Retryable() {
		t.Error("a 500 should be retryable")
	}
}

func TestUnauthorizedClearsToken(t *testing.T) {
	client, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Token expired"}`))
	}))
	tokens.token = "stale-token"

	result := client.Me(context.Background())
	if result.Success {
		t.Fatal("expected failure")
	}
	if tokens.token != "" {
		t.Error("401 should clear the stored token")
	}
	if tokens.cleared != 1 {
		t.Errorf("ClearToken called %d times, want 1", tokens.cleared)
	}
	if result.Error != "Token expired" {
		t.Errorf("error = %q", result.Error)
	}
}

func TestNetworkFailure(t *testing.T) {
	client, _, srv := newTestClient(t, http.NewServeMux())
	srv.Close()

	result := client.Me(context.Background())
	if result.Success {
		t.Fatal("expected failure")
	}
	if !result.IsNetworkError() {
		t.Errorf("error = %q, want %q", result.Error, NetworkErrorMessage)
	}
	if !result.Retryable() {
		t.Error("a transport failure should be retryable")
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"username":"nimal","name":"Nimal","role":"cashier"}`))
	}))
	tokens.token = "abc123"

	if result := client.Me(context.Background()); !result.Success {
		t.Fatalf("unexpected error %q", result.Error)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var hasAuth bool
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))

	client.Me(context.Background())
	if hasAuth {
		t.Error("request without a stored token should not send Authorization")
	}
}

func TestLoginStoresToken(t *testing.T) {
	client, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"access_token":"fresh-token","token_type":"bearer","expires_in":3600,"user":{"id":1,"username":"nimal","name":"Nimal","role":"cashier"}}`))
	}))

	result := client.Login(context.Background(), domain.LoginRequest{Username: "nimal", Password: "secret"})
	if !result.Success {
		t.Fatalf("unexpected error %q", result.Error)
	}
	if tokens.token != "fresh-token" {
		t.Errorf("stored token = %q", tokens.token)
	}
	if result.Data.User.Username != "nimal" {
		t.Errorf("user = %+v", result.Data.User)
	}
}

func TestLogoutClearsToken(t *testing.T) {
	client, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"message":"logged out"}`))
	}))
	tokens.token = "abc123"

	client.Logout(context.Background())
	if tokens.token != "" {
		t.Error("logout should clear the stored token")
	}
}

func TestCreateSaleRoundTrip(t *testing.T) {
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sales" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		w.Write([]byte(`{"id":42,"receipt_number":"R-000042","items":[],"payment":{"method":"cash"},"totals":{"subtotal":500,"discount":0,"tax":0,"total":500,"item_count":1}}`))
	}))

	tendered := 1000.0
	result := client.CreateSale(context.Background(), domain.SaleCreateRequest{
		Items:          []domain.SaleItemCreate{{ProductID: 7, Quantity: 1, UnitPrice: 500}},
		PaymentMethod:  domain.PaymentMethodCash,
		AmountTendered: &tendered,
	})
	if !result.Success {
		t.Fatalf("unexpected error %q", result.Error)
	}
	if result.Data.ReceiptNumber != "R-000042" || result.Data.Totals.Total != 500 {
		t.Errorf("unexpected sale %+v", result.Data)
	}
}

func TestQueryParameters(t *testing.T) {
	var gotQuery string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))

	client.ListProducts(context.Background(), domain.ProductFilter{Search: "rice", ActiveOnly: true})
	if gotQuery != "is_active=true&search=rice" {
		t.Errorf("query = %q", gotQuery)
	}
}
