package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPurchaseURLSubstitutesEventName(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/distributor/1/purchaseUrl?eventName=Summer+Concert", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if resp["url"] != "https://tickethub.example/search?q=Summer+Concert" {
		t.Fatalf("unexpected purchase url %q", resp["url"])
	}
}

func TestPurchaseURLUnknownDistributorNotFound(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/distributor/42/purchaseUrl?eventName=Anything", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateDistributorValidatesInput(t *testing.T) {
	server, _ := newTestServer()
	rr := postJSON(server, "/api/distributor", `{"name":"","searchAddress":""}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDistributorCRUD(t *testing.T) {
	server, _ := newTestServer()

	rr := postJSON(server, "/api/distributor",
		`{"name":"GigGate","searchAddress":"https://giggate.example/find/{query}"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var created map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if created["id"].(float64) != 2 {
		t.Fatalf("expected id 2, got %v", created)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/distributor/2", nil)
	del := httptest.NewRecorder()
	server.mux.ServeHTTP(del, req)
	if del.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", del.Code, del.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/distributor/2", nil)
	get := httptest.NewRecorder()
	server.mux.ServeHTTP(get, req)
	if get.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", get.Code)
	}
}
