package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(server *Server, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	server, _ := newTestServer()

	rr := postJSON(server, "/api/account/register",
		`{"email":"ana@example.com","name":"Ana","password":"correct-horse"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "password") {
		t.Fatalf("register response must not leak credentials: %s", rr.Body.String())
	}

	rr = postJSON(server, "/api/account/login",
		`{"email":"ana@example.com","password":"correct-horse"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var login map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &login); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if login["token"] == "" {
		t.Fatalf("expected a signed token, got %v", login)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	server, _ := newTestServer()

	first := postJSON(server, "/api/account/register",
		`{"email":"dup@example.com","name":"First","password":"password-one"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", first.Code, first.Body.String())
	}

	second := postJSON(server, "/api/account/register",
		`{"email":"dup@example.com","name":"Second","password":"password-two"}`)
	if second.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", second.Code, second.Body.String())
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	server, _ := newTestServer()

	rr := postJSON(server, "/api/account/register",
		`{"email":"short@example.com","name":"Short","password":"tiny"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	server, _ := newTestServer()

	rr := postJSON(server, "/api/account/register",
		`{"email":"bob@example.com","name":"Bob","password":"right-password"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = postJSON(server, "/api/account/login",
		`{"email":"bob@example.com","password":"wrong-password"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetAccountUnknownNotFound(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/account/404", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
