package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postCredentials(server *Server, path string, token string, userID int64) *httptest.ResponseRecorder {
	body := []byte(fmt.Sprintf(`{"token":%q,"userId":%d}`, token, userID))
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func TestVoteRejectsUnsignedToken(t *testing.T) {
	server, _ := newTestServer()
	rr := postCredentials(server, "/api/event/1/plus", "not-a-jwt", 10)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVoteRejectsTokenForDifferentUser(t *testing.T) {
	server, accounts := newTestServer()
	token := issueToken(t, accounts, 99)
	rr := postCredentials(server, "/api/event/1/plus", token, 10)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVoteRejectsNonPositiveUserID(t *testing.T) {
	server, accounts := newTestServer()
	token := issueToken(t, accounts, 10)
	rr := postCredentials(server, "/api/event/1/plus", token, 0)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVoteRejectsMalformedBody(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/event/1/plus", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVoteUnknownEventNotFound(t *testing.T) {
	server, accounts := newTestServer()
	token := issueToken(t, accounts, 10)
	rr := postCredentials(server, "/api/event/999/plus", token, 10)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVoteFlowUpdatesCounters(t *testing.T) {
	server, accounts := newTestServer()
	token := issueToken(t, accounts, 10)

	rr := postCredentials(server, "/api/event/1/plus", token, 10)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var event map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &event); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if event["pluses"].(float64) != 1 || event["minuses"].(float64) != 0 {
		t.Fatalf("expected pluses=1 minuses=0, got %v", event)
	}

	// Same sign again is a no-op.
	rr = postCredentials(server, "/api/event/1/plus", token, 10)
	if err := json.Unmarshal(rr.Body.Bytes(), &event); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if event["pluses"].(float64) != 1 {
		t.Fatalf("repeated plus vote must not change counters, got %v", event)
	}

	// Switching sign moves the count.
	rr = postCredentials(server, "/api/event/1/minus", token, 10)
	if err := json.Unmarshal(rr.Body.Bytes(), &event); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if event["pluses"].(float64) != 0 || event["minuses"].(float64) != 1 {
		t.Fatalf("expected pluses=0 minuses=1 after switch, got %v", event)
	}
}

func TestReportAndUnreportFlow(t *testing.T) {
	server, accounts := newTestServer()
	token := issueToken(t, accounts, 10)

	rr := postCredentials(server, "/api/event/1/report", token, 10)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var event map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &event); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if event["numberOfReports"].(float64) != 1 {
		t.Fatalf("expected numberOfReports=1, got %v", event)
	}

	// Duplicate report is benign.
	rr = postCredentials(server, "/api/event/1/report", token, 10)
	if rr.Code != http.StatusOK {
		t.Fatalf("duplicate report should be 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &event); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if event["numberOfReports"].(float64) != 1 {
		t.Fatalf("duplicate report must not change counter, got %v", event)
	}

	rr = postCredentials(server, "/api/event/1/unreport", token, 10)
	if err := json.Unmarshal(rr.Body.Bytes(), &event); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if event["numberOfReports"].(float64) != 0 {
		t.Fatalf("expected numberOfReports=0 after unreport, got %v", event)
	}

	// Withdrawing again stays at zero.
	rr = postCredentials(server, "/api/event/1/unreport", token, 10)
	if rr.Code != http.StatusOK {
		t.Fatalf("missing report withdraw should be 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestReportStoresOptionalDescription(t *testing.T) {
	server, accounts := newTestServer()
	token := issueToken(t, accounts, 10)

	body := []byte(fmt.Sprintf(`{"token":%q,"userId":10,"description":"spam listing"}`, token))
	req := httptest.NewRequest(http.MethodPost, "/api/event/1/report", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	report, ok := server.events.Store.GetReport(1, 10)
	if !ok {
		t.Fatalf("report row was not stored")
	}
	if report.Description != "spam listing" {
		t.Fatalf("expected description to reach storage, got %q", report.Description)
	}
}

func TestLowestTicketPriceWithoutTicketsNotFound(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/event/1/lowestTicketPrice", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
