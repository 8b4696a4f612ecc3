package httpserver

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	distributorservice "eventy/contexts/event-listing/distributor-service"
	distributorentities "eventy/contexts/event-listing/distributor-service/domain/entities"
	eventservice "eventy/contexts/event-listing/event-service"
	evententities "eventy/contexts/event-listing/event-service/domain/entities"
	accountservice "eventy/contexts/identity-access/account-service"
)

var testSecret = []byte("test-secret")

func seedEvents() []evententities.Event {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []evententities.Event{
		{
			ID:          1,
			Name:        "Summer Concert",
			DateOfStart: base,
			DateOfEnd:   base.Add(4 * time.Hour),
			EventType:   evententities.EventTypeConcert,
			StatusKind:  evententities.StatusPlanned,
			AuthorID:    10,
		},
		{
			ID:          2,
			Name:        "Old Festival",
			DateOfStart: base.AddDate(-1, 0, 0),
			DateOfEnd:   base.AddDate(-1, 0, 1),
			EventType:   evententities.EventTypeFestival,
			StatusKind:  evententities.StatusFinished,
			IsExpired:   true,
			AuthorID:    10,
		},
	}
}

func newTestServer() (*Server, accountservice.Module) {
	accounts := accountservice.NewInMemoryModule(testSecret, slog.Default())
	return New(
		eventservice.NewInMemoryModule(seedEvents(), slog.Default()),
		accounts,
		distributorservice.NewInMemoryModule([]distributorentities.Distributor{
			{ID: 1, Name: "TicketHub", SearchAddress: "https://tickethub.example/search?q={query}"},
		}, slog.Default()),
		accounts.Tokens,
		slog.Default(),
		":0",
	), accounts
}

func issueToken(t *testing.T, accounts accountservice.Module, accountID int64) string {
	t.Helper()
	token, _, err := accounts.Tokens.Issue(accountID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestListEventsReturnsSeed(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/event/getAllEvents", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListValidEventsExcludesExpired(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/event/getAllValidEvents", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Summer Concert") || strings.Contains(body, "Old Festival") {
		t.Fatalf("expected only non-expired events, got %s", body)
	}
}

func TestGetEventNotFound(t *testing.T) {
	server, _ := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/event/id/999", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
