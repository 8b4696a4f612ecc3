package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	distributorservice "eventy/contexts/event-listing/distributor-service"
	eventservice "eventy/contexts/event-listing/event-service"
	accountservice "eventy/contexts/identity-access/account-service"
	_ "eventy/internal/platform/httpserver/docs"

	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// TokenVerifier checks a bearer token and requires its subject to match the
// claimed account id.
type TokenVerifier interface {
	VerifyFor(raw string, accountID int64) error
}

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	events       eventservice.Module
	accounts     accountservice.Module
	distributors distributorservice.Module
	tokens       TokenVerifier
}

func New(
	events eventservice.Module,
	accounts accountservice.Module,
	distributors distributorservice.Module,
	tokens TokenVerifier,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		events:       events,
		accounts:     accounts,
		distributors: distributors,
		tokens:       tokens,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, cors.AllowAll().Handler(s.mux))
}

// Handler exposes the route table without the listener, for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/event/getAllEvents", s.handleListEvents)
	s.mux.HandleFunc("GET /api/event/getAllValidEvents", s.handleListValidEvents)
	s.mux.HandleFunc("GET /api/event/id/{id}", s.handleGetEvent)
	s.mux.HandleFunc("GET /api/event/name/{name}", s.handleGetEventByName)
	s.mux.HandleFunc("GET /api/event/search", s.handleSearchEvents)
	s.mux.HandleFunc("GET /api/event/searchAndSort", s.handleSearchAndSort)
	s.mux.HandleFunc("GET /api/event/sort/{sortType}", s.handleSortEvents)
	s.mux.HandleFunc("POST /api/event", s.handleCreateEvent)
	s.mux.HandleFunc("PUT /api/event/{id}", s.handleUpdateEvent)
	s.mux.HandleFunc("DELETE /api/event/{id}", s.handleDeleteEvent)
	s.mux.HandleFunc("PUT /api/event/{id}/location", s.handleUpdateEventLocation)
	s.mux.HandleFunc("PUT /api/event/{id}/type", s.handleUpdateEventType)
	s.mux.HandleFunc("PUT /api/event/{id}/status", s.handleUpdateEventStatus)
	s.mux.HandleFunc("POST /api/event/{eventId}/plus", s.handlePlusVote)
	s.mux.HandleFunc("POST /api/event/{eventId}/minus", s.handleMinusVote)
	s.mux.HandleFunc("POST /api/event/{eventId}/report", s.handleReportEvent)
	s.mux.HandleFunc("POST /api/event/{eventId}/unreport", s.handleUnreportEvent)
	s.mux.HandleFunc("GET /api/event/reportedEvents", s.handleReportedEvents)
	s.mux.HandleFunc("GET /api/event/reportedEvents/byAccount/{accountId}", s.handleReportedByAccount)
	s.mux.HandleFunc("GET /api/event/{eventId}/lowestTicketPrice", s.handleLowestTicketPrice)
	s.mux.HandleFunc("GET /api/event/{eventId}/highestTicketPrice", s.handleHighestTicketPrice)
	s.mux.HandleFunc("GET /api/event/{eventId}/tickets", s.handleListTickets)
	s.mux.HandleFunc("POST /api/event/{eventId}/tickets", s.handleAddTicket)
	s.mux.HandleFunc("GET /api/event/author/{eventId}", s.handleEventAuthor)

	s.mux.HandleFunc("POST /api/account/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/account/login", s.handleLogin)
	s.mux.HandleFunc("GET /api/account/{id}", s.handleGetAccount)
	s.mux.HandleFunc("POST /api/account/{id}/activate", s.handleActivateAccount)

	s.mux.HandleFunc("GET /api/distributor", s.handleListDistributors)
	s.mux.HandleFunc("POST /api/distributor", s.handleCreateDistributor)
	s.mux.HandleFunc("GET /api/distributor/{id}", s.handleGetDistributor)
	s.mux.HandleFunc("PUT /api/distributor/{id}", s.handleUpdateDistributor)
	s.mux.HandleFunc("DELETE /api/distributor/{id}", s.handleDeleteDistributor)
	s.mux.HandleFunc("GET /api/distributor/{id}/purchaseUrl", s.handlePurchaseURL)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func parsePathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
