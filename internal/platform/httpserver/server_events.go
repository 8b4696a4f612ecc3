package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	eventerrors "eventy/contexts/event-listing/event-service/domain/errors"
	eventhttp "eventy/contexts/event-listing/event-service/transport/http"
	accounterrors "eventy/contexts/identity-access/account-service/domain/errors"
)

func writeEventError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, eventhttp.ErrorResponse{Code: code, Message: message})
}

func writeEventDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, eventerrors.ErrEventNotFound):
		writeEventError(w, http.StatusNotFound, "event_not_found", err.Error())
	case errors.Is(err, eventerrors.ErrAuthorNotFound):
		writeEventError(w, http.StatusNotFound, "author_not_found", err.Error())
	case errors.Is(err, eventerrors.ErrNoTickets):
		writeEventError(w, http.StatusNotFound, "no_tickets", err.Error())
	case errors.Is(err, eventerrors.ErrEventIDMismatch):
		writeEventError(w, http.StatusBadRequest, "event_id_mismatch", err.Error())
	case errors.Is(err, eventerrors.ErrInvalidEventInput),
		errors.Is(err, eventerrors.ErrInvalidVoteInput),
		errors.Is(err, eventerrors.ErrInvalidReportInput),
		errors.Is(err, eventerrors.ErrInvalidTicketInput),
		errors.Is(err, eventerrors.ErrUnknownLocation),
		errors.Is(err, eventerrors.ErrUnknownEventType),
		errors.Is(err, eventerrors.ErrUnknownStatus):
		writeEventError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeEventError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// resolveCredentials decodes the {token, userId} body and verifies the token
// subject matches the claimed user. A malformed body or non-positive user id
// is a bad request; a failed verification is unauthorized.
func (s *Server) resolveCredentials(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var req eventhttp.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return 0, false
	}
	return s.verifyCredentials(w, req)
}

func (s *Server) verifyCredentials(w http.ResponseWriter, req eventhttp.CredentialsRequest) (int64, bool) {
	if req.UserID <= 0 {
		writeEventError(w, http.StatusBadRequest, "invalid_user_id", "userId must be a positive integer")
		return 0, false
	}
	if err := s.tokens.VerifyFor(req.Token, req.UserID); err != nil {
		if errors.Is(err, accounterrors.ErrInvalidToken) || errors.Is(err, accounterrors.ErrTokenSubjectMismatch) {
			writeEventError(w, http.StatusUnauthorized, "unauthorized", err.Error())
			return 0, false
		}
		writeEventError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return 0, false
	}
	return req.UserID, true
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := s.events.Handler.ListEventsHandler(r.Context())
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListValidEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := s.events.Handler.ListValidEventsHandler(r.Context())
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "id")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	resp, err := s.events.Handler.GetEventHandler(r.Context(), eventID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEventByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		writeEventError(w, http.StatusBadRequest, "invalid_name", "name is required")
		return
	}
	resp, err := s.events.Handler.GetEventByNameHandler(r.Context(), name)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSearchEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := s.events.Handler.SearchEventsHandler(r.Context(), r.URL.Query().Get("searchTerm"))
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSearchAndSort(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.events.Handler.SearchAndSortHandler(r.Context(), query.Get("searchTerm"), query.Get("sortType"))
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSortEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := s.events.Handler.SortEventsHandler(r.Context(), r.PathValue("sortType"))
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventhttp.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.events.Handler.CreateEventHandler(r.Context(), req)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "id")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	var req eventhttp.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.events.Handler.UpdateEventHandler(r.Context(), eventID, req)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "id")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	if err := s.events.Handler.DeleteEventHandler(r.Context(), eventID); err != nil {
		writeEventDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateEventLocation(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "id")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	var req eventhttp.UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.events.Handler.UpdateLocationHandler(r.Context(), eventID, req.Location)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateEventType(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "id")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	var req eventhttp.UpdateTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.events.Handler.UpdateTypeHandler(r.Context(), eventID, req.EventType)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateEventStatus(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "id")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	var req eventhttp.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.events.Handler.UpdateStatusHandler(r.Context(), eventID, req.EventStatus)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePlusVote(w http.ResponseWriter, r *http.Request) {
	s.handleVote(w, r, true)
}

func (s *Server) handleMinusVote(w http.ResponseWriter, r *http.Request) {
	s.handleVote(w, r, false)
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request, isPlus bool) {
	eventID, ok := parsePathID(r, "eventId")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "eventId must be a positive integer")
		return
	}
	userID, ok := s.resolveCredentials(w, r)
	if !ok {
		return
	}
	resp, err := s.events.Handler.CastVoteHandler(r.Context(), eventID, userID, isPlus)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReportEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "eventId")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "eventId must be a positive integer")
		return
	}
	var req eventhttp.ReportEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	userID, ok := s.verifyCredentials(w, req.CredentialsRequest)
	if !ok {
		return
	}
	resp, err := s.events.Handler.ReportEventHandler(r.Context(), eventID, userID, req.Description)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnreportEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "eventId")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "eventId must be a positive integer")
		return
	}
	userID, ok := s.resolveCredentials(w, r)
	if !ok {
		return
	}
	resp, err := s.events.Handler.UnreportEventHandler(r.Context(), eventID, userID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReportedEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := s.events.Handler.ReportedEventsHandler(r.Context())
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReportedByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := parsePathID(r, "accountId")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "accountId must be a positive integer")
		return
	}
	resp, err := s.events.Handler.ReportedByAccountHandler(r.Context(), accountID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLowestTicketPrice(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "eventId")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "eventId must be a positive integer")
		return
	}
	price, err := s.events.Handler.LowestTicketPriceHandler(r.Context(), eventID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, price)
}

func (s *Server) handleHighestTicketPrice(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "eventId")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "eventId must be a positive integer")
		return
	}
	price, err := s.events.Handler.HighestTicketPriceHandler(r.Context(), eventID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, price)
}

func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "eventId")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "eventId must be a positive integer")
		return
	}
	resp, err := s.events.Handler.ListTicketsHandler(r.Context(), eventID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddTicket(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "eventId")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "eventId must be a positive integer")
		return
	}
	var req eventhttp.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.events.Handler.AddTicketHandler(r.Context(), eventID, req)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleEventAuthor(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parsePathID(r, "eventId")
	if !ok {
		writeEventError(w, http.StatusBadRequest, "invalid_id", "eventId must be a positive integer")
		return
	}
	resp, err := s.events.Handler.EventAuthorHandler(r.Context(), eventID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
