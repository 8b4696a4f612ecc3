package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	distributorerrors "eventy/contexts/event-listing/distributor-service/domain/errors"
	distributorhttp "eventy/contexts/event-listing/distributor-service/transport/http"
)

func writeDistributorError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, distributorhttp.ErrorResponse{Code: code, Message: message})
}

func writeDistributorDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, distributorerrors.ErrDistributorNotFound):
		writeDistributorError(w, http.StatusNotFound, "distributor_not_found", err.Error())
	case errors.Is(err, distributorerrors.ErrInvalidDistributorInput),
		errors.Is(err, distributorerrors.ErrDistributorIDMismatch):
		writeDistributorError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeDistributorError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListDistributors(w http.ResponseWriter, r *http.Request) {
	resp, err := s.distributors.Handler.ListDistributorsHandler(r.Context())
	if err != nil {
		writeDistributorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateDistributor(w http.ResponseWriter, r *http.Request) {
	var req distributorhttp.SaveDistributorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDistributorError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.distributors.Handler.CreateDistributorHandler(r.Context(), req)
	if err != nil {
		writeDistributorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetDistributor(w http.ResponseWriter, r *http.Request) {
	distributorID, ok := parsePathID(r, "id")
	if !ok {
		writeDistributorError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	resp, err := s.distributors.Handler.GetDistributorHandler(r.Context(), distributorID)
	if err != nil {
		writeDistributorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateDistributor(w http.ResponseWriter, r *http.Request) {
	distributorID, ok := parsePathID(r, "id")
	if !ok {
		writeDistributorError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	var req distributorhttp.SaveDistributorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDistributorError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.distributors.Handler.UpdateDistributorHandler(r.Context(), distributorID, req)
	if err != nil {
		writeDistributorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteDistributor(w http.ResponseWriter, r *http.Request) {
	distributorID, ok := parsePathID(r, "id")
	if !ok {
		writeDistributorError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	if err := s.distributors.Handler.DeleteDistributorHandler(r.Context(), distributorID); err != nil {
		writeDistributorDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePurchaseURL(w http.ResponseWriter, r *http.Request) {
	distributorID, ok := parsePathID(r, "id")
	if !ok {
		writeDistributorError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	resp, err := s.distributors.Handler.PurchaseURLHandler(r.Context(), distributorID, r.URL.Query().Get("eventName"))
	if err != nil {
		writeDistributorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
