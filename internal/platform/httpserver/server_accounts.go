package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	accounterrors "eventy/contexts/identity-access/account-service/domain/errors"
	accounthttp "eventy/contexts/identity-access/account-service/transport/http"
)

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{Code: code, Message: message})
}

func writeAccountDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrAccountNotFound):
		writeAccountError(w, http.StatusNotFound, "account_not_found", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidAccountInput):
		writeAccountError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, accounterrors.ErrEmailTaken):
		writeAccountError(w, http.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidCredentials),
		errors.Is(err, accounterrors.ErrInvalidToken),
		errors.Is(err, accounterrors.ErrTokenSubjectMismatch):
		writeAccountError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.accounts.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.accounts.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := parsePathID(r, "id")
	if !ok {
		writeAccountError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	resp, err := s.accounts.Handler.GetAccountHandler(r.Context(), accountID)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleActivateAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := parsePathID(r, "id")
	if !ok {
		writeAccountError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return
	}
	resp, err := s.accounts.Handler.ActivateAccountHandler(r.Context(), accountID)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
