// Package http defines the JSON wire shapes of the event API. Field names
// keep the camelCase contract the browser client already speaks.
package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CredentialsRequest is the {token, userId} body sent with vote and report
// mutations.
type CredentialsRequest struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// ReportEventRequest extends the credentials body with an optional free-text
// reason for flagging the event.
type ReportEventRequest struct {
	CredentialsRequest
	Description string `json:"description,omitempty"`
}

type EventResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Address            string    `json:"address"`
	Image              string    `json:"image"`
	DateOfUpload       time.Time `json:"dateOfUpload"`
	DateOfStart        time.Time `json:"dateOfStart"`
	DateOfEnd          time.Time `json:"dateOfEnd"`
	Location           string    `json:"location"`
	EventType          string    `json:"eventType"`
	EventStatus        string    `json:"eventStatus"`
	Pluses             int       `json:"pluses"`
	Minuses            int       `json:"minuses"`
	NumberOfReports    int       `json:"numberOfReports"`
	IsConfirmed        bool      `json:"isConfirmed"`
	IsExpired          bool      `json:"isExpired"`
	IsSoldOut          bool      `json:"isSoldOut"`
	AmountOfAllTickets int       `json:"amountOfAllTickets"`
	AmountOfBatches    int       `json:"amountOfBatches"`
	AuthorID           int64     `json:"authorId"`
	DistributorID      int64     `json:"distributorId"`
}

type EventListResponse struct {
	Items []EventResponse `json:"items"`
}

type CreateEventRequest struct {
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Address            string    `json:"address"`
	Image              string    `json:"image"`
	DateOfStart        time.Time `json:"dateOfStart"`
	DateOfEnd          time.Time `json:"dateOfEnd"`
	Location           string    `json:"location"`
	EventType          string    `json:"eventType"`
	EventStatus        string    `json:"eventStatus"`
	AmountOfAllTickets int       `json:"amountOfAllTickets"`
	AmountOfBatches    int       `json:"amountOfBatches"`
	AuthorID           int64     `json:"authorId"`
	DistributorID      int64     `json:"distributorId"`
}

type UpdateEventRequest struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Address            string    `json:"address"`
	Image              string    `json:"image"`
	DateOfStart        time.Time `json:"dateOfStart"`
	DateOfEnd          time.Time `json:"dateOfEnd"`
	Location           string    `json:"location"`
	EventType          string    `json:"eventType"`
	EventStatus        string    `json:"eventStatus"`
	IsConfirmed        bool      `json:"isConfirmed"`
	IsExpired          bool      `json:"isExpired"`
	IsSoldOut          bool      `json:"isSoldOut"`
	AmountOfAllTickets int       `json:"amountOfAllTickets"`
	AmountOfBatches    int       `json:"amountOfBatches"`
	DistributorID      int64     `json:"distributorId"`
}

type UpdateLocationRequest struct {
	Location string `json:"location"`
}

type UpdateTypeRequest struct {
	EventType string `json:"eventType"`
}

type UpdateStatusRequest struct {
	EventStatus string `json:"eventStatus"`
}

type TicketResponse struct {
	ID          int64     `json:"id"`
	EventID     int64     `json:"eventId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
}

type CreateTicketRequest struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// AuthorResponse deliberately excludes the credential hash the original API
// used to leak.
type AuthorResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
	Active      bool   `json:"activeAccount"`
}
