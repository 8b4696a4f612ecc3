package entities

// Vote is a signed endorsement of one event by one account.
// At most one vote exists per (EventID, UserID) pair.
type Vote struct {
	ID      int64
	EventID int64
	UserID  int64
	IsPlus  bool
}

// Report is a flag raised by an account against an event.
// At most one active report exists per (EventID, AccountID) pair.
type Report struct {
	ID          int64
	EventID     int64
	AccountID   int64
	Description string
}
