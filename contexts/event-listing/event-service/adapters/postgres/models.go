package postgresadapter

import (
	"time"

	"eventy/contexts/event-listing/event-service/domain/entities"
)

type eventModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	Name               string    `gorm:"column:name"`
	Description        string    `gorm:"column:description"`
	Address            string    `gorm:"column:address"`
	Image              string    `gorm:"column:image"`
	DateOfUpload       time.Time `gorm:"column:date_of_upload"`
	DateOfStart        time.Time `gorm:"column:date_of_start"`
	DateOfEnd          time.Time `gorm:"column:date_of_end"`
	LocationKind       string    `gorm:"column:location_kind"`
	EventType          string    `gorm:"column:event_type"`
	StatusKind         string    `gorm:"column:status_kind"`
	PlusVotes          int       `gorm:"column:plus_votes"`
	MinusVotes         int       `gorm:"column:minus_votes"`
	ReportCount        int       `gorm:"column:report_count"`
	IsConfirmed        bool      `gorm:"column:is_confirmed"`
	IsExpired          bool      `gorm:"column:is_expired"`
	IsSoldOut          bool      `gorm:"column:is_sold_out"`
	AmountOfAllTickets int       `gorm:"column:amount_of_all_tickets"`
	AmountOfBatches    int       `gorm:"column:amount_of_batches"`
	AuthorID           int64     `gorm:"column:author_id"`
	DistributorID      *int64    `gorm:"column:distributor_id"`
}

func (eventModel) TableName() string { return "event" }

func (m eventModel) toEntity() entities.Event {
	return entities.Event{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        m.Description,
		Address:            m.Address,
		Image:              m.Image,
		DateOfUpload:       m.DateOfUpload,
		DateOfStart:        m.DateOfStart,
		DateOfEnd:          m.DateOfEnd,
		LocationKind:       entities.LocationKind(m.LocationKind),
		EventType:          entities.EventType(m.EventType),
		StatusKind:         entities.StatusKind(m.StatusKind),
		PlusVotes:          m.PlusVotes,
		MinusVotes:         m.MinusVotes,
		ReportCount:        m.ReportCount,
		IsConfirmed:        m.IsConfirmed,
		IsExpired:          m.IsExpired,
		IsSoldOut:          m.IsSoldOut,
		AmountOfAllTickets: m.AmountOfAllTickets,
		AmountOfBatches:    m.AmountOfBatches,
		AuthorID:           m.AuthorID,
		DistributorID:      distributorIDFromColumn(m.DistributorID),
	}
}

func eventModelFromEntity(event entities.Event) eventModel {
	return eventModel{
		ID:                 event.ID,
		Name:               event.Name,
		Description:        event.Description,
		Address:            event.Address,
		Image:              event.Image,
		DateOfUpload:       event.DateOfUpload,
		DateOfStart:        event.DateOfStart,
		DateOfEnd:          event.DateOfEnd,
		LocationKind:       string(event.LocationKind),
		EventType:          string(event.EventType),
		StatusKind:         string(event.StatusKind),
		PlusVotes:          event.PlusVotes,
		MinusVotes:         event.MinusVotes,
		ReportCount:        event.ReportCount,
		IsConfirmed:        event.IsConfirmed,
		IsExpired:          event.IsExpired,
		IsSoldOut:          event.IsSoldOut,
		AmountOfAllTickets: event.AmountOfAllTickets,
		AmountOfBatches:    event.AmountOfBatches,
		AuthorID:           event.AuthorID,
		DistributorID:      distributorIDToColumn(event.DistributorID),
	}
}

// The distributor foreign key is nullable: an event without a distributor
// stores NULL, never 0, so the reference constraint cannot fire.
func distributorIDToColumn(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func distributorIDFromColumn(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func toEventEntities(rows []eventModel) []entities.Event {
	items := make([]entities.Event, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

type voteModel struct {
	ID      int64 `gorm:"column:id;primaryKey"`
	EventID int64 `gorm:"column:event_id;uniqueIndex:vote_event_user_uq"`
	UserID  int64 `gorm:"column:user_id;uniqueIndex:vote_event_user_uq"`
	IsPlus  bool  `gorm:"column:is_plus"`
}

func (voteModel) TableName() string { return "vote" }

func (m voteModel) toEntity() entities.Vote {
	return entities.Vote{ID: m.ID, EventID: m.EventID, UserID: m.UserID, IsPlus: m.IsPlus}
}

type reportModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	EventID     int64  `gorm:"column:event_id;uniqueIndex:report_event_account_uq"`
	AccountID   int64  `gorm:"column:account_id;uniqueIndex:report_event_account_uq"`
	Description string `gorm:"column:description"`
}

func (reportModel) TableName() string { return "report" }

type ticketModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	EventID     int64     `gorm:"column:event_id"`
	Name        string    `gorm:"column:name"`
	Type        string    `gorm:"column:type"`
	Price       float64   `gorm:"column:price"`
	Date        time.Time `gorm:"column:date"`
	Description string    `gorm:"column:description"`
}

func (ticketModel) TableName() string { return "ticket" }

func (m ticketModel) toEntity() entities.Ticket {
	return entities.Ticket{
		ID:          m.ID,
		EventID:     m.EventID,
		Name:        m.Name,
		Type:        m.Type,
		Price:       m.Price,
		Date:        m.Date,
		Description: m.Description,
	}
}

type outboxModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status"`
	RetryCount  int        `gorm:"column:retry_count"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "event_outbox" }
