package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	eventservice "eventy/contexts/event-listing/event-service"
	"eventy/contexts/event-listing/event-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/event-service/domain/errors"
	"eventy/contexts/event-listing/event-service/ports"
)

func seedBase() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newVotingModule(t *testing.T) eventservice.Module {
	t.Helper()
	base := seedBase()
	return eventservice.NewInMemoryModule([]entities.Event{
		{
			ID:          1,
			Name:        "City Concert",
			DateOfStart: base,
			DateOfEnd:   base.Add(3 * time.Hour),
			AuthorID:    10,
		},
	}, nil)
}

func TestCastVoteIsIdempotentPerSign(t *testing.T) {
	module := newVotingModule(t)
	ctx := context.Background()

	first, err := module.Handler.CastVoteHandler(ctx, 1, 100, true)
	if err != nil {
		t.Fatalf("first vote failed: %v", err)
	}
	if first.Pluses != 1 || first.Minuses != 0 {
		t.Fatalf("expected (1,0) after first plus, got (%d,%d)", first.Pluses, first.Minuses)
	}

	second, err := module.Handler.CastVoteHandler(ctx, 1, 100, true)
	if err != nil {
		t.Fatalf("repeated vote failed: %v", err)
	}
	if second.Pluses != 1 || second.Minuses != 0 {
		t.Fatalf("repeated plus must not double count, got (%d,%d)", second.Pluses, second.Minuses)
	}
}

func TestCastVoteSignSwitchMovesCount(t *testing.T) {
	module := newVotingModule(t)
	ctx := context.Background()

	if _, err := module.Handler.CastVoteHandler(ctx, 1, 100, true); err != nil {
		t.Fatalf("plus vote failed: %v", err)
	}
	switched, err := module.Handler.CastVoteHandler(ctx, 1, 100, false)
	if err != nil {
		t.Fatalf("sign switch failed: %v", err)
	}
	if switched.Pluses != 0 || switched.Minuses != 1 {
		t.Fatalf("expected (0,1) after switch, got (%d,%d)", switched.Pluses, switched.Minuses)
	}
}

func TestCastVoteUnknownEvent(t *testing.T) {
	module := newVotingModule(t)

	_, err := module.Handler.CastVoteHandler(context.Background(), 42, 100, true)
	if !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestCountersMatchVoteRows(t *testing.T) {
	module := newVotingModule(t)
	ctx := context.Background()

	votes := []struct {
		userID int64
		isPlus bool
	}{
		{100, true}, {101, true}, {102, false},
		{100, true},  // repeat, no-op
		{101, false}, // switch
	}
	for _, v := range votes {
		if _, err := module.Handler.CastVoteHandler(ctx, 1, v.userID, v.isPlus); err != nil {
			t.Fatalf("vote(%d,%v) failed: %v", v.userID, v.isPlus, err)
		}
	}

	event, err := module.Store.GetEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	plus, minus, err := module.Store.CountVotes(ctx, 1)
	if err != nil {
		t.Fatalf("count votes: %v", err)
	}
	if event.PlusVotes != plus || event.MinusVotes != minus {
		t.Fatalf("counters (%d,%d) diverge from rows (%d,%d)",
			event.PlusVotes, event.MinusVotes, plus, minus)
	}
	if plus != 1 || minus != 2 {
		t.Fatalf("expected rows (1,2), got (%d,%d)", plus, minus)
	}
}

func TestDuplicateReportLeavesCountUnchanged(t *testing.T) {
	module := newVotingModule(t)
	ctx := context.Background()

	first, err := module.Handler.ReportEventHandler(ctx, 1, 200, "spam")
	if err != nil {
		t.Fatalf("first report failed: %v", err)
	}
	if first.NumberOfReports != 1 {
		t.Fatalf("expected 1 report, got %d", first.NumberOfReports)
	}

	second, err := module.Handler.ReportEventHandler(ctx, 1, 200, "spam again")
	if err != nil {
		t.Fatalf("duplicate report must be benign: %v", err)
	}
	if second.NumberOfReports != 1 {
		t.Fatalf("duplicate report changed count to %d", second.NumberOfReports)
	}
}

func TestWithdrawMissingReportIsNoOp(t *testing.T) {
	module := newVotingModule(t)

	event, err := module.Handler.UnreportEventHandler(context.Background(), 1, 200)
	if err != nil {
		t.Fatalf("withdraw without report must be benign: %v", err)
	}
	if event.NumberOfReports != 0 {
		t.Fatalf("expected 0 reports, got %d", event.NumberOfReports)
	}
}

func TestReportedEventsQueries(t *testing.T) {
	base := seedBase()
	module := eventservice.NewInMemoryModule([]entities.Event{
		{ID: 1, Name: "Clean", DateOfStart: base, AuthorID: 10},
		{ID: 2, Name: "Flagged", DateOfStart: base, AuthorID: 10},
	}, nil)
	ctx := context.Background()

	if _, err := module.Handler.ReportEventHandler(ctx, 2, 300, ""); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	reported, err := module.Handler.ReportedEventsHandler(ctx)
	if err != nil {
		t.Fatalf("reportedEvents failed: %v", err)
	}
	if len(reported.Items) != 1 || reported.Items[0].ID != 2 {
		t.Fatalf("expected only event 2 reported, got %+v", reported.Items)
	}

	byAccount, err := module.Handler.ReportedByAccountHandler(ctx, 300)
	if err != nil {
		t.Fatalf("reportedByAccount failed: %v", err)
	}
	if len(byAccount.Items) != 1 || byAccount.Items[0].ID != 2 {
		t.Fatalf("expected event 2 for account 300, got %+v", byAccount.Items)
	}

	other, err := module.Handler.ReportedByAccountHandler(ctx, 999)
	if err != nil {
		t.Fatalf("reportedByAccount for unknown account failed: %v", err)
	}
	if len(other.Items) != 0 {
		t.Fatalf("expected no events for account 999, got %+v", other.Items)
	}
}

func TestSearchAndSortVotesOrder(t *testing.T) {
	base := seedBase()
	module := eventservice.NewInMemoryModule([]entities.Event{
		{ID: 1, Name: "Alpha", DateOfStart: base, PlusVotes: 5, MinusVotes: 1},
		{ID: 2, Name: "Beta", DateOfStart: base, PlusVotes: 3, MinusVotes: 9},
		{ID: 3, Name: "Gamma", DateOfStart: base, PlusVotes: 3, MinusVotes: 2},
	}, nil)

	resp, err := module.Handler.SearchAndSortHandler(context.Background(), "", "votes")
	if err != nil {
		t.Fatalf("searchAndSort failed: %v", err)
	}

	got := []int64{resp.Items[0].ID, resp.Items[1].ID, resp.Items[2].ID}
	want := []int64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("votes sort order mismatch: got %v, want %v", got, want)
		}
	}
}

func TestSearchAndSortDateFiltersAndOrders(t *testing.T) {
	base := seedBase()
	module := eventservice.NewInMemoryModule([]entities.Event{
		{ID: 1, Name: "Tech Conference", DateOfStart: base.AddDate(0, 1, 0)},
		{ID: 2, Name: "Sales CONF", DateOfStart: base},
		{ID: 3, Name: "Concert Night", DateOfStart: base.AddDate(0, 0, 10)},
	}, nil)

	resp, err := module.Handler.SearchAndSortHandler(context.Background(), "conf", "date")
	if err != nil {
		t.Fatalf("searchAndSort failed: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 matches for 'conf', got %d", len(resp.Items))
	}
	if resp.Items[0].ID != 2 || resp.Items[1].ID != 1 {
		t.Fatalf("expected date ascending [2,1], got [%d,%d]", resp.Items[0].ID, resp.Items[1].ID)
	}
}

func TestSortClosestUsesClock(t *testing.T) {
	base := seedBase()
	module := eventservice.NewInMemoryModule([]entities.Event{
		{ID: 1, Name: "Far Future", DateOfStart: base.AddDate(0, 2, 0)},
		{ID: 2, Name: "Near Future", DateOfStart: base.AddDate(0, 0, 3)},
		{ID: 3, Name: "Recent Past", DateOfStart: base.AddDate(0, 0, -1)},
	}, nil)
	module.Store.SetNow(base)

	resp, err := module.Handler.SortEventsHandler(context.Background(), "closest")
	if err != nil {
		t.Fatalf("sort closest failed: %v", err)
	}
	if resp.Items[0].ID != 3 || resp.Items[1].ID != 2 || resp.Items[2].ID != 1 {
		t.Fatalf("expected closest order [3,2,1], got [%d,%d,%d]",
			resp.Items[0].ID, resp.Items[1].ID, resp.Items[2].ID)
	}
}

func TestPriceRangeFromTickets(t *testing.T) {
	module := newVotingModule(t)
	for _, price := range []float64{12.50, 9.99, 40.00} {
		module.Store.SetTicket(entities.Ticket{EventID: 1, Name: "Entry", Price: price, Date: seedBase()})
	}

	lowest, err := module.Handler.LowestTicketPriceHandler(context.Background(), 1)
	if err != nil {
		t.Fatalf("lowest price failed: %v", err)
	}
	highest, err := module.Handler.HighestTicketPriceHandler(context.Background(), 1)
	if err != nil {
		t.Fatalf("highest price failed: %v", err)
	}
	if lowest != 9.99 || highest != 40.00 {
		t.Fatalf("expected (9.99, 40.00), got (%v, %v)", lowest, highest)
	}
}

func TestPriceRangeWithoutTickets(t *testing.T) {
	module := newVotingModule(t)

	_, err := module.Handler.LowestTicketPriceHandler(context.Background(), 1)
	if !errors.Is(err, domainerrors.ErrNoTickets) {
		t.Fatalf("expected ErrNoTickets, got %v", err)
	}
}

func TestEventAuthorLookup(t *testing.T) {
	module := newVotingModule(t)

	_, err := module.Handler.EventAuthorHandler(context.Background(), 1)
	if !errors.Is(err, domainerrors.ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound without account, got %v", err)
	}

	module.Store.SetAccount(ports.AccountProjection{
		AccountID:   10,
		Email:       "author@example.com",
		Name:        "Author",
		AccountType: "organizer",
		Active:      true,
	})

	author, err := module.Handler.EventAuthorHandler(context.Background(), 1)
	if err != nil {
		t.Fatalf("author lookup failed: %v", err)
	}
	if author.ID != 10 || author.Email != "author@example.com" {
		t.Fatalf("unexpected author %+v", author)
	}
}
