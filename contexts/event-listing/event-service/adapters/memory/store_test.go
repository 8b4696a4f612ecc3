package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"eventy/contexts/event-listing/event-service/domain/entities"
)

func TestConcurrentVotesKeepCountersConsistent(t *testing.T) {
	store := NewStore([]entities.Event{
		{ID: 1, Name: "Contended", DateOfStart: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	})
	ctx := context.Background()

	const voters = 50
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			// Every voter votes plus, then half of them switch to minus.
			if _, _, err := store.ApplyVote(ctx, 1, userID, true); err != nil {
				t.Errorf("plus vote failed: %v", err)
			}
			if userID%2 == 0 {
				if _, _, err := store.ApplyVote(ctx, 1, userID, false); err != nil {
					t.Errorf("minus vote failed: %v", err)
				}
			}
		}(int64(i + 1))
	}
	wg.Wait()

	event, err := store.GetEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	plus, minus, err := store.CountVotes(ctx, 1)
	if err != nil {
		t.Fatalf("count votes: %v", err)
	}
	if event.PlusVotes != plus || event.MinusVotes != minus {
		t.Fatalf("counters (%d,%d) diverge from rows (%d,%d)",
			event.PlusVotes, event.MinusVotes, plus, minus)
	}
	if plus+minus != voters {
		t.Fatalf("expected %d votes total, got %d", voters, plus+minus)
	}
}

func TestDeleteEventCascades(t *testing.T) {
	store := NewStore([]entities.Event{
		{ID: 1, Name: "Doomed", DateOfStart: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	})
	ctx := context.Background()

	if _, _, err := store.ApplyVote(ctx, 1, 100, true); err != nil {
		t.Fatalf("vote failed: %v", err)
	}
	if _, _, err := store.ApplyReport(ctx, 1, 200, ""); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	store.SetTicket(entities.Ticket{EventID: 1, Name: "Entry", Price: 10})

	if err := store.DeleteEvent(ctx, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, found, err := store.GetVote(ctx, 1, 100); err != nil || found {
		t.Fatalf("vote should be gone, found=%v err=%v", found, err)
	}
	tickets, err := store.ListTicketsByEvent(ctx, 1)
	if err != nil {
		t.Fatalf("list tickets: %v", err)
	}
	if len(tickets) != 0 {
		t.Fatalf("tickets should be gone, got %d", len(tickets))
	}
}
