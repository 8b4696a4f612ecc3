package services

import (
	"testing"

	"eventy/contexts/event-listing/event-service/domain/entities"
)

func TestDecideVoteNewRow(t *testing.T) {
	plus := DecideVote(nil, true)
	if plus.Action != VoteActionInsert || plus.PlusDelta != 1 || plus.MinusDelta != 0 {
		t.Fatalf("unexpected decision for new plus vote: %+v", plus)
	}

	minus := DecideVote(nil, false)
	if minus.Action != VoteActionInsert || minus.PlusDelta != 0 || minus.MinusDelta != 1 {
		t.Fatalf("unexpected decision for new minus vote: %+v", minus)
	}
}

func TestDecideVoteSameSignIsNoOp(t *testing.T) {
	existing := &entities.Vote{EventID: 1, UserID: 7, IsPlus: true}
	decision := DecideVote(existing, true)
	if decision.Changed() {
		t.Fatalf("same-sign vote must not change state: %+v", decision)
	}
}

func TestDecideVoteFlipMovesOneCount(t *testing.T) {
	existing := &entities.Vote{EventID: 1, UserID: 7, IsPlus: true}
	decision := DecideVote(existing, false)
	if decision.Action != VoteActionFlip || decision.PlusDelta != -1 || decision.MinusDelta != 1 {
		t.Fatalf("unexpected flip decision: %+v", decision)
	}

	event := entities.Event{PlusVotes: 3, MinusVotes: 1}
	ApplyVoteCounters(&event, decision)
	if event.PlusVotes != 2 || event.MinusVotes != 2 {
		t.Fatalf("expected (2,2) after flip, got (%d,%d)", event.PlusVotes, event.MinusVotes)
	}
}

func TestApplyVoteCountersClampsAtZero(t *testing.T) {
	event := entities.Event{PlusVotes: 0, MinusVotes: 0}
	ApplyVoteCounters(&event, VoteDecision{Action: VoteActionFlip, PlusDelta: -1, MinusDelta: 1})
	if event.PlusVotes != 0 || event.MinusVotes != 1 {
		t.Fatalf("counters must never go negative, got (%d,%d)", event.PlusVotes, event.MinusVotes)
	}
}

func TestDecideReportDeduplicates(t *testing.T) {
	if insert, delta := DecideReport(false); !insert || delta != 1 {
		t.Fatalf("fresh report must insert with +1, got (%v,%d)", insert, delta)
	}
	if insert, delta := DecideReport(true); insert || delta != 0 {
		t.Fatalf("duplicate report must be a no-op, got (%v,%d)", insert, delta)
	}
}

func TestDecideUnreportFloorsAtZero(t *testing.T) {
	if remove, delta := DecideUnreport(true); !remove || delta != -1 {
		t.Fatalf("withdraw with report must remove with -1, got (%v,%d)", remove, delta)
	}
	if remove, delta := DecideUnreport(false); remove || delta != 0 {
		t.Fatalf("withdraw without report must be a no-op, got (%v,%d)", remove, delta)
	}

	event := entities.Event{ReportCount: 0}
	ApplyReportCounter(&event, -1)
	if event.ReportCount != 0 {
		t.Fatalf("report count must floor at zero, got %d", event.ReportCount)
	}
}
