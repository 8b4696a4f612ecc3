// Package services holds the pure decision rules of the ranking/voting
// aggregate. Adapters call these inside their atomic section so the vote and
// report counters can never drift from the underlying row set.
package services

import "eventy/contexts/event-listing/event-service/domain/entities"

// VoteAction tells the storage layer what to do with the vote row.
type VoteAction int

const (
	VoteActionNone VoteAction = iota
	VoteActionInsert
	VoteActionFlip
)

// VoteDecision is the outcome of applying one cast-vote request against the
// current row state. Deltas are applied to the event counters in the same
// transaction as the row change.
type VoteDecision struct {
	Action     VoteAction
	PlusDelta  int
	MinusDelta int
}

func (d VoteDecision) Changed() bool {
	return d.Action != VoteActionNone
}

// DecideVote resolves a cast vote against the existing row for the same
// (event, user) pair. A matching vote is an idempotent no-op; an opposing vote
// flips sign and moves one count from the old counter to the new one.
func DecideVote(existing *entities.Vote, isPlus bool) VoteDecision {
	if existing == nil {
		if isPlus {
			return VoteDecision{Action: VoteActionInsert, PlusDelta: 1}
		}
		return VoteDecision{Action: VoteActionInsert, MinusDelta: 1}
	}
	if existing.IsPlus == isPlus {
		return VoteDecision{Action: VoteActionNone}
	}
	if isPlus {
		return VoteDecision{Action: VoteActionFlip, PlusDelta: 1, MinusDelta: -1}
	}
	return VoteDecision{Action: VoteActionFlip, PlusDelta: -1, MinusDelta: 1}
}

// ApplyVoteCounters applies a decision to an event's counters, clamping at
// zero so a drifted store can never push a counter negative.
func ApplyVoteCounters(event *entities.Event, decision VoteDecision) {
	event.PlusVotes = clamp(event.PlusVotes + decision.PlusDelta)
	event.MinusVotes = clamp(event.MinusVotes + decision.MinusDelta)
}

// DecideReport returns whether a new report row must be inserted. A second
// report from the same account is a benign no-op and must not double count.
func DecideReport(alreadyReported bool) (insert bool, delta int) {
	if alreadyReported {
		return false, 0
	}
	return true, 1
}

// DecideUnreport returns whether an existing report row must be removed.
func DecideUnreport(hasReport bool) (remove bool, delta int) {
	if !hasReport {
		return false, 0
	}
	return true, -1
}

// ApplyReportCounter applies a report delta, floored at zero.
func ApplyReportCounter(event *entities.Event, delta int) {
	event.ReportCount = clamp(event.ReportCount + delta)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
