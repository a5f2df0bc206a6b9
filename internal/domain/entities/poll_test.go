package entities

import (
	"reflect"
	"testing"
)

func testPoll() *Poll {
	return &Poll{
		MessageID: "111",
		ChannelID: "222",
		CreatorID: "333",
		Options: []PollOption{
			{Ordinal: 0, Label: "Montag, 02.03.", EmojiKey: "1️⃣"},
			{Ordinal: 1, Label: "Dienstag, 03.03.", EmojiKey: "2️⃣"},
			{Ordinal: 2, Label: "Mittwoch, 04.03.", EmojiKey: "3️⃣"},
		},
		Votes:  map[int][]string{},
		Status: "open",
	}
}

func TestAddVoteIdempotent(t *testing.T) {
	p := testPoll()

	if !p.AddVote(0, "u1") {
		t.Error("first add should change the set")
	}
	if p.AddVote(0, "u1") {
		t.Error("repeated add should be a no-op")
	}
	if got := p.VoteCount(0); got != 1 {
		t.Errorf("vote count = %d, want 1", got)
	}
}

func TestAddVoteKeepsVotersSorted(t *testing.T) {
	p := testPoll()
	p.AddVote(0, "zoe")
	p.AddVote(0, "anna")
	p.AddVote(0, "mia")

	want := []string{"anna", "mia", "zoe"}
	if !reflect.DeepEqual(p.Votes[0], want) {
		t.Errorf("voters = %v, want %v", p.Votes[0], want)
	}
}

func TestRemoveVoteIdempotent(t *testing.T) {
	p := testPoll()
	p.AddVote(1, "u1")

	if !p.RemoveVote(1, "u1") {
		t.Error("removing a present voter should change the set")
	}
	if p.RemoveVote(1, "u1") {
		t.Error("removing an absent voter should be a no-op")
	}
	if got := p.VoteCount(1); got != 0 {
		t.Errorf("vote count = %d, want 0", got)
	}
}

func TestVoterMayBackMultipleOptions(t *testing.T) {
	p := testPoll()
	p.AddVote(0, "u1")
	p.AddVote(1, "u1")

	if p.VoteCount(0) != 1 || p.VoteCount(1) != 1 {
		t.Errorf("u1 should count on both options: %d, %d", p.VoteCount(0), p.VoteCount(1))
	}
}

func TestSummarizeSingleWinner(t *testing.T) {
	p := testPoll()
	p.AddVote(0, "u1")
	p.AddVote(0, "u2")
	p.AddVote(1, "u1")

	summary := p.Summarize()
	if !reflect.DeepEqual(summary.Winners, []string{"Montag, 02.03."}) {
		t.Errorf("winners = %v", summary.Winners)
	}
	want := map[string]int{"Montag, 02.03.": 2, "Dienstag, 03.03.": 1, "Mittwoch, 04.03.": 0}
	if !reflect.DeepEqual(summary.Counts, want) {
		t.Errorf("counts = %v, want %v", summary.Counts, want)
	}
}

func TestSummarizeTieInOrdinalOrder(t *testing.T) {
	p := testPoll()
	p.AddVote(1, "u1")
	p.AddVote(0, "u1")

	summary := p.Summarize()
	want := []string{"Montag, 02.03.", "Dienstag, 03.03."}
	if !reflect.DeepEqual(summary.Winners, want) {
		t.Errorf("winners = %v, want %v (ties reported in ordinal order)", summary.Winners, want)
	}
}

func TestSummarizeNoVotes(t *testing.T) {
	p := testPoll()

	summary := p.Summarize()
	// With zero votes everywhere, every option ties for the maximum.
	if len(summary.Winners) != len(p.Options) {
		t.Errorf("winners = %v", summary.Winners)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := testPoll()
	p.AddVote(0, "u1")
	p.Summary = &ResultSummary{Winners: []string{"Montag, 02.03."}, Counts: map[string]int{"Montag, 02.03.": 1}}

	clone := p.Clone()
	clone.AddVote(0, "u2")
	clone.Options[0].Label = "changed"
	clone.Summary.Counts["Montag, 02.03."] = 99

	if p.VoteCount(0) != 1 {
		t.Error("clone vote mutated the original")
	}
	if p.Options[0].Label != "Montag, 02.03." {
		t.Error("clone option mutated the original")
	}
	if p.Summary.Counts["Montag, 02.03."] != 1 {
		t.Error("clone summary mutated the original")
	}
}
