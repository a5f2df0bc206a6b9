package database

import (
	"bytes"
	"reflect"
	"testing"

	"brettbot/internal/domain/entities"
)

func TestOptionsRoundTripVerbatim(t *testing.T) {
	options := []entities.PollOption{
		{Ordinal: 0, Label: "Heilige Drei Könige", EmojiKey: "1️⃣"},
		{Ordinal: 1, Label: "Dienstag, 06.01.", EmojiKey: "2️⃣"},
	}

	encoded, err := encodeOptions(options)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := decodeOptions(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, options) {
		t.Errorf("options changed across encode/decode: %v vs %v", decoded, options)
	}

	// Labels must reload byte-identical, including non-ASCII ones.
	reencoded, err := encodeOptions(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(encoded, reencoded) {
		t.Error("re-encoding reloaded options is not stable")
	}
}

func TestVotesRoundTrip(t *testing.T) {
	votes := map[int][]string{
		0: {"u1", "u2"},
		3: {"u1"},
	}

	encoded, err := encodeVotes(votes)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := decodeVotes(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, votes) {
		t.Errorf("votes changed across encode/decode: %v vs %v", decoded, votes)
	}
}

func TestVotesNilEncodesAsEmptyObject(t *testing.T) {
	encoded, err := encodeVotes(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(encoded) != "{}" {
		t.Errorf("nil votes encoded as %s, want {}", encoded)
	}
	decoded, err := decodeVotes(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded == nil || len(decoded) != 0 {
		t.Errorf("decoded = %v, want empty map", decoded)
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	summary := &entities.ResultSummary{
		Winners: []string{"Montag, 09.03.", "Freitag, 13.03."},
		Counts:  map[string]int{"Montag, 09.03.": 2, "Freitag, 13.03.": 2},
	}

	encoded, err := encodeSummary(summary)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := decodeSummary(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, summary) {
		t.Errorf("summary changed across encode/decode: %v vs %v", decoded, summary)
	}
}

func TestSummaryNilStaysNil(t *testing.T) {
	encoded, err := encodeSummary(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded != nil {
		t.Errorf("nil summary encoded as %s, want NULL", encoded)
	}
	decoded, err := decodeSummary(nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != nil {
		t.Errorf("decoded = %v, want nil (no cached summary)", decoded)
	}
}
