package discord

import (
	"strings"
	"testing"

	"brettbot/internal/domain/entities"
)

var resultLabels = []string{"Montag, 09.03.", "Dienstag, 10.03."}

func TestBuildResultEmbedSingleWinner(t *testing.T) {
	embed := BuildResultEmbed(entities.ResultSummary{
		Winners: []string{"Montag, 09.03."},
		Counts:  map[string]int{"Montag, 09.03.": 3, "Dienstag, 10.03.": 1},
	}, resultLabels)

	if !strings.Contains(embed.Description, "Gewinner") {
		t.Errorf("description = %q, want a winner line", embed.Description)
	}
	if !strings.Contains(embed.Description, "3 Stimmen") {
		t.Errorf("description = %q, want the per-option counts", embed.Description)
	}
}

func TestBuildResultEmbedTie(t *testing.T) {
	embed := BuildResultEmbed(entities.ResultSummary{
		Winners: resultLabels,
		Counts:  map[string]int{"Montag, 09.03.": 2, "Dienstag, 10.03.": 2},
	}, resultLabels)

	if !strings.Contains(embed.Description, "Gleichstand") {
		t.Errorf("description = %q, want a tie line", embed.Description)
	}
}

func TestBuildResultEmbedNoVotes(t *testing.T) {
	// A poll closed without votes ties every option at zero.
	embed := BuildResultEmbed(entities.ResultSummary{
		Winners: resultLabels,
		Counts:  map[string]int{"Montag, 09.03.": 0, "Dienstag, 10.03.": 0},
	}, resultLabels)

	if !strings.Contains(embed.Description, "Keine Stimmen") {
		t.Errorf("description = %q, want the no-votes line", embed.Description)
	}
	if strings.Contains(embed.Description, "Gleichstand") {
		t.Errorf("description = %q, a zero tally must not read as a tie", embed.Description)
	}
}
