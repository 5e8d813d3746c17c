package helpbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBot() *Bot {
	return New([]Rule{
		{Keywords: []string{"export", "csv"}, Answer: "Use the export button on the overview screen."},
		{Keywords: []string{"battery", "bateri"}, Answer: "The battery ledger is under the Battery menu."},
		{Keywords: []string{"scan"}, Answer: "Point the camera at the barcode."},
	}, "Ask an admin if you are stuck.")
}

func TestAnswerMatchesKeywords(t *testing.T) {
	bot := testBot()

	tests := []struct {
		name     string
		question string
		expected string
	}{
		{"direct keyword", "how do I export?", "Use the export button on the overview screen."},
		{"case insensitive", "CSV please", "Use the export button on the overview screen."},
		{"keyword inside word", "bateria AA?", "The battery ledger is under the Battery menu."},
		{"first matching rule wins", "export battery list", "Use the export button on the overview screen."},
		{"no match falls back", "what is the meaning of life", "Ask an admin if you are stuck."},
		{"empty question falls back", "   ", "Ask an admin if you are stuck."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bot.Answer(tt.question))
		})
	}
}
