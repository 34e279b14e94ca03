package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }

func TestNewTicketForcesOpenStatus(t *testing.T) {
	got := TicketCreate{Title: strp("T1"), Description: strp("D1")}.NewTicket()
	assert.Equal(t, Ticket{Title: "T1", Description: "D1", Status: StatusOpen}, got)
}

func TestApplyPatch(t *testing.T) {
	base := Ticket{ID: 7, Title: "title", Description: "desc", Status: "open"}

	cases := []struct {
		name  string
		patch TicketUpdate
		want  Ticket
	}{
		{"empty patch", TicketUpdate{}, base},
		{"status only", TicketUpdate{Status: strp("closed")},
			Ticket{ID: 7, Title: "title", Description: "desc", Status: "closed"}},
		{"title and status", TicketUpdate{Title: strp("Updated"), Status: strp("closed")},
			Ticket{ID: 7, Title: "Updated", Description: "desc", Status: "closed"}},
		{"empty strings overwrite", TicketUpdate{Title: strp(""), Description: strp("")},
			Ticket{ID: 7, Title: "", Description: "", Status: "open"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyPatch(base, tc.patch))
		})
	}
	assert.Equal(t, "title", base.Title, "base must not be mutated")
}

func TestTicketUpdateEmpty(t *testing.T) {
	assert.True(t, TicketUpdate{}.Empty())
	assert.False(t, TicketUpdate{Status: strp("")}.Empty())
}
