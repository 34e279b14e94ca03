package models

// StatusOpen is assigned to every ticket at creation.
const StatusOpen = "open"

// Ticket is the stored representation of a ticket and also its JSON output shape.
type Ticket struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TicketCreate is the accepted body of POST /tickets/.
// Pointers let the validator tell a missing field from an empty one.
type TicketCreate struct {
	Title       *string `json:"title" validate:"required,min=1"`
	Description *string `json:"description" validate:"required,min=1"`
}

// NewTicket builds an unsaved ticket from validated create input.
func (in TicketCreate) NewTicket() Ticket {
	t := Ticket{Status: StatusOpen}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	return t
}

// TicketUpdate is the accepted body of PUT /tickets/{id}. A nil field is left unchanged.
type TicketUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Empty reports whether the update carries no field at all.
func (u TicketUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}

// ApplyPatch returns t with every field set in u copied over. t is not modified.
func ApplyPatch(t Ticket, u TicketUpdate) Ticket {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	return t
}
