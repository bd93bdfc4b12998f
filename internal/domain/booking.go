package domain

// Booker contains contact data of the person who books a slot
type Booker struct {
	Name    string
	Contact string
	Comment string // optional
}

// HasComment returns true if the booker left a comment
func (b Booker) HasComment() bool {
	return b.Comment != ""
}

// Booking represents a committed booking.
// Its only durable trace is the calendar event with EventID.
type Booking struct {
	EventID    string
	BookingKey string // serviceID + "-" + start, stored in event private properties
	ServiceID  string
	Slot       TimeInterval
	Booker     Booker
}
