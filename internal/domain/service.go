package domain

import "time"

// ServiceDefinition represents a bookable service from the catalog.
// Defined once at start-up and never mutated.
type ServiceDefinition struct {
	ID              string
	Title           string
	DurationMinutes int
	Price           string
	Description     string
}

// Duration returns the service duration
func (s ServiceDefinition) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
