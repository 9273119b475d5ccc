package audit

import "time"

// Action names what happened to a record.
type Action string

const (
	ActionPersonCreated  Action = "person_created"
	ActionPersonUpdated  Action = "person_updated"
	ActionPersonDeleted  Action = "person_deleted"
	ActionCountryCreated Action = "country_created"
)

// Entity names the record type an event refers to.
type Entity string

const (
	EntityPerson  Entity = "person"
	EntityCountry Entity = "country"
)

// Event is emitted from services after a successful mutation. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Entity    Entity    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	// Subject is a human-readable label (person or country name).
	Subject   string `json:"subject,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
