package domain

import "fmt"

// DeliveryOutcome records what happened to an advisory notification.
// Notifications never change an event's persisted state.
type DeliveryOutcome string

const (
	DeliveryDelivered DeliveryOutcome = "delivered"
	DeliverySkipped   DeliveryOutcome = "skipped"
	DeliveryFailed    DeliveryOutcome = "failed"
)

type ApprovalStep struct {
	Name    string          `json:"name"`
	Outcome DeliveryOutcome `json:"outcome"`
	Detail  string          `json:"detail,omitempty"`
}

type ApprovalReport struct {
	EventID         int64          `json:"event_id"`
	Steps           []ApprovalStep `json:"steps"`
	TicketChannelID string         `json:"ticket_channel_id,omitempty"`
}

func (r *ApprovalReport) Add(name string, outcome DeliveryOutcome, detail string) {
	r.Steps = append(r.Steps, ApprovalStep{Name: name, Outcome: outcome, Detail: detail})
}

func (r *ApprovalReport) Failed() bool {
	for _, s := range r.Steps {
		if s.Outcome == DeliveryFailed {
			return true
		}
	}
	return false
}

// FormatInterest renders the public counter, e.g. "1 persona", "3 personas".
func FormatInterest(n int) string {
	if n == 1 {
		return "1 persona"
	}
	return fmt.Sprintf("%d personas", n)
}
