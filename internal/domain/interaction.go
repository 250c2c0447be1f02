package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// InteractionKind enumerates the Discord controls the bot owns.
type InteractionKind int

const (
	InteractionUnknown InteractionKind = iota
	InteractionAccept
	InteractionReject
	InteractionInterested
	InteractionRejectModal
	InteractionCloseTicket
)

var interactionPrefixes = map[InteractionKind]string{
	InteractionAccept:      "accept",
	InteractionReject:      "reject",
	InteractionInterested:  "interested",
	InteractionRejectModal: "modalReject",
	InteractionCloseTicket: "close",
}

func (k InteractionKind) String() string {
	if p, ok := interactionPrefixes[k]; ok {
		return p
	}
	return "unknown"
}

// ModeratorOnly reports whether the action mutates moderation state.
func (k InteractionKind) ModeratorOnly() bool {
	switch k {
	case InteractionAccept, InteractionReject, InteractionRejectModal:
		return true
	default:
		return false
	}
}

type Interaction struct {
	Kind    InteractionKind
	EventID int64
}

// CustomID renders the identifier attached to a button or modal.
func (i Interaction) CustomID() string {
	return fmt.Sprintf("%s_%d", i.Kind, i.EventID)
}

func NewInteraction(kind InteractionKind, eventID int64) Interaction {
	return Interaction{Kind: kind, EventID: eventID}
}

// ParseInteraction decodes "<action>_<eventId>".
func ParseInteraction(customID string) (Interaction, error) {
	action, rawID, ok := strings.Cut(customID, "_")
	if !ok || action == "" || rawID == "" {
		return Interaction{}, fmt.Errorf("%w: %q", ErrUnknownInteraction, customID)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return Interaction{}, fmt.Errorf("%w: bad event id in %q", ErrUnknownInteraction, customID)
	}

	for kind, prefix := range interactionPrefixes {
		if prefix == action {
			return Interaction{Kind: kind, EventID: id}, nil
		}
	}

	return Interaction{}, fmt.Errorf("%w: %q", ErrUnknownInteraction, customID)
}
