package domain

import (
	"io"
	"slices"
	"time"
)

type EventStatus string

const (
	EventStatusPending  EventStatus = "PENDING"
	EventStatusApproved EventStatus = "APPROVED"
	EventStatusRejected EventStatus = "REJECTED"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusApproved, EventStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransition reports whether the workflow defines a move from s to next.
// Only PENDING has outgoing transitions.
func (s EventStatus) CanTransition(next EventStatus) bool {
	return s == EventStatusPending &&
		(next == EventStatusApproved || next == EventStatusRejected)
}

type SupportRequest struct {
	NeedsVehicles       bool   `json:"needs_vehicles"`
	VehiclesDescription string `json:"vehicles_description,omitempty"`
	NeedsRadio          bool   `json:"needs_radio"`
	NeedsMapping        bool   `json:"needs_mapping"`
	MappingDescription  string `json:"mapping_description,omitempty"`
}

func (r SupportRequest) Requested() bool {
	return r.NeedsVehicles || r.NeedsRadio || r.NeedsMapping
}

type EventRecord struct {
	ID            int64          `json:"id"`
	CreatorID     string         `json:"creator_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	EventDate     time.Time      `json:"event_date"`
	FlyerPath     string         `json:"flyer_path"`
	MappingImages []string       `json:"mapping_images"`
	Support       SupportRequest `json:"support"`

	Status          EventStatus `json:"status"`
	RejectionReason *string     `json:"rejection_reason,omitempty"`
	ReviewedBy      *string     `json:"reviewed_by,omitempty"`

	ModerationMessageID *string  `json:"moderation_message_id,omitempty"`
	PublicMessageID     *string  `json:"public_message_id,omitempty"`
	FlyerURL            *string  `json:"flyer_url,omitempty"`
	TicketChannelID     *string  `json:"ticket_channel_id,omitempty"`
	StartNotified       bool     `json:"start_notified"`
	Subscribers         []string `json:"subscribers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *EventRecord) IsSubscribed(userID string) bool {
	return slices.Contains(e.Subscribers, userID)
}

// Announced is true once the public announcement exists.
func (e *EventRecord) Announced() bool {
	return e.PublicMessageID != nil && *e.PublicMessageID != ""
}

func (e *EventRecord) HasTicketChannel() bool {
	return e.TicketChannelID != nil && *e.TicketChannelID != ""
}

// StartOffset is the signed distance from now to the scheduled start.
// Negative values mean the event has already started.
func (e *EventRecord) StartOffset(now time.Time) time.Duration {
	return e.EventDate.Sub(now)
}

type Upload struct {
	Name   string
	Reader io.Reader
}

type SubmitEventInput struct {
	DiscordUserID string
	Title         string
	Description   string
	EventDate     time.Time
	Support       SupportRequest
	Flyer         *Upload
	MappingImages []Upload
}

type InterestResult struct {
	EventID int64
	Count   int
	Added   bool
}
