package dto

import (
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
)

type EventResponse struct {
	ID                  int64    `json:"id"`
	CreatorID           string   `json:"creator_id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	EventDate           string   `json:"event_date"`
	Status              string   `json:"status"`
	NeedsVehicles       bool     `json:"needs_vehicles"`
	VehiclesDescription string   `json:"vehicles_description,omitempty"`
	NeedsRadio          bool     `json:"needs_radio"`
	NeedsMapping        bool     `json:"needs_mapping"`
	MappingDescription  string   `json:"mapping_description,omitempty"`
	MappingImages       int      `json:"mapping_images"`
	RejectionReason     *string  `json:"rejection_reason,omitempty"`
	ReviewedBy          *string  `json:"reviewed_by,omitempty"`
	PublicMessageID     *string  `json:"public_message_id,omitempty"`
	FlyerURL            *string  `json:"flyer_url,omitempty"`
	TicketChannelID     *string  `json:"ticket_channel_id,omitempty"`
	StartNotified       bool     `json:"start_notified"`
	Interested          int      `json:"interested"`
	Subscribers         []string `json:"subscribers"`
	CreatedAt           string   `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	DiscordID string `json:"discord_id"`
	CreatedAt string `json:"created_at"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.EventRecord) EventResponse {
	subscribers := e.Subscribers
	if subscribers == nil {
		subscribers = []string{}
	}

	return EventResponse{
		ID:                  e.ID,
		CreatorID:           e.CreatorID,
		Title:               e.Title,
		Description:         e.Description,
		EventDate:           e.EventDate.Format(time.RFC3339),
		Status:              string(e.Status),
		NeedsVehicles:       e.Support.NeedsVehicles,
		VehiclesDescription: e.Support.VehiclesDescription,
		NeedsRadio:          e.Support.NeedsRadio,
		NeedsMapping:        e.Support.NeedsMapping,
		MappingDescription:  e.Support.MappingDescription,
		MappingImages:       len(e.MappingImages),
		RejectionReason:     e.RejectionReason,
		ReviewedBy:          e.ReviewedBy,
		PublicMessageID:     e.PublicMessageID,
		FlyerURL:            e.FlyerURL,
		TicketChannelID:     e.TicketChannelID,
		StartNotified:       e.StartNotified,
		Interested:          len(subscribers),
		Subscribers:         subscribers,
		CreatedAt:           e.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		DiscordID: u.DiscordID,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
