package dto

import "mime/multipart"

// SubmitEventForm is the multipart body of POST /api/events.
type SubmitEventForm struct {
	Title               string                  `form:"title" binding:"required"`
	Description         string                  `form:"description" binding:"required"`
	EventDate           string                  `form:"event_date" binding:"required"`
	NeedsVehicles       bool                    `form:"needs_vehicles"`
	VehiclesDescription string                  `form:"vehicles_description"`
	NeedsRadio          bool                    `form:"needs_radio"`
	NeedsMapping        bool                    `form:"needs_mapping"`
	MappingDescription  string                  `form:"mapping_description"`
	Flyer               *multipart.FileHeader   `form:"flyer" binding:"required"`
	MappingImages       []*multipart.FileHeader `form:"mapping_images"`
}

type NotifyRequest struct {
	EventID int64 `json:"eventId" binding:"required,gt=0"`
}

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	DiscordID string `json:"discord_id" binding:"required"`
}
