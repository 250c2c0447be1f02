package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/handler/dto"
	"github.com/MrBrad8989/gta-events-bot/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type SubmissionSvc interface {
	Submit(ctx context.Context, input domain.SubmitEventInput) (*domain.EventRecord, error)
	Get(ctx context.Context, eventID int64) (*domain.EventRecord, error)
	NotifyModerators(ctx context.Context, eventID int64) error
}

type UserSvc interface {
	Link(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	submissionService SubmissionSvc
	userService       UserSvc
}

func NewHandler(submissionService SubmissionSvc, userService UserSvc) *Handler {
	return &Handler{
		submissionService: submissionService,
		userService:       userService,
	}
}

// Events

func (h *Handler) SubmitEvent(c *ginext.Context) {
	var form dto.SubmitEventForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, form.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	var files []io.Closer
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()

	open := func(fh *multipart.FileHeader) (domain.Upload, error) {
		f, err := fh.Open()
		if err != nil {
			return domain.Upload{}, err
		}
		files = append(files, f)
		return domain.Upload{Name: fh.Filename, Reader: f}, nil
	}

	flyer, err := open(form.Flyer)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read flyer"})
		return
	}

	mapping := make([]domain.Upload, 0, len(form.MappingImages))
	for _, fh := range form.MappingImages {
		img, err := open(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read mapping image"})
			return
		}
		mapping = append(mapping, img)
	}

	input := domain.SubmitEventInput{
		DiscordUserID: middleware.DiscordUserID(c),
		Title:         form.Title,
		Description:   form.Description,
		EventDate:     eventDate,
		Support: domain.SupportRequest{
			NeedsVehicles:       form.NeedsVehicles,
			VehiclesDescription: form.VehiclesDescription,
			NeedsRadio:          form.NeedsRadio,
			NeedsMapping:        form.NeedsMapping,
			MappingDescription:  form.MappingDescription,
		},
		Flyer:         &flyer,
		MappingImages: mapping,
	}

	event, err := h.submissionService.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.submissionService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// NotifyModerators is called by the web tier after it stored a submission itself.
func (h *Handler) NotifyModerators(c *ginext.Context) {
	var req dto.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.submissionService.NotifyModerators(c.Request.Context(), req.EventID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:  req.Username,
		DiscordID: req.DiscordID,
	}

	user, err := h.userService.Link(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func eventID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDeliveryFailed):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: domain.ErrDeliveryFailed.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
