package discord

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"
)

const (
	reasonInputID  = "reason"
	handlerTimeout = 2 * time.Minute
)

type moderationService interface {
	Approve(ctx context.Context, eventID int64, moderatorID string) (*domain.ApprovalReport, error)
	Reject(ctx context.Context, eventID int64, moderatorID, reason string) error
	CloseSupportChannel(ctx context.Context, eventID int64, actorID string, isModerator bool) error
}

type interestService interface {
	Subscribe(ctx context.Context, eventID int64, userID string) (*domain.InterestResult, error)
}

// responder is the part of *discordgo.Session used to answer interactions.
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ackTracker remembers whether the interaction already got its one response.
type ackTracker struct {
	responder
	acked bool
}

func (a *ackTracker) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	err := a.responder.InteractionRespond(interaction, resp, options...)
	if err == nil {
		a.acked = true
	}
	return err
}

// Router turns button clicks and modal submissions into service calls.
type Router struct {
	moderation      moderationService
	interest        interestService
	moderatorRoleID string
	logger          logger.Logger
}

func NewRouter(
	moderation moderationService,
	interest interestService,
	moderatorRoleID string,
	logger logger.Logger,
) *Router {
	return &Router{
		moderation:      moderation,
		interest:        interest,
		moderatorRoleID: moderatorRoleID,
		logger:          logger,
	}
}

// Handle is registered with discordgo.Session.AddHandler.
func (r *Router) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	r.dispatch(ctx, s, i.Interaction)
}

func (r *Router) dispatch(ctx context.Context, raw responder, in *discordgo.Interaction) {
	resp := &ackTracker{responder: raw}

	var customID string
	switch in.Type {
	case discordgo.InteractionMessageComponent:
		customID = in.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		customID = in.ModalSubmitData().CustomID
	default:
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("panic in interaction handler",
				logger.String("custom_id", customID),
				logger.Any("panic", rec),
			)
			msg := replyError(fmt.Errorf("panic: %v", rec))
			if resp.acked {
				r.followup(resp, in, msg)
				return
			}
			r.reply(resp, in, msg)
		}
	}()

	action, err := domain.ParseInteraction(customID)
	if err != nil {
		r.logger.Warn("unknown interaction", logger.String("custom_id", customID))
		r.reply(resp, in, replyError(err))
		return
	}

	userID := actorID(in)
	if userID == "" {
		r.reply(resp, in, replyError(domain.ErrUnauthorized))
		return
	}

	moderator := r.isModerator(in)
	if action.Kind.ModeratorOnly() && !moderator {
		r.logger.Warn("moderation attempt without permission",
			logger.String("user_id", userID),
			logger.String("custom_id", customID),
		)
		r.reply(resp, in, replyError(domain.ErrForbidden))
		return
	}

	switch action.Kind {
	case domain.InteractionAccept:
		r.handleAccept(ctx, resp, in, action.EventID, userID)
	case domain.InteractionReject:
		if err = resp.InteractionRespond(in, reasonModal(action.EventID)); err != nil {
			r.logger.Error("failed to open reject modal",
				logger.Int64("event_id", action.EventID),
				logger.String("error", err.Error()),
			)
		}
	case domain.InteractionRejectModal:
		r.handleReject(ctx, resp, in, action.EventID, userID)
	case domain.InteractionInterested:
		r.handleInterested(ctx, resp, in, action.EventID, userID)
	case domain.InteractionCloseTicket:
		r.handleClose(ctx, resp, in, action.EventID, userID, moderator)
	}
}

func (r *Router) handleAccept(ctx context.Context, resp responder, in *discordgo.Interaction, eventID int64, userID string) {
	// approval may outlast the 3s response deadline
	if err := resp.InteractionRespond(in, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		r.logger.Error("failed to acknowledge approval",
			logger.Int64("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}

	report, err := r.moderation.Approve(ctx, eventID, userID)
	r.followup(resp, in, approvalReply(report, err))
}

func (r *Router) handleReject(ctx context.Context, resp responder, in *discordgo.Interaction, eventID int64, userID string) {
	reason := modalValue(in.ModalSubmitData(), reasonInputID)

	if err := r.moderation.Reject(ctx, eventID, userID, reason); err != nil {
		r.reply(resp, in, replyError(err))
		return
	}
	r.reply(resp, in, "❌ Evento rechazado. Se notificó el motivo en el canal de moderación.")
}

func (r *Router) handleInterested(ctx context.Context, resp responder, in *discordgo.Interaction, eventID int64, userID string) {
	res, err := r.interest.Subscribe(ctx, eventID, userID)
	if err != nil {
		r.reply(resp, in, replyError(err))
		return
	}
	if !res.Added {
		r.reply(resp, in, "Ya estabas apuntado a este evento.")
		return
	}
	r.reply(resp, in, "🙌 ¡Apuntado! Te avisaremos por mensaje privado cuando empiece.")
}

func (r *Router) handleClose(
	ctx context.Context,
	resp responder,
	in *discordgo.Interaction,
	eventID int64,
	userID string,
	moderator bool,
) {
	if err := resp.InteractionRespond(in, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		r.logger.Error("failed to acknowledge close",
			logger.Int64("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}

	if err := r.moderation.CloseSupportChannel(ctx, eventID, userID, moderator); err != nil {
		r.followup(resp, in, replyError(err))
	}
	// on success the channel holding the interaction is gone
}

func (r *Router) isModerator(in *discordgo.Interaction) bool {
	if in.Member == nil {
		return false
	}
	if r.moderatorRoleID != "" && slices.Contains(in.Member.Roles, r.moderatorRoleID) {
		return true
	}
	return in.Member.Permissions&discordgo.PermissionManageMessages != 0
}

func (r *Router) reply(resp responder, in *discordgo.Interaction, content string) {
	err := resp.InteractionRespond(in, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		r.logger.Warn("failed to reply to interaction", logger.String("error", err.Error()))
	}
}

func (r *Router) followup(resp responder, in *discordgo.Interaction, content string) {
	_, err := resp.FollowupMessageCreate(in, false, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		r.logger.Warn("failed to send interaction followup", logger.String("error", err.Error()))
	}
}

func actorID(in *discordgo.Interaction) string {
	switch {
	case in.Member != nil && in.Member.User != nil:
		return in.Member.User.ID
	case in.User != nil:
		return in.User.ID
	default:
		return ""
	}
}

func modalValue(data discordgo.ModalSubmitInteractionData, inputID string) string {
	for _, c := range data.Components {
		var inner []discordgo.MessageComponent
		switch row := c.(type) {
		case *discordgo.ActionsRow:
			inner = row.Components
		case discordgo.ActionsRow:
			inner = row.Components
		}
		for _, ic := range inner {
			switch in := ic.(type) {
			case *discordgo.TextInput:
				if in.CustomID == inputID {
					return in.Value
				}
			case discordgo.TextInput:
				if in.CustomID == inputID {
					return in.Value
				}
			}
		}
	}
	return ""
}

func approvalReply(report *domain.ApprovalReport, err error) string {
	if err != nil {
		return replyError(err)
	}

	text := "✅ Evento aprobado y publicado."
	if report != nil && report.TicketChannelID != "" {
		text += fmt.Sprintf(" Canal de soporte: <#%s>", report.TicketChannelID)
	}
	return text
}

// replyError maps workflow errors to the message shown to the clicking user.
func replyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrPartialApproval):
		return "⚠️ El evento quedó aprobado, pero algunos pasos fallaron. Pulsa Aceptar de nuevo para reintentar o avisa al staff."
	case errors.Is(err, domain.ErrEventNotFound):
		return "Ese evento ya no existe."
	case errors.Is(err, domain.ErrInvalidTransition):
		return "Este evento ya fue revisado por otro moderador."
	case errors.Is(err, domain.ErrEventNotAnnounced):
		return "Este evento todavía no está publicado."
	case errors.Is(err, domain.ErrNoTicketChannel):
		return "Este evento no tiene canal de soporte."
	case errors.Is(err, domain.ErrForbidden):
		return "No tienes permiso para hacer esto."
	case errors.Is(err, domain.ErrUnauthorized):
		return "No pudimos identificarte."
	case errors.Is(err, domain.ErrValidation):
		return "El motivo es obligatorio y no puede superar los 1000 caracteres."
	case errors.Is(err, domain.ErrUnknownInteraction):
		return "Interacción desconocida."
	default:
		return "Algo salió mal. Inténtalo de nuevo más tarde."
	}
}
