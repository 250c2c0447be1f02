package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02/01/2006 15:04"

// TelegramAlerter mirrors submissions and failed approvals to a staff chat.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram staff alerts disabled")
		return &TelegramAlerter{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramAlerter) AlertSubmission(ctx context.Context, e *domain.EventRecord, creator *domain.User) {
	n.send(ctx, submissionText(e, creator))
}

func (n *TelegramAlerter) AlertApprovalFailure(ctx context.Context, e *domain.EventRecord, report *domain.ApprovalReport) {
	n.send(ctx, approvalFailureText(e, report))
}

func submissionText(e *domain.EventRecord, creator *domain.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Nueva solicitud de evento #%d*\n\n", e.ID)
	fmt.Fprintf(&b, "Título: %s\n", escape(e.Title))
	fmt.Fprintf(&b, "Fecha (UTC): %s\n", e.EventDate.UTC().Format(dateLayout))
	if creator != nil {
		fmt.Fprintf(&b, "Organizador: %s\n", escape(creator.Username))
	}
	if e.Support.Requested() {
		b.WriteString("Solicita apoyo de staff\n")
	}
	return b.String()
}

func approvalFailureText(e *domain.EventRecord, report *domain.ApprovalReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Aprobación incompleta del evento #%d*\n\n", e.ID)
	fmt.Fprintf(&b, "Título: %s\n", escape(e.Title))
	if report != nil {
		for _, step := range report.Steps {
			fmt.Fprintf(&b, "- %s: %s", step.Name, step.Outcome)
			if step.Detail != "" {
				fmt.Fprintf(&b, " (%s)", escape(step.Detail))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\nVuelve a pulsar Aceptar para reintentar.")
	return b.String()
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramAlerter) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("staff alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("staff alert skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram staff alert",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
