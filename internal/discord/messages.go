package discord

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/bwmarrin/discordgo"
)

const (
	colorPending  = 0xF1C40F
	colorApproved = 0x2ECC71
	colorSupport  = 0x3498DB

	fieldInterest   = "Interesados"
	maxChannelName  = 100
	flyerAttachment = "flyer"
)

func discordTime(e *domain.EventRecord) string {
	return fmt.Sprintf("<t:%d:F>", e.EventDate.Unix())
}

func mention(userID string) string {
	if userID == "" {
		return "desconocido"
	}
	return "<@" + userID + ">"
}

func flyerFileName(path string) string {
	return flyerAttachment + strings.ToLower(filepath.Ext(path))
}

func supportFields(r domain.SupportRequest) []*discordgo.MessageEmbedField {
	var fields []*discordgo.MessageEmbedField
	if r.NeedsVehicles {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "🚗 Vehículos", Value: orDash(r.VehiclesDescription)})
	}
	if r.NeedsRadio {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "📻 Radio", Value: "Solicitada"})
	}
	if r.NeedsMapping {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "🗺️ Mapeo", Value: orDash(r.MappingDescription)})
	}
	return fields
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func moderationEmbed(e *domain.EventRecord, creator *domain.User, flyerName string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Fecha", Value: discordTime(e), Inline: true},
		{Name: "Organizador", Value: mention(creator.DiscordID), Inline: true},
	}
	if e.Support.Requested() {
		fields = append(fields, supportFields(e.Support)...)
	} else {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Apoyo de staff", Value: "No solicitado"})
	}
	if n := len(e.MappingImages); n > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Imágenes de mapeo",
			Value: fmt.Sprintf("%d adjuntas", n),
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📝 Solicitud de evento: " + e.Title,
		Description: e.Description,
		Color:       colorPending,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Evento #%d", e.ID)},
	}
	if flyerName != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + flyerName}
	}
	return embed
}

func moderationComponents(eventID int64) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "✅ Aceptar",
				Style:    discordgo.SuccessButton,
				CustomID: domain.NewInteraction(domain.InteractionAccept, eventID).CustomID(),
			},
			discordgo.Button{
				Label:    "❌ Rechazar",
				Style:    discordgo.DangerButton,
				CustomID: domain.NewInteraction(domain.InteractionReject, eventID).CustomID(),
			},
		}},
	}
}

func announcementEmbed(e *domain.EventRecord, creator *domain.User, flyerName string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🎉 " + e.Title,
		Description: e.Description,
		Color:       colorApproved,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Fecha", Value: discordTime(e), Inline: true},
			{Name: "Organizador", Value: mention(creator.DiscordID), Inline: true},
			{Name: fieldInterest, Value: domain.FormatInterest(len(e.Subscribers)), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Evento #%d", e.ID)},
	}
	if flyerName != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + flyerName}
	}
	return embed
}

func interestComponents(eventID int64) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "🙋 Me interesa",
				Style:    discordgo.PrimaryButton,
				CustomID: domain.NewInteraction(domain.InteractionInterested, eventID).CustomID(),
			},
		}},
	}
}

// withInterest returns copies of embeds with the counter field set to count.
func withInterest(embeds []*discordgo.MessageEmbed, count int) []*discordgo.MessageEmbed {
	if len(embeds) == 0 {
		return embeds
	}

	out := make([]*discordgo.MessageEmbed, len(embeds))
	copy(out, embeds)

	first := *out[0]
	first.Fields = make([]*discordgo.MessageEmbedField, 0, len(embeds[0].Fields)+1)
	found := false
	for _, f := range embeds[0].Fields {
		field := *f
		if field.Name == fieldInterest {
			field.Value = domain.FormatInterest(count)
			found = true
		}
		first.Fields = append(first.Fields, &field)
	}
	if !found {
		first.Fields = append(first.Fields, &discordgo.MessageEmbedField{
			Name: fieldInterest, Value: domain.FormatInterest(count), Inline: true,
		})
	}
	out[0] = &first

	return out
}

func supportEmbed(e *domain.EventRecord) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🛠️ Soporte para " + e.Title,
		Description: "Usad este canal para coordinar el apoyo solicitado con el staff.",
		Color:       colorSupport,
		Fields: append([]*discordgo.MessageEmbedField{
			{Name: "Fecha", Value: discordTime(e)},
		}, supportFields(e.Support)...),
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Evento #%d", e.ID)},
	}
}

func supportIntro(creator *domain.User, moderatorID, supportRoleID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s, tu evento fue aprobado por %s.", mention(creator.DiscordID), mention(moderatorID))
	if supportRoleID != "" {
		fmt.Fprintf(&b, " <@&%s> os ayudará con lo solicitado.", supportRoleID)
	}
	return b.String()
}

func closeComponents(eventID int64) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "🔒 Cerrar canal",
				Style:    discordgo.SecondaryButton,
				CustomID: domain.NewInteraction(domain.InteractionCloseTicket, eventID).CustomID(),
			},
		}},
	}
}

func startNotice(e *domain.EventRecord) string {
	return fmt.Sprintf("🚀 ¡**%s** comienza ahora! Interesados: %s.", e.Title, domain.FormatInterest(len(e.Subscribers)))
}

// supportChannelName builds a Discord-safe text channel name such as
// "evento-12-carrera-nocturna".
func supportChannelName(e *domain.EventRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "evento-%d", e.ID)

	dash := true
	slug := strings.Builder{}
	for _, r := range strings.ToLower(e.Title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			slug.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			slug.WriteRune('-')
			dash = true
		}
	}
	if s := strings.Trim(slug.String(), "-"); s != "" {
		b.WriteString("-")
		b.WriteString(s)
	}

	name := []rune(b.String())
	if len(name) > maxChannelName {
		name = name[:maxChannelName]
	}
	return strings.TrimRight(string(name), "-")
}

func reasonModal(eventID int64) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: domain.NewInteraction(domain.InteractionRejectModal, eventID).CustomID(),
			Title:    "Rechazar evento",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    reasonInputID,
						Label:       "Motivo del rechazo",
						Style:       discordgo.TextInputParagraph,
						Placeholder: "Explica al organizador por qué se rechaza",
						Required:    true,
						MaxLength:   1000,
					},
				}},
			},
		},
	}
}
