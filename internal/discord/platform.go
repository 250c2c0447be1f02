package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/MrBrad8989/gta-events-bot/internal/storage"
	"github.com/bwmarrin/discordgo"
	"github.com/wb-go/wbf/logger"
)

const memberPermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory |
	discordgo.PermissionAttachFiles

type Config struct {
	GuildID               string
	ModerationChannelID   string
	AnnouncementChannelID string
	TicketCategoryID      string
	SupportRoleID         string
}

type mediaOpener interface {
	Open(name string) (io.ReadCloser, error)
}

// Platform performs the outbound Discord calls of the event workflow.
type Platform struct {
	session *discordgo.Session
	cfg     Config
	media   mediaOpener
	logger  logger.Logger
}

func NewPlatform(session *discordgo.Session, cfg Config, media mediaOpener, logger logger.Logger) *Platform {
	return &Platform{
		session: session,
		cfg:     cfg,
		media:   media,
		logger:  logger,
	}
}

func (p *Platform) PostModerationSummary(ctx context.Context, e *domain.EventRecord, creator *domain.User) (string, error) {
	files, closeFiles, err := p.openFlyer(e.FlyerPath)
	if err != nil {
		return "", err
	}
	defer closeFiles()

	msg, err := p.session.ChannelMessageSendComplex(p.cfg.ModerationChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{moderationEmbed(e, creator, attachedFlyer(files))},
		Components: moderationComponents(e.ID),
		Files:      files,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("send moderation summary: %w", err)
	}

	return msg.ID, nil
}

func (p *Platform) ClearModerationControls(ctx context.Context, messageID, note string) error {
	edit := discordgo.NewMessageEdit(p.cfg.ModerationChannelID, messageID)
	edit.Content = &note
	edit.Components = &[]discordgo.MessageComponent{}

	if _, err := p.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("edit moderation summary: %w", err)
	}
	return nil
}

// PublishAnnouncement posts the public announcement and returns its message
// id together with the CDN URL Discord assigned to the flyer.
func (p *Platform) PublishAnnouncement(ctx context.Context, e *domain.EventRecord, creator *domain.User) (string, string, error) {
	files, closeFiles, err := p.openFlyer(e.FlyerPath)
	if err != nil {
		return "", "", err
	}
	defer closeFiles()

	msg, err := p.session.ChannelMessageSendComplex(p.cfg.AnnouncementChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{announcementEmbed(e, creator, attachedFlyer(files))},
		Components: interestComponents(e.ID),
		Files:      files,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", "", fmt.Errorf("send announcement: %w", err)
	}

	return msg.ID, hostedFlyerURL(msg), nil
}

func (p *Platform) UpdateInterestCounter(ctx context.Context, messageID string, count int) error {
	msg, err := p.session.ChannelMessage(p.cfg.AnnouncementChannelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("fetch announcement: %w", err)
	}

	embeds := withInterest(msg.Embeds, count)
	edit := discordgo.NewMessageEdit(p.cfg.AnnouncementChannelID, messageID)
	edit.Embeds = &embeds

	if _, err = p.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("edit announcement: %w", err)
	}
	return nil
}

// CreateSupportChannel opens a private text channel for the creator, the
// approving moderator and the support role. A failed intro message does not
// undo the channel.
func (p *Platform) CreateSupportChannel(
	ctx context.Context,
	e *domain.EventRecord,
	creator *domain.User,
	moderatorID string,
) (string, error) {
	ch, err := p.session.GuildChannelCreateComplex(p.cfg.GuildID, discordgo.GuildChannelCreateData{
		Name:                 supportChannelName(e),
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                fmt.Sprintf("Soporte del evento #%d", e.ID),
		ParentID:             p.cfg.TicketCategoryID,
		PermissionOverwrites: p.supportOverwrites(creator.DiscordID, moderatorID),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("create channel: %w", err)
	}

	files, closeFiles, err := p.openFiles(e.MappingImages)
	if err != nil {
		p.logger.Warn("mapping images unavailable for support channel",
			logger.Int64("event_id", e.ID),
			logger.String("error", err.Error()),
		)
		files, closeFiles = nil, func() {}
	}
	defer closeFiles()

	_, err = p.session.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content:    supportIntro(creator, moderatorID, p.cfg.SupportRoleID),
		Embeds:     []*discordgo.MessageEmbed{supportEmbed(e)},
		Components: closeComponents(e.ID),
		Files:      files,
	}, discordgo.WithContext(ctx))
	if err != nil {
		p.logger.Warn("failed to post support channel intro",
			logger.Int64("event_id", e.ID),
			logger.String("channel_id", ch.ID),
			logger.String("error", err.Error()),
		)
	}

	return ch.ID, nil
}

func (p *Platform) supportOverwrites(creatorID, moderatorID string) []*discordgo.PermissionOverwrite {
	overwrites := []*discordgo.PermissionOverwrite{
		// the @everyone role shares the guild id
		{ID: p.cfg.GuildID, Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
		{ID: creatorID, Type: discordgo.PermissionOverwriteTypeMember, Allow: memberPermissions},
	}
	if moderatorID != "" && moderatorID != creatorID {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID: moderatorID, Type: discordgo.PermissionOverwriteTypeMember, Allow: memberPermissions,
		})
	}
	if p.cfg.SupportRoleID != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID: p.cfg.SupportRoleID, Type: discordgo.PermissionOverwriteTypeRole, Allow: memberPermissions,
		})
	}
	return overwrites
}

func (p *Platform) DeleteChannel(ctx context.Context, channelID string) error {
	if _, err := p.session.ChannelDelete(channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete channel: %w", err)
	}
	return nil
}

func (p *Platform) AnnounceStart(ctx context.Context, e *domain.EventRecord) error {
	send := &discordgo.MessageSend{Content: startNotice(e)}
	if e.Announced() {
		send.Reference = &discordgo.MessageReference{
			MessageID: *e.PublicMessageID,
			ChannelID: p.cfg.AnnouncementChannelID,
		}
	}

	if _, err := p.session.ChannelMessageSendComplex(p.cfg.AnnouncementChannelID, send, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send start notice: %w", err)
	}
	return nil
}

// DirectMessage never returns an error: users who closed their DMs are
// reported as skipped, anything else as failed.
func (p *Platform) DirectMessage(ctx context.Context, userID, content string) domain.DeliveryOutcome {
	ch, err := p.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err == nil {
		_, err = p.session.ChannelMessageSend(ch.ID, content, discordgo.WithContext(ctx))
	}
	if err == nil {
		return domain.DeliveryDelivered
	}

	if dmClosed(err) {
		p.logger.Debug("direct message skipped, DMs closed", logger.String("user_id", userID))
		return domain.DeliverySkipped
	}

	p.logger.Warn("failed to send direct message",
		logger.String("user_id", userID),
		logger.String("error", err.Error()),
	)
	return domain.DeliveryFailed
}

func dmClosed(err error) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) &&
		restErr.Message != nil &&
		restErr.Message.Code == discordgo.ErrCodeCannotSendMessagesToThisUser
}

// openFlyer attaches the flyer under a fixed name so embeds can reference it.
func (p *Platform) openFlyer(path string) ([]*discordgo.File, func(), error) {
	files, closeFiles, err := p.openFiles([]string{path})
	if errors.Is(err, fs.ErrNotExist) {
		// purged uploads: publish without the image
		p.logger.Warn("flyer missing from upload store", logger.String("path", path))
		return nil, closeFiles, nil
	}
	if err != nil {
		return nil, closeFiles, err
	}
	for _, f := range files {
		f.Name = flyerFileName(path)
	}
	return files, closeFiles, nil
}

// openFiles opens stored uploads as message attachments.
func (p *Platform) openFiles(names []string) ([]*discordgo.File, func(), error) {
	var (
		files   []*discordgo.File
		closers []io.Closer
	)
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	for _, name := range names {
		if name == "" {
			continue
		}
		rc, err := p.media.Open(name)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open upload %s: %w", name, err)
		}
		closers = append(closers, rc)

		files = append(files, &discordgo.File{
			Name:        name,
			ContentType: storage.ContentType(name),
			Reader:      rc,
		})
	}

	return files, closeAll, nil
}

func attachedFlyer(files []*discordgo.File) string {
	if len(files) == 0 {
		return ""
	}
	return files[0].Name
}

func hostedFlyerURL(msg *discordgo.Message) string {
	for _, e := range msg.Embeds {
		if e.Image != nil && e.Image.URL != "" {
			return e.Image.URL
		}
	}
	for _, a := range msg.Attachments {
		if a.URL != "" {
			return a.URL
		}
	}
	return ""
}
