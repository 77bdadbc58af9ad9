// Package bot implements the Discord front end. It collects user
// intent from text commands, buttons and modal forms, normalizes it
// into request values, and hands those to the ledger service. The
// ledger owns all quantity state; this package only renders results.
package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/roguecreek/quartermaster/internal/catalog"
	"github.com/roguecreek/quartermaster/internal/domain"
)

// session abstracts the discordgo.Session methods used by the Bot so
// handlers can be exercised against a mock. *discordgo.Session
// satisfies this interface.
type session interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID string, messageID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Ledger is the slice of the ledger service the bot needs.
type Ledger interface {
	Adjust(ctx context.Context, dom domain.Domain, item string, delta int) (int, error)
	Render(ctx context.Context, dom domain.Domain) (string, error)
}

// HandleStore persists where each domain's stock table is displayed.
type HandleStore interface {
	SaveHandle(ctx context.Context, dom domain.Domain, handle domain.DisplayHandle) error
	LoadHandle(ctx context.Context, dom domain.Domain) (domain.DisplayHandle, error)
}

// Radio picks a broadcast frequency.
type Radio interface {
	Pick() float64
}

// Option defines a function signature for Bot's functional options.
type Option func(*Bot)

// WithSession injects a pre-configured session. If this option is not
// given, New creates a session from Config.Token.
func WithSession(s *discordgo.Session) Option {
	return func(b *Bot) {
		b.session = s
	}
}

type Bot struct {
	config  *Config
	session session
	ledger  Ledger
	handles HandleStore
	radio   Radio
}

func New(config *Config, ledger Ledger, handles HandleStore, radio Radio, options ...Option) (*Bot, error) {
	b := &Bot{
		config:  config,
		ledger:  ledger,
		handles: handles,
		radio:   radio,
	}

	for _, opt := range options {
		opt(b)
	}

	if b.session == nil {
		if config.Token == "" {
			return nil, ErrEmptyToken
		}

		s, err := discordgo.New("Bot " + config.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
		s.Identify.Intents = config.Intents
		b.session = s
	}

	return b, nil
}

// Run connects to Discord, refreshes any previously displayed stock
// tables, and blocks until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	b.session.AddHandler(b.onMessageCreate)
	b.session.AddHandler(b.onInteractionCreate)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	for _, dom := range catalog.Domains() {
		b.refreshDisplay(ctx, dom)
	}

	<-ctx.Done()

	if err := b.session.Close(); err != nil {
		zap.L().Error("failed to close Discord session", zap.Error(err))
	}

	return nil
}

// refreshDisplay re-renders the domain's table into the message the
// display handle points at, so a restart resumes editing the same
// message instead of posting a new one. A missing or stale handle is
// not an error; the table waits for the next init command.
func (b *Bot) refreshDisplay(ctx context.Context, dom domain.Domain) {
	handle, err := b.handles.LoadHandle(ctx, dom)
	if err != nil {
		zap.L().Info("no display handle to resume", zap.String("domain", string(dom)))
		return
	}

	channelID, messageID, ok := splitHandle(handle)
	if !ok {
		zap.L().Warn("malformed display handle", zap.String("domain", string(dom)))
		return
	}

	content, err := b.ledger.Render(ctx, dom)
	if err != nil {
		zap.L().Error("failed to render stock table", zap.String("domain", string(dom)), zap.Error(err))
		return
	}

	if _, err = b.session.ChannelMessageEdit(channelID, messageID, content); err != nil {
		zap.L().Warn("failed to edit displayed stock table; waiting for re-init",
			zap.String("domain", string(dom)), zap.Error(err))
	}
}

// updateDisplay re-renders after a successful adjustment.
func (b *Bot) updateDisplay(ctx context.Context, dom domain.Domain) {
	b.refreshDisplay(ctx, dom)
}

func joinHandle(channelID, messageID string) domain.DisplayHandle {
	return domain.DisplayHandle(channelID + "/" + messageID)
}

func splitHandle(handle domain.DisplayHandle) (channelID, messageID string, ok bool) {
	parts := strings.SplitN(string(handle), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	return parts[0], parts[1], true
}

func (b *Bot) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), b.config.RequestTimeout)
}

// domainChannel returns the channel a domain's table is restricted to.
func (b *Bot) domainChannel(dom domain.Domain) string {
	switch dom {
	case domain.DomainAmmunition:
		return b.config.AmmunitionChannel
	case domain.DomainMedical:
		return b.config.MedicalChannel
	default:
		return ""
	}
}
