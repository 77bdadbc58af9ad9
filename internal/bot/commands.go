package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/roguecreek/quartermaster/internal/bot/request"
	"github.com/roguecreek/quartermaster/internal/domain"
	"github.com/roguecreek/quartermaster/internal/service"
)

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if !strings.HasPrefix(content, b.config.CommandPrefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(content, b.config.CommandPrefix))
	if len(fields) == 0 {
		return
	}

	ctx, cancel := b.requestContext()
	defer cancel()

	switch fields[0] {
	case "init":
		b.handleInit(ctx, m.ChannelID, fields[1:])
	case "stocks":
		b.handleStocks(ctx, m.ChannelID, fields[1:])
	case "stock":
		b.handleSignedAdjust(ctx, m.ChannelID, fields[1:])
	case "add", "remove":
		b.handleDirectionalAdjust(ctx, m.ChannelID, fields[0], fields[1:])
	case "radio":
		b.handleRadio(m.ChannelID)
	}
}

// handleInit posts (or reposts) a domain's stock table with its button
// row, or the radio picker.
func (b *Bot) handleInit(ctx context.Context, channelID string, args []string) {
	if len(args) != 1 {
		b.reply(channelID, "Usage: "+b.config.CommandPrefix+"init <ammunition|medical|radio>")
		return
	}

	if args[0] == "radio" {
		b.initRadio(channelID)
		return
	}

	dom, ok := parseDomain(args[0])
	if !ok {
		b.reply(channelID, "Unknown inventory: "+args[0])
		return
	}

	if restricted := b.domainChannel(dom); restricted != "" && restricted != channelID {
		b.reply(channelID, "This inventory can only be managed in its own channel.")
		return
	}

	content, err := b.ledger.Render(ctx, dom)
	if err != nil {
		b.replyLedgerErr(channelID, err)
		return
	}

	stockMsg, err := b.session.ChannelMessageSend(channelID, content)
	if err != nil {
		zap.L().Error("failed to post stock table", zap.Error(err))
		return
	}

	if err = b.handles.SaveHandle(ctx, dom, joinHandle(channelID, stockMsg.ID)); err != nil {
		zap.L().Error("failed to persist display handle", zap.String("domain", string(dom)), zap.Error(err))
	}

	_, err = b.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    "Adjust an item:",
		Components: adjustButtonRows(dom),
	})
	if err != nil {
		zap.L().Error("failed to post button row", zap.Error(err))
	}
}

func (b *Bot) initRadio(channelID string) {
	if b.config.RadioChannel != "" && b.config.RadioChannel != channelID {
		b.reply(channelID, "The radio picker can only be used in the radio channel.")
		return
	}

	_, err := b.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    "Press the button to pick a random radio station:",
		Components: radioButtonRow(),
	})
	if err != nil {
		zap.L().Error("failed to post radio button", zap.Error(err))
	}
}

func (b *Bot) handleStocks(ctx context.Context, channelID string, args []string) {
	if len(args) != 1 {
		b.reply(channelID, "Usage: "+b.config.CommandPrefix+"stocks <ammunition|medical>")
		return
	}

	dom, ok := parseDomain(args[0])
	if !ok {
		b.reply(channelID, "Unknown inventory: "+args[0])
		return
	}

	content, err := b.ledger.Render(ctx, dom)
	if err != nil {
		b.replyLedgerErr(channelID, err)
		return
	}

	b.reply(channelID, content)
}

// handleSignedAdjust implements the signed free-form mode:
// !stock <domain> <item> <±n>.
func (b *Bot) handleSignedAdjust(ctx context.Context, channelID string, args []string) {
	if len(args) < 3 {
		b.reply(channelID, "Usage: "+b.config.CommandPrefix+"stock <ammunition|medical> <item> <±number>")
		return
	}

	dom, ok := parseDomain(args[0])
	if !ok {
		b.reply(channelID, "Unknown inventory: "+args[0])
		return
	}

	delta, err := request.ParseDelta(args[len(args)-1])
	if err != nil {
		b.reply(channelID, "Please enter a valid non-zero number.")
		return
	}

	req := &request.StockAdjustment{
		Domain: dom,
		Item:   strings.Join(args[1:len(args)-1], " "),
		Delta:  delta,
	}
	if err = req.Validate(); err != nil {
		b.reply(channelID, "Invalid request: "+err.Error())
		return
	}

	b.applyAdjustment(ctx, channelID, req.Domain, req.Item, req.Delta)
}

// handleDirectionalAdjust implements the labeled mode:
// !add|!remove <domain> <item> <n>. Removing more than is stocked is
// allowed; the ledger clamps the quantity at zero.
func (b *Bot) handleDirectionalAdjust(ctx context.Context, channelID, action string, args []string) {
	if len(args) < 3 {
		b.reply(channelID, fmt.Sprintf("Usage: %s%s <ammunition|medical> <item> <number>", b.config.CommandPrefix, action))
		return
	}

	dom, ok := parseDomain(args[0])
	if !ok {
		b.reply(channelID, "Unknown inventory: "+args[0])
		return
	}

	amount, err := request.ParseDelta(args[len(args)-1])
	if err != nil || amount < 0 {
		b.reply(channelID, "Please enter a positive whole number.")
		return
	}

	req := &request.DirectionalAdjustment{
		Domain: dom,
		Item:   strings.Join(args[1:len(args)-1], " "),
		Amount: amount,
		Action: action,
	}
	if err = req.Validate(); err != nil {
		b.reply(channelID, "Invalid request: "+err.Error())
		return
	}

	b.applyAdjustment(ctx, channelID, req.Domain, req.Item, req.Delta())
}

func (b *Bot) handleRadio(channelID string) {
	if b.config.RadioChannel != "" && b.config.RadioChannel != channelID {
		b.reply(channelID, "This command can only be used in the radio channel.")
		return
	}

	b.reply(channelID, fmt.Sprintf("Selected radio station: **%.1f**", b.radio.Pick()))
}

// applyAdjustment runs the normalized mutation and reports the outcome.
func (b *Bot) applyAdjustment(ctx context.Context, channelID string, dom domain.Domain, item string, delta int) {
	newQuantity, err := b.ledger.Adjust(ctx, dom, item, delta)
	if err != nil {
		b.replyLedgerErr(channelID, err)
		return
	}

	b.reply(channelID, fmt.Sprintf("%s updated. New stock: %d", item, newQuantity))
	b.updateDisplay(ctx, dom)
}

func (b *Bot) reply(channelID, content string) {
	if _, err := b.session.ChannelMessageSend(channelID, content); err != nil {
		zap.L().Error("failed to send message", zap.String("channel", channelID), zap.Error(err))
	}
}

// replyLedgerErr translates ledger failures into user-facing messages.
// Unknown items are a wiring bug, not a user mistake, so they are
// logged as errors as well.
func (b *Bot) replyLedgerErr(channelID string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownItem):
		zap.L().Error("adjustment referenced an item missing from the catalog", zap.Error(err))
		b.reply(channelID, "That item is not tracked here.")
	case errors.Is(err, service.ErrInvalidDelta):
		b.reply(channelID, "Please enter a valid non-zero number.")
	case errors.Is(err, service.ErrStorageUnavailable):
		b.reply(channelID, "Storage is temporarily unavailable, please try again.")
	default:
		zap.L().Error("ledger operation failed", zap.Error(err))
		b.reply(channelID, "Something went wrong, please try again.")
	}
}

func parseDomain(s string) (domain.Domain, bool) {
	switch strings.ToLower(s) {
	case "ammunition", "ammo":
		return domain.DomainAmmunition, true
	case "medical", "med":
		return domain.DomainMedical, true
	default:
		return "", false
	}
}
