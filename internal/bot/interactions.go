package bot

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/roguecreek/quartermaster/internal/bot/request"
	"github.com/roguecreek/quartermaster/internal/service"
)

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		b.handleComponent(i)
	case discordgo.InteractionModalSubmit:
		b.handleModalSubmit(i)
	}
}

// handleComponent reacts to button presses. Adjust buttons open a
// quantity modal; the radio button answers immediately.
func (b *Bot) handleComponent(i *discordgo.InteractionCreate) {
	tag, err := decodeTag(i.MessageComponentData().CustomID)
	if err != nil {
		zap.L().Warn("component with undecodable custom ID", zap.Error(err))
		return
	}

	switch tag.Kind {
	case kindAdjust:
		if err := b.session.InteractionRespond(i.Interaction, quantityModal(tag.Domain, tag.Item)); err != nil {
			zap.L().Error("failed to open quantity modal", zap.Error(err))
		}
	case kindRadio:
		b.respond(i, fmt.Sprintf("Selected radio station: **%.1f**", b.radio.Pick()), false)
	default:
		zap.L().Warn("component with unknown kind", zap.String("kind", tag.Kind))
	}
}

// handleModalSubmit applies the quantity typed into an adjust modal.
func (b *Bot) handleModalSubmit(i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()

	tag, err := decodeTag(data.CustomID)
	if err != nil || tag.Kind != kindQuantity {
		zap.L().Warn("modal submit with unexpected custom ID", zap.Error(err))
		return
	}

	delta, err := request.ParseDelta(quantityInput(data))
	if err != nil {
		b.respond(i, "Please enter a valid non-zero number.", true)
		return
	}

	req := &request.StockAdjustment{
		Domain: tag.Domain,
		Item:   tag.Item,
		Delta:  delta,
	}
	if err = req.Validate(); err != nil {
		b.respond(i, "Invalid request: "+err.Error(), true)
		return
	}

	ctx, cancel := b.requestContext()
	defer cancel()

	newQuantity, err := b.ledger.Adjust(ctx, req.Domain, req.Item, req.Delta)
	if err != nil {
		b.respondLedgerErr(i, err)
		return
	}

	verb := "added"
	if delta < 0 {
		verb = "removed"
	}
	b.respond(i, fmt.Sprintf("%d %s %s. New stock: %d", abs(delta), req.Item, verb, newQuantity), true)

	b.updateDisplay(ctx, req.Domain)
}

// respond answers an interaction; ephemeral answers are visible only to
// the interacting user.
func (b *Bot) respond(i *discordgo.InteractionCreate, content string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		zap.L().Error("failed to respond to interaction", zap.Error(err))
	}
}

func (b *Bot) respondLedgerErr(i *discordgo.InteractionCreate, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownItem):
		zap.L().Error("adjustment referenced an item missing from the catalog", zap.Error(err))
		b.respond(i, "That item is not tracked here.", true)
	case errors.Is(err, service.ErrInvalidDelta):
		b.respond(i, "Please enter a valid non-zero number.", true)
	case errors.Is(err, service.ErrStorageUnavailable):
		b.respond(i, "Storage is temporarily unavailable, please try again.", true)
	default:
		zap.L().Error("ledger operation failed", zap.Error(err))
		b.respond(i, "Something went wrong, please try again.", true)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
