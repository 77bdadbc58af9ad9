package bot

import (
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/roguecreek/quartermaster/internal/catalog"
	"github.com/roguecreek/quartermaster/internal/domain"
)

const (
	kindAdjust   = "adjust"
	kindQuantity = "qty"
	kindRadio    = "radio"

	quantityInputID = "quantity"
)

// componentTag identifies what a component interaction refers to. It is
// serialized into the component's custom ID at construction time, so a
// click hands back the domain and item structurally instead of being
// parsed out of a button label.
type componentTag struct {
	Kind   string        `json:"k"`
	Domain domain.Domain `json:"d,omitempty"`
	Item   string        `json:"i,omitempty"`
}

func (t componentTag) encode() string {
	raw, err := json.Marshal(t)
	if err != nil {
		// Marshaling a three-string struct cannot fail.
		panic(err)
	}

	return string(raw)
}

func decodeTag(customID string) (componentTag, error) {
	var tag componentTag
	if err := json.Unmarshal([]byte(customID), &tag); err != nil {
		return componentTag{}, fmt.Errorf("%w: %v", ErrUnknownComponent, err)
	}
	if tag.Kind == "" {
		return componentTag{}, ErrUnknownComponent
	}

	return tag, nil
}

// adjustButtonRows builds one button per catalog item, five per action
// row (the Discord per-row limit).
func adjustButtonRows(dom domain.Domain) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var current []discordgo.MessageComponent

	for _, item := range catalog.Items(dom) {
		label := item.Name
		if item.DisplayLabel != "" {
			label = item.DisplayLabel
		}

		current = append(current, discordgo.Button{
			Label:    label,
			Style:    discordgo.PrimaryButton,
			CustomID: componentTag{Kind: kindAdjust, Domain: dom, Item: item.Name}.encode(),
		})
		if len(current) == 5 {
			rows = append(rows, discordgo.ActionsRow{Components: current})
			current = nil
		}
	}
	if len(current) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: current})
	}

	return rows
}

func radioButtonRow() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Pick a radio station",
					Style:    discordgo.PrimaryButton,
					CustomID: componentTag{Kind: kindRadio}.encode(),
				},
			},
		},
	}
}

// quantityModal prompts for a signed quantity for one item.
func quantityModal(dom domain.Domain, item string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: componentTag{Kind: kindQuantity, Domain: dom, Item: item}.encode(),
			Title:    "Adjust " + item,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    quantityInputID,
							Label:       "Quantity (negative to remove)",
							Style:       discordgo.TextInputShort,
							Placeholder: "e.g. 20 or -5",
							Required:    true,
							MaxLength:   10,
						},
					},
				},
			},
		},
	}
}

// quantityInput extracts the typed value from a modal submission.
func quantityInput(data discordgo.ModalSubmitInteractionData) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range actionsRow.Components {
			input, ok := c.(*discordgo.TextInput)
			if ok && input.CustomID == quantityInputID {
				return input.Value
			}
		}
	}

	return ""
}
