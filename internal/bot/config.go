package bot

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Config contains configuration variables for the Discord front end.
type Config struct {
	// Token is the Discord bot token used for authentication.
	Token string

	// CommandPrefix introduces every text command, e.g. "!stocks".
	CommandPrefix string

	// AmmunitionChannel and MedicalChannel restrict where the stock
	// tables may be initialized. Empty means any channel.
	AmmunitionChannel string
	MedicalChannel    string

	// RadioChannel restricts where the radio picker may be used.
	RadioChannel string

	// RequestTimeout bounds every ledger call triggered by user input.
	// A timed-out request leaves the ledger untouched.
	RequestTimeout time.Duration

	// Intents declares the Gateway Intents the bot requires.
	Intents discordgo.Intent
}

// NewConfig creates a Config with default settings. Token is empty and
// must be set before use.
func NewConfig() *Config {
	return &Config{
		CommandPrefix:  "!",
		RequestTimeout: 30 * time.Second,
		Intents:        discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent,
	}
}
