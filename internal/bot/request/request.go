// Package request defines the normalized mutation requests the bot
// front end builds from user input before calling the ledger. Whatever
// the transport (text command, button, modal), input collapses to a
// (domain, item, signed delta) triple.
package request

import (
	"errors"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/roguecreek/quartermaster/internal/domain"
)

var ErrInvalidDelta = errors.New("delta must be a non-zero integer")

const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// StockAdjustment is the signed free-form mode: positive adds,
// negative removes, zero is rejected.
type StockAdjustment struct {
	Domain domain.Domain
	Item   string
	Delta  int
}

func (r *StockAdjustment) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Domain, validation.Required, validation.In(domain.DomainAmmunition, domain.DomainMedical)),
		validation.Field(&r.Item, validation.Required),
		// Required rejects the zero value, which is exactly the no-op delta.
		validation.Field(&r.Delta, validation.Required.Error("must be a non-zero integer")),
	)
}

// DirectionalAdjustment is the labeled mode: a strictly positive
// magnitude plus an explicit add/remove action. A remove larger than
// the current stock is allowed; the ledger clamps it to zero.
type DirectionalAdjustment struct {
	Domain domain.Domain
	Item   string
	Amount int
	Action string
}

func (r *DirectionalAdjustment) Validate() error {
	return validation.ValidateStruct(
		r,
		validation.Field(&r.Domain, validation.Required, validation.In(domain.DomainAmmunition, domain.DomainMedical)),
		validation.Field(&r.Item, validation.Required),
		validation.Field(&r.Amount, validation.Required, validation.Min(1)),
		validation.Field(&r.Action, validation.Required, validation.In(ActionAdd, ActionRemove)),
	)
}

// Delta returns the signed delta implied by the action.
func (r *DirectionalAdjustment) Delta() int {
	if r.Action == ActionRemove {
		return -r.Amount
	}

	return r.Amount
}

// ParseDelta converts raw user text to a signed delta, rejecting
// non-integer and zero input.
func ParseDelta(text string) (int, error) {
	delta, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrInvalidDelta
	}
	if delta == 0 {
		return 0, ErrInvalidDelta
	}

	return delta, nil
}
