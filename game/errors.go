package game

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrInvalidState         = errors.New("invalid game state")
	ErrInvalidTransition    = errors.New("phase transition not allowed")
	ErrEmptyDeck            = errors.New("deck is empty")
	ErrNotEnoughCards       = errors.New("not enough cards in deck")
	ErrInvalidPoints        = errors.New("points cannot be negative")
	ErrInvalidBet           = errors.New("bet amount must be positive")
	ErrInvalidOptions       = errors.New("invalid game options")
	ErrNotInGame            = errors.New("player is not seated in this game")
	ErrCardNotHeld          = errors.New("card is not in the player's hand")
	ErrIllegalMove          = errors.New("illegal move")
	ErrNotYourTurn          = errors.New("player cannot act")
	ErrInvalidSnapshot      = errors.New("invalid snapshot")
	ErrUnknownCard          = errors.New("unknown card code")
)
