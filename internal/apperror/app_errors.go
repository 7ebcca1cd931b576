package apperror

import "errors"

// Error kinds. Match them with errors.Is.
var (
	ErrInvalidGameConfig = errors.New("invalid game config")
	ErrInvalidGameState  = errors.New("invalid game state")
	ErrInvalidMove       = errors.New("invalid move")
	ErrIllegalPlayerTurn = errors.New("illegal player turn")
	ErrGameNotFound      = errors.New("game not found")
	ErrPersistence       = errors.New("persistence failure")
)

const (
	msgInvalidGameState  = "Cannot make a move, since game is over."
	msgIllegalPlayerTurn = "Move cannot be played out of turn."
	msgInvalidMove       = "This move cannot be made. Select a valid and vacant spot."
	msgGameNotFound      = "The game against which operation was attempted does not exist."
	msgPersistence       = "There was an issue with the database."
)

// Ready-made errors with the messages exposed to API clients.
var (
	InvalidGameState  = &AppError{kind: ErrInvalidGameState, message: msgInvalidGameState}
	IllegalPlayerTurn = &AppError{kind: ErrIllegalPlayerTurn, message: msgIllegalPlayerTurn}
	InvalidMove       = &AppError{kind: ErrInvalidMove, message: msgInvalidMove}
	GameNotFound      = &AppError{kind: ErrGameNotFound, message: msgGameNotFound}
)

// AppError is a failure of a known kind carrying a stable, client facing message.
type AppError struct {
	kind    error
	message string
	cause   error
}

// InvalidGameConfig - returns a config error with the given message.
func InvalidGameConfig(message string) *AppError {
	return &AppError{kind: ErrInvalidGameConfig, message: message}
}

// Persistence - wraps a storage error. The cause stays reachable for logging
// but never leaks into the message.
func Persistence(cause error) *AppError {
	return &AppError{kind: ErrPersistence, message: msgPersistence, cause: cause}
}

func (that *AppError) Error() string {
	return that.message
}

func (that *AppError) Unwrap() []error {
	if that.cause == nil {
		return []error{that.kind}
	}
	return []error{that.kind, that.cause}
}

// Kind returns the sentinel this error belongs to.
func (that *AppError) Kind() error {
	return that.kind
}

// Cause returns the wrapped storage error, if any.
func (that *AppError) Cause() error {
	return that.cause
}
