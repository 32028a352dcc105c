package vitrine

import "errors"

var (
	// ErrConfiguration reports a required collaborator or setting that is
	// missing or out of range. Operations returning it change no state.
	ErrConfiguration = errors.New("vitrine: configuration error")

	// ErrInvalidDescriptor reports an exhibit descriptor whose template is
	// nil or already disposed.
	ErrInvalidDescriptor = errors.New("vitrine: invalid exhibit descriptor")
)
