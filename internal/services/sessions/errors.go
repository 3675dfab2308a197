package sessions

import "errors"

var (
	// ErrSessionClosed is returned when a command reaches a session that
	// has already shut down
	ErrSessionClosed = errors.New("session closed")

	// ErrSessionNotFound is returned when no session carries the given id
	ErrSessionNotFound = errors.New("session not found")

	// ErrManagerClosed is returned when attaching to a manager that has
	// been shut down
	ErrManagerClosed = errors.New("session manager closed")

	// ErrNoActiveDrag is returned when a drag move or end arrives without
	// an open drag
	ErrNoActiveDrag = errors.New("no active drag")

	// ErrInvalidDrag is returned when a drag begin names an unknown edit
	// kind or track
	ErrInvalidDrag = errors.New("invalid drag request")

	// ErrInvalidTrack is returned when a mix-state change names a track
	// that carries no audio
	ErrInvalidTrack = errors.New("track has no mix state")

	// ErrClipNotFound is returned when a drag begin names a clip the
	// current tracks do not contain
	ErrClipNotFound = errors.New("clip not found in session tracks")
)
