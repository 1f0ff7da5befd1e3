package telemetry

import "errors"

var (
	ErrEmptyRecording = errors.New("recording has no frames")
	ErrBadFrame       = errors.New("invalid recording frame")
	ErrEndOfRecording = errors.New("end of recording")
	ErrUnknownSpace   = errors.New("unknown recording space")
)
