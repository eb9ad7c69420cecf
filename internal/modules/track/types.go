package track

import "errors"

var (
	errTrackNotFound = errors.New("track not found")
	errAudioRequired = errors.New("audio file is required")
)
