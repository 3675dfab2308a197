package ffmpeg

// MediaMetadata represents metadata extracted from a media file
type MediaMetadata struct {
	Duration   float64 `json:"duration"`    // Duration in seconds
	Format     string  `json:"format"`      // Container format name from ffprobe
	Size       int64   `json:"size"`        // File size in bytes
	Bitrate    int     `json:"bitrate"`     // Bitrate in bits per second
	Codec      string  `json:"codec"`       // Audio codec
	SampleRate int     `json:"sample_rate"` // Audio sample rate in Hz
	Channels   int     `json:"channels"`    // Number of audio channels
	VideoCodec string  `json:"video_codec"` // Video codec, empty for audio-only files
	Width      int     `json:"width"`       // Video width in pixels
	Height     int     `json:"height"`      // Video height in pixels
}

// HasVideo reports whether the file carries a video stream
func (m *MediaMetadata) HasVideo() bool {
	return m.VideoCodec != ""
}
