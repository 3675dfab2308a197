package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ffprobeOutput represents the JSON structure returned by ffprobe
type ffprobeOutput struct {
	Format struct {
		Duration   string `json:"duration"`
		Size       string `json:"size"`
		Bitrate    string `json:"bit_rate"`
		FormatName string `json:"format_name"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		Duration   string `json:"duration"`
	} `json:"streams"`
}

// GetMetadata extracts metadata from a media file using ffprobe
func (f *FFmpeg) GetMetadata(ctx context.Context, filePath string) (*MediaMetadata, error) {
	args := []string{
		"-v", "quiet",
		"-show_format",
		"-show_streams",
		"-of", "json",
		filePath,
	}

	cmd := exec.CommandContext(ctx, f.ffprobePath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, NewProcessingError("metadata_extraction", filePath, err, stderr.String())
	}

	var output ffprobeOutput
	if err := json.Unmarshal(stdout.Bytes(), &output); err != nil {
		return nil, NewProcessingError("metadata_parsing", filePath, err, "")
	}

	return parseMetadata(&output, filePath)
}

// parseMetadata converts ffprobe output to MediaMetadata
func parseMetadata(output *ffprobeOutput, filePath string) (*MediaMetadata, error) {
	metadata := &MediaMetadata{}

	// Parse duration
	if output.Format.Duration != "" {
		if duration, err := strconv.ParseFloat(output.Format.Duration, 64); err == nil {
			metadata.Duration = duration
		}
	}

	// Parse file size
	if output.Format.Size != "" {
		if size, err := strconv.ParseInt(output.Format.Size, 10, 64); err == nil {
			metadata.Size = size
		}
	}

	// Parse bitrate
	if output.Format.Bitrate != "" {
		if bitrate, err := strconv.Atoi(output.Format.Bitrate); err == nil {
			metadata.Bitrate = bitrate
		}
	}

	// Parse format
	metadata.Format = output.Format.FormatName

	// Parse stream information; the first stream of each type wins
	for _, stream := range output.Streams {
		switch stream.CodecType {
		case "audio":
			if metadata.Codec != "" {
				continue
			}
			metadata.Codec = stream.CodecName
			metadata.Channels = stream.Channels

			if stream.SampleRate != "" {
				if sampleRate, err := strconv.Atoi(stream.SampleRate); err == nil {
					metadata.SampleRate = sampleRate
				}
			}

			// Use stream duration if format duration is not available
			if metadata.Duration == 0 && stream.Duration != "" {
				if duration, err := strconv.ParseFloat(stream.Duration, 64); err == nil {
					metadata.Duration = duration
				}
			}
		case "video":
			if metadata.VideoCodec != "" {
				continue
			}
			metadata.VideoCodec = stream.CodecName
			metadata.Width = stream.Width
			metadata.Height = stream.Height

			if metadata.Duration == 0 && stream.Duration != "" {
				if duration, err := strconv.ParseFloat(stream.Duration, 64); err == nil {
					metadata.Duration = duration
				}
			}
		}
	}

	// Validate that we have minimum required metadata
	if metadata.Duration == 0 {
		return nil, NewProcessingError("metadata_validation", filePath,
			fmt.Errorf("could not determine media duration"), "")
	}

	return metadata, nil
}

// ValidateMediaFile checks if a file is a valid media file that can be probed
func (f *FFmpeg) ValidateMediaFile(ctx context.Context, filePath string) error {
	metadata, err := f.GetMetadata(ctx, filePath)
	if err != nil {
		return err
	}

	if metadata.Duration <= 0 {
		return ErrInvalidMediaFile
	}

	if !supportedContainer(metadata.Format) {
		return fmt.Errorf("unsupported media format: %s", metadata.Format)
	}

	return nil
}

// supportedContainer checks the ffprobe format name, which can be a
// comma-separated list of aliases like "mov,mp4,m4a,3gp,3g2,mj2"
func supportedContainer(formatName string) bool {
	supported := map[string]bool{
		"mp3":      true,
		"m4a":      true,
		"aac":      true,
		"wav":      true,
		"flac":     true,
		"ogg":      true,
		"mp4":      true,
		"mov":      true,
		"webm":     true,
		"matroska": true,
	}

	for _, name := range strings.Split(formatName, ",") {
		if supported[strings.TrimSpace(name)] {
			return true
		}
	}
	return false
}
