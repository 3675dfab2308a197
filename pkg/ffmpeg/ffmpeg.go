// Package ffmpeg wraps ffprobe for extracting duration and stream metadata
// from scene media files.
package ffmpeg

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"
)

// FFmpeg wraps ffprobe functionality
type FFmpeg struct {
	ffprobePath string
	timeout     time.Duration
	tempDir     string
}

// New creates a new FFmpeg instance
func New(ffprobePath string, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		ffprobePath: ffprobePath,
		timeout:     timeout,
		tempDir:     os.TempDir(),
	}
}

// ValidateBinaries checks if ffprobe is available
func (f *FFmpeg) ValidateBinaries() error {
	if _, err := exec.LookPath(f.ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, f.ffprobePath)
	}
	return nil
}

// ProbeDuration resolves the duration of a media source in seconds. Remote
// URLs are fetched to a temporary file first; ffprobe's own URL support is
// unreliable across CDNs.
func (f *FFmpeg) ProbeDuration(ctx context.Context, input string) (float64, error) {
	localPath := input
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		tempFile, cleanup, err := f.downloadToTemp(ctx, input)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cleanupErr := cleanup(); cleanupErr != nil {
				log.Printf("[ERROR] Failed to cleanup temporary file: %v", cleanupErr)
			}
		}()
		localPath = tempFile
	}

	metadata, err := f.GetMetadata(ctx, localPath)
	if err != nil {
		return 0, err
	}
	return metadata.Duration, nil
}

// downloadToTemp downloads a URL to a temporary file
func (f *FFmpeg) downloadToTemp(ctx context.Context, url string) (string, func() error, error) {
	tempFile, err := os.CreateTemp(f.tempDir, "probe_download_*")
	if err != nil {
		return "", nil, NewProcessingError("temp_file_creation", url, err, "")
	}

	cleanup := func() error {
		return os.Remove(tempFile.Name())
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		if cleanupErr := cleanup(); cleanupErr != nil {
			log.Printf("[ERROR] Failed to cleanup on error: %v", cleanupErr)
		}
		return "", nil, err
	}

	// Set user agent to avoid blocking
	req.Header.Set("User-Agent", "SceneTimelineAPI/1.0")

	client := &http.Client{Timeout: f.timeout}
	resp, err := client.Do(req)
	if err != nil {
		if cleanupErr := cleanup(); cleanupErr != nil {
			log.Printf("[ERROR] Failed to cleanup on error: %v", cleanupErr)
		}
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if cleanupErr := cleanup(); cleanupErr != nil {
			log.Printf("[ERROR] Failed to cleanup on error: %v", cleanupErr)
		}
		return "", nil, fmt.Errorf("failed to download media: HTTP %d", resp.StatusCode)
	}

	_, err = io.Copy(tempFile, resp.Body)
	tempFile.Close()
	if err != nil {
		if cleanupErr := cleanup(); cleanupErr != nil {
			log.Printf("[ERROR] Failed to cleanup on error: %v", cleanupErr)
		}
		return "", nil, err
	}

	return tempFile.Name(), cleanup, nil
}
