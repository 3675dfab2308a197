package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DownloadOptions configures the download behavior
type DownloadOptions struct {
	TempDir       string        // Directory for temporary files
	MaxSize       int64         // Maximum file size in bytes (0 = no limit)
	Timeout       time.Duration // Download timeout
	ProgressFunc  ProgressFunc  // Optional progress callback
	UserAgent     string        // User agent string
	ValidateMedia bool          // Validate content-type is audio or video
}

// ProgressFunc is called during download to report progress
type ProgressFunc func(downloaded, total int64)

// DefaultOptions returns default download options
func DefaultOptions() DownloadOptions {
	return DownloadOptions{
		TempDir:       "/tmp",
		MaxSize:       500 * 1024 * 1024, // 500MB default max
		Timeout:       5 * time.Minute,
		UserAgent:     "SceneTimelineAPI/1.0",
		ValidateMedia: true,
	}
}

// DownloadResult contains information about a successful download
type DownloadResult struct {
	FilePath      string    // Path to downloaded file
	ContentType   string    // Content-Type from response
	ContentLength int64     // Size in bytes
	ETag          string    // ETag header if present
	LastModified  time.Time // Last-Modified header if present
}

// RemoteInfo describes a remote media source without downloading it
type RemoteInfo struct {
	StatusCode    int
	ContentType   string
	ContentLength int64
}

// statusError carries the HTTP status of a failed request for retry decisions
type statusError struct {
	status int
	msg    string
}

func (e *statusError) Error() string {
	return e.msg
}

// StatusCode returns the HTTP status behind a failed download or probe,
// when the error carries one
func StatusCode(err error) (int, bool) {
	var se *statusError
	if errors.As(err, &se) {
		return se.status, true
	}
	return 0, false
}

// Downloader fetches media files to temporary storage
type Downloader struct {
	client  *http.Client
	options DownloadOptions
}

// NewDownloader creates a new downloader with the given options
func NewDownloader(options DownloadOptions) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableCompression:  true, // Don't compress media
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		options: options,
	}
}

// DownloadToTemp downloads a URL to a temporary file
func (d *Downloader) DownloadToTemp(ctx context.Context, url string, sceneID uint) (*DownloadResult, error) {
	log.Printf("[DEBUG] Starting download from %s for scene %d", url, sceneID)

	// Create request
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set("User-Agent", d.options.UserAgent)
	req.Header.Set("Accept", "audio/*,video/*,*/*")

	// Execute request
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	// Check status code
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		if resp.StatusCode == http.StatusForbidden {
			return nil, &statusError{
				status: resp.StatusCode,
				msg:    "media download blocked by CDN (403 Forbidden) - possible IP blocking or hotlink protection",
			}
		}
		return nil, &statusError{
			status: resp.StatusCode,
			msg:    fmt.Sprintf("server returned status %d", resp.StatusCode),
		}
	}

	// Validate content type if required
	contentType := resp.Header.Get("Content-Type")
	if d.options.ValidateMedia && !isMediaContentType(contentType) {
		return nil, fmt.Errorf("invalid content type: %s", contentType)
	}

	// Check content length
	contentLength := resp.ContentLength
	if d.options.MaxSize > 0 && contentLength > d.options.MaxSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", contentLength, d.options.MaxSize)
	}

	// Create temp file
	tempFile, err := d.createTempFile(sceneID, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	// Download to file
	written, err := d.downloadToFile(resp.Body, tempFile, contentLength)
	tempPath := tempFile.Name()
	tempFile.Close()

	if err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("failed to download: %w", err)
	}

	log.Printf("[DEBUG] Downloaded %d bytes to %s", written, tempPath)

	// Parse headers
	result := &DownloadResult{
		FilePath:      tempPath,
		ContentType:   contentType,
		ContentLength: written,
		ETag:          resp.Header.Get("ETag"),
	}

	// Parse Last-Modified header
	if lastMod := resp.Header.Get("Last-Modified"); lastMod != "" {
		if t, err := http.ParseTime(lastMod); err == nil {
			result.LastModified = t
		}
	}

	return result, nil
}

// DownloadWithRetry downloads with retries on transient server failures.
// Client errors (403, 404, bad content) fail immediately.
func (d *Downloader) DownloadWithRetry(ctx context.Context, url string, sceneID uint) (*DownloadResult, error) {
	const maxAttempts = 3
	const retryDelay = 2 * time.Second

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := d.DownloadToTemp(ctx, url, sceneID)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isRetryableDownloadError(err) {
			return nil, err
		}
		if attempt < maxAttempts {
			log.Printf("[INFO] Download attempt %d/%d failed for %s: %v", attempt, maxAttempts, url, err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}

	return nil, fmt.Errorf("download failed after %d attempts: %w", maxAttempts, lastErr)
}

// isRetryableDownloadError reports whether a download failure is worth
// retrying: server-side statuses and transport errors are, client errors
// are not.
func isRetryableDownloadError(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.status >= 500 || se.status == http.StatusTooManyRequests
	}
	// Content-type, size and temp file errors are not status errors but are
	// not transient either
	if strings.Contains(err.Error(), "invalid content type") ||
		strings.Contains(err.Error(), "file too large") {
		return false
	}
	// Transport-level failures (timeouts, resets) can be retried
	return strings.Contains(err.Error(), "failed to download")
}

// ProbeRemote checks whether a media URL is reachable using a HEAD request,
// falling back to a one-byte ranged GET when the server rejects HEAD.
func (d *Downloader) ProbeRemote(ctx context.Context, url string) (*RemoteInfo, error) {
	info, err := d.probeOnce(ctx, url, "HEAD")
	if err != nil {
		return nil, err
	}
	if info.StatusCode == http.StatusMethodNotAllowed || info.StatusCode == http.StatusNotImplemented {
		info, err = d.probeOnce(ctx, url, "GET")
		if err != nil {
			return nil, err
		}
	}

	if info.StatusCode < 200 || info.StatusCode >= 300 {
		return nil, &statusError{
			status: info.StatusCode,
			msg:    fmt.Sprintf("media probe returned status %d", info.StatusCode),
		}
	}
	return info, nil
}

func (d *Downloader) probeOnce(ctx context.Context, url, method string) (*RemoteInfo, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", d.options.UserAgent)
	if method == "GET" {
		req.Header.Set("Range", "bytes=0-0")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to probe: %w", err)
	}
	defer resp.Body.Close()

	return &RemoteInfo{
		StatusCode:    resp.StatusCode,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}, nil
}

// createTempFile creates a temporary file for the download
func (d *Downloader) createTempFile(sceneID uint, url string) (*os.File, error) {
	// Extract file extension from URL if possible
	ext := ".mp3" // default
	if parts := strings.Split(url, "."); len(parts) > 1 {
		lastPart := parts[len(parts)-1]
		// Remove query params if present
		if idx := strings.Index(lastPart, "?"); idx > 0 {
			lastPart = lastPart[:idx]
		}
		if isValidMediaExtension(lastPart) {
			ext = "." + lastPart
		}
	}

	// Create temp file with pattern: media_<id>_<timestamp>.<ext>
	pattern := fmt.Sprintf("media_%d_*%s", sceneID, ext)
	return os.CreateTemp(d.options.TempDir, pattern)
}

// downloadToFile downloads response body to file with optional progress tracking
func (d *Downloader) downloadToFile(src io.Reader, dst *os.File, totalSize int64) (int64, error) {
	// Create progress reader if callback provided
	reader := src
	if d.options.ProgressFunc != nil && totalSize > 0 {
		reader = &progressReader{
			reader:   src,
			total:    totalSize,
			callback: d.options.ProgressFunc,
		}
	}

	// Copy with size limit if configured
	if d.options.MaxSize > 0 {
		reader = &io.LimitedReader{
			R: reader,
			N: d.options.MaxSize,
		}
	}

	// Copy to file
	return io.Copy(dst, reader)
}

// CleanupTempFile removes a temporary file
func CleanupTempFile(path string) error {
	if path == "" {
		return nil
	}

	log.Printf("[DEBUG] Cleaning up temp file: %s", path)
	return os.Remove(path)
}

// CleanupOldTempFiles removes temp files older than the specified duration
func CleanupOldTempFiles(tempDir string, maxAge time.Duration) error {
	pattern := filepath.Join(tempDir, "media_*")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	var removed int

	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(file); err == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		log.Printf("[DEBUG] Cleaned up %d old temp files", removed)
	}

	return nil
}

// isMediaContentType checks if content type is audio or video
func isMediaContentType(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.HasPrefix(contentType, "audio/") ||
		strings.HasPrefix(contentType, "video/") ||
		contentType == "application/octet-stream" // Some servers use this for media
}

// isValidMediaExtension checks if extension is valid for media files
func isValidMediaExtension(ext string) bool {
	ext = strings.ToLower(ext)
	validExts := []string{"mp3", "m4a", "aac", "ogg", "wav", "flac", "opus", "mp4", "m4v", "mov", "webm"}
	for _, valid := range validExts {
		if ext == valid {
			return true
		}
	}
	return false
}

// progressReader wraps a reader to report progress
type progressReader struct {
	reader     io.Reader
	total      int64
	downloaded int64
	callback   ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		pr.downloaded += int64(n)
		if pr.callback != nil {
			pr.callback(pr.downloaded, pr.total)
		}
	}
	return n, err
}
