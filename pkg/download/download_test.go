package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNewDownloader(t *testing.T) {
	options := DefaultOptions()
	downloader := NewDownloader(options)

	if downloader == nil {
		t.Fatal("NewDownloader returned nil")
	}

	if downloader.client == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if downloader.options.Timeout != options.Timeout {
		t.Errorf("Expected timeout %v, got %v", options.Timeout, downloader.options.Timeout)
	}
}

func TestDownloadToTemp_Success(t *testing.T) {
	// Create test server that serves valid media
	mediaData := strings.Repeat("media-data", 128) // 1280 bytes (10 * 128)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(mediaData))
	}))
	defer server.Close()

	options := DefaultOptions()
	options.TempDir = os.TempDir()
	downloader := NewDownloader(options)

	ctx := context.Background()
	result, err := downloader.DownloadToTemp(ctx, server.URL, 12345)

	if err != nil {
		t.Fatalf("Expected successful download, got error: %v", err)
	}

	defer func() {
		_ = CleanupTempFile(result.FilePath)
	}()

	if result.ContentType != "video/mp4" {
		t.Errorf("Expected content type 'video/mp4', got %v", result.ContentType)
	}

	if result.ContentLength != 1280 {
		t.Errorf("Expected content length 1280, got %v", result.ContentLength)
	}

	// Verify file exists
	if _, err := os.Stat(result.FilePath); os.IsNotExist(err) {
		t.Error("Downloaded file does not exist")
	}
}

func TestDownloadToTemp_403Forbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Forbidden"))
	}))
	defer server.Close()

	options := DefaultOptions()
	downloader := NewDownloader(options)

	ctx := context.Background()
	_, err := downloader.DownloadToTemp(ctx, server.URL, 12345)

	if err == nil {
		t.Fatal("Expected error for 403 response, got nil")
	}

	expectedMessages := []string{
		"media download blocked by CDN (403 Forbidden)",
		"IP blocking",
		"hotlink protection",
	}

	errStr := err.Error()
	for _, msg := range expectedMessages {
		if !strings.Contains(errStr, msg) {
			t.Errorf("Expected error message to contain '%s', got: %v", msg, errStr)
		}
	}
}

func TestDownloadToTemp_InvalidContentType(t *testing.T) {
	// Create test server that serves HTML instead of media
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>Not media</html>"))
	}))
	defer server.Close()

	options := DefaultOptions()
	options.ValidateMedia = true
	downloader := NewDownloader(options)

	ctx := context.Background()
	_, err := downloader.DownloadToTemp(ctx, server.URL, 12345)

	if err == nil {
		t.Fatal("Expected error for invalid content type, got nil")
	}

	if !strings.Contains(err.Error(), "invalid content type: text/html") {
		t.Errorf("Expected content type error, got: %v", err.Error())
	}
}

func TestDownloadToTemp_FileTooLarge(t *testing.T) {
	// Create test server that claims large content length
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Header().Set("Content-Length", "1000000000") // 1GB
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	options := DefaultOptions()
	options.MaxSize = 1024 // 1KB limit
	downloader := NewDownloader(options)

	ctx := context.Background()
	_, err := downloader.DownloadToTemp(ctx, server.URL, 12345)

	if err == nil {
		t.Fatal("Expected error for file too large, got nil")
	}

	if !strings.Contains(err.Error(), "file too large") {
		t.Errorf("Expected file too large error, got: %v", err.Error())
	}
}

func TestDownloadWithRetry_Success(t *testing.T) {
	// Create test server that succeeds on first try
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("audio-data"))
	}))
	defer server.Close()

	options := DefaultOptions()
	options.TempDir = os.TempDir()
	downloader := NewDownloader(options)

	ctx := context.Background()
	result, err := downloader.DownloadWithRetry(ctx, server.URL, 12345)

	if err != nil {
		t.Fatalf("Expected successful download, got error: %v", err)
	}

	defer func() {
		_ = CleanupTempFile(result.FilePath)
	}()

	if result.ContentType != "audio/mpeg" {
		t.Errorf("Expected content type 'audio/mpeg', got %v", result.ContentType)
	}
}

func TestDownloadWithRetry_NonRetryableError(t *testing.T) {
	// Create test server that returns 404 (non-retryable)
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
	}))
	defer server.Close()

	options := DefaultOptions()
	downloader := NewDownloader(options)

	ctx := context.Background()
	_, err := downloader.DownloadWithRetry(ctx, server.URL, 12345)

	if err == nil {
		t.Fatal("Expected error for 404, got nil")
	}

	// Should fail immediately without retries for client errors
	if attempts != 1 {
		t.Errorf("Expected 1 attempt for 404, got %d", attempts)
	}
	if strings.Contains(err.Error(), "download failed after") {
		t.Error("Should not retry for client errors")
	}
}

func TestProbeRemote_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "HEAD" {
			t.Errorf("Expected HEAD request, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Header().Set("Content-Length", "2048")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	downloader := NewDownloader(DefaultOptions())

	info, err := downloader.ProbeRemote(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("ProbeRemote failed: %v", err)
	}

	if info.ContentType != "audio/mpeg" {
		t.Errorf("Expected content type 'audio/mpeg', got %v", info.ContentType)
	}
	if info.ContentLength != 2048 {
		t.Errorf("Expected content length 2048, got %v", info.ContentLength)
	}
}

func TestProbeRemote_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	downloader := NewDownloader(DefaultOptions())

	_, err := downloader.ProbeRemote(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected error for 404 probe, got nil")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected status in error, got: %v", err)
	}
}

func TestProbeRemote_HeadNotAllowed(t *testing.T) {
	// Server rejects HEAD but accepts ranged GET
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "HEAD" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Range") == "" {
			t.Error("Expected ranged GET fallback")
		}
		w.Header().Set("Content-Type", "video/mp4")
		w.WriteHeader(http.StatusPartialContent)
		_, _ = w.Write([]byte("x"))
	}))
	defer server.Close()

	downloader := NewDownloader(DefaultOptions())

	info, err := downloader.ProbeRemote(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("ProbeRemote failed: %v", err)
	}
	if info.ContentType != "video/mp4" {
		t.Errorf("Expected content type 'video/mp4', got %v", info.ContentType)
	}
}

func TestIsMediaContentType(t *testing.T) {
	testCases := []struct {
		contentType string
		expected    bool
	}{
		{"audio/mpeg", true},
		{"audio/mp3", true},
		{"video/mp4", true},
		{"VIDEO/MP4", true},                // Case insensitive
		{"application/octet-stream", true}, // Special case for some servers
		{"text/html", false},
		{"image/jpeg", false},
		{"application/json", false},
		{"", false},
	}

	for _, tc := range testCases {
		result := isMediaContentType(tc.contentType)
		if result != tc.expected {
			t.Errorf("isMediaContentType(%q) = %v, expected %v", tc.contentType, result, tc.expected)
		}
	}
}

func TestIsValidMediaExtension(t *testing.T) {
	testCases := []struct {
		ext      string
		expected bool
	}{
		{"mp3", true},
		{"MP3", true}, // Case insensitive
		{"m4a", true},
		{"mp4", true},
		{"mov", true},
		{"webm", true},
		{"txt", false},
		{"html", false},
		{"", false},
	}

	for _, tc := range testCases {
		result := isValidMediaExtension(tc.ext)
		if result != tc.expected {
			t.Errorf("isValidMediaExtension(%q) = %v, expected %v", tc.ext, result, tc.expected)
		}
	}
}

func TestCleanupTempFile(t *testing.T) {
	// Create a temporary file
	tmpFile, err := os.CreateTemp("", "test_cleanup_*")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tmpFile.Close()
	filePath := tmpFile.Name()

	// Clean up the file
	if err := CleanupTempFile(filePath); err != nil {
		t.Errorf("CleanupTempFile failed: %v", err)
	}

	// Verify file is gone
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		t.Error("Temp file should not exist after cleanup")
	}
}

func TestCleanupTempFile_EmptyPath(t *testing.T) {
	// Should handle empty path gracefully
	if err := CleanupTempFile(""); err != nil {
		t.Errorf("CleanupTempFile with empty path should not error, got: %v", err)
	}
}

func TestCleanupOldTempFiles(t *testing.T) {
	// Create temporary directory for testing
	tmpDir, err := os.MkdirTemp("", "test_cleanup_old_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Create old and new files
	oldFile, err := os.CreateTemp(tmpDir, "media_12345_*")
	if err != nil {
		t.Fatalf("Failed to create old file: %v", err)
	}
	oldFile.Close()

	newFile, err := os.CreateTemp(tmpDir, "media_67890_*")
	if err != nil {
		t.Fatalf("Failed to create new file: %v", err)
	}
	newFile.Close()

	// Make old file actually old by modifying its timestamp
	oldTime := time.Now().Add(-25 * time.Hour) // 25 hours ago
	_ = os.Chtimes(oldFile.Name(), oldTime, oldTime)

	// Clean up files older than 24 hours
	if err := CleanupOldTempFiles(tmpDir, 24*time.Hour); err != nil {
		t.Errorf("CleanupOldTempFiles failed: %v", err)
	}

	// Old file should be gone
	if _, err := os.Stat(oldFile.Name()); !os.IsNotExist(err) {
		t.Error("Old file should have been cleaned up")
	}

	// New file should still exist
	if _, err := os.Stat(newFile.Name()); os.IsNotExist(err) {
		t.Error("New file should still exist")
	}
}
