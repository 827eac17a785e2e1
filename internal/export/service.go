package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wallstudio/wallpaper-studio/internal/model"
	"github.com/wallstudio/wallpaper-studio/internal/platform"
)

// Data URI constants
const (
	DataURIPrefix    = "data:"
	DataURISeparator = ";base64,"
)

// Temp file constants
const (
	TempFilePrefix    = ".wallpaper-"
	TempFileExtension = ".tmp"
)

// File permissions for saved wallpapers
const DefaultFilePermissions = 0644

// Service handles saving wallpapers to disk.
type Service struct {
	saveDir    string
	dirMutex   sync.RWMutex
	httpClient *http.Client
}

// NewService creates a new export service writing into saveDir.
func NewService(saveDir string) *Service {
	return &Service{
		saveDir:    saveDir,
		httpClient: &http.Client{},
	}
}

// SetSaveDirectory changes where saved wallpapers are written.
func (s *Service) SetSaveDirectory(dir string) {
	s.dirMutex.Lock()
	s.saveDir = dir
	s.dirMutex.Unlock()
}

// SaveWallpaper fetches the wallpaper's image and writes it to disk as
// wallpaper-<id>.jpg. The image is written to a temp file first and renamed
// into place so a failed fetch never leaves a truncated wallpaper behind.
func (s *Service) SaveWallpaper(ctx context.Context, w *model.Wallpaper) (string, error) {
	if w == nil {
		return "", fmt.Errorf("no wallpaper to save")
	}
	if w.ImageURL == "" {
		return "", fmt.Errorf("wallpaper %s has no image", w.ID)
	}

	s.dirMutex.RLock()
	saveDir := s.saveDir
	s.dirMutex.RUnlock()

	if err := platform.CreateDirectoryIfNotExists(saveDir); err != nil {
		return "", fmt.Errorf("failed to create save directory: %w", err)
	}

	data, err := s.FetchImage(ctx, w.ImageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch wallpaper image: %w", err)
	}

	outputPath := filepath.Join(saveDir, w.GetDownloadFilename())
	tempPath := filepath.Join(saveDir, generateTempName())

	if err := os.WriteFile(tempPath, data, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write wallpaper file: %w", err)
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to finalize wallpaper file: %w", err)
	}

	log.Printf("Saved wallpaper %s to %s (%d bytes)", w.ID, outputPath, len(data))
	return outputPath, nil
}

// FetchImage resolves an image reference into raw bytes. The backend may
// hand out http(s) URLs or inline base64 data URIs; both are supported.
func (s *Service) FetchImage(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" {
		return nil, fmt.Errorf("image reference is empty")
	}

	if strings.HasPrefix(ref, DataURIPrefix) {
		return decodeDataURI(ref)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	return data, nil
}

// decodeDataURI decodes a data:image/...;base64,... reference.
func decodeDataURI(ref string) ([]byte, error) {
	idx := strings.Index(ref, DataURISeparator)
	if idx < 0 {
		return nil, fmt.Errorf("unsupported data URI encoding")
	}

	data, err := base64.StdEncoding.DecodeString(ref[idx+len(DataURISeparator):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}
	return data, nil
}

// generateTempName generates a unique temp filename using UUID v7 so
// concurrent saves never collide.
func generateTempName() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TempFilePrefix+"%d"+TempFileExtension, time.Now().UnixNano())
	}
	return TempFilePrefix + id.String() + TempFileExtension
}
