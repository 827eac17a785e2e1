package gallery

import (
	"context"
	"log"
	"sync"

	"github.com/wallstudio/wallpaper-studio/internal/api"
	"github.com/wallstudio/wallpaper-studio/internal/model"
)

// Service handles generation requests and gallery loads against the backend.
type Service struct {
	backend api.Backend

	stateMutex sync.RWMutex
	wallpapers []*model.Wallpaper
	current    *model.Wallpaper
	generating bool
	loading    bool
	loadSeq    uint64 // discards list results superseded by a newer load

	onUpdate func() // callback for UI updates
}

// NewService creates a new gallery service. The loading flag starts true and
// drops to false after the first LoadWallpapers call resolves, whatever its
// outcome.
func NewService(backend api.Backend) *Service {
	return &Service{
		backend:    backend,
		wallpapers: []*model.Wallpaper{},
		loading:    true,
	}
}

// SetUpdateCallback sets the callback invoked after every state change.
func (s *Service) SetUpdateCallback(callback func()) {
	s.stateMutex.Lock()
	s.onUpdate = callback
	s.stateMutex.Unlock()
}

// Generate issues one generation request and, on success, makes the result
// current and reloads the gallery. Empty prompts are ignored without touching
// any state. The generating flag spans the whole call, gallery reload
// included, and is always cleared last.
func (s *Service) Generate(ctx context.Context, prompt string, style model.Style) (*model.Wallpaper, error) {
	req := model.NewGenerationRequest(prompt, style)
	if !req.IsValid() {
		log.Printf("Ignoring generate request with empty prompt")
		return nil, nil
	}

	s.stateMutex.Lock()
	s.generating = true
	s.stateMutex.Unlock()
	s.notifyUpdate()

	defer func() {
		s.stateMutex.Lock()
		s.generating = false
		s.stateMutex.Unlock()
		s.notifyUpdate()
	}()

	log.Printf("Generating wallpaper: prompt=%q style=%q", req.Prompt, req.Style)

	wallpaper, err := s.backend.Generate(ctx, req)
	if err != nil {
		// Diagnostics only: the current wallpaper keeps its prior value
		log.Printf("Wallpaper generation failed: %v", err)
		return nil, err
	}

	s.stateMutex.Lock()
	s.current = wallpaper
	s.stateMutex.Unlock()
	s.notifyUpdate()

	log.Printf("Wallpaper generated: id=%s", wallpaper.ID)

	// Keep the gallery consistent with the newly created wallpaper. A reload
	// failure is logged inside LoadWallpapers and does not fail the generate.
	if err := s.LoadWallpapers(ctx); err != nil {
		log.Printf("Gallery reload after generation failed: %v", err)
	}

	return wallpaper, nil
}

// LoadWallpapers fetches the backend's wallpaper list and replaces the
// gallery wholesale. On failure the previous collection is kept. The loading
// flag is cleared as the final step either way.
func (s *Service) LoadWallpapers(ctx context.Context) error {
	s.stateMutex.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.stateMutex.Unlock()

	wallpapers, err := s.backend.List(ctx)

	s.stateMutex.Lock()
	if seq == s.loadSeq {
		if err == nil {
			s.wallpapers = wallpapers
		}
		s.loading = false
	}
	s.stateMutex.Unlock()

	if err != nil {
		log.Printf("Failed to load wallpapers: %v", err)
		s.notifyUpdate()
		return err
	}

	log.Printf("Loaded %d wallpapers", len(wallpapers))
	s.notifyUpdate()
	return nil
}

// RefreshCurrent re-fetches the current wallpaper by id. No-op when nothing
// is selected.
func (s *Service) RefreshCurrent(ctx context.Context) error {
	s.stateMutex.RLock()
	current := s.current
	s.stateMutex.RUnlock()

	if current == nil {
		return nil
	}

	wallpaper, err := s.backend.Get(ctx, current.ID)
	if err != nil {
		log.Printf("Failed to refresh wallpaper %s: %v", current.ID, err)
		return err
	}

	s.stateMutex.Lock()
	// Only apply if the selection has not moved on meanwhile
	if s.current != nil && s.current.ID == wallpaper.ID {
		s.current = wallpaper
	}
	s.stateMutex.Unlock()
	s.notifyUpdate()
	return nil
}

// Select makes the given wallpaper the current preview. Pure state change,
// no network call.
func (s *Service) Select(w *model.Wallpaper) {
	s.stateMutex.Lock()
	s.current = w
	s.stateMutex.Unlock()
	s.notifyUpdate()
}

// Current returns the wallpaper shown in the preview, or nil.
func (s *Service) Current() *model.Wallpaper {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return s.current
}

// Wallpapers returns the gallery collection in server order.
func (s *Service) Wallpapers() []*model.Wallpaper {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	wallpapers := make([]*model.Wallpaper, len(s.wallpapers))
	copy(wallpapers, s.wallpapers)
	return wallpapers
}

// IsGenerating reports whether a generate call is in flight.
func (s *Service) IsGenerating() bool {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return s.generating
}

// IsLoading reports whether the first gallery load has not yet resolved.
func (s *Service) IsLoading() bool {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return s.loading
}

// notifyUpdate calls the update callback if set.
func (s *Service) notifyUpdate() {
	s.stateMutex.RLock()
	callback := s.onUpdate
	s.stateMutex.RUnlock()

	if callback != nil {
		callback()
	}
}
