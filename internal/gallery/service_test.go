package gallery

import (
	"context"
	"fmt"
	"testing"

	"github.com/wallstudio/wallpaper-studio/internal/model"
)

// fakeBackend counts calls and returns scripted results.
type fakeBackend struct {
	generateCalls int
	listCalls     int
	getCalls      int

	generateResult *model.Wallpaper
	generateErr    error
	listResult     []*model.Wallpaper
	listErr        error
	getResult      *model.Wallpaper
	getErr         error
}

func (f *fakeBackend) Generate(ctx context.Context, req model.GenerationRequest) (*model.Wallpaper, error) {
	f.generateCalls++
	return f.generateResult, f.generateErr
}

func (f *fakeBackend) List(ctx context.Context) ([]*model.Wallpaper, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResult == nil {
		return []*model.Wallpaper{}, nil
	}
	return f.listResult, nil
}

func (f *fakeBackend) Get(ctx context.Context, id string) (*model.Wallpaper, error) {
	f.getCalls++
	return f.getResult, f.getErr
}

func TestNewService(t *testing.T) {
	backend := &fakeBackend{}
	service := NewService(backend)

	if !service.IsLoading() {
		t.Error("Expected loading to start true before the first gallery load")
	}
	if service.IsGenerating() {
		t.Error("Expected generating to start false")
	}
	if service.Current() != nil {
		t.Error("Expected no current wallpaper initially")
	}
	if wallpapers := service.Wallpapers(); wallpapers == nil || len(wallpapers) != 0 {
		t.Errorf("Expected empty wallpaper slice, got %v", wallpapers)
	}
}

func TestGenerate_EmptyPromptIsNoOp(t *testing.T) {
	backend := &fakeBackend{}
	service := NewService(backend)

	for _, prompt := range []string{"", "   ", "\t\n"} {
		wallpaper, err := service.Generate(context.Background(), prompt, model.StyleNeon)
		if err != nil {
			t.Errorf("Expected no error for prompt '%s', got %v", prompt, err)
		}
		if wallpaper != nil {
			t.Errorf("Expected nil wallpaper for prompt '%s'", prompt)
		}
	}

	if backend.generateCalls != 0 {
		t.Errorf("Expected 0 generate requests, got %d", backend.generateCalls)
	}
	if backend.listCalls != 0 {
		t.Errorf("Expected 0 list requests, got %d", backend.listCalls)
	}
	if service.Current() != nil {
		t.Error("Expected current wallpaper to stay nil")
	}
	if service.IsGenerating() {
		t.Error("Expected generating to stay false")
	}
}

func TestGenerate_SuccessUpdatesCurrentAndReloads(t *testing.T) {
	generated := &model.Wallpaper{ID: "wp-new", Prompt: "sunset over mountains", ImageURL: "https://cdn/x.jpg"}
	backend := &fakeBackend{
		generateResult: generated,
		listResult:     []*model.Wallpaper{generated},
	}
	service := NewService(backend)

	wallpaper, err := service.Generate(context.Background(), "sunset over mountains", model.StyleNeon)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if wallpaper != generated {
		t.Error("Expected returned wallpaper to be the backend payload")
	}

	if backend.generateCalls != 1 {
		t.Errorf("Expected 1 generate request, got %d", backend.generateCalls)
	}
	if backend.listCalls != 1 {
		t.Errorf("Expected exactly 1 list reload after generation, got %d", backend.listCalls)
	}

	if service.Current() != generated {
		t.Error("Expected current wallpaper to equal the response payload")
	}
	if service.IsGenerating() {
		t.Error("Expected generating to end false")
	}
	if len(service.Wallpapers()) != 1 {
		t.Errorf("Expected gallery of 1, got %d", len(service.Wallpapers()))
	}
}

func TestGenerate_FailureLeavesCurrentUntouched(t *testing.T) {
	previous := &model.Wallpaper{ID: "wp-old"}
	backend := &fakeBackend{generateErr: fmt.Errorf("generation service unavailable")}
	service := NewService(backend)
	service.Select(previous)

	_, err := service.Generate(context.Background(), "sunset", model.StyleNone)
	if err == nil {
		t.Fatal("Expected error from failed generation")
	}

	if service.Current() != previous {
		t.Error("Expected current wallpaper to keep its prior value on failure")
	}
	if service.IsGenerating() {
		t.Error("Expected generating to end false after failure")
	}
	if backend.listCalls != 0 {
		t.Errorf("Expected no gallery reload after failed generation, got %d", backend.listCalls)
	}
}

func TestGenerate_GeneratingFlagSpansCall(t *testing.T) {
	backend := &fakeBackend{generateResult: &model.Wallpaper{ID: "wp-1"}}
	service := NewService(backend)

	var sawGenerating bool
	service.SetUpdateCallback(func() {
		if service.IsGenerating() {
			sawGenerating = true
		}
	})

	if _, err := service.Generate(context.Background(), "sunset", model.StyleNone); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !sawGenerating {
		t.Error("Expected generating to be observable as true during the call")
	}
	if service.IsGenerating() {
		t.Error("Expected generating false after completion")
	}
}

func TestLoadWallpapers_ReplacesWholesale(t *testing.T) {
	backend := &fakeBackend{listResult: []*model.Wallpaper{{ID: "a"}, {ID: "b"}}}
	service := NewService(backend)

	if err := service.LoadWallpapers(context.Background()); err != nil {
		t.Fatalf("LoadWallpapers failed: %v", err)
	}
	if len(service.Wallpapers()) != 2 {
		t.Fatalf("Expected 2 wallpapers, got %d", len(service.Wallpapers()))
	}
	if service.IsLoading() {
		t.Error("Expected loading false after first load")
	}

	// A later load replaces, never merges
	backend.listResult = []*model.Wallpaper{{ID: "c"}}
	if err := service.LoadWallpapers(context.Background()); err != nil {
		t.Fatalf("LoadWallpapers failed: %v", err)
	}
	wallpapers := service.Wallpapers()
	if len(wallpapers) != 1 || wallpapers[0].ID != "c" {
		t.Errorf("Expected wholesale replacement with [c], got %v", wallpapers)
	}
}

func TestLoadWallpapers_FailureKeepsPriorValue(t *testing.T) {
	backend := &fakeBackend{listResult: []*model.Wallpaper{{ID: "a"}}}
	service := NewService(backend)

	if err := service.LoadWallpapers(context.Background()); err != nil {
		t.Fatalf("LoadWallpapers failed: %v", err)
	}

	backend.listErr = fmt.Errorf("connection refused")
	if err := service.LoadWallpapers(context.Background()); err == nil {
		t.Fatal("Expected error from failed load")
	}

	if len(service.Wallpapers()) != 1 {
		t.Errorf("Expected prior gallery to survive a failed load, got %d items", len(service.Wallpapers()))
	}
	if service.IsLoading() {
		t.Error("Expected loading false even after a failed load")
	}
}

func TestLoadWallpapers_EmptyBackend(t *testing.T) {
	backend := &fakeBackend{}
	service := NewService(backend)

	if !service.IsLoading() {
		t.Fatal("Expected loading true before first load")
	}
	if err := service.LoadWallpapers(context.Background()); err != nil {
		t.Fatalf("LoadWallpapers failed: %v", err)
	}
	if service.IsLoading() {
		t.Error("Expected loading false after first load")
	}

	wallpapers := service.Wallpapers()
	if wallpapers == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(wallpapers) != 0 {
		t.Errorf("Expected empty gallery, got %d items", len(wallpapers))
	}
}

func TestSelect_NoNetworkCall(t *testing.T) {
	backend := &fakeBackend{}
	service := NewService(backend)

	w := &model.Wallpaper{ID: "wp-7", Prompt: "forest"}
	service.Select(w)

	if service.Current() != w {
		t.Error("Expected selected wallpaper to become current")
	}
	if backend.generateCalls != 0 || backend.listCalls != 0 || backend.getCalls != 0 {
		t.Error("Expected selection to issue zero network calls")
	}
}

func TestRefreshCurrent(t *testing.T) {
	refreshed := &model.Wallpaper{ID: "wp-7", Prompt: "forest", ImageURL: "https://cdn/new.jpg"}
	backend := &fakeBackend{getResult: refreshed}
	service := NewService(backend)

	// Nothing selected: no-op, no request
	if err := service.RefreshCurrent(context.Background()); err != nil {
		t.Fatalf("RefreshCurrent failed: %v", err)
	}
	if backend.getCalls != 0 {
		t.Errorf("Expected 0 get requests with no selection, got %d", backend.getCalls)
	}

	service.Select(&model.Wallpaper{ID: "wp-7", Prompt: "forest"})
	if err := service.RefreshCurrent(context.Background()); err != nil {
		t.Fatalf("RefreshCurrent failed: %v", err)
	}
	if backend.getCalls != 1 {
		t.Errorf("Expected 1 get request, got %d", backend.getCalls)
	}
	if service.Current() != refreshed {
		t.Error("Expected current wallpaper to be replaced by the refreshed entity")
	}
}

// gatedBackend hands each List call a reply channel so a test can overlap
// loads and resolve them in a chosen order.
type gatedBackend struct {
	started chan chan []*model.Wallpaper
}

func (g *gatedBackend) Generate(ctx context.Context, req model.GenerationRequest) (*model.Wallpaper, error) {
	return nil, fmt.Errorf("not scripted")
}

func (g *gatedBackend) List(ctx context.Context) ([]*model.Wallpaper, error) {
	reply := make(chan []*model.Wallpaper)
	g.started <- reply
	return <-reply, nil
}

func (g *gatedBackend) Get(ctx context.Context, id string) (*model.Wallpaper, error) {
	return nil, fmt.Errorf("not scripted")
}

func TestLoadWallpapers_StaleOverlappingLoadIsDiscarded(t *testing.T) {
	backend := &gatedBackend{started: make(chan chan []*model.Wallpaper)}
	service := NewService(backend)

	done := make(chan error, 2)

	// First load starts and parks inside the backend call
	go func() { done <- service.LoadWallpapers(context.Background()) }()
	firstReply := <-backend.started

	// Second load starts while the first is still in flight
	go func() { done <- service.LoadWallpapers(context.Background()) }()
	secondReply := <-backend.started

	// The newer load resolves first with the fresh snapshot
	fresh := []*model.Wallpaper{
		{ID: "wp-2", Prompt: "aurora over fjord"},
		{ID: "wp-1", Prompt: "desert dunes"},
	}
	secondReply <- fresh
	if err := <-done; err != nil {
		t.Fatalf("Second load failed: %v", err)
	}

	if service.IsLoading() {
		t.Error("Expected loading false once the newest load resolved")
	}

	// The older load resolves afterwards with an outdated snapshot
	firstReply <- []*model.Wallpaper{{ID: "wp-1", Prompt: "desert dunes"}}
	if err := <-done; err != nil {
		t.Fatalf("First load failed: %v", err)
	}

	wallpapers := service.Wallpapers()
	if len(wallpapers) != 2 {
		t.Fatalf("Expected the fresh snapshot of 2 wallpapers to survive, got %d", len(wallpapers))
	}
	if wallpapers[0].ID != "wp-2" || wallpapers[1].ID != "wp-1" {
		t.Errorf("Expected [wp-2 wp-1] after the stale load resolved, got [%s %s]",
			wallpapers[0].ID, wallpapers[1].ID)
	}
}
