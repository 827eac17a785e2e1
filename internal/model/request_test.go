package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewGenerationRequest(t *testing.T) {
	req := NewGenerationRequest("  sunset over mountains  ", StyleNeon)

	if req.Prompt != "sunset over mountains" {
		t.Errorf("Expected trimmed prompt 'sunset over mountains', got '%s'", req.Prompt)
	}
	if req.Style != "neon" {
		t.Errorf("Expected style 'neon', got '%s'", req.Style)
	}
	if req.AspectRatio != WallpaperAspectRatio {
		t.Errorf("Expected aspect ratio '%s', got '%s'", WallpaperAspectRatio, req.AspectRatio)
	}
	if req.Megapixels != WallpaperMegapixels {
		t.Errorf("Expected megapixels '%s', got '%s'", WallpaperMegapixels, req.Megapixels)
	}
}

func TestGenerationRequest_IsValid(t *testing.T) {
	tests := []struct {
		prompt   string
		expected bool
	}{
		{"sunset over mountains", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"a", true},
	}

	for _, test := range tests {
		req := NewGenerationRequest(test.prompt, StyleNone)
		if req.IsValid() != test.expected {
			t.Errorf("IsValid() with prompt='%s' = %v, expected %v", test.prompt, req.IsValid(), test.expected)
		}
	}
}

func TestGenerationRequest_StyleOmittedWhenEmpty(t *testing.T) {
	req := NewGenerationRequest("aurora borealis", StyleNone)

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if strings.Contains(string(data), "style") {
		t.Errorf("Expected style to be omitted from payload, got %s", string(data))
	}

	req = NewGenerationRequest("aurora borealis", StyleSpace)
	data, err = json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if !strings.Contains(string(data), `"style":"space"`) {
		t.Errorf("Expected style 'space' in payload, got %s", string(data))
	}
}

func TestStyleFromLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected Style
	}{
		{"Neon", StyleNeon},
		{"Abstract", StyleAbstract},
		{"No style", StyleNone},
		{"does-not-exist", StyleNone},
		{"", StyleNone},
	}

	for _, test := range tests {
		result := StyleFromLabel(test.label)
		if result != test.expected {
			t.Errorf("StyleFromLabel('%s') = '%s', expected '%s'", test.label, result, test.expected)
		}
	}
}

func TestPhoneModelFromLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected PhoneModel
	}{
		{"iPhone", PhoneModelIPhone},
		{"Samsung", PhoneModelSamsung},
		{"unknown", DefaultPhoneModel},
		{"", DefaultPhoneModel},
	}

	for _, test := range tests {
		result := PhoneModelFromLabel(test.label)
		if result != test.expected {
			t.Errorf("PhoneModelFromLabel('%s') = '%s', expected '%s'", test.label, result, test.expected)
		}
	}
}
