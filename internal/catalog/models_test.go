package catalog

import (
	"testing"
)

func TestAssetHasFallback(t *testing.T) {
	tests := []struct {
		name  string
		asset Asset
		want  bool
	}{
		{
			name:  "with fallback ref",
			asset: Asset{FallbackRef: "/photos/fallback/a.jpg"},
			want:  true,
		},
		{
			name:  "without fallback ref",
			asset: Asset{},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.asset.HasFallback(); got != tt.want {
				t.Errorf("HasFallback() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssetValidate(t *testing.T) {
	valid := Asset{
		ID:         1,
		Filename:   "a.jpg",
		Width:      4000,
		Height:     3000,
		PrimaryRef: "/photos/originals/a.jpg",
	}

	tests := []struct {
		name    string
		mutate  func(a *Asset)
		wantErr bool
	}{
		{"valid asset", func(*Asset) {}, false},
		{"missing filename", func(a *Asset) { a.Filename = "" }, true},
		{"missing primary ref", func(a *Asset) { a.PrimaryRef = "" }, true},
		{"zero width", func(a *Asset) { a.Width = 0 }, true},
		{"zero height", func(a *Asset) { a.Height = 0 }, true},
		{"negative width", func(a *Asset) { a.Width = -1 }, true},
		{"fallback ref optional", func(a *Asset) { a.FallbackRef = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := valid
			tt.mutate(&asset)

			err := asset.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeriveFallbackRef(t *testing.T) {
	tests := []struct {
		name       string
		primaryRef string
		want       string
		wantOK     bool
	}{
		{
			name:       "simple originals path",
			primaryRef: "/photos/originals/a.heic",
			want:       "/photos/fallback/a.heic",
			wantOK:     true,
		},
		{
			name:       "nested under originals",
			primaryRef: "/photos/originals/2024/trip/a.heic",
			want:       "/photos/fallback/2024/trip/a.heic",
			wantOK:     true,
		},
		{
			name:       "no originals segment",
			primaryRef: "/photos/archive/a.heic",
			want:       "",
			wantOK:     false,
		},
		{
			name:       "originals as substring does not match",
			primaryRef: "/photos/originals-2024/a.heic",
			want:       "",
			wantOK:     false,
		},
		{
			name:       "only first originals segment replaced",
			primaryRef: "/photos/originals/originals/a.heic",
			want:       "/photos/fallback/originals/a.heic",
			wantOK:     true,
		},
		{
			name:       "relative path",
			primaryRef: "originals/a.heic",
			want:       "fallback/a.heic",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveFallbackRef(tt.primaryRef)
			if ok != tt.wantOK {
				t.Fatalf("DeriveFallbackRef(%q) ok = %v, want %v", tt.primaryRef, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("DeriveFallbackRef(%q) = %q, want %q", tt.primaryRef, got, tt.want)
			}
		})
	}
}
