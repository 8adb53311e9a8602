package ui

import (
	"errors"
	"testing"

	"ClipForge/internal/domain/model"
)

type mockValidator struct {
	invalid map[string]bool
}

func (m *mockValidator) ValidateDirectoryPath(path string) error {
	if m.invalid[path] {
		return errors.New("無効なディレクトリ")
	}
	return nil
}

type stubSettings struct {
	target string
}

func (s *stubSettings) Snapshot() model.Settings {
	return model.Settings{TargetDirectory: s.target}
}

func TestTargetResolver_ResolveSingleTarget(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		fallback   string
		invalid    map[string]bool
		wantDir    string
		wantOK     bool
	}{
		{
			name:       "設定されたディレクトリが優先される",
			configured: "/data/target",
			fallback:   "/data/fallback",
			wantDir:    "/data/target",
			wantOK:     true,
		},
		{
			name:     "設定がなければ起動時の選択が使われる",
			fallback: "/data/fallback",
			wantDir:  "/data/fallback",
			wantOK:   true,
		},
		{
			name:       "設定されたディレクトリが無効なら決定しない",
			configured: "/data/target",
			fallback:   "/data/fallback",
			invalid:    map[string]bool{"/data/target": true},
			wantOK:     false,
		},
		{
			name:     "候補がなければ決定しない",
			wantOK:   false,
		},
		{
			name:     "起動時の選択が無効なら決定しない",
			fallback: "/data/fallback",
			invalid:  map[string]bool{"/data/fallback": true},
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewTargetResolver(
				&stubSettings{target: tt.configured},
				&mockValidator{invalid: tt.invalid},
				tt.fallback,
			)

			dir, ok := resolver.ResolveSingleTarget()
			if ok != tt.wantOK {
				t.Fatalf("ResolveSingleTarget() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && dir != tt.wantDir {
				t.Errorf("ResolveSingleTarget() dir = %q, want %q", dir, tt.wantDir)
			}
		})
	}
}

func TestDirectorySelector_SelectDirectory(t *testing.T) {
	// dialog.Directory()はモック化が難しいため、
	// 検証付きの組み立てができることのみを確認します
	selector := NewDirectorySelector(&mockValidator{})
	if selector == nil {
		t.Fatal("NewDirectorySelector() = nil")
	}
}
