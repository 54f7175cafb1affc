package staff

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if err := l.Validate(); err != nil {
		t.Fatalf("default layout is invalid: %v", err)
	}
	if l.Y(13) != 0 || l.Y(0) != 130 || l.Y(8) != 50 {
		t.Fatalf("unexpected vertical mapping: %d %d %d", l.Y(13), l.Y(0), l.Y(8))
	}
	if l.Advance(Whole) != 200 || l.Advance(Half) != 100 || l.Advance(Quarter) != 50 {
		t.Fatalf("unexpected advances")
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(Layout) bool
		wantErr error
	}{
		{
			name:  "empty keeps defaults",
			yaml:  "",
			check: func(l Layout) bool { return l == DefaultLayout() },
		},
		{
			name: "overrides a subset",
			yaml: "stem_length: 35\nquarter_advance: 60\n",
			check: func(l Layout) bool {
				return l.StemLength == 35 && l.QuarterAdvance == 60 && l.HalfAdvance == 100
			},
		},
		{
			name:    "rejects zero spacing",
			yaml:    "line_spacing: 0\n",
			wantErr: ErrInvalidLayout,
		},
		{
			name:    "rejects empty ink",
			yaml:    "ink: \"\"\n",
			wantErr: ErrInvalidLayout,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			l, err := ParseLayout([]byte(tc.yaml))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.check(l) {
				t.Fatalf("unexpected layout %+v", l)
			}
		})
	}

	if _, err := ParseLayout([]byte("line_count: [")); err == nil {
		t.Fatalf("expected malformed YAML to fail")
	}
}

func TestLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("staff_width: 800\nwidth: 820\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.StaffWidth != 800 || l.Width != 820 {
		t.Fatalf("expected overrides to apply, got %+v", l)
	}
	if _, err := LoadLayout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}
