package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadSheet(t *testing.T) {
	t.Parallel()

	t.Run("default sheet loads", func(t *testing.T) {
		t.Parallel()

		content, err := LoadSheet(DefaultSheetName)
		if err != nil {
			t.Fatalf("LoadSheet(%q) error = %v", DefaultSheetName, err)
		}
		if !strings.HasPrefix(content, "// Constructing leaf futures\n") {
			t.Errorf("sheet does not start with the leaf futures comment:\n%s", content[:60])
		}
		if !strings.HasSuffix(content, "\n") {
			t.Error("sheet must end with a newline")
		}
	})

	t.Run("unknown sheet", func(t *testing.T) {
		t.Parallel()

		_, err := LoadSheet("nonexistent")
		if !errors.Is(err, ErrSheetNotFound) {
			t.Errorf("LoadSheet(nonexistent) error = %v, want ErrSheetNotFound", err)
		}
	})
}

func TestDefaultSheet(t *testing.T) {
	t.Parallel()

	content := DefaultSheet()

	// Spot-check a few combinator families the sheet must cover.
	for _, want := range []string{
		"fn empty ()",
		"fn Future::map ",
		"fn join_all",
		"fn Future::wait",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("default sheet missing %q", want)
		}
	}
}

func TestValidateSheetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid name", input: "futures", wantErr: false},
		{name: "hyphenated name", input: "my-sheet", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "path separator", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
		{name: "parent traversal", input: "..futures", wantErr: true},
		{name: "null byte", input: "a\x00b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateSheetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSheetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSheetName) {
				t.Errorf("error = %v, want ErrInvalidSheetName", err)
			}
		})
	}
}
