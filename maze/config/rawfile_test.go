package config

import (
	"errors"
	"strings"
	"testing"
)

func parseTestFile(t *testing.T, content string) *File {
	t.Helper()
	file, err := ParseFile(writeConfig(t, content))
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	return file
}

func TestParseFile_Basic(t *testing.T) {
	file := parseTestFile(t, `width = 10
SEED = 42   # kept for other tools
animate: yes
`)

	if !file.Has("width") || !file.Has("seed") || !file.Has("animate") {
		t.Errorf("Expected all assigned keys to be present, got keys %v", file.Keys())
	}
	if file.Has("height") {
		t.Error("Expected unassigned key to be absent")
	}
	if len(file.Keys()) != 3 {
		t.Errorf("Expected 3 keys, got %v", file.Keys())
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile("/non/existent/maze.txt")
	if !errors.Is(err, ErrConfigAccess) {
		t.Errorf("Expected ErrConfigAccess, got: %v", err)
	}
}

func TestParseFile_InvalidLine(t *testing.T) {
	_, err := ParseFile(writeConfig(t, "width = 10\nnoseparator\n"))
	if !errors.Is(err, ErrInvalidLine) {
		t.Errorf("Expected ErrInvalidLine, got: %v", err)
	}
}

func TestFile_Int(t *testing.T) {
	file := parseTestFile(t, "width = 10\nseed = abc\n")

	n, err := file.Int("width")
	if err != nil || n != 10 {
		t.Errorf("Int(width) = %d, %v, want 10, nil", n, err)
	}

	if _, err := file.Int("seed"); err == nil || !strings.Contains(err.Error(), "Invalid integer for seed") {
		t.Errorf("Expected invalid integer error, got: %v", err)
	}

	if _, err := file.Int("missing"); err == nil || !strings.Contains(err.Error(), "Missing key: missing") {
		t.Errorf("Expected missing key error, got: %v", err)
	}
}

func TestFile_Bool(t *testing.T) {
	tests := []struct {
		value   string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"1", true, false},
		{"yes", true, false},
		{"YES", true, false},
		{"false", false, false},
		{"0", false, false},
		{"no", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			file := parseTestFile(t, "animate = "+tt.value+"\n")
			got, err := file.Bool("animate")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Bool error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Bool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestFile_Coords(t *testing.T) {
	file := parseTestFile(t, "entry = 3 , 4\nbad = 1;2\n")

	p, err := file.Coords("entry")
	if err != nil {
		t.Fatalf("Coords(entry) failed: %v", err)
	}
	if p != (Position{X: 3, Y: 4}) {
		t.Errorf("Coords(entry) = (%d, %d), want (3, 4)", p.X, p.Y)
	}

	if _, err := file.Coords("bad"); err == nil || !strings.Contains(err.Error(), "Invalid coordinates for bad") {
		t.Errorf("Expected invalid coordinates error, got: %v", err)
	}
}

func TestFile_String(t *testing.T) {
	file := parseTestFile(t, "algorithm = prim\n")

	if got := file.String("algorithm", "fallback"); got != "prim" {
		t.Errorf("String(algorithm) = %q, want prim", got)
	}
	if got := file.String("missing", "fallback"); got != "fallback" {
		t.Errorf("String(missing) = %q, want fallback", got)
	}
}
