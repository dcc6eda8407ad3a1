package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// configEntry accumulates fields while the file is being scanned. Pointer
// fields stay nil until a line assigns them; nothing is validated until
// the whole file has been consumed.
type configEntry struct {
	width      *int
	height     *int
	entry      *Position
	exit       *Position
	outputFile *string
	algorithm  string
}

// Load reads and validates a maze configuration file.
//
// The file is plain text with one "key = value" or "key: value" pair per
// line. Blank lines and lines starting with '#' are skipped, and a '#'
// inside a value starts a trailing comment. Keys are case-insensitive;
// unknown keys are ignored, and when a key repeats the last occurrence
// wins. Errors are classified by kind (ErrConfigAccess, ErrInvalidLine,
// ErrInvalidDimensions, ErrInvalidCoordinates) and the first violation
// aborts the load.
func Load(path string) (*MazeConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: Config file '%s' not found", ErrConfigAccess, path)
		}
		return nil, fmt.Errorf("%w: failed to read config file '%s': %v", ErrConfigAccess, path, err)
	}
	defer f.Close()

	entry := configEntry{algorithm: DefaultAlgorithm}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, err := parseLine(line)
		if err != nil {
			return nil, err
		}

		if err := entry.set(key, value); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read config file '%s': %v", ErrConfigAccess, path, err)
	}

	return entry.validate()
}

// parseLine splits a data line into a normalized key/value pair. The
// separator is the first '=', or the first ':' when the line has no '='.
// The key is trimmed and lowercased; the value is truncated at the first
// '#' (trailing comment) and trimmed.
func parseLine(line string) (string, string, error) {
	var key, value string
	switch {
	case strings.Contains(line, "="):
		key, value, _ = strings.Cut(line, "=")
	case strings.Contains(line, ":"):
		key, value, _ = strings.Cut(line, ":")
	default:
		return "", "", fmt.Errorf("%w: expected '=' or ':' in line %q", ErrInvalidLine, line)
	}

	key = strings.ToLower(strings.TrimSpace(key))
	if i := strings.Index(value, "#"); i >= 0 {
		value = value[:i]
	}
	return key, strings.TrimSpace(value), nil
}

// set assigns one field from a key/value pair, coercing the value as the
// key requires. Unrecognized keys are ignored so config files can carry
// settings for other tools.
func (e *configEntry) set(key, value string) error {
	switch key {
	case "width":
		w, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: Width must be an integer", ErrInvalidDimensions)
		}
		e.width = &w
	case "height":
		h, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: Height must be an integer", ErrInvalidDimensions)
		}
		e.height = &h
	case "entry":
		p, err := parseCoords(value)
		if err != nil {
			return fmt.Errorf("%w: Entry must be in format: x,y", ErrInvalidCoordinates)
		}
		e.entry = p
	case "exit":
		p, err := parseCoords(value)
		if err != nil {
			return fmt.Errorf("%w: Exit must be in format: x,y", ErrInvalidCoordinates)
		}
		e.exit = p
	case "output_file":
		e.outputFile = &value
	case "algorithm":
		e.algorithm = value
	}
	return nil
}

// parseCoords parses "x,y" with optional whitespace around each component.
func parseCoords(value string) (*Position, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected 2 comma-separated components, got %d", len(parts))
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}
	return &Position{X: x, Y: y}, nil
}
