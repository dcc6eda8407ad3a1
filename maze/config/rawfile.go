package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// File is the raw key/value view of a configuration file, before any
// maze-specific interpretation. Keys follow the same tokenizer rules as
// Load (lowercased, comments stripped, last assignment wins), so tools
// built on File see exactly what the loader sees.
type File struct {
	path   string
	values map[string]string
}

// ParseFile tokenizes a configuration file into a File without running
// any maze validation. Format errors (a data line with no separator) are
// still reported.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: Config file '%s' not found", ErrConfigAccess, path)
		}
		return nil, fmt.Errorf("%w: failed to read config file '%s': %v", ErrConfigAccess, path, err)
	}
	defer f.Close()

	file := &File{path: path, values: make(map[string]string)}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		file.values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read config file '%s': %v", ErrConfigAccess, path, err)
	}

	return file, nil
}

// Path returns the path the file was parsed from.
func (f *File) Path() string {
	return f.path
}

// Has reports whether the key was assigned anywhere in the file.
func (f *File) Has(key string) bool {
	_, ok := f.values[strings.ToLower(key)]
	return ok
}

// Keys returns the keys assigned in the file, in no particular order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	return keys
}

// Int returns the value of key parsed as a base-10 integer.
func (f *File) Int(key string) (int, error) {
	raw, ok := f.values[strings.ToLower(key)]
	if !ok {
		return 0, fmt.Errorf("Missing key: %s", key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("Invalid integer for %s: %s", key, raw)
	}
	return n, nil
}

// Bool returns the value of key interpreted as a boolean. Accepted
// values are true/1/yes and false/0/no, case-insensitive.
func (f *File) Bool(key string) (bool, error) {
	raw, ok := f.values[strings.ToLower(key)]
	if !ok {
		return false, fmt.Errorf("Missing key: %s", key)
	}
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("Invalid boolean for %s: %s", key, raw)
	}
}

// Coords returns the value of key parsed as an "x,y" position.
func (f *File) Coords(key string) (Position, error) {
	raw, ok := f.values[strings.ToLower(key)]
	if !ok {
		return Position{}, fmt.Errorf("Missing key: %s", key)
	}
	p, err := parseCoords(raw)
	if err != nil {
		return Position{}, fmt.Errorf("Invalid coordinates for %s: %s", key, raw)
	}
	return *p, nil
}

// String returns the value of key, or fallback when the key is absent.
func (f *File) String(key, fallback string) string {
	if raw, ok := f.values[strings.ToLower(key)]; ok {
		return raw
	}
	return fallback
}
