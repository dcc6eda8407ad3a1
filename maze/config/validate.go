package config

import "fmt"

// validate runs the whole-record checks over the accumulated entry and
// produces the final MazeConfig. Checks run in a fixed order so a given
// file always fails with the same error: presence (width, height, entry,
// exit, output_file), positivity, maximum size, coordinate bounds, then
// entry/exit distinctness.
func (e *configEntry) validate() (*MazeConfig, error) {
	if e.width == nil {
		return nil, fmt.Errorf("%w: Width not found in config file", ErrInvalidDimensions)
	}
	if e.height == nil {
		return nil, fmt.Errorf("%w: Height not found in config file", ErrInvalidDimensions)
	}
	if e.entry == nil {
		return nil, fmt.Errorf("%w: Entry not found in config file", ErrInvalidCoordinates)
	}
	if e.exit == nil {
		return nil, fmt.Errorf("%w: Exit not found in config file", ErrInvalidCoordinates)
	}
	if e.outputFile == nil {
		return nil, fmt.Errorf("%w: Output file not found in config file", ErrInvalidDimensions)
	}

	width, height := *e.width, *e.height
	if width <= 0 {
		return nil, fmt.Errorf("%w: Width must be positive, got %d", ErrInvalidDimensions, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: Height must be positive, got %d", ErrInvalidDimensions, height)
	}
	if width > MaxDimension {
		return nil, fmt.Errorf("%w: Width too large (max %d), got %d", ErrInvalidDimensions, MaxDimension, width)
	}
	if height > MaxDimension {
		return nil, fmt.Errorf("%w: Height too large (max %d), got %d", ErrInvalidDimensions, MaxDimension, height)
	}

	if err := checkBounds("Entry", *e.entry, width, height); err != nil {
		return nil, err
	}
	if err := checkBounds("Exit", *e.exit, width, height); err != nil {
		return nil, err
	}

	if *e.entry == *e.exit {
		return nil, fmt.Errorf("%w: Entry and exit cannot be the same", ErrInvalidCoordinates)
	}

	return &MazeConfig{
		Width:      width,
		Height:     height,
		Entry:      *e.entry,
		Exit:       *e.exit,
		OutputFile: *e.outputFile,
		Algorithm:  e.algorithm,
	}, nil
}

// checkBounds verifies that a position lies inside the width x height
// grid, reporting the valid bounding box on failure.
func checkBounds(name string, p Position, width, height int) error {
	if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
		return fmt.Errorf("%w: %s (%d, %d) is out of bounds (0-%d, 0-%d)",
			ErrInvalidCoordinates, name, p.X, p.Y, width-1, height-1)
	}
	return nil
}
