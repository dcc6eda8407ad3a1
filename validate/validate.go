// Command validate provides a small CLI that validates maze configuration
// files in a directory (default "configs"). For each *.txt file it runs
// the full loader and prints a concise per-file report, exiting with
// non-zero status if any file is invalid.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amazeing/amazeing/maze/config"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// holds the validation error that was found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads a single maze configuration file and summarizes
// the outcome.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	cfg, err := config.Load(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", classify(err), err))
		return result
	}

	// Add informational data
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", cfg.Width, cfg.Height))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Entry: (%d, %d)", cfg.Entry.X, cfg.Entry.Y))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Exit: (%d, %d)", cfg.Exit.X, cfg.Exit.Y))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Output: %s", cfg.OutputFile))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Algorithm: %s", cfg.Algorithm))

	return result
}

// classify names the failure class of a loader error for the report.
func classify(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigAccess):
		return "Access error"
	case errors.Is(err, config.ErrInvalidLine):
		return "Format error"
	case errors.Is(err, config.ErrInvalidDimensions):
		return "Dimension error"
	case errors.Is(err, config.ErrInvalidCoordinates):
		return "Coordinate error"
	default:
		return "Error"
	}
}

// main scans the config directory for *.txt files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid.
func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.txt"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Println("  ❌ " + err)
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
