// Package config loads and validates maze generator configuration files.
//
// The config package handles:
//   - Parsing the plain-text key/value configuration format
//   - Type coercion for dimensions and coordinates
//   - Whole-record validation with deterministic error ordering
//   - Raw, untyped access to a file's key/value pairs
//
// Configuration Format:
//
// Configuration files are line-oriented plain text. Each data line is a
// "key = value" or "key: value" pair; blank lines and lines starting
// with '#' are skipped, and a '#' inside a value starts a trailing
// comment. Recognized keys:
//   - width, height: maze dimensions in cells (1 to 1000)
//   - entry, exit: "x,y" cell coordinates, 0-indexed, inside the grid
//   - output_file: where the generator should write the maze
//   - algorithm: generation strategy name (defaults to
//     recursive_backtracking)
//
// Unknown keys are ignored and a repeated key keeps its last value, so
// files can carry settings for other tools alongside the maze keys.
//
// Usage:
//
//	cfg, err := config.Load("maze.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(cfg.Width, cfg.Height, cfg.Algorithm)
//
// Errors:
//
// Load fails on the first violated rule. The returned error wraps one of
// the package's sentinel kinds, so callers can branch on the failure
// class:
//
//	if errors.Is(err, config.ErrInvalidCoordinates) { ... }
//
// Validation:
//
// All records are validated for:
//   - Presence of width, height, entry, exit, and output_file
//   - Positive dimensions no larger than MaxDimension
//   - Entry and exit inside the grid and distinct from each other
//
// The algorithm name is passed through unvalidated; the generator decides
// whether it recognizes the strategy.
package config
