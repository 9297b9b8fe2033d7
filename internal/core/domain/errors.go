package domain

import "errors"

// Domain errors represent detection pipeline failures.
// Detection-related failures never cross the policy boundary; these
// sentinels are matched below it and at the command driver.
var (
	// ErrUnreadableSource indicates the input source could not be opened or
	// read. The command driver reports it per file and moves on.
	ErrUnreadableSource = errors.New("source cannot be read")

	// ErrClassificationUnavailable indicates the external classification
	// engine failed or produced no candidates.
	ErrClassificationUnavailable = errors.New("language classification unavailable")

	// ErrUnsupportedFormat indicates an unknown output format name.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrNoInput indicates the CLI was given no files and stdin is a
	// terminal, leaving nothing to process.
	ErrNoInput = errors.New("no input: provide file paths or pipe text on stdin")
)
