package manualimport

import "errors"

var (
	// ErrNothingSelected is returned when no file is marked for import.
	ErrNothingSelected = errors.New("no files selected")

	// ErrNoTarget indicates a file has no movie or series episodes chosen.
	ErrNoTarget = errors.New("no import target")

	// ErrRejected indicates the server flagged a file and it was not forced.
	ErrRejected = errors.New("file rejected by server")

	// ErrDuplicateTarget indicates two files would import onto the same item.
	ErrDuplicateTarget = errors.New("duplicate import target")

	// ErrImportMode indicates an import mode other than move or copy.
	ErrImportMode = errors.New("import mode must be move or copy")

	// ErrNoEpisodeMatch indicates a file name carries no usable episode numbers.
	ErrNoEpisodeMatch = errors.New("no matching episode")
)
