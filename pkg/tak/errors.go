package tak

import "errors"

// Square parse errors, mirroring the move/TPS error taxonomies below so the
// protocol layer can report the exact failure.
var (
	ErrInvalidSquareLength = errors.New("invalid length of square specifier")
	ErrInvalidSquareFile   = errors.New("invalid file in square specifier")
	ErrInvalidSquareRank   = errors.New("invalid rank in square specifier")
)

// Move parse errors.
var (
	ErrMoveTooShort             = errors.New("move string too short")
	ErrInvalidLiftCount         = errors.New("invalid lift count at start of move")
	ErrInvalidDirection         = errors.New("non-existing or invalid direction in move string")
	ErrInvalidSplat             = errors.New("invalid drop counts in move string")
	ErrInvalidTrailingCharacter = errors.New("invalid or extra trailing characters at end of move string")
)
