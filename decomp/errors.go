package decomp

import "errors"

var (
	// ErrSiteCountMismatch indicates the number of sites doesn't match the number of cells.
	ErrSiteCountMismatch = errors.New("decomp: site count does not match cell count")
	// ErrDuplicateSite indicates two cells were bound to the same (or near-identical) site.
	ErrDuplicateSite = errors.New("decomp: sites must be pairwise distinct")
	// ErrAreaMismatch indicates the cells' total area does not match the workspace area.
	ErrAreaMismatch = errors.New("decomp: cell areas do not sum to the workspace area")
	// ErrOverlappingCells indicates two cells' interiors overlap.
	ErrOverlappingCells = errors.New("decomp: cell interiors overlap")
	// ErrUnknownCell indicates an operation referenced a cell id that doesn't exist.
	ErrUnknownCell = errors.New("decomp: unknown cell id")
	// ErrInvalidCell indicates a replacement polygon failed validation.
	ErrInvalidCell = errors.New("decomp: replacement polygon is invalid or empty")
)
