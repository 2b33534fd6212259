package rfps

import "errors"

var (
	ErrNotFound                = errors.New("rfp not found")
	ErrInvalidInput            = errors.New("invalid input")
	ErrProposalRequired        = errors.New("a proposal must be generated before running a quality check")
	ErrUnsupportedImportMethod = errors.New("import method not supported")
)
