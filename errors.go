package genealogy

import "errors"

// Sentinel errors for common failure cases. All errors returned by the
// container wrap one of these and can be checked with errors.Is().
var (
	ErrNotFound      = errors.New("id not found")
	ErrAlreadyExists = errors.New("id already exists")
	ErrStemRemoval   = errors.New("stem node cannot be removed")
	ErrMaterialize   = errors.New("payload materialization failed")
	ErrCyclic        = errors.New("cycle detected")
	ErrUnreachable   = errors.New("node unreachable from stem")
)
