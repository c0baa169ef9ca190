package coils

import "errors"

// ErrNilCollaborator is returned when a coil is built without a schedule or capacity curve.
var ErrNilCollaborator = errors.New("collaborator function is nil")
