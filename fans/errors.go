package fans

import (
	"errors"

	"energy_models/curves"
)

var (
	ErrNoEquilibriumInRange = errors.New("no fan-system equilibrium in flow range")
	ErrSolverDidNotConverge = errors.New("fan flow solver did not converge")
	ErrInvalidBracket       = errors.New("invalid flow bracket")
	ErrNilCollaborator      = errors.New("collaborator function is nil")

	// ErrDivisionByZero is the same value as curves.ErrDivisionByZero.
	ErrDivisionByZero = curves.ErrDivisionByZero
)
