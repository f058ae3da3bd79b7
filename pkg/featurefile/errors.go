package featurefile

import "errors"

var (
	// ErrInvalidDocument indicates a feature file that cannot be decoded or is malformed.
	ErrInvalidDocument = errors.New("invalid feature file")

	// ErrCompileExpression indicates a feature expression that does not compile.
	ErrCompileExpression = errors.New("failed to compile feature expression")

	// ErrReadFile indicates the feature file could not be read.
	ErrReadFile = errors.New("failed to read feature file")
)
