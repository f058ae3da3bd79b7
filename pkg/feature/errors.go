package feature

import (
	"errors"
	"fmt"
	"strings"
)

// Predefined errors for the feature package.
// Every failure returned by a toggle set wraps exactly one of them.
var (
	// ErrArgument indicates that the features passed to New failed shape validation.
	ErrArgument = errors.New("argument exception")

	// ErrToggleNotDefined indicates that the requested feature toggle was not found.
	ErrToggleNotDefined = errors.New("feature toggle not defined")

	// ErrDependencyNotDefined indicates that a feature requires a dependency nobody has bound.
	ErrDependencyNotDefined = errors.New("dependency not defined")

	// ErrDependencyAlreadyDefined indicates a second binding of the same dependency name.
	ErrDependencyAlreadyDefined = errors.New("dependency already defined")

	// ErrUnexpectedDependencyDefined indicates a binding outside the expected dependencies.
	ErrUnexpectedDependencyDefined = errors.New("unexpected dependency defined")

	// ErrUnexpectedDependenciesRequired indicates features declaring dependencies outside the expected dependencies.
	ErrUnexpectedDependenciesRequired = errors.New("unexpected dependencies required")

	// ErrUnsupportedFilterType indicates a ToJSON filter that is neither a name list nor a predicate.
	ErrUnsupportedFilterType = errors.New("unsupported filter type")

	// ErrInvalidSnapshot indicates a malformed serialized toggle document.
	ErrInvalidSnapshot = errors.New("invalid toggle snapshot")
)

// Error is the error value returned by toggle set operations.
// It carries the failing feature and dependency names so callers can react
// without parsing the message. Use errors.Is against the Err* sentinels to
// check the kind.
type Error struct {
	Kind         error
	Feature      string
	Dependency   string
	Dependencies []string
	msg          string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.Kind }

func errArgument(constraint string) error {
	return &Error{Kind: ErrArgument, msg: "Argument exception: " + constraint}
}

func errToggleNotDefined(name string) error {
	return &Error{
		Kind:    ErrToggleNotDefined,
		Feature: name,
		msg:     fmt.Sprintf("Unable to find feature toggle '%s'. Please ensure that the feature name is spelled correctly.", name),
	}
}

func errDependencyNotDefined(name, dependency string) error {
	return &Error{
		Kind:       ErrDependencyNotDefined,
		Feature:    name,
		Dependency: dependency,
		msg:        fmt.Sprintf("Unable to get feature toggle %s: dependency not defined: '%s'", name, dependency),
	}
}

func errDependencyAlreadyDefined(dependency string) error {
	return &Error{
		Kind:       ErrDependencyAlreadyDefined,
		Dependency: dependency,
		msg:        fmt.Sprintf("Cannot define dependency '%s': dependency has already been defined.", dependency),
	}
}

func errUnexpectedDependencyDefined(dependency string) error {
	return &Error{
		Kind:       ErrUnexpectedDependencyDefined,
		Dependency: dependency,
		msg:        fmt.Sprintf("An unexpected dependency was defined: '%s'", dependency),
	}
}

func errUnexpectedDependenciesRequired(dependencies []string) error {
	return &Error{
		Kind:         ErrUnexpectedDependenciesRequired,
		Dependencies: dependencies,
		msg:          fmt.Sprintf("Unexpected dependencies found in toggles: '%s'", strings.Join(dependencies, "', '")),
	}
}

func errUnsupportedFilterType(filter any) error {
	return &Error{
		Kind: ErrUnsupportedFilterType,
		msg:  fmt.Sprintf("Unsupported whitelist parameter of type %T", filter),
	}
}

func errInvalidSnapshot(reason string) error {
	return errors.Join(ErrInvalidSnapshot, errors.New(reason))
}
