package action

import "errors"

// Error taxonomy shared by action implementations.
var (
	// ErrInvalidConfiguration indicates an action cannot be compiled into
	// a functor, for example a state toggle with zero states. Fatal to
	// the binding; the host must refuse to activate it.
	ErrInvalidConfiguration = errors.New("invalid action configuration")

	// ErrIndexOutOfRange indicates a mutation addressed a slot outside
	// the configured range. The call is rejected; existing state is
	// untouched.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument indicates a malformed mutation request, such as
	// a resize outside the permitted bounds.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Registry errors.
var (
	// ErrDuplicateTag is returned when two factories register the same tag.
	ErrDuplicateTag = errors.New("action tag already registered")

	// ErrUnknownTag is returned when no factory exists for a tag.
	ErrUnknownTag = errors.New("unknown action tag")

	// ErrNilFactory is returned when a nil factory is registered.
	ErrNilFactory = errors.New("factory cannot be nil")
)
