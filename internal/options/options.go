// Package options implements generic functional options shared by the
// exported constructors.
package options

// Option configures a target of type T and may reject the configuration.
type Option[T any] func(T) error

// New creates an option from a fallible configuration function.
func New[T any](fn func(T) error) Option[T] {
	return fn
}

// NoError creates an option from a configuration function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies options to a target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
