package validate

import "fmt"

// UnsupportedSchemaVersionError is returned when the devfile schemaVersion is missing, invalid or not a 2.x version
type UnsupportedSchemaVersionError struct {
	schemaVersion string
	reason        string
}

func NewUnsupportedSchemaVersionError(schemaVersion string, reason string) UnsupportedSchemaVersionError {
	return UnsupportedSchemaVersionError{
		schemaVersion: schemaVersion,
		reason:        reason,
	}
}

func (e UnsupportedSchemaVersionError) Error() string {
	return fmt.Sprintf("unsupported devfile schemaVersion %q: %s", e.schemaVersion, e.reason)
}

// InvalidResourceError is returned when a container resource is not a valid Kubernetes quantity
type InvalidResourceError struct {
	component string
	field     string
	value     string
	err       error
}

func NewInvalidResourceError(component, field, value string, err error) InvalidResourceError {
	return InvalidResourceError{
		component: component,
		field:     field,
		value:     value,
		err:       err,
	}
}

func (e InvalidResourceError) Error() string {
	return fmt.Sprintf("invalid %s %q for component %q: %v", e.field, e.value, e.component, e.err)
}

func (e InvalidResourceError) Unwrap() error {
	return e.err
}
