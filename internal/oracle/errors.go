package oracle

import "fmt"

// TransportError wraps a network-level failure reaching the oracle.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("oracle transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError is a non-2xx reply. Status and raw body are kept for
// diagnostics.
type ServiceError struct {
	Status int
	Body   string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("oracle returned status %d: %s", e.Status, e.Body)
}

// ParseError means the oracle replied 2xx but the body did not have the
// expected choices[0].message.content shape.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("oracle response malformed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
