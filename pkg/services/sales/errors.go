package sales

import "fmt"

// InvalidInputError reports a dataset that is missing, malformed or empty.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input data: %s", e.Reason)
}

// MissingPolicyError reports a calculation policy that was not supplied.
type MissingPolicyError struct {
	Policy string
}

func (e *MissingPolicyError) Error() string {
	return fmt.Sprintf("missing calculation policy: %s", e.Policy)
}
