package referral

import "fmt"

// RepositoryError represents database operation failures
type RepositoryError struct {
	Operation string
	Cause     error
}

func (e RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s: %v", e.Operation, e.Cause)
}

func (e RepositoryError) Unwrap() error {
	return e.Cause
}

// WrapRepositoryError wraps an error as a RepositoryError
func WrapRepositoryError(err error, operation string) error {
	if err == nil {
		return nil
	}
	return RepositoryError{
		Operation: operation,
		Cause:     err,
	}
}
