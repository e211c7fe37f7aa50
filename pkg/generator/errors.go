package generator

import (
	"errors"
	"fmt"
)

var (
	ErrContractMissing = errors.New("contract file not found")
	ErrLaunchFailed    = errors.New("failed to launch generator")
	ErrGeneratorFailed = errors.New("generator failed")
)

// ExitError reports a generator process that ran and exited non-zero
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("generator exited with code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrGeneratorFailed) hold for every ExitError
func (e *ExitError) Is(target error) bool {
	return target == ErrGeneratorFailed
}
