package service

import "fmt"

// Stage names a step of the pipeline for error reporting.
type Stage string

const (
	StageConfig       Stage = "config"
	StageIdentity     Stage = "identity"
	StageRepositories Stage = "repositories"
	StageHistories    Stage = "histories"
	StageRead         Stage = "read"
	StageWrite        Stage = "write"
)

var exitCodes = map[Stage]int{
	StageConfig:       2,
	StageIdentity:     3,
	StageRepositories: 4,
	StageHistories:    5,
	StageRead:         6,
	StageWrite:        7,
}

// StageError is the failure that ended a run.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ExitCode gives each stage its own process exit status.
func (e *StageError) ExitCode() int {
	if code, ok := exitCodes[e.Stage]; ok {
		return code
	}
	return 1
}
