package github

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyIdentity = errors.New("viewer lookup returned no login")

// GraphQLError carries the messages of a response's errors array.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("graphql: %s", strings.Join(e.Messages, "; "))
}

// ConflictError is returned when the README changed between read and write.
type ConflictError struct {
	Path string
	SHA  string
	Err  error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s was modified since revision %s: %v", e.Path, e.SHA, e.Err)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// HistoryError names the repository whose history lookup failed the batch.
type HistoryError struct {
	Repo string
	Err  error
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("commit history for %s: %v", e.Repo, e.Err)
}

func (e *HistoryError) Unwrap() error {
	return e.Err
}
