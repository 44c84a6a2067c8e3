package registry

import (
	"errors"
	"fmt"
)

// Kind classifies registry failures.
type Kind string

const (
	KindTokenNotFound      Kind = "TOKEN_NOT_FOUND"
	KindNotTokenOwner      Kind = "NOT_TOKEN_OWNER"
	KindTokenAlreadyExists Kind = "TOKEN_ALREADY_EXISTS"
	KindTokenIDOverflow    Kind = "TOKEN_ID_OVERFLOW"
)

// Error is a registry failure. Errors compare equal under errors.Is when
// their kinds match, so callers test against the Err* values below.
type Error struct {
	Kind    Kind
	TokenID TokenID
}

var (
	// ErrTokenNotFound: the token id has no owner.
	ErrTokenNotFound = &Error{Kind: KindTokenNotFound}
	// ErrNotTokenOwner: the caller does not own an existing token.
	ErrNotTokenOwner = &Error{Kind: KindNotTokenOwner}
	// ErrTokenAlreadyExists: the next id is already taken. Unreachable while
	// the counter is only advanced by Mint.
	ErrTokenAlreadyExists = &Error{Kind: KindTokenAlreadyExists}
	// ErrTokenIDOverflow: the identifier space is exhausted.
	ErrTokenIDOverflow = &Error{Kind: KindTokenIDOverflow}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindTokenNotFound:
		return fmt.Sprintf("token %d not found", e.TokenID)
	case KindNotTokenOwner:
		return fmt.Sprintf("caller is not the owner of token %d", e.TokenID)
	case KindTokenAlreadyExists:
		return fmt.Sprintf("token %d already exists", e.TokenID)
	case KindTokenIDOverflow:
		return "token id overflow"
	default:
		return string(e.Kind)
	}
}

// Is matches by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewError returns an error of kind about token id.
func NewError(kind Kind, id TokenID) *Error {
	return &Error{Kind: kind, TokenID: id}
}

// KindOf returns the kind of a registry error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// FromKind returns the sentinel for kind, or nil for an unknown kind.
func FromKind(kind Kind) *Error {
	switch kind {
	case KindTokenNotFound:
		return ErrTokenNotFound
	case KindNotTokenOwner:
		return ErrNotTokenOwner
	case KindTokenAlreadyExists:
		return ErrTokenAlreadyExists
	case KindTokenIDOverflow:
		return ErrTokenIDOverflow
	}
	return nil
}
