package cli

import (
	"errors"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/client"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
)

// describe turns an error into a line for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, registry.ErrTokenNotFound):
		return "no such token"
	case errors.Is(err, registry.ErrNotTokenOwner):
		return "you do not own this token"
	case errors.Is(err, registry.ErrTokenIDOverflow):
		return "no token ids left"
	case errors.Is(err, registry.ErrTokenAlreadyExists):
		return "token already exists"
	case errors.Is(err, common.ErrUserAlreadyExists):
		return "username is taken"
	case errors.Is(err, common.ErrorNotFound):
		return "no such user"
	case errors.Is(err, common.ErrUsernameMismatch):
		return "username does not match"
	case errors.Is(err, common.ErrRefreshTokenExpired), errors.Is(err, client.ErrUnauthorized):
		return "not authorized, please log in"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	}
	return err.Error()
}
