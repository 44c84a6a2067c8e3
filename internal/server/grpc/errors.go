package grpc

import (
	"errors"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func kindCode(kind registry.Kind) codes.Code {
	switch kind {
	case registry.KindTokenNotFound:
		return codes.NotFound
	case registry.KindNotTokenOwner:
		return codes.PermissionDenied
	case registry.KindTokenAlreadyExists:
		return codes.AlreadyExists
	case registry.KindTokenIDOverflow:
		return codes.ResourceExhausted
	}
	return codes.Internal
}

func withReason(code codes.Code, msg, reason string, md map[string]string) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   common.ErrorDomain,
		Metadata: md,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// toStatus turns a service error into a gRPC status. Unknown errors become
// Internal without leaking their text.
func toStatus(err error) error {
	var re *registry.Error
	if errors.As(err, &re) {
		return withReason(kindCode(re.Kind), re.Error(), string(re.Kind),
			map[string]string{"token_id": re.TokenID.String()})
	}

	switch {
	case errors.Is(err, common.ErrorInvalidArgument):
		return withReason(codes.InvalidArgument, err.Error(), common.ReasonInvalidArgument, nil)
	case errors.Is(err, common.ErrUserAlreadyExists):
		return withReason(codes.AlreadyExists, "user already exists", common.ReasonUserAlreadyExists, nil)
	case errors.Is(err, common.ErrorNotFound):
		return withReason(codes.NotFound, "user not found", common.ReasonUserNotFound, nil)
	case errors.Is(err, common.ErrUsernameMismatch):
		return withReason(codes.PermissionDenied, "username does not match", common.ReasonUsernameMismatch, nil)
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return withReason(codes.Unauthenticated, "refresh token expired", common.ReasonRefreshTokenExpired, nil)
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "invalid token")
	}
	return status.Error(codes.Internal, "internal error")
}
