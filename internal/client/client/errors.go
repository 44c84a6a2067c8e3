package client

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in")
)

// mapError converts a gRPC error into the matching sentinel. ErrorInfo
// reasons win over status codes.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.Domain != common.ErrorDomain {
			continue
		}
		if mapped := fromReason(info); mapped != nil {
			return mapped
		}
	}

	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func fromReason(info *errdetails.ErrorInfo) error {
	if kind := registry.Kind(info.Reason); registry.FromKind(kind) != nil {
		var id registry.TokenID
		if v, err := strconv.ParseUint(info.Metadata["token_id"], 10, 32); err == nil {
			id = registry.TokenID(v)
		}
		return registry.NewError(kind, id)
	}

	switch info.Reason {
	case common.ReasonUserAlreadyExists:
		return common.ErrUserAlreadyExists
	case common.ReasonUserNotFound:
		return common.ErrorNotFound
	case common.ReasonUsernameMismatch:
		return common.ErrUsernameMismatch
	case common.ReasonRefreshTokenExpired:
		return common.ErrRefreshTokenExpired
	case common.ReasonInvalidArgument:
		return common.ErrorInvalidArgument
	}
	return nil
}
