package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	pb "github.com/dmitrijs2005/tokenkeeper/internal/proto"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	UserIDKey    ctxKey = "userID"
	RequestIDKey ctxKey = "requestID"
)

// guardedMethods need a valid access token.
var guardedMethods = map[string]struct{}{
	pb.TokenRegistry_Mint_FullMethodName:           {},
	pb.TokenRegistry_Transfer_FullMethodName:       {},
	pb.TokenRegistry_UpdateUsername_FullMethodName: {},
	pb.TokenRegistry_ResolveUser_FullMethodName:    {},
}

// UserIDFromContext returns the caller identity set by the access token
// interceptor.
func UserIDFromContext(ctx context.Context) (registry.Identity, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return registry.Identity(id), true
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := guardedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	accessToken := firstMetadata(ctx, common.AccessTokenHeaderName)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, UserIDKey, userID), req)
}

// loggingInterceptor tags every call with a request id, taken from the
// caller's x-request-id header when present, and logs its outcome.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requestID := firstMetadata(ctx, common.RequestIDHeaderName)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	args := []any{
		"method", info.FullMethod,
		"request_id", requestID,
		"code", code.String(),
		"duration", time.Since(start),
	}
	switch code {
	case codes.OK:
		s.logger.Info(ctx, "grpc call", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "grpc call", append(args, "error", err)...)
	default:
		s.logger.Warn(ctx, "grpc call", append(args, "error", err)...)
	}

	return resp, err
}
