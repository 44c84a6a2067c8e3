package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	pb "github.com/dmitrijs2005/tokenkeeper/internal/proto"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	pb.TokenRegistryClient

	lastRefreshTokenReq *pb.RefreshTokenRequest
	lastLoginReq        *pb.LoginRequest
	lastMintReq         *pb.MintRequest
	lastTransferReq     *pb.TransferRequest

	refreshTokenResp *pb.RefreshTokenResponse
	refreshTokenErr  error

	pingResp *pb.PingResponse
	pingErr  error

	loginResp *pb.LoginResponse
	loginErr  error

	mintResp *pb.MintResponse
	mintErr  error

	transferErr error

	getResp *pb.GetTokenResponse
	getErr  error

	historyResp *pb.HistoryResponse
	historyErr  error
}

func (f *fakePB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	f.lastRefreshTokenReq = in
	return f.refreshTokenResp, f.refreshTokenErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}
func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakePB) Mint(ctx context.Context, in *pb.MintRequest, opts ...grpc.CallOption) (*pb.MintResponse, error) {
	f.lastMintReq = in
	return f.mintResp, f.mintErr
}
func (f *fakePB) Transfer(ctx context.Context, in *pb.TransferRequest, opts ...grpc.CallOption) (*pb.TransferResponse, error) {
	f.lastTransferReq = in
	return &pb.TransferResponse{}, f.transferErr
}
func (f *fakePB) GetToken(ctx context.Context, in *pb.GetTokenRequest, opts ...grpc.CallOption) (*pb.GetTokenResponse, error) {
	return f.getResp, f.getErr
}
func (f *fakePB) History(ctx context.Context, in *pb.HistoryRequest, opts ...grpc.CallOption) (*pb.HistoryResponse, error) {
	return f.historyResp, f.historyErr
}

func withInfo(code codes.Code, reason string, md map[string]string) error {
	st, _ := status.New(code, "x").WithDetails(&errdetails.ErrorInfo{
		Reason: reason, Domain: common.ErrorDomain, Metadata: md,
	})
	return st.Err()
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakePB{
		refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"},
	}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)

		if callCount == 1 {
			require.Equal(t, "A1", toks[0])
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		require.Equal(t, "A2", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)
	require.Equal(t, "A2", c.accessToken)
	require.Equal(t, "R2", c.refreshToken)
	require.Equal(t, "R1", f.lastRefreshTokenReq.RefreshToken)
}

func TestInterceptor_NoRefreshIfNoRefreshToken(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, accessToken: "A1"}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshTokenReq)
}

func TestInterceptor_OtherErrorsPassThrough(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	for _, want := range []error{
		status.Error(codes.Unauthenticated, "invalid token"),
		status.Error(codes.NotFound, "nope"),
		errors.New("plain"),
	} {
		calls := 0
		invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			calls++
			return want
		}
		err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
		assert.Equal(t, want, err)
		assert.Equal(t, 1, calls)
	}
	assert.Nil(t, f.lastRefreshTokenReq)
}

func TestInterceptor_RefreshFailureIsReturned(t *testing.T) {
	f := &fakePB{refreshTokenErr: status.Error(codes.Unauthenticated, "refresh token expired")}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	assert.Equal(t, "A1", c.accessToken)
}

func TestInterceptor_LoggedOutSendsNoToken(t *testing.T) {
	c := &GRPCClient{client: &fakePB{}}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		assert.Empty(t, md.Get(common.AccessTokenHeaderName))
		return nil
	}
	require.NoError(t, c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
}

/*************
 * error mapping
 *************/

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"registry not found", withInfo(codes.NotFound, string(registry.KindTokenNotFound), map[string]string{"token_id": "7"}), registry.ErrTokenNotFound},
		{"registry not owner", withInfo(codes.PermissionDenied, string(registry.KindNotTokenOwner), nil), registry.ErrNotTokenOwner},
		{"registry overflow", withInfo(codes.ResourceExhausted, string(registry.KindTokenIDOverflow), nil), registry.ErrTokenIDOverflow},
		{"registry exists", withInfo(codes.AlreadyExists, string(registry.KindTokenAlreadyExists), nil), registry.ErrTokenAlreadyExists},
		{"user exists", withInfo(codes.AlreadyExists, common.ReasonUserAlreadyExists, nil), common.ErrUserAlreadyExists},
		{"user not found", withInfo(codes.NotFound, common.ReasonUserNotFound, nil), common.ErrorNotFound},
		{"username mismatch", withInfo(codes.PermissionDenied, common.ReasonUsernameMismatch, nil), common.ErrUsernameMismatch},
		{"refresh expired", withInfo(codes.Unauthenticated, common.ReasonRefreshTokenExpired, nil), common.ErrRefreshTokenExpired},
		{"unauthenticated", status.Error(codes.Unauthenticated, "missing token"), ErrUnauthorized},
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
		{"invalid argument", status.Error(codes.InvalidArgument, "recipient is required"), common.ErrorInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapError(nil))
}

func TestMapError_KeepsTokenID(t *testing.T) {
	err := mapError(withInfo(codes.NotFound, string(registry.KindTokenNotFound), map[string]string{"token_id": "7"}))

	var re *registry.Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, registry.TokenID(7), re.TokenID)
}

func TestMapError_Internal(t *testing.T) {
	in := status.Error(codes.Internal, "internal error")
	err := mapError(in)
	assert.ErrorIs(t, err, in)
	assert.Contains(t, err.Error(), "rpc error")
}

/*************
 * methods
 *************/

func TestPing(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}}
	require.NoError(t, c.Ping(context.Background()))

	c = &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "DOWN"}}}
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c = &GRPCClient{client: &fakePB{pingErr: status.Error(codes.Unavailable, "x")}}
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestLoginLogout(t *testing.T) {
	f := &fakePB{loginResp: &pb.LoginResponse{AccessToken: "A", RefreshToken: "R"}}
	c := &GRPCClient{client: f}

	require.False(t, c.LoggedIn())
	require.NoError(t, c.Login(context.Background(), "alice", "pw"))
	assert.Equal(t, "alice", f.lastLoginReq.Username)
	assert.True(t, c.LoggedIn())
	assert.Equal(t, "R", c.refreshToken)

	c.Logout()
	assert.False(t, c.LoggedIn())

	f.loginErr = status.Error(codes.Unauthenticated, "unauthorized")
	assert.ErrorIs(t, c.Login(context.Background(), "alice", "bad"), ErrUnauthorized)
	assert.False(t, c.LoggedIn())
}

func TestMintAndTransfer(t *testing.T) {
	f := &fakePB{mintResp: &pb.MintResponse{TokenId: 4}}
	c := &GRPCClient{client: f}

	id, err := c.Mint(context.Background(), "Alice", "Sword")
	require.NoError(t, err)
	assert.Equal(t, registry.TokenID(4), id)
	assert.True(t, proto.Equal(&pb.MintRequest{Username: "Alice", Item: "Sword"}, f.lastMintReq))

	require.NoError(t, c.Transfer(context.Background(), "id-bob", 4))
	assert.True(t, proto.Equal(&pb.TransferRequest{To: "id-bob", TokenId: 4}, f.lastTransferReq))

	f.transferErr = withInfo(codes.PermissionDenied, string(registry.KindNotTokenOwner), map[string]string{"token_id": "4"})
	assert.ErrorIs(t, c.Transfer(context.Background(), "id-bob", 4), registry.ErrNotTokenOwner)
}

func TestGetToken(t *testing.T) {
	c := &GRPCClient{client: &fakePB{getResp: &pb.GetTokenResponse{Found: false}}}
	rec, ok, err := c.GetToken(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, registry.Record{}, rec)

	c = &GRPCClient{client: &fakePB{getResp: &pb.GetTokenResponse{Found: true, Username: "Alice", Item: "Sword"}}}
	rec, ok, err = c.GetToken(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, registry.Record{Username: "Alice", Item: "Sword"}, rec)
}

func TestHistory(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	from := "id-alice"
	c := &GRPCClient{client: &fakePB{historyResp: &pb.HistoryResponse{Entries: []*pb.TransferEntry{
		{To: "id-alice", At: timestamppb.New(at)},
		{From: &from, To: "id-bob", At: timestamppb.New(at)},
	}}}}

	h, err := c.History(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Nil(t, h[0].From)
	assert.Equal(t, registry.Identity("id-alice"), *h[1].From)
	assert.Equal(t, registry.Identity("id-bob"), h[1].To)
	assert.Equal(t, at, h[1].At)
}
