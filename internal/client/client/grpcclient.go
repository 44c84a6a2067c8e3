package client

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	pb "github.com/dmitrijs2005/tokenkeeper/internal/proto"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Client is the API the CLI uses.
type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) error
	Logout()
	LoggedIn() bool
	ResolveUser(ctx context.Context, username string) (registry.Identity, error)
	Mint(ctx context.Context, username, item string) (registry.TokenID, error)
	Transfer(ctx context.Context, to registry.Identity, id registry.TokenID) error
	GetToken(ctx context.Context, id registry.TokenID) (registry.Record, bool, error)
	UpdateUsername(ctx context.Context, id registry.TokenID, username string) error
	VerifyUsername(ctx context.Context, id registry.TokenID, username string) (string, error)
	History(ctx context.Context, id registry.TokenID) ([]HistoryEntry, error)
	Close() error
}

// HistoryEntry is one mint or transfer of a token. From is nil for the mint.
type HistoryEntry struct {
	From *registry.Identity
	To   registry.Identity
	At   time.Time
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.TokenRegistryClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

// accessTokenInterceptor attaches the access token and, when the server
// reports it expired, rotates the token pair and retries once.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func NewTokenKeeperClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewTokenRegistryClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) (string, error) {
	resp, err := s.client.RegisterUser(ctx, &pb.RegisterUserRequest{Username: username, Password: password})
	if err != nil {
		return "", mapError(err)
	}
	return resp.UserId, nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) error {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

// Logout forgets the token pair. The server keeps the refresh token until
// it expires.
func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) LoggedIn() bool {
	access, _ := s.tokens()
	return access != ""
}

func (s *GRPCClient) ResolveUser(ctx context.Context, username string) (registry.Identity, error) {
	resp, err := s.client.ResolveUser(ctx, &pb.ResolveUserRequest{Username: username})
	if err != nil {
		return "", mapError(err)
	}
	return registry.Identity(resp.UserId), nil
}

func (s *GRPCClient) Mint(ctx context.Context, username, item string) (registry.TokenID, error) {
	resp, err := s.client.Mint(ctx, &pb.MintRequest{Username: username, Item: item})
	if err != nil {
		return 0, mapError(err)
	}
	return registry.TokenID(resp.TokenId), nil
}

func (s *GRPCClient) Transfer(ctx context.Context, to registry.Identity, id registry.TokenID) error {
	_, err := s.client.Transfer(ctx, &pb.TransferRequest{To: string(to), TokenId: uint32(id)})
	return mapError(err)
}

func (s *GRPCClient) GetToken(ctx context.Context, id registry.TokenID) (registry.Record, bool, error) {
	resp, err := s.client.GetToken(ctx, &pb.GetTokenRequest{TokenId: uint32(id)})
	if err != nil {
		return registry.Record{}, false, mapError(err)
	}
	if !resp.Found {
		return registry.Record{}, false, nil
	}
	return registry.Record{Username: resp.Username, Item: resp.Item}, true, nil
}

func (s *GRPCClient) UpdateUsername(ctx context.Context, id registry.TokenID, username string) error {
	_, err := s.client.UpdateUsername(ctx, &pb.UpdateUsernameRequest{TokenId: uint32(id), Username: username})
	return mapError(err)
}

func (s *GRPCClient) VerifyUsername(ctx context.Context, id registry.TokenID, username string) (string, error) {
	resp, err := s.client.VerifyUsername(ctx, &pb.VerifyUsernameRequest{TokenId: uint32(id), Username: username})
	if err != nil {
		return "", mapError(err)
	}
	return resp.Item, nil
}

func (s *GRPCClient) History(ctx context.Context, id registry.TokenID) ([]HistoryEntry, error) {
	resp, err := s.client.History(ctx, &pb.HistoryRequest{TokenId: uint32(id)})
	if err != nil {
		return nil, mapError(err)
	}

	out := make([]HistoryEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		h := HistoryEntry{To: registry.Identity(e.To), At: e.GetAt().AsTime()}
		if e.From != nil {
			from := registry.Identity(*e.From)
			h.From = &from
		}
		out = append(out, h)
	}
	return out, nil
}
