package grpc

import (
	"context"
	"strings"

	pb "github.com/dmitrijs2005/tokenkeeper/internal/proto"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) fail(ctx context.Context, method string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, method+" failed", "error", err)
	}
	return st
}

func (s *GRPCServer) caller(ctx context.Context) (registry.Identity, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	u, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "username", u.UserName)
	return &pb.RegisterUserResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "login", err)
	}
	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.fail(ctx, "refresh token", err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) ResolveUser(ctx context.Context, req *pb.ResolveUserRequest) (*pb.ResolveUserResponse, error) {
	id, err := s.users.ResolveUser(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, s.fail(ctx, "resolve user", err)
	}
	return &pb.ResolveUserResponse{UserId: id}, nil
}

func (s *GRPCServer) Mint(ctx context.Context, req *pb.MintRequest) (*pb.MintResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.tokens.Mint(ctx, caller, req.Username, req.Item)
	if err != nil {
		return nil, s.fail(ctx, "mint", err)
	}
	return &pb.MintResponse{TokenId: uint32(id)}, nil
}

func (s *GRPCServer) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.TransferResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.To == "" {
		return nil, status.Error(codes.InvalidArgument, "recipient is required")
	}

	if err := s.tokens.Transfer(ctx, caller, registry.Identity(req.To), registry.TokenID(req.TokenId)); err != nil {
		return nil, s.fail(ctx, "transfer", err)
	}
	return &pb.TransferResponse{}, nil
}

func (s *GRPCServer) GetToken(ctx context.Context, req *pb.GetTokenRequest) (*pb.GetTokenResponse, error) {
	rec, ok, err := s.tokens.Get(ctx, registry.TokenID(req.TokenId))
	if err != nil {
		return nil, s.fail(ctx, "get token", err)
	}
	if !ok {
		return &pb.GetTokenResponse{Found: false}, nil
	}
	return &pb.GetTokenResponse{Found: true, Username: rec.Username, Item: rec.Item}, nil
}

func (s *GRPCServer) UpdateUsername(ctx context.Context, req *pb.UpdateUsernameRequest) (*pb.UpdateUsernameResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.UpdateUsername(ctx, caller, registry.TokenID(req.TokenId), req.Username); err != nil {
		return nil, s.fail(ctx, "update username", err)
	}
	return &pb.UpdateUsernameResponse{}, nil
}

func (s *GRPCServer) VerifyUsername(ctx context.Context, req *pb.VerifyUsernameRequest) (*pb.VerifyUsernameResponse, error) {
	if req.Username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	item, err := s.tokens.VerifyUsername(ctx, registry.TokenID(req.TokenId), req.Username)
	if err != nil {
		return nil, s.fail(ctx, "verify username", err)
	}
	return &pb.VerifyUsernameResponse{Item: item}, nil
}

func (s *GRPCServer) History(ctx context.Context, req *pb.HistoryRequest) (*pb.HistoryResponse, error) {
	log, err := s.tokens.History(ctx, registry.TokenID(req.TokenId))
	if err != nil {
		return nil, s.fail(ctx, "history", err)
	}

	resp := &pb.HistoryResponse{Entries: make([]*pb.TransferEntry, 0, len(log))}
	for _, t := range log {
		resp.Entries = append(resp.Entries, &pb.TransferEntry{From: t.FromOwner, To: t.ToOwner, At: timestamppb.New(t.CreatedAt)})
	}
	return resp, nil
}
