package grpc

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// NewServer 建立 grpc.Server，掛上 logging interceptor 並註冊 LedgerService
func NewServer(core *usecase.CoreUseCase, logger *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(LoggingInterceptor(logger))}, opts...)
	s := grpc.NewServer(opts...)
	RegisterLedgerServiceServer(s, NewGrpcServer(core))
	return s
}

type GrpcServer struct {
	core *usecase.CoreUseCase
}

func NewGrpcServer(core *usecase.CoreUseCase) *GrpcServer {
	return &GrpcServer{
		core: core,
	}
}

func (s *GrpcServer) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*Account, error) {
	state, err := s.core.CreateAccount(ctx, req.Name, req.Amount)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAccount(state), nil
}

func (s *GrpcServer) GetAccount(ctx context.Context, req *GetAccountRequest) (*Account, error) {
	state, err := s.core.GetAccount(ctx, req.AccountID)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAccount(state), nil
}

func (s *GrpcServer) ListAccounts(ctx context.Context, _ *ListAccountsRequest) (*ListAccountsResponse, error) {
	states, err := s.core.ListAccounts(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &ListAccountsResponse{Accounts: make([]*Account, 0, len(states))}
	for _, state := range states {
		resp.Accounts = append(resp.Accounts, toAccount(state))
	}
	return resp, nil
}

func (s *GrpcServer) Deposit(ctx context.Context, req *AmountRequest) (*Account, error) {
	state, err := s.core.Deposit(ctx, req.AccountID, req.Amount)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAccount(state), nil
}

func (s *GrpcServer) Withdraw(ctx context.Context, req *AmountRequest) (*Account, error) {
	state, err := s.core.Withdraw(ctx, req.AccountID, req.Amount)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAccount(state), nil
}

// Transfer 轉帳，回傳轉出帳戶的最新餘額
func (s *GrpcServer) Transfer(ctx context.Context, req *TransferRequest) (*Account, error) {
	state, err := s.core.Transfer(ctx, req.FromAccountID, req.ToAccountID, req.Amount)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAccount(state), nil
}

func toAccount(state domain.AccountState) *Account {
	return &Account{
		ID:     state.ID,
		Name:   state.Name,
		Amount: state.Balance,
	}
}

// toStatus 將業務錯誤轉成 gRPC status
func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTransfer):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

var _ LedgerServiceServer = (*GrpcServer)(nil)
