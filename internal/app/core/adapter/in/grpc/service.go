package grpc

import (
	"context"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

// ServiceName gRPC 服務全名
const ServiceName = "ledger.v1.LedgerService"

// CreateAccountRequest 開戶請求，Amount 未提供時視為 0
type CreateAccountRequest struct {
	Name   string              `json:"name"`
	Amount decimal.NullDecimal `json:"amount"`
}

// GetAccountRequest 查詢帳戶
type GetAccountRequest struct {
	AccountID int64 `json:"account_id"`
}

// ListAccountsRequest 列出帳戶 (無參數)
type ListAccountsRequest struct{}

// AmountRequest 存款 / 提款
type AmountRequest struct {
	AccountID int64               `json:"account_id"`
	Amount    decimal.NullDecimal `json:"amount"`
}

// TransferRequest 轉帳
type TransferRequest struct {
	FromAccountID int64               `json:"from_account_id"`
	ToAccountID   int64               `json:"to_account_id"`
	Amount        decimal.NullDecimal `json:"amount"`
}

// Account 帳戶回應
type Account struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ListAccountsResponse 帳戶清單
type ListAccountsResponse struct {
	Accounts []*Account `json:"accounts"`
}

// LedgerServiceServer 服務端介面
type LedgerServiceServer interface {
	CreateAccount(context.Context, *CreateAccountRequest) (*Account, error)
	GetAccount(context.Context, *GetAccountRequest) (*Account, error)
	ListAccounts(context.Context, *ListAccountsRequest) (*ListAccountsResponse, error)
	Deposit(context.Context, *AmountRequest) (*Account, error)
	Withdraw(context.Context, *AmountRequest) (*Account, error)
	Transfer(context.Context, *TransferRequest) (*Account, error)
}

// RegisterLedgerServiceServer 將實作註冊到 grpc.Server
func RegisterLedgerServiceServer(s grpc.ServiceRegistrar, srv LedgerServiceServer) {
	s.RegisterService(&ledgerServiceDesc, srv)
}

// unaryHandler 產生單一 RPC 的 grpc.MethodHandler
func unaryHandler[Req any, Resp any](method string, call func(LedgerServiceServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(LedgerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(LedgerServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ledgerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateAccount",
			Handler:    unaryHandler("CreateAccount", LedgerServiceServer.CreateAccount),
		},
		{
			MethodName: "GetAccount",
			Handler:    unaryHandler("GetAccount", LedgerServiceServer.GetAccount),
		},
		{
			MethodName: "ListAccounts",
			Handler:    unaryHandler("ListAccounts", LedgerServiceServer.ListAccounts),
		},
		{
			MethodName: "Deposit",
			Handler:    unaryHandler("Deposit", LedgerServiceServer.Deposit),
		},
		{
			MethodName: "Withdraw",
			Handler:    unaryHandler("Withdraw", LedgerServiceServer.Withdraw),
		},
		{
			MethodName: "Transfer",
			Handler:    unaryHandler("Transfer", LedgerServiceServer.Transfer),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger/v1/ledger.json",
}
