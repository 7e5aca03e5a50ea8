package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// LedgerClient LedgerService 的客戶端
type LedgerClient struct {
	cc grpc.ClientConnInterface
}

// NewLedgerClient 包裝既有連線，例如 pkg/grpc.Pool 取得的連線
func NewLedgerClient(cc grpc.ClientConnInterface) *LedgerClient {
	return &LedgerClient{cc: cc}
}

// CallOptions 所有呼叫都必須帶上的選項 (指定 JSON codec)
func CallOptions() []grpc.CallOption {
	return []grpc.CallOption{grpc.CallContentSubtype(CodecName)}
}

func (c *LedgerClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append(CallOptions(), opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *LedgerClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*Account, error) {
	out := new(Account)
	if err := c.invoke(ctx, "CreateAccount", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LedgerClient) GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*Account, error) {
	out := new(Account)
	if err := c.invoke(ctx, "GetAccount", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LedgerClient) ListAccounts(ctx context.Context, in *ListAccountsRequest, opts ...grpc.CallOption) (*ListAccountsResponse, error) {
	out := new(ListAccountsResponse)
	if err := c.invoke(ctx, "ListAccounts", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LedgerClient) Deposit(ctx context.Context, in *AmountRequest, opts ...grpc.CallOption) (*Account, error) {
	out := new(Account)
	if err := c.invoke(ctx, "Deposit", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LedgerClient) Withdraw(ctx context.Context, in *AmountRequest, opts ...grpc.CallOption) (*Account, error) {
	out := new(Account)
	if err := c.invoke(ctx, "Withdraw", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LedgerClient) Transfer(ctx context.Context, in *TransferRequest, opts ...grpc.CallOption) (*Account, error) {
	out := new(Account)
	if err := c.invoke(ctx, "Transfer", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
