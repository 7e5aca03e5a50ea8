package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	grpc_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/grpc"
	grpc_pool "github.com/JoeShih716/go-mem-bank/pkg/grpc"
)

type options struct {
	target      string
	accounts    int
	transfers   int
	concurrency int
	initial     string
	timeout     time.Duration
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "loadgen",
		Short:        "Drive random concurrent transfers against the ledger and verify the total is conserved",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.target, "target", "localhost:50051", "gRPC address of the ledger")
	f.IntVar(&opts.accounts, "accounts", 10, "number of accounts to create")
	f.IntVar(&opts.transfers, "transfers", 100000, "number of random transfers")
	f.IntVar(&opts.concurrency, "concurrency", 100, "concurrent in-flight transfers")
	f.StringVar(&opts.initial, "initial", "1000", "initial balance of each account")
	f.DurationVar(&opts.timeout, "timeout", 120*time.Second, "overall deadline")
	return cmd
}

func run(ctx context.Context, opts options) error {
	if opts.accounts < 2 {
		return errors.New("--accounts must be at least 2")
	}
	if opts.concurrency < 1 {
		return errors.New("--concurrency must be positive")
	}
	initial, err := decimal.NewFromString(opts.initial)
	if err != nil {
		return fmt.Errorf("invalid --initial: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	pool := grpc_pool.NewPool(
		grpc_pool.WithInterceptor(grpc_adapter.RequestIDClientInterceptor()),
		grpc_pool.WithCallOptions(grpc_adapter.CallOptions()...),
	)
	defer pool.Close()

	conn, err := pool.GetConnection(opts.target)
	if err != nil {
		return err
	}
	c := grpc_adapter.NewLedgerClient(conn)

	// 1. 建立帳戶並記錄起始總額
	before, err := total(ctx, c)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, opts.accounts)
	for i := 0; i < opts.accounts; i++ {
		acc, err := c.CreateAccount(ctx, &grpc_adapter.CreateAccountRequest{
			Name:   fmt.Sprintf("loadgen-%d", i),
			Amount: decimal.NewNullDecimal(initial),
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		ids = append(ids, acc.ID)
	}
	expected := before.Add(initial.Mul(decimal.NewFromInt(int64(opts.accounts))))

	// 2. 隨機轉帳
	var ok, insufficient, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency)

	start := time.Now()
	for i := 0; i < opts.transfers; i++ {
		from := ids[rand.IntN(len(ids))]
		to := ids[rand.IntN(len(ids)-1)]
		if to == from {
			to = ids[len(ids)-1]
		}
		amount := decimal.NewFromInt(int64(rand.IntN(100) + 1))

		g.Go(func() error {
			_, err := c.Transfer(gctx, &grpc_adapter.TransferRequest{
				FromAccountID: from,
				ToAccountID:   to,
				Amount:        decimal.NewNullDecimal(amount),
			})
			switch status.Code(err) {
			case codes.OK:
				ok.Add(1)
			case codes.FailedPrecondition:
				insufficient.Add(1)
			default:
				if failed.Add(1) == 1 {
					fmt.Fprintf(os.Stderr, "transfer %d -> %d failed: %v\n", from, to, err)
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	// 3. 驗證總額不變
	after, err := total(ctx, c)
	if err != nil {
		return err
	}

	fmt.Printf("Completed %d transfers in %v (ok=%d insufficient=%d failed=%d)\n",
		opts.transfers, elapsed, ok.Load(), insufficient.Load(), failed.Load())
	fmt.Printf("TPS: %.2f\n", float64(opts.transfers)/elapsed.Seconds())
	fmt.Printf("Total: expected=%s actual=%s\n", expected, after)

	if !after.Equal(expected) {
		return fmt.Errorf("total not conserved: expected %s, got %s", expected, after)
	}
	return nil
}

func total(ctx context.Context, c *grpc_adapter.LedgerClient) (decimal.Decimal, error) {
	resp, err := c.ListAccounts(ctx, &grpc_adapter.ListAccountsRequest{})
	if err != nil {
		return decimal.Zero, fmt.Errorf("list accounts: %w", err)
	}
	sum := decimal.Zero
	for _, acc := range resp.Accounts {
		sum = sum.Add(acc.Amount)
	}
	return sum, nil
}
