package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpc_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/grpc"
	http_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/http"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/internal/config"
	"github.com/JoeShih716/go-mem-bank/pkg/logger"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "core",
		Short:         "In-memory bank ledger (REST + gRPC)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default "+config.DefaultPath+")")
	return cmd
}

func run(ctx context.Context, configPath string) error {
	// 1. 載入設定
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// 2. 初始化 Store 與 UseCase
	store := memory_adapter.NewAccountStore()
	coreUseCase := usecase.NewCoreUseCase(store, log)

	// 3. 初始化 Driving Adapters
	app := http_adapter.NewApp(coreUseCase, log)

	grpcServer := grpc_adapter.NewServer(coreUseCase, log)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("failed to listen %s: %w", cfg.GRPC.Address, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", zap.String("address", cfg.HTTP.Address))
		return app.Listen(cfg.HTTP.Address)
	})
	g.Go(func() error {
		log.Info("starting grpc server", zap.String("address", cfg.GRPC.Address))
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down servers", zap.Duration("timeout", cfg.ShutdownTimeout))
		return shutdown(app, grpcServer, cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", zap.Error(err))
		return err
	}
	log.Info("server exited", zap.Int("accounts", store.Len()))
	return nil
}

// shutdown 在 timeout 內優雅關閉兩個服務，逾時則強制停止 gRPC
func shutdown(app *fiber.App, s *grpc.Server, timeout time.Duration) error {
	force := time.AfterFunc(timeout, s.Stop)
	defer force.Stop()

	var g errgroup.Group
	g.Go(func() error {
		return app.ShutdownWithTimeout(timeout)
	})
	g.Go(func() error {
		s.GracefulStop()
		return nil
	})
	return g.Wait()
}
