package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層
//
// 帳戶建立與查詢在這裡做輸入檢查後交給 AccountRepository；
// 存款、提款、轉帳交給 Coordinator。
type CoreUseCase struct {
	accounts    AccountRepository
	coordinator *Coordinator
	logger      *zap.Logger
}

// NewCoreUseCase 建立 CoreUseCase，logger 為 nil 時不輸出 log
func NewCoreUseCase(accounts AccountRepository, logger *zap.Logger) *CoreUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoreUseCase{
		accounts:    accounts,
		coordinator: NewCoordinator(accounts, logger),
		logger:      logger,
	}
}

// CreateAccount 開戶
//
// 參數:
//
//	ctx: 上下文
//	name: 帳戶名稱 (必填)
//	initial: 開戶金額，未提供視為 0，不可為負
//
// 回傳:
//
//	domain.AccountState: 新帳戶
//	error: ErrInvalidArgument
func (c *CoreUseCase) CreateAccount(ctx context.Context, name string, initial decimal.NullDecimal) (domain.AccountState, error) {
	if err := domain.RequireName(name); err != nil {
		return domain.AccountState{}, err
	}
	amount, err := domain.InitialAmount(initial)
	if err != nil {
		return domain.AccountState{}, err
	}
	account, err := c.accounts.Create(ctx, name, amount)
	if err != nil {
		return domain.AccountState{}, err
	}
	c.logger.Debug("account created",
		zap.Int64("account_id", account.ID()),
		zap.Stringer("amount", amount),
	)
	return account.Snapshot(), nil
}

// GetAccount 依 ID 查詢帳戶
func (c *CoreUseCase) GetAccount(ctx context.Context, id int64) (domain.AccountState, error) {
	account, err := c.lookup(ctx, id)
	if err != nil {
		return domain.AccountState{}, err
	}
	return account.Snapshot(), nil
}

// ListAccounts 列出所有帳戶，每個帳戶各自在自己的鎖下取快照
func (c *CoreUseCase) ListAccounts(ctx context.Context) ([]domain.AccountState, error) {
	accounts, err := c.accounts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	states := make([]domain.AccountState, 0, len(accounts))
	for _, account := range accounts {
		states = append(states, account.Snapshot())
	}
	return states, nil
}

// Deposit 存款
func (c *CoreUseCase) Deposit(ctx context.Context, id int64, amount decimal.NullDecimal) (domain.AccountState, error) {
	return c.coordinator.Deposit(ctx, id, amount)
}

// Withdraw 提款
func (c *CoreUseCase) Withdraw(ctx context.Context, id int64, amount decimal.NullDecimal) (domain.AccountState, error) {
	return c.coordinator.Withdraw(ctx, id, amount)
}

// Transfer 轉帳，回傳轉出帳戶的最新狀態
func (c *CoreUseCase) Transfer(ctx context.Context, fromID, toID int64, amount decimal.NullDecimal) (domain.AccountState, error) {
	return c.coordinator.Transfer(ctx, fromID, toID, amount)
}

func (c *CoreUseCase) lookup(ctx context.Context, id int64) (*domain.Account, error) {
	return lookup(ctx, c.accounts, id)
}

// lookup 先檢查 ID 是否有提供，再向 repository 查詢
func lookup(ctx context.Context, accounts AccountRepository, id int64) (*domain.Account, error) {
	if err := domain.RequireAccountID(id); err != nil {
		return nil, err
	}
	return accounts.GetByID(ctx, id)
}
