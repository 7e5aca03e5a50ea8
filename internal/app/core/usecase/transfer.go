package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// Coordinator 負責餘額異動的上鎖與原子性
//
// 每次操作都是單次流程: 查帳戶 → 檢查金額 → 上鎖 → 異動 → 解鎖。
// 只使用帳戶自己的鎖，兩個帳戶時依 domain.LockOrder 上鎖。
type Coordinator struct {
	accounts AccountRepository
	logger   *zap.Logger
}

// NewCoordinator 建立 Coordinator
func NewCoordinator(accounts AccountRepository, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		accounts: accounts,
		logger:   logger,
	}
}

// Deposit 存款
//
// 參數:
//
//	ctx: 上下文
//	id: 帳戶 ID
//	amount: 存款金額，必須為正數
//
// 回傳:
//
//	domain.AccountState: 存款後的帳戶狀態
//	error: ErrInvalidArgument / ErrAccountNotFound / ErrInvalidAmount
func (c *Coordinator) Deposit(ctx context.Context, id int64, amount decimal.NullDecimal) (domain.AccountState, error) {
	return c.applySingle(ctx, "deposit", id, amount, false)
}

// Withdraw 提款
//
// 參數:
//
//	ctx: 上下文
//	id: 帳戶 ID
//	amount: 提款金額，必須為正數
//
// 回傳:
//
//	domain.AccountState: 提款後的帳戶狀態
//	error: 同 Deposit，另外可能回傳 ErrInsufficientFunds
func (c *Coordinator) Withdraw(ctx context.Context, id int64, amount decimal.NullDecimal) (domain.AccountState, error) {
	return c.applySingle(ctx, "withdraw", id, amount, true)
}

func (c *Coordinator) applySingle(ctx context.Context, op string, id int64, amount decimal.NullDecimal, negate bool) (domain.AccountState, error) {
	account, err := lookup(ctx, c.accounts, id)
	if err != nil {
		return domain.AccountState{}, err
	}
	amt, err := domain.RequireAmount(amount)
	if err != nil {
		return domain.AccountState{}, err
	}
	delta := amt
	if negate {
		delta = amt.Neg()
	}

	account.Lock()
	defer account.Unlock()

	if err := account.ApplyDelta(delta); err != nil {
		c.logger.Debug(op+" rejected", zap.Int64("account_id", id), zap.Error(err))
		return domain.AccountState{}, err
	}
	c.logger.Debug(op, zap.Int64("account_id", id), zap.Stringer("amount", amt))
	return account.State(), nil
}

// Transfer 轉帳
//
// 兩個帳戶都存在、金額合法且不是同一帳戶時，依 ID 由大到小上鎖，
// 在同時持有兩把鎖的情況下扣款與入帳；扣款失敗時兩邊都不異動。
//
// 參數:
//
//	ctx: 上下文
//	fromID: 轉出帳戶
//	toID: 轉入帳戶
//	amount: 轉帳金額
//
// 回傳:
//
//	domain.AccountState: 轉出帳戶轉帳後的狀態
//	error: ErrInvalidArgument / ErrAccountNotFound / ErrInvalidAmount / ErrInvalidTransfer / ErrInsufficientFunds
func (c *Coordinator) Transfer(ctx context.Context, fromID, toID int64, amount decimal.NullDecimal) (domain.AccountState, error) {
	from, err := lookup(ctx, c.accounts, fromID)
	if err != nil {
		return domain.AccountState{}, err
	}
	to, err := lookup(ctx, c.accounts, toID)
	if err != nil {
		return domain.AccountState{}, err
	}
	amt, err := domain.RequireAmount(amount)
	if err != nil {
		return domain.AccountState{}, err
	}
	if from == to {
		return domain.AccountState{}, fmt.Errorf("%w: cannot transfer to same account #%d", domain.ErrInvalidTransfer, fromID)
	}

	unlock := domain.LockPair(from, to)
	defer unlock()

	if err := domain.MoveFunds(from, to, amt); err != nil {
		c.logger.Debug("transfer rejected",
			zap.Int64("from_account_id", fromID),
			zap.Int64("to_account_id", toID),
			zap.Error(err),
		)
		return domain.AccountState{}, err
	}
	c.logger.Debug("transfer",
		zap.Int64("from_account_id", fromID),
		zap.Int64("to_account_id", toID),
		zap.Stringer("amount", amt),
	)
	return from.State(), nil
}
