package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NoAccountID 代表請求中未提供帳戶 ID (帳戶 ID 從 1 開始)
const NoAccountID int64 = 0

// RequireName 檢查帳戶名稱不可為空
func RequireName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: account name should be supplied", ErrInvalidArgument)
	}
	return nil
}

// RequireAccountID 檢查帳戶 ID 是否有提供
func RequireAccountID(id int64) error {
	if id == NoAccountID {
		return fmt.Errorf("%w: account id must not be empty", ErrInvalidArgument)
	}
	return nil
}

// RequireAmount 檢查異動金額存在且為正數
//
// 參數:
//
//	amount: 可能缺漏的金額 (Valid=false 代表未提供)
//
// 回傳:
//
//	decimal.Decimal: 通過檢查的金額
//	error: ErrInvalidAmount
func RequireAmount(amount decimal.NullDecimal) (decimal.Decimal, error) {
	if !amount.Valid {
		return decimal.Zero, fmt.Errorf("%w: amount should be set", ErrInvalidAmount)
	}
	if !amount.Decimal.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidAmount, amount.Decimal)
	}
	return amount.Decimal, nil
}

// InitialAmount 開戶金額未提供時視為 0，負數回傳 ErrInvalidArgument
func InitialAmount(amount decimal.NullDecimal) (decimal.Decimal, error) {
	if !amount.Valid {
		return decimal.Zero, nil
	}
	if amount.Decimal.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: initial amount cannot be negative", ErrInvalidArgument)
	}
	return amount.Decimal, nil
}
