package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// preview 計算套用 delta 後的新餘額，不寫回帳戶
func (a *Account) preview(delta decimal.Decimal) (decimal.Decimal, error) {
	next := a.balance.Add(delta)
	if next.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w on account #%d", ErrInsufficientFunds, a.id)
	}
	return next, nil
}

// ApplyDelta 將有號金額套用到餘額上
// 結果為負時回傳 ErrInsufficientFunds，帳戶維持原狀。
// 本身不加鎖，呼叫端必須已持有該帳戶的鎖。
//
// 參數:
//
//	delta: 存款為正數，提款為負數
//
// 回傳:
//
//	error: 餘額不足
func (a *Account) ApplyDelta(delta decimal.Decimal) error {
	next, err := a.preview(delta)
	if err != nil {
		return err
	}
	a.balance = next
	return nil
}

// MoveFunds 從 from 扣款並存入 to，兩邊都可套用才一起寫回
// 呼叫端必須已依 LockOrder 持有兩個帳戶的鎖。
func MoveFunds(from, to *Account, amount decimal.Decimal) error {
	debited, err := from.preview(amount.Neg())
	if err != nil {
		return err
	}
	credited, err := to.preview(amount)
	if err != nil {
		return err
	}
	from.balance = debited
	to.balance = credited
	return nil
}
