package domain

import "errors"

var (
	// ErrInvalidArgument 必填欄位缺漏 (名稱、帳戶 ID) 或初始金額為負
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidAmount 金額缺漏、為零或為負數
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidTransfer 轉出與轉入為同一帳戶
	ErrInvalidTransfer = errors.New("invalid transfer")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// businessErrors 封閉的業務錯誤集合，其餘錯誤一律視為系統錯誤
var businessErrors = []error{
	ErrInvalidArgument,
	ErrInvalidAmount,
	ErrAccountNotFound,
	ErrInvalidTransfer,
	ErrInsufficientFunds,
}

// IsBusinessError 判斷 err 是否屬於業務錯誤 (可直接回報給呼叫端，不需重試)
func IsBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
