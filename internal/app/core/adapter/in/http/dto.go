package http

import (
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// CreateAccountRequest POST /accounts
type CreateAccountRequest struct {
	Name   string              `json:"name"`
	Amount decimal.NullDecimal `json:"amount"`
}

// AmountRequest POST /accounts/{id}/deposit 與 /withdraw
type AmountRequest struct {
	Amount decimal.NullDecimal `json:"amount"`
}

// TransferRequest POST /accounts/{id}/transfer
type TransferRequest struct {
	Amount      decimal.NullDecimal `json:"amount"`
	ToAccountID int64               `json:"toAccountId"`
}

// AccountResponse 帳戶回應
type AccountResponse struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ErrorResponse 錯誤回應
type ErrorResponse struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func toAccountResponse(state domain.AccountState) AccountResponse {
	return AccountResponse{
		ID:     state.ID,
		Name:   state.Name,
		Amount: state.Balance,
	}
}
