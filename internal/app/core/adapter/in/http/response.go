package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// WriteError 以 ErrorResponse 格式輸出錯誤
func WriteError(c *fiber.Ctx, status int, title, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Code:    strconv.Itoa(status),
		Title:   title,
		Message: message,
	})
}

// statusOf 業務錯誤對應的 HTTP 狀態碼與標題
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return fiber.StatusNotFound, "account_not_found"
	case errors.Is(err, domain.ErrInvalidArgument):
		return fiber.StatusBadRequest, "invalid_argument"
	case errors.Is(err, domain.ErrInvalidAmount):
		return fiber.StatusBadRequest, "invalid_amount"
	case errors.Is(err, domain.ErrInvalidTransfer):
		return fiber.StatusBadRequest, "invalid_transfer"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return fiber.StatusBadRequest, "insufficient_funds"
	default:
		return fiber.StatusInternalServerError, "internal_error"
	}
}

// ErrorHandler fiber 的集中錯誤處理
// 業務錯誤回傳原始訊息，系統錯誤只回傳固定訊息避免洩漏內部細節。
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return WriteError(c, fiberErr.Code, "request_error", fiberErr.Message)
	}

	status, title := statusOf(err)
	if status == fiber.StatusInternalServerError {
		return WriteError(c, status, title, "internal server error")
	}
	return WriteError(c, status, title, err.Error())
}
