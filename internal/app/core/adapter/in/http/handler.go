package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// Handler REST 介面，只負責解析請求、呼叫 CoreUseCase、輸出回應
type Handler struct {
	core *usecase.CoreUseCase
}

// NewHandler 建立 Handler
func NewHandler(core *usecase.CoreUseCase) *Handler {
	return &Handler{core: core}
}

// Register 將帳戶路由掛到 router 下
//
//	GET  /                 → 列出帳戶
//	POST /                 → 開戶
//	GET  /:id              → 查詢帳戶
//	POST /:id/deposit      → 存款
//	POST /:id/withdraw     → 提款
//	POST /:id/transfer     → 轉帳
func (h *Handler) Register(router fiber.Router) {
	router.Get("/", h.listAccounts)
	router.Post("/", h.createAccount)
	router.Get("/:id", h.getAccount)
	router.Post("/:id/deposit", h.deposit)
	router.Post("/:id/withdraw", h.withdraw)
	router.Post("/:id/transfer", h.transfer)
}

func (h *Handler) listAccounts(c *fiber.Ctx) error {
	states, err := h.core.ListAccounts(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]AccountResponse, 0, len(states))
	for _, state := range states {
		out = append(out, toAccountResponse(state))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *Handler) createAccount(c *fiber.Ctx) error {
	var req CreateAccountRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	state, err := h.core.CreateAccount(c.UserContext(), req.Name, req.Amount)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(toAccountResponse(state))
}

func (h *Handler) getAccount(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	state, err := h.core.GetAccount(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(toAccountResponse(state))
}

func (h *Handler) deposit(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req AmountRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	state, err := h.core.Deposit(c.UserContext(), id, req.Amount)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(toAccountResponse(state))
}

func (h *Handler) withdraw(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req AmountRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	state, err := h.core.Withdraw(c.UserContext(), id, req.Amount)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(toAccountResponse(state))
}

func (h *Handler) transfer(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req TransferRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	state, err := h.core.Transfer(c.UserContext(), id, req.ToAccountID, req.Amount)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(toAccountResponse(state))
}

func health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// pathID 解析路徑上的帳戶 ID
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid account id: "+c.Params("id"))
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	return nil
}
