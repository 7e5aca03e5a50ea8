package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	core := usecase.NewCoreUseCase(memory.NewAccountStore(), nil)
	return NewApp(core, nil)
}

// do 送出 JSON 請求，檢查狀態碼並解析回應
func do(t *testing.T, app *fiber.App, method, path string, body any, wantStatus int, out any) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { assert.NoError(t, resp.Body.Close()) }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "body: %s", raw)

	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out))
	}
}

func createAccount(t *testing.T, app *fiber.App, name string, amount int64) AccountResponse {
	t.Helper()
	var acc AccountResponse
	do(t, app, http.MethodPost, "/accounts", map[string]any{"name": name, "amount": amount}, http.StatusOK, &acc)
	return acc
}

func accountPath(id int64, op string) string {
	p := "/accounts/" + strconv.FormatInt(id, 10)
	if op != "" {
		p += "/" + op
	}
	return p
}

func TestCreateAccount(t *testing.T) {
	app := newTestApp(t)

	var errResp ErrorResponse
	do(t, app, http.MethodPost, "/accounts", map[string]any{"amount": 10}, http.StatusBadRequest, &errResp)
	assert.Equal(t, "invalid_argument", errResp.Title)

	do(t, app, http.MethodPost, "/accounts", map[string]any{"name": "name", "amount": -10}, http.StatusBadRequest, nil)
	do(t, app, http.MethodPost, "/accounts", "{bad json}", http.StatusBadRequest, nil)

	var acc AccountResponse
	do(t, app, http.MethodPost, "/accounts", map[string]any{"name": "name"}, http.StatusOK, &acc)
	assert.Equal(t, int64(1), acc.ID)
	assert.Equal(t, "name", acc.Name)
	assert.True(t, acc.Amount.IsZero())

	do(t, app, http.MethodPost, "/accounts", map[string]any{"name": "precise", "amount": "0.1"}, http.StatusOK, &acc)
	assert.True(t, acc.Amount.Equal(decimal.RequireFromString("0.1")))
}

func TestGetAccounts(t *testing.T) {
	app := newTestApp(t)
	a := createAccount(t, app, "a", 10)
	b := createAccount(t, app, "b", 20)

	var all []AccountResponse
	do(t, app, http.MethodGet, "/accounts", nil, http.StatusOK, &all)
	require.Len(t, all, 2)
	assert.ElementsMatch(t, []int64{a.ID, b.ID}, []int64{all[0].ID, all[1].ID})

	var got AccountResponse
	do(t, app, http.MethodGet, accountPath(a.ID, ""), nil, http.StatusOK, &got)
	assert.Equal(t, a.ID, got.ID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(10)))

	do(t, app, http.MethodGet, accountPath(666, ""), nil, http.StatusNotFound, nil)
	do(t, app, http.MethodGet, "/accounts/abc", nil, http.StatusBadRequest, nil)
}

func TestAPIPrefix(t *testing.T) {
	app := newTestApp(t)
	acc := createAccount(t, app, "a", 10)

	var got AccountResponse
	do(t, app, http.MethodGet, "/api"+accountPath(acc.ID, ""), nil, http.StatusOK, &got)
	assert.Equal(t, acc.ID, got.ID)
}

func TestDeposit(t *testing.T) {
	app := newTestApp(t)
	acc := createAccount(t, app, "a", 10)
	path := accountPath(acc.ID, "deposit")

	do(t, app, http.MethodPost, path, map[string]any{"amount": nil}, http.StatusBadRequest, nil)
	do(t, app, http.MethodPost, path, map[string]any{"amount": 0}, http.StatusBadRequest, nil)
	do(t, app, http.MethodPost, path, map[string]any{"amount": -10}, http.StatusBadRequest, nil)
	do(t, app, http.MethodPost, accountPath(666, "deposit"), map[string]any{"amount": 10}, http.StatusNotFound, nil)

	var got AccountResponse
	do(t, app, http.MethodPost, path, map[string]any{"amount": 10}, http.StatusOK, &got)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(20)))
}

func TestWithdraw(t *testing.T) {
	app := newTestApp(t)
	acc := createAccount(t, app, "a", 50)
	path := accountPath(acc.ID, "withdraw")

	do(t, app, http.MethodPost, path, map[string]any{}, http.StatusBadRequest, nil)
	do(t, app, http.MethodPost, path, map[string]any{"amount": 0}, http.StatusBadRequest, nil)
	do(t, app, http.MethodPost, accountPath(666, "withdraw"), map[string]any{"amount": 10}, http.StatusNotFound, nil)

	var errResp ErrorResponse
	do(t, app, http.MethodPost, path, map[string]any{"amount": 100}, http.StatusBadRequest, &errResp)
	assert.Equal(t, "insufficient_funds", errResp.Title)

	var got AccountResponse
	do(t, app, http.MethodPost, path, map[string]any{"amount": 10}, http.StatusOK, &got)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(40)))
}

func TestTransfer(t *testing.T) {
	app := newTestApp(t)
	from := createAccount(t, app, "from", 50)
	to := createAccount(t, app, "to", 0)
	path := accountPath(from.ID, "transfer")

	do(t, app, http.MethodPost, path, map[string]any{"toAccountId": to.ID}, http.StatusBadRequest, nil)
	do(t, app, http.MethodPost, path, map[string]any{"toAccountId": to.ID, "amount": 0}, http.StatusBadRequest, nil)
	do(t, app, http.MethodPost, path, map[string]any{"amount": 10}, http.StatusBadRequest, nil)
	do(t, app, http.MethodPost, path, map[string]any{"toAccountId": 666, "amount": 10}, http.StatusNotFound, nil)
	do(t, app, http.MethodPost, accountPath(666, "transfer"), map[string]any{"toAccountId": to.ID, "amount": 10}, http.StatusNotFound, nil)

	var errResp ErrorResponse
	do(t, app, http.MethodPost, path, map[string]any{"toAccountId": from.ID, "amount": 10}, http.StatusBadRequest, &errResp)
	assert.Equal(t, "invalid_transfer", errResp.Title)

	do(t, app, http.MethodPost, path, map[string]any{"toAccountId": to.ID, "amount": 51}, http.StatusBadRequest, &errResp)
	assert.Equal(t, "insufficient_funds", errResp.Title)

	var got AccountResponse
	do(t, app, http.MethodPost, path, map[string]any{"toAccountId": to.ID, "amount": 50}, http.StatusOK, &got)
	assert.Equal(t, from.ID, got.ID)
	assert.True(t, got.Amount.IsZero())

	do(t, app, http.MethodGet, accountPath(to.ID, ""), nil, http.StatusOK, &got)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(50)))
}

func TestRequestIDHeader(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { assert.NoError(t, resp.Body.Close()) }()
	assert.Equal(t, "req-123", resp.Header.Get(HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/accounts", nil)
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { assert.NoError(t, resp2.Body.Close()) }()
	assert.NotEmpty(t, resp2.Header.Get(HeaderRequestID))
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	var body map[string]string
	do(t, app, http.MethodGet, "/health", nil, http.StatusOK, &body)
	assert.Equal(t, "ok", body["status"])
}
