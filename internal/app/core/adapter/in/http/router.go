package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// HeaderRequestID 請求追蹤 ID 的 header
const HeaderRequestID = "X-Request-Id"

// NewApp 建立 fiber app 並註冊所有路由
//
// 帳戶路由同時掛在 /accounts 與 /api/accounts 下。
func NewApp(core *usecase.CoreUseCase, logger *zap.Logger) *fiber.App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(WithRequestLogging(logger))

	app.Get("/health", health)

	h := NewHandler(core)
	h.Register(app.Group("/accounts"))
	h.Register(app.Group("/api/accounts"))
	return app
}

// WithRequestLogging 為每個請求補上 request id 並輸出一行 access log
func WithRequestLogging(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)

		start := time.Now()
		err := c.Next()
		if err != nil {
			// 先交給 ErrorHandler 寫出回應，log 才拿得到最終狀態碼
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			logger.Error("request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Info("request", fields...)
		}
		return nil
	}
}
