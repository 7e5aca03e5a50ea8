package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// AccountRepository 帳戶儲存的介面
//
// 只負責帳戶集合與 ID 序列的結構性操作 (新增、查詢、列舉)，
// 不負責餘額異動的序列化，那是 Coordinator 的工作。
type AccountRepository interface {
	// Create 分配下一個 ID 並建立帳戶
	Create(ctx context.Context, name string, initial decimal.Decimal) (*domain.Account, error)
	// GetByID 依 ID 取得帳戶，不存在時回傳 domain.ErrAccountNotFound
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	// GetAll 回傳目前所有帳戶
	GetAll(ctx context.Context) ([]*domain.Account, error)
}
