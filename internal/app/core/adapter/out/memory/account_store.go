package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// AccountStore 是記憶體中的帳戶集合
//
// 結構:
//
//	accounts: 帳戶 ID 對應帳戶實體
//	nextID: 下一個要分配的 ID，從 1 開始，不重複使用
//	mu: 只保護 accounts 與 nextID 的結構性異動，不保護餘額
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	nextID   int64
}

// NewAccountStore 建立空的 AccountStore
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[int64]*domain.Account),
		nextID:   1,
	}
}

// Create 分配下一個 ID 並建立帳戶
//
// 參數:
//
//	ctx: 上下文
//	name: 帳戶名稱
//	initial: 開戶金額
//
// 回傳:
//
//	*domain.Account: 新帳戶
//	error: 開戶金額為負時回傳 ErrInvalidArgument
func (s *AccountStore) Create(ctx context.Context, name string, initial decimal.Decimal) (*domain.Account, error) {
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: initial amount cannot be negative", domain.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	account := domain.NewAccount(id, name, initial)
	s.accounts[id] = account
	return account, nil
}

// GetByID 依 ID 取得帳戶
func (s *AccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: account #%d not found", domain.ErrAccountNotFound, id)
	}
	return account, nil
}

// GetAll 回傳目前帳戶的快照清單 (依 ID 排序)
// 清單本身是新的 slice，之後新增的帳戶不會出現在裡面。
func (s *AccountStore) GetAll(ctx context.Context) ([]*domain.Account, error) {
	s.mu.RLock()
	accounts := make([]*domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	s.mu.RUnlock()

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ID() < accounts[j].ID()
	})
	return accounts, nil
}

// Clear 清空所有帳戶，僅供測試使用
// ID 序列不歸零，已發出的 ID 不會再被分配。
func (s *AccountStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make(map[int64]*domain.Account)
}

// Len 回傳目前帳戶數量
func (s *AccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

var _ usecase.AccountRepository = (*AccountStore)(nil)
