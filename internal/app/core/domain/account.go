package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Account 帳戶實體
//
// ID 與 Name 建立後不可變；balance 只能在持有該帳戶鎖的情況下透過
// ApplyDelta / MoveFunds 修改。每個帳戶各自擁有一把鎖，不使用全域鎖。
type Account struct {
	mu      sync.Mutex
	id      int64
	name    string
	balance decimal.Decimal
}

// AccountState 帳戶在某個時間點的唯讀快照，可安全地跨 goroutine 傳遞
type AccountState struct {
	ID      int64
	Name    string
	Balance decimal.Decimal
}

// NewAccount 建立帳戶實體，由 AccountRepository 分配 id 後呼叫
func NewAccount(id int64, name string, balance decimal.Decimal) *Account {
	return &Account{
		id:      id,
		name:    name,
		balance: balance,
	}
}

// ID 回傳帳戶 ID
func (a *Account) ID() int64 {
	return a.id
}

// Name 回傳帳戶名稱
func (a *Account) Name() string {
	return a.name
}

// Lock 取得帳戶的獨占鎖
// 同時鎖兩個帳戶時必須依照 LockOrder 的順序
func (a *Account) Lock() {
	a.mu.Lock()
}

// Unlock 釋放帳戶的獨占鎖
func (a *Account) Unlock() {
	a.mu.Unlock()
}

// State 回傳目前狀態，呼叫端必須已持有鎖
func (a *Account) State() AccountState {
	return AccountState{
		ID:      a.id,
		Name:    a.name,
		Balance: a.balance,
	}
}

// Snapshot 加鎖後回傳目前狀態
func (a *Account) Snapshot() AccountState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.State()
}
