package domain

// LockOrder 回傳兩個帳戶的上鎖順序，ID 較大者先鎖
//
// 所有多帳戶操作都依同一個全序上鎖，A→B 與 B→A 的轉帳不會形成循環等待。
// 順序只看 ID，與轉帳方向無關。
func LockOrder(a, b *Account) (first, second *Account) {
	if a.id > b.id {
		return a, b
	}
	return b, a
}

// LockPair 依 LockOrder 鎖住兩個不同的帳戶，回傳解鎖函式
func LockPair(a, b *Account) (unlock func()) {
	first, second := LockOrder(a, b)
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
