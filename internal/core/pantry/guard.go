package pantry

import "sync"

// Guard 切換操作的進行中鍵集合
// 同一鍵的切換請求重疊時，後到者直接被拒絕，避免讀改寫互相覆蓋
type Guard struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

// NewGuard 建立進行中鍵集合
func NewGuard() *Guard {
	return &Guard{inFlight: make(map[string]bool)}
}

// TryAcquire 嘗試取得鍵，已被占用時回傳 false
func (g *Guard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[key] {
		return false
	}
	g.inFlight[key] = true
	return true
}

// Release 釋放鍵
func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}
