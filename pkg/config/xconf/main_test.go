package xconf

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain 在所有测试完成后检测 goroutine 泄漏。
// Watcher 的监视 goroutine 必须在 Stop() 后退出，fsnotify 资源必须被释放。
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
