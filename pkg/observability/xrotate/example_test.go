package xrotate_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/omeyang/subnetkit/pkg/observability/xrotate"
)

func ExampleNewLumberjack() {
	dir, err := os.MkdirTemp("", "xrotate-example-*")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer func() { _ = os.RemoveAll(dir) }()

	// 监听模式的长生命周期日志：50MB 一切，保留 3 份、7 天
	r, err := xrotate.NewLumberjack(filepath.Join(dir, "watch.log"),
		xrotate.WithMaxSize(50),
		xrotate.WithMaxBackups(3),
		xrotate.WithMaxAge(7),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	n, err := r.Write([]byte("level=INFO msg=report subnet=10.0.0.0/24\n"))
	fmt.Println(n > 0, err)
	// Output: true <nil>
}

func ExampleRotator_rotate() {
	dir, err := os.MkdirTemp("", "xrotate-example-*")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer func() { _ = os.RemoveAll(dir) }()

	r, err := xrotate.NewLumberjack(filepath.Join(dir, "watch.log"),
		xrotate.WithCompress(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	_, _ = r.Write([]byte("before\n"))

	// 外部信号（如 SIGHUP）触发的手动切文件
	if err := r.Rotate(); err != nil {
		fmt.Println("rotate failed:", err)
		return
	}

	_, _ = r.Write([]byte("after\n"))
	fmt.Println("rotated")
	// Output: rotated
}
