package xrotate

import (
	"bytes"
	"path/filepath"
	"testing"
)

func benchRotator(b *testing.B, opts ...Option) Rotator {
	b.Helper()
	r, err := NewLumberjack(filepath.Join(b.TempDir(), "bench.log"), opts...)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = r.Close() })
	return r
}

func BenchmarkWrite_TypicalLine(b *testing.B) {
	r := benchRotator(b)
	// 约 100 字节，贴近真实结构化日志行
	line := []byte("time=2026-08-25T10:30:45.123Z level=INFO msg=evaluated plan=lab.yaml subnets=42 run_id=abc\n")

	b.ReportAllocs()
	b.SetBytes(int64(len(line)))
	b.ResetTimer()
	for b.Loop() {
		_, _ = r.Write(line)
	}
}

func BenchmarkWrite_64KB(b *testing.B) {
	r := benchRotator(b)
	blob := bytes.Repeat([]byte("x"), 64<<10)

	b.ReportAllocs()
	b.SetBytes(int64(len(blob)))
	b.ResetTimer()
	for b.Loop() {
		_, _ = r.Write(blob)
	}
}

func BenchmarkWrite_Parallel(b *testing.B) {
	r := benchRotator(b)
	line := []byte("parallel log line\n")

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = r.Write(line)
		}
	})
}

func BenchmarkNewLumberjack(b *testing.B) {
	dir := b.TempDir()

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		r, err := NewLumberjack(filepath.Join(dir, "new.log"))
		if err != nil {
			b.Fatal(err)
		}
		_ = r.Close()
	}
}

func BenchmarkRotate(b *testing.B) {
	// 不压缩、备份位充足，测的就是关文件+改名+开新文件
	r := benchRotator(b, WithCompress(false), WithMaxBackups(100))
	_, _ = r.Write([]byte("seed\n"))

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = r.Rotate()
	}
}
