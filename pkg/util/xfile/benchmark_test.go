package xfile

import (
	"path/filepath"
	"testing"
)

func BenchmarkSanitizePath(b *testing.B) {
	cases := map[string]string{
		"plain":  "/var/log/subnetctl.log",
		"deep":   "/srv/netops/plans/region/dc1/rack2/cabinet3/hosts.yaml",
		"dotted": "/var/./log/./subnetctl/./subnetctl.log",
	}
	for name, path := range cases {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = SanitizePath(path)
			}
		})
	}
}

func BenchmarkSanitizePath_Parallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = SanitizePath("/var/log/subnetctl.log")
		}
	})
}

func BenchmarkHasDotDotSegment(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = hasDotDotSegment("/srv/netops/plans/dc1/rack2/hosts.yaml")
	}
}

func BenchmarkEnsureDir_Existing(b *testing.B) {
	f := filepath.Join(b.TempDir(), "subnetctl.log")
	_ = EnsureDir(f)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = EnsureDir(f)
	}
}

func BenchmarkEnsureDir_CurrentDir(b *testing.B) {
	// filepath.Dir 返回 "." 的快速路径
	b.ReportAllocs()
	for b.Loop() {
		_ = EnsureDir("subnetctl.log")
	}
}
