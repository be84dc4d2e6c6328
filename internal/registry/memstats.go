package registry

import (
	"runtime"
	"syscall"
)

// HeapUsage returns bytes currently allocated and in use on the Go heap.
// Adapted from the teacher's MemUsage (helpers.go), which called this
// around a scan pass to report how much memory scanning a package tree
// cost; here it reports how much memory warming the specialization
// registries for a batch of types costs, see typeinduct.WarmUp.
func HeapUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

// ResidentSetSize returns the process's peak (maximum) resident set size in
// bytes, as reported by getrusage's ru_maxrss.
// Adapted from the teacher's RSS (helpers.go).
func ResidentSetSize() uint64 {
	var stat syscall.Rusage
	syscall.Getrusage(syscall.RUSAGE_SELF, &stat)
	return uint64(stat.Maxrss) * 1024
}
