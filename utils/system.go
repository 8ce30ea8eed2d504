package utils

import (
	"fmt"
	"runtime"
)

// MemUsage summarizes heap use and collector activity of the process
func MemUsage() string {
	var (
		m    runtime.MemStats
		toMB = func(b uint64) uint64 { return b >> 20 }
	)
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("heap %v MiB, allocated %v MiB, sys %v MiB, %v GC cycles",
		toMB(m.HeapAlloc), toMB(m.TotalAlloc), toMB(m.Sys), m.NumGC)
}
