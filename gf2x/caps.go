package gf2x

import "golang.org/x/sys/cpu"

// HardwareCLMULAvailable reports whether the running CPU exposes a
// hardware carry-less-multiply instruction (x86's PCLMULQDQ or arm64's
// PMULL). This package ships only the portable, table-driven multiply
// in clmul.go — the spec permits a hardware-accelerated base case as
// long as it is bit-identical, but that requires assembly this repo
// does not build or verify here. HardwareCLMULAvailable is therefore
// purely informational: it does not change which code path runs, it
// lets a caller decide whether a future hardware-accelerated build of
// this package would be worth it for their workload.
func HardwareCLMULAvailable() bool {
	return cpu.X86.HasPCLMULQDQ || cpu.ARM64.HasPMULL
}
