/*
File: verify.go implements the generator-level check spec.md §4.3 calls
"Verify the function; any verifier failure is a generator error." llir/llvm
builds the module in memory without running the native LLVM module
verifier (that happens downstream, in the external toolchain), so the
generator enforces the one invariant spec.md §8 actually tests: every
basic block must end in exactly one terminator.
*/
package codegen

import "github.com/llir/llvm/ir"

// verifyFunc reports the first unterminated block it finds in fn, or ""
// if fn is well-formed.
func verifyFunc(fn *ir.Func) string {
	for _, blk := range fn.Blocks {
		if blk.Term == nil {
			return "function " + fn.GlobalName + ": basic block " + blk.LocalName + " has no terminator"
		}
	}
	return ""
}
