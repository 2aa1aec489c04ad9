/*
File: strings.go implements the string/format-string deduplication cache
of spec.md §4.3: every unique literal content gets exactly one private,
NUL-terminated, read-only global byte array, shared by string literals and
composed printf format strings alike.
*/
package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

// stringCache deduplicates string constants by content, per spec.md §4.3
// ("two literals with identical contents share one global") and the
// testable property that no two private string globals share content.
type stringCache struct {
	module  *ir.Module
	byValue map[string]*constant.ExprGetElementPtr
	counter int
}

func newStringCache(m *ir.Module) *stringCache {
	return &stringCache{module: m, byValue: map[string]*constant.ExprGetElementPtr{}}
}

// intern returns a pointer-to-first-byte constant for s, NUL-terminating
// and creating a new global only on a cache miss.
func (c *stringCache) intern(s string) *constant.ExprGetElementPtr {
	if gep, ok := c.byValue[s]; ok {
		return gep
	}

	data := constant.NewCharArrayFromString(s + "\x00")
	name := fmt.Sprintf(".str.%d", c.counter)
	c.counter++

	global := c.module.NewGlobalDef(name, data)
	global.Linkage = enum.LinkagePrivate
	global.Immutable = true

	zero := constant.NewInt(types.I32, 0)
	gep := constant.NewGetElementPtr(data.Typ, global, zero, zero)
	c.byValue[s] = gep
	return gep
}
