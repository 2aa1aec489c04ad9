/*
File: loop.go implements the break/continue frame stack of spec.md §3.
*/
package codegen

import "github.com/llir/llvm/ir"

// loopFrame records the branch targets for one lexically-enclosing loop.
type loopFrame struct {
	ContinueTarget *ir.Block
	BreakTarget    *ir.Block
}

type loopStack struct {
	frames []loopFrame
}

func (s *loopStack) push(f loopFrame) {
	s.frames = append(s.frames, f)
}

func (s *loopStack) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// current returns the innermost loop frame, or false if break/continue is
// used outside any loop.
func (s *loopStack) current() (loopFrame, bool) {
	if len(s.frames) == 0 {
		return loopFrame{}, false
	}
	return s.frames[len(s.frames)-1], true
}
