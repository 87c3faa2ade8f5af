/*
File    : cou/eval/callstack.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/cou/objects"
)

// ActivationRecord is a per-call frame holding parameter and local bindings,
// the return slot, and a handle to the lexical enclosing frame.
//
// The Enclosing pointer is NOT the caller's record: it is resolved at call
// time by level arithmetic over the caller's chain, which realizes lexical
// (static) scoping for reads and writes of non-local variables while keeping
// the caller chain out of name resolution entirely.
//
// Reads walk the Enclosing chain outward; writes update the nearest frame
// that already binds the name; declarations bind locally.
type ActivationRecord struct {
	Name        string                       // Frame name ("main" or the process name)
	Level       int                          // Scope level, top-level frame = 1
	Memory      map[string]objects.CouObject // Local bindings (params and declared names)
	Enclosing   *ActivationRecord            // Lexical enclosing frame, nil for main
	ReturnValue objects.CouObject            // Value carried out of the frame by a return
	Returned    bool                         // Set by the first return; halts remaining statements
}

// NewActivationRecord creates a fresh frame with empty memory.
func NewActivationRecord(name string, level int, enclosing *ActivationRecord) *ActivationRecord {
	return &ActivationRecord{
		Name:      name,
		Level:     level,
		Memory:    make(map[string]objects.CouObject),
		Enclosing: enclosing,
	}
}

// Get resolves a name through this frame and its lexical enclosing chain.
// Returns the bound value and true, or nil and false when the name is bound
// nowhere along the chain.
func (ar *ActivationRecord) Get(name string) (objects.CouObject, bool) {
	if obj, ok := ar.Memory[name]; ok {
		return obj, true
	}
	if ar.Enclosing != nil {
		return ar.Enclosing.Get(name)
	}
	return nil, false
}

// Set updates a name in the nearest frame along the enclosing chain that
// already binds it, so assignments inside a process reach the declaring
// frame rather than creating a local copy. Returns false when no frame
// binds the name.
func (ar *ActivationRecord) Set(name string, obj objects.CouObject) bool {
	if _, ok := ar.Memory[name]; ok {
		ar.Memory[name] = obj
		return true
	}
	if ar.Enclosing != nil {
		return ar.Enclosing.Set(name, obj)
	}
	return false
}

// Bind creates or replaces a binding in this frame only. Declarations and
// parameter passing use it.
func (ar *ActivationRecord) Bind(name string, obj objects.CouObject) {
	ar.Memory[name] = obj
}

// String returns a debug dump of the frame: level, name and bindings.
func (ar *ActivationRecord) String() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%d:%s", ar.Level, ar.Name))
	for name, obj := range ar.Memory {
		builder.WriteString(fmt.Sprintf("\n  %s : %s", name, obj.ToObject()))
	}
	return builder.String()
}

// CallStack is the evaluator's stack of activation records. The evaluator
// owns it exclusively: every Push is paired with a Pop on all exit paths, so
// the stack depth returns to its entry depth on normal return and on error
// propagation alike.
type CallStack struct {
	frames []*ActivationRecord
}

// NewCallStack creates an empty call stack.
func NewCallStack() *CallStack {
	return &CallStack{frames: make([]*ActivationRecord, 0)}
}

// Push places a frame on top of the stack.
func (cs *CallStack) Push(frame *ActivationRecord) {
	cs.frames = append(cs.frames, frame)
}

// Pop removes the top frame and returns its return value, which is nil when
// the frame never executed a return statement.
func (cs *CallStack) Pop() objects.CouObject {
	frame := cs.frames[len(cs.frames)-1]
	cs.frames = cs.frames[:len(cs.frames)-1]
	return frame.ReturnValue
}

// Peek returns the top frame without removing it.
func (cs *CallStack) Peek() *ActivationRecord {
	return cs.frames[len(cs.frames)-1]
}

// Depth returns the number of frames on the stack.
func (cs *CallStack) Depth() int {
	return len(cs.frames)
}

// String returns a debug dump of the stack, top frame first.
func (cs *CallStack) String() string {
	var builder strings.Builder
	builder.WriteString("call stack")
	for i := len(cs.frames) - 1; i >= 0; i-- {
		builder.WriteString("\n" + cs.frames[i].String())
	}
	return builder.String()
}
