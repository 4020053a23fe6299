package disassembler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Urethramancer/dis68k/isa"
)

// LabelType defines the context of a label.
type LabelType int

const (
	// JumpTarget is for a branch or jump destination (BRA, Bcc, DBcc, JMP).
	JumpTarget LabelType = iota
	// SubroutineEntry is for a JSR or BSR target.
	SubroutineEntry
)

func labelName(addr uint32, labelType LabelType) string {
	prefix := "loc_"
	if labelType == SubroutineEntry {
		prefix = "sub_"
	}
	return fmt.Sprintf("%s%08X", prefix, addr)
}

// Label follows control flow from entry through lines and names every branch,
// jump and call destination reached. Destination lines get their Label set and
// the instructions that reach them get a Target. Lines are modified in place.
func Label(lines []Line, entry uint32) {
	index := make(map[uint32]int, len(lines))
	for i, l := range lines {
		if !l.Data {
			index[l.Address] = i
		}
	}

	labels := make(map[uint32]LabelType)
	targets := make(map[int]uint32)
	q := newQueue()
	q.push(entry)
	for {
		addr, ok := q.pop()
		if !ok {
			break
		}
		i, exists := index[addr]
		if !exists {
			continue
		}
		inst := lines[i].Instruction

		if !isTerminal(inst) {
			q.push(addr + inst.Size)
		}
		target, kind, ok := branchTarget(inst)
		if !ok {
			continue
		}
		if _, exists := index[target]; !exists {
			continue
		}
		q.push(target)
		targets[i] = target
		if kind == SubroutineEntry {
			labels[target] = SubroutineEntry
		} else if _, exists := labels[target]; !exists {
			labels[target] = JumpTarget
		}
	}

	for addr, kind := range labels {
		lines[index[addr]].Label = labelName(addr, kind)
	}
	for i, target := range targets {
		lines[i].Target = labelName(target, labels[target])
	}
}

// isTerminal reports whether execution never falls through inst.
func isTerminal(inst Instruction) bool {
	switch inst.Form {
	case FormJMP, FormRTS, FormRTE, FormRTR:
		return true
	case FormBcc:
		return isa.ConditionField(inst.Op) == isa.CondT
	}
	return false
}

// branchTarget finds the destination of a transfer of control. Only targets
// that appear in the operand text as an absolute address are known.
func branchTarget(inst Instruction) (uint32, LabelType, bool) {
	kind := JumpTarget
	switch inst.Form {
	case FormBcc:
		if isa.ConditionField(inst.Op) == isa.CondF {
			kind = SubroutineEntry
		}
	case FormJSR:
		kind = SubroutineEntry
	case FormDBcc, FormJMP:
	default:
		return 0, kind, false
	}
	addr := parseAbsoluteAddress(inst.Operands)
	if addr < 0 {
		return 0, kind, false
	}
	return uint32(addr), kind, true
}

// parseAbsoluteAddress finds the first $-prefixed hex address inside operand
// text, e.g. "$00001000", "D0,$00001000" or "+16(PC) {$00001012}".
// Displacement modes like "$0008(A0)" are not absolute and return -1.
func parseAbsoluteAddress(op string) int64 {
	i, j, ok := absoluteSpan(op)
	if !ok {
		return -1
	}
	v, err := strconv.ParseUint(op[i+1:j], 16, 32)
	if err != nil {
		return -1
	}
	return int64(v)
}

// replaceAbsoluteAddress swaps the address parseAbsoluteAddress would find for name.
func replaceAbsoluteAddress(op, name string) string {
	i, j, ok := absoluteSpan(op)
	if !ok {
		return op
	}
	return op[:i] + name + op[j:]
}

// absoluteSpan locates the "$" and the end of the hex digits after it.
func absoluteSpan(op string) (int, int, bool) {
	i := strings.Index(op, "$")
	if i < 0 {
		return 0, 0, false
	}
	j := i + 1
	for j < len(op) && isHexDigit(op[j]) {
		j++
	}
	if j == i+1 || (j < len(op) && op[j] == '(') {
		return 0, 0, false
	}
	return i, j, true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// addrQueue is a simple worklist queue for addresses to visit.
type addrQueue struct {
	items []uint32
	seen  map[uint32]bool
}

func newQueue() *addrQueue {
	return &addrQueue{seen: make(map[uint32]bool)}
}

func (q *addrQueue) push(addr uint32) {
	// Instructions are word aligned.
	addr &^= 1
	if !q.seen[addr] {
		q.items = append(q.items, addr)
		q.seen[addr] = true
	}
}

func (q *addrQueue) pop() (uint32, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	a := q.items[0]
	q.items = q.items[1:]
	return a, true
}
