package matching

import (
	"fmt"
	"strings"
)

const diffContext = 3

// UnifiedDiff renders a unified diff between two line slices. An empty
// string means the inputs are identical.
func UnifiedDiff(a, b []string, fromfile, tofile string) string {
	groups := groupedOpcodes(opcodes(a, b), diffContext)
	if len(groups) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", fromfile)
	fmt.Fprintf(&sb, "+++ %s\n", tofile)
	for _, group := range groups {
		first, last := group[0], group[len(group)-1]
		fmt.Fprintf(&sb, "@@ -%s +%s @@\n",
			formatRange(first.i1, last.i2),
			formatRange(first.j1, last.j2))
		for _, op := range group {
			switch op.tag {
			case opEqual:
				for _, line := range a[op.i1:op.i2] {
					sb.WriteString(" " + line + "\n")
				}
			case opDelete, opReplace:
				for _, line := range a[op.i1:op.i2] {
					sb.WriteString("-" + line + "\n")
				}
			}
			if op.tag == opInsert || op.tag == opReplace {
				for _, line := range b[op.j1:op.j2] {
					sb.WriteString("+" + line + "\n")
				}
			}
		}
	}
	return sb.String()
}

func formatRange(start, stop int) string {
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", start+1)
	}
	if length == 0 {
		return fmt.Sprintf("%d,0", start)
	}
	return fmt.Sprintf("%d,%d", start+1, length)
}

const (
	opEqual = iota
	opReplace
	opDelete
	opInsert
)

type opcode struct {
	tag            int
	i1, i2, j1, j2 int
}

// opcodes computes edit operations from a longest-common-subsequence table.
func opcodes(a, b []string) []opcode {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var ops []opcode
	push := func(tag, i1, i2, j1, j2 int) {
		if last := len(ops) - 1; last >= 0 && ops[last].tag == tag {
			ops[last].i2 = i2
			ops[last].j2 = j2
			return
		}
		// adjacent deletes and inserts collapse into a replace
		if last := len(ops) - 1; last >= 0 && ops[last].tag != opEqual && tag != opEqual {
			ops[last].tag = opReplace
			if i2 > ops[last].i2 {
				ops[last].i2 = i2
			}
			if j2 > ops[last].j2 {
				ops[last].j2 = j2
			}
			return
		}
		ops = append(ops, opcode{tag, i1, i2, j1, j2})
	}

	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			push(opEqual, i, i+1, j, j+1)
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			push(opDelete, i, i+1, j, j)
			i++
		default:
			push(opInsert, i, i, j, j+1)
			j++
		}
	}
	if i < n {
		push(opDelete, i, n, j, j)
	}
	if j < m {
		push(opInsert, i, i, j, m)
	}
	return ops
}

// groupedOpcodes trims long equal runs down to the context width and splits
// the op list into hunk groups. Returns nil when there are no changes.
func groupedOpcodes(ops []opcode, n int) [][]opcode {
	changed := false
	for _, op := range ops {
		if op.tag != opEqual {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	// clamp leading and trailing context
	if len(ops) > 0 && ops[0].tag == opEqual {
		op := ops[0]
		if op.i2-op.i1 > n {
			ops[0] = opcode{opEqual, op.i2 - n, op.i2, op.j2 - n, op.j2}
		}
	}
	if last := len(ops) - 1; ops[last].tag == opEqual {
		op := ops[last]
		if op.i2-op.i1 > n {
			ops[last] = opcode{opEqual, op.i1, op.i1 + n, op.j1, op.j1 + n}
		}
	}

	var groups [][]opcode
	var group []opcode
	for _, op := range ops {
		if op.tag == opEqual && op.i2-op.i1 > 2*n && len(group) > 0 {
			group = append(group, opcode{opEqual, op.i1, op.i1 + n, op.j1, op.j1 + n})
			groups = append(groups, group)
			group = []opcode{{opEqual, op.i2 - n, op.i2, op.j2 - n, op.j2}}
			continue
		}
		group = append(group, op)
	}
	if len(group) > 0 {
		groups = append(groups, group)
	}
	return groups
}
