package quadindex

import (
	"bytes"
	"strconv"

	"github.com/fmstephe/flib/funsafe"

	"github.com/kestrel-geo/quadindex/pkg/geom"
)

// Serialize renders the tree as a structural textual shape: each node is
// `{"type":"leaf"|"internal","boundary":{...},...}`, leaves carry
// `"entries":[{"point":{...},"value":...}]`, internal nodes carry
// `"children":[...]` in NW, NE, SW, SE order. valueFmt renders a single
// value's text; its output is inserted verbatim, so a caller wanting real
// JSON output is responsible for quoting/escaping it itself. This is a
// hand-written textual shape, not an encoding/json document — the engine
// has no dependency on encoding/json.
func Serialize[V any](t *Tree[V], valueFmt func(V) string) string {
	var buf bytes.Buffer
	writeTree(&buf, t.root, valueFmt)
	return funsafe.BytesToString(buf.Bytes())
}

type writeJob[V any] struct {
	n     *node[V]
	token string
}

// writeTree emits the node tree iteratively: an explicit stack of jobs
// stands in for the call stack a recursive writer would use, each job
// either rendering one node's own fields or emitting a literal token
// (a comma or a closing bracket) queued by its parent.
func writeTree[V any](buf *bytes.Buffer, root *node[V], valueFmt func(V) string) {
	stack := []writeJob[V]{{n: root}}
	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if job.n == nil {
			buf.WriteString(job.token)
			continue
		}

		n := job.n
		if n.isLeaf {
			buf.WriteString(`{"type":"leaf","boundary":`)
			writeRect(buf, n.boundary)
			buf.WriteString(`,"entries":[`)
			for i, e := range n.entries {
				if i > 0 {
					buf.WriteByte(',')
				}
				buf.WriteString(`{"point":`)
				writePoint(buf, e.Point)
				buf.WriteString(`,"value":`)
				buf.WriteString(valueFmt(e.Value))
				buf.WriteByte('}')
			}
			buf.WriteString(`]}`)
			continue
		}

		buf.WriteString(`{"type":"internal","boundary":`)
		writeRect(buf, n.boundary)
		buf.WriteString(`,"children":[`)

		stack = append(stack, writeJob[V]{token: `]}`})
		stack = append(stack, writeJob[V]{n: n.children[geom.SE]})
		stack = append(stack, writeJob[V]{token: ","})
		stack = append(stack, writeJob[V]{n: n.children[geom.SW]})
		stack = append(stack, writeJob[V]{token: ","})
		stack = append(stack, writeJob[V]{n: n.children[geom.NE]})
		stack = append(stack, writeJob[V]{token: ","})
		stack = append(stack, writeJob[V]{n: n.children[geom.NW]})
	}
}

func writeRect(buf *bytes.Buffer, r geom.Rect) {
	buf.WriteString(`{"x":`)
	buf.WriteString(formatF32(r.X))
	buf.WriteString(`,"y":`)
	buf.WriteString(formatF32(r.Y))
	buf.WriteString(`,"width":`)
	buf.WriteString(formatF32(r.W))
	buf.WriteString(`,"height":`)
	buf.WriteString(formatF32(r.H))
	buf.WriteByte('}')
}

func writePoint(buf *bytes.Buffer, p geom.Point) {
	buf.WriteString(`{"x":`)
	buf.WriteString(formatF32(p.X))
	buf.WriteString(`,"y":`)
	buf.WriteString(formatF32(p.Y))
	buf.WriteByte('}')
}

func formatF32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
