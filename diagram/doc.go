// Package diagram turns a bst.Tree into a line-oriented graph description
// that an external diagramming tool can render.
//
// What
//
//   - Describe(t) returns Mermaid flowchart text: a "graph TD" header, then one
//     node declaration per distinct value and one directed edge per
//     parent→child link, in pre-order (node, left subtree, right subtree).
//   - Build(t) exposes the same statements as a Graph value so callers can
//     inspect vertices and edges or render them as Graphviz DOT.
//
// Identity by value
//
//	Nodes are identified by their integer value, not by node identity. Two
//	tree nodes holding the same value collapse into one declared diagram node
//	and edges from or to either of them meet at that single node. For input
//	5,5,5 the description declares node 5 once and contains the self edges
//	5 --> 5 twice. Callers needing a 1:1 node mapping must not rely on the
//	diagram for it.
//
// Output shape (Mermaid, input 2,1,3)
//
//	graph TD
//	    2["2"]
//	    2 --> 1
//	    1["1"]
//	    2 --> 3
//	    3["3"]
//
// The empty tree yields the header plus a single placeholder node:
//
//	graph TD
//	    Empty["Empty Tree"]
//
// Options
//
//   - WithFormat(FormatMermaid | FormatDOT)
//   - WithDirection("TD" | "TB" | "BT" | "LR" | "RL")
//   - WithEmptyLabel(label)
//
// Errors
//
//   - ErrUnknownFormat     from Render / ParseFormat for an unsupported format.
//   - ErrOptionViolation   from Render for an invalid direction or empty label.
//
// Describe never fails: invalid options fall back to the defaults.
package diagram
