// Package visualize is the boundary between the tree engine and whatever
// presents it. One call turns raw input text into a Result: the parsed
// input, the tree statistics (height, node count, balance, inorder order)
// and the diagram description string.
//
// Flow
//
//	text ──input.Parse──▶ []int ──bst.Build──▶ *bst.Tree ──Analyze──▶ Stats
//	                                                   └──diagram.Describe──▶ Diagram
//
// Errors from input.Parse (*input.ParseError, *input.ValidationError) are
// returned unchanged and no Result is produced. Once values are parsed
// nothing else can fail.
//
// Results are plain values: they share no state with the tree and are
// safe to hand to another goroutine or serialize as JSON.
package visualize
