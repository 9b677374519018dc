// Package bstviz builds Binary Search Trees from user-supplied integers and
// describes them for display: height, node count, balance, inorder order
// and a line-oriented diagram.
//
// What is bstviz?
//
//	A small, dependency-light engine plus a CLI front end:
//		• bst/        ordered insertion, Height, Count, IsBalanced, Inorder, level walks
//		• diagram/    Mermaid flowchart (and Graphviz DOT) descriptions of a tree
//		• input/      comma-separated text → []int with ParseError / ValidationError
//		• preset/     named example arrays and insertion-order generators
//		• visualize/  one request → Result (stats + diagram), JSON-ready
//		• cmd/bstviz  command-line presenter (tables, level plot, JSON)
//
// Insertion order matters:
//
//	4,2,6,1,3,5,7          1,2,3,4,5,6,7
//
//	      4                1
//	    /   \               \
//	   2     6               2
//	  / \   / \               \
//	 1   3 5   7               …7
//
// Both trees have the inorder sequence 1..7; the first has height 3 and is
// balanced, the second has height 7 and is not.
//
//	go install github.com/katalvlaran/bstviz/cmd/bstviz@latest
package bstviz
