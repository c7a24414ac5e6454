// Package disjointset provides a union-find structure over dense integer
// IDs, with path halving on find and union by size. It answers
// connectivity queries in near-constant amortized time and is the usual
// building block for grouping problems such as collapsing reporting chains
// or network components.
package disjointset
