/*
Package rbtree implements the red-black tree behind ordered sets.

A red-black tree is a binary search tree with one extra bit of state per
node, its color, constrained by the classic invariants (Cormen et al.,
Introduction to Algorithms, chapters 13–14):

▪ every node is either red or black,
▪ the root and every leaf (sentinel) is black,
▪ a red node has only black children,
▪ every path from a node down to a descendant leaf contains the same
number of black nodes.

Together these bound the height of a tree with n nodes by 2·log2(n+1),
which makes insertion, lookup and removal O(log n). A single shared,
always-black, valueless sentinel node stands in for every absent child
and for the link above the root, so the rotation and fixup code never
tests for nil pointers.

Trees are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rbtree
