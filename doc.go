/*
Package ordset provides an ordered, duplicate-free set container.

The set is backed by a self-balancing binary search tree (a red-black tree),
guaranteeing O(log n) insertion, lookup and removal, and in-order iteration
over elements in ascending order. Package structure is as follows:

■ rbtree: Package rbtree implements the red-black tree behind the set,
together with the node arena and the in-order walk.

The base package contains the types shared throughout: the ordering
capability for elements, the allocator collaborator contract, the error
kinds, and the public Set interface.

Sets are not safe for concurrent use. Clients needing concurrent access
have to wrap every operation in external synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordset
