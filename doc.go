// Package hashset provides HashSet, a generic set built on a chained hash
// table.
//
// Elements are kept in an array of buckets whose length is always a power of
// two. An element lives in the bucket at index hash(element) mod len(buckets);
// elements that collide share a bucket and keep their insertion order there.
// Before an insertion would push the ratio of elements to buckets over the
// load factor (0.75 by default), the bucket array is doubled and every element
// is rehashed into the new array.
//
// Overview
//
//  1. Create a set with New, or NewWithConfig to choose the load factor,
//     initial bucket count and logger. The zero value is also ready to use.
//  2. Insert with Add, which reports whether the value was new, or chain
//     insertions with With.
//  3. Query with Contains and Len, walk elements with All, and inspect the
//     bucket distribution with Stats.
//
// Elements are rendered and iterated in bucket-index order, then insertion
// order within a bucket. That is not global insertion order.
//
// A HashSet is not safe for concurrent use.
package hashset
