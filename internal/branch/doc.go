// Package branch models the studio hierarchy Show -> Category -> Group ->
// Unit -> Part -> Task as typed nodes bound to a schema and a show root.
//
// Branches carry no state beyond their resolved path. Every operation is a
// fresh read against the filesystem, so out-of-band changes by artists are
// always visible and there is no cache to invalidate. Concurrent creates
// are serialized by the filesystem itself: the loser of a mkdir race gets
// ErrExists.
package branch
