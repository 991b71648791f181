// Package dialer enumerates the phone numbers a chess knight can dial on a
// keypad.Keypad, one digit per hop.
//
// What:
//
//   - Enumerate(kp, startKey, length, opts...) walks every hop chain of
//     exactly length digits that starts on startKey and returns the
//     resulting numbers in depth-first order.
//   - Traversal order follows keypad.KnightOffsets at every level, so the
//     output is reproducible but not sorted.
//   - Revisits are allowed: 1→6→1 is a legal chain and yields "161".
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithOnNumber(fn)     hook invoked per completed number; error aborts.
//   - WithParallel(n)      fans the first hop's subtrees out to n workers and
//     merges them back into depth-first order.
//
// Complexity:
//
//   - Time:   O(N·L) where N = number of results and L = length.
//   - Memory: O(L) walker state plus O(N·L) for the result slice.
//
// Errors:
//
//   - ErrKeypadNil       if kp is nil.
//   - ErrInvalidLength   if length < 1.
//   - context.Canceled   if ctx is done.
//   - any error returned by the OnNumber hook, wrapped.
//
// An unknown startKey is not an error: Enumerate returns an empty slice.
package dialer
