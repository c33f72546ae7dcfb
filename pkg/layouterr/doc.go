// Package layouterr implements the layout core's error taxonomy: a
// hierarchical dotted-string error code per failure kind, plus a
// ValidationFailures bitset so callers can see every precondition
// violation from a single layout() call in one pass rather than one
// error at a time.
//
// The core never prints or logs (it returns values, the caller decides
// presentation); this package is how it reports what went wrong.
package layouterr
