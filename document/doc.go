// Package document is the assembly engine. It turns an ordered series of
// append calls into a self-describing block sequence: every block carries fully
// resolved style attributes, so a serializer only needs to walk and encode.
//
// Appends are strictly ordered, the only ordering mechanism there is. The
// package is single threaded by design of its callers and does no locking.
package document
