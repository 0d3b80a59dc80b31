// Package container provides the set types the nop set codecs decode into.
// All three share one wire format; they differ only in iteration order:
// Sorted iterates in ascending order, Hash in unspecified order and Linked in
// insertion order.
package container
