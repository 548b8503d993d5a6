// Package intify converts ASCII decimal numbers into fixed-width integers.
//
// Parsing never allocates on success and never wraps: a value that doesn't fit into
// the requested type is reported as ErrOverflow. The Must* functions panic instead
// of returning an error and are meant for package-level variables, where a malformed
// literal is a programmer error:
//
//	var floor = intify.MustInt[int8]("-128")
package intify
