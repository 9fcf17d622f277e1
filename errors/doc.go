/*
Package errors implements custom error interfaces for bazaar.

Reuse the root errors declared in this package whenever possible. An
extension that needs its own category registers it with Register(code,
description), picking a code from the range reserved for that extension.

Create instances at the point of failure with Wrap, Wrapf or Err.New so that a
stacktrace is attached. Only the innermost wrap records the stack.

Once you have an error, use fmt to get more context:

	%s is just the error message
	%+v is the full stack trace
*/
package errors
