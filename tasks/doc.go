// Package tasks runs the numeric tasks that drive a buffer.Buffer: appending
// the sum and average of the contents, deriving a delimiter from the
// negative elements, and scaling every third element by that delimiter.
package tasks
