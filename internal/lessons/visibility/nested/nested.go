// Package nested is a child of visibility in the directory tree only;
// Go packages have no parent/child access rules.
package nested

// Function is exported.
func Function() string {
	return "called `visibility/nested.Function()`"
}
