// Package secret is importable only from within internal/lessons/visibility.
package secret

// Function is exported, but only to the visibility tree.
func Function() string {
	return "called `visibility/internal/secret.Function()`"
}
