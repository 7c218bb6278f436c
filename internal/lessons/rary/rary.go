// Package rary is the library built and imported by the libraries lesson.
package rary

// PublicFunction is part of the library's API.
func PublicFunction() string {
	return "called rary's `PublicFunction()`"
}

func privateFunction() string {
	return "called rary's `privateFunction()`"
}

// IndirectAccess calls an unexported function on the caller's behalf.
func IndirectAccess() string {
	return "called rary's `IndirectAccess()`, that\n> " + privateFunction()
}
