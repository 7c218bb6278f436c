package lessons

import (
	"github.com/leapstack-labs/tour/internal/cli/output"
	"github.com/leapstack-labs/tour/internal/lessons/rary"
)

var libraries = Lesson{
	Number:   11,
	Slug:     "libraries",
	Title:    "Libraries",
	Sections: []string{"Building and Importing a Library"},
	run:      runLibraries,
}

func runLibraries(r *output.Renderer) {
	r.Println("The package is Go's unit of compilation; a module is its unit of versioning and release")
	r.Println("The go command compiles each package once and caches the result, keyed by its inputs")

	r.Println("\nA main package builds an executable; any other package builds a library archive")
	r.Code(
		"go build ./internal/lessons/rary   # compiles and discards the archive",
		"go build -o tour ./cmd/tour        # links an executable",
		"go install ./cmd/tour              # builds into $GOBIN",
	)

	r.Section("Building and Importing a Library")
	r.Println("Import a library by its package path; the same exported/unexported rules apply")
	r.Code(`import "github.com/leapstack-labs/tour/internal/lessons/rary"`)

	printCall(r, rary.PublicFunction())
	printCall(r, rary.IndirectAccess())
	r.Note("rary.privateFunction() does not compile")
}
