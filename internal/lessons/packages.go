package lessons

import (
	"strings"

	"github.com/leapstack-labs/tour/internal/cli/output"
	"github.com/leapstack-labs/tour/internal/lessons/visibility"
	vnested "github.com/leapstack-labs/tour/internal/lessons/visibility/nested"
)

var packages = Lesson{
	Number: 10,
	Slug:   "packages",
	Title:  "Packages",
	Sections: []string{
		"Package Visibility",
		"Struct Visibility",
		"The `import` declaration",
		"`internal` packages",
	},
	run: runPackages,
}

func runPackages(r *output.Renderer) {
	r.Println("Go splits code into packages: one directory, one package, one namespace")
	r.Println("A package is a collection of files that share types, functions, variables and constants")

	packageVisibility(r)
	structVisibility(r)
	importDeclaration(r)
	internalPackages(r)
	fileHierarchy(r)
}

// printCall writes a message returned by the visibility package line by line.
func printCall(r *output.Renderer, msg string) {
	for _, line := range strings.Split(msg, "\n") {
		r.Println(line)
	}
}

func packageVisibility(r *output.Renderer) {
	r.Section("Package Visibility")
	r.Println("An identifier is exported when it starts with an upper-case letter")
	r.Println("Unexported identifiers are visible to every file of the same package, and nowhere else")

	printCall(r, visibility.Function())
	printCall(r, visibility.IndirectAccess())
	printCall(r, vnested.Function())
	printCall(r, visibility.CallNested())
	r.Note("visibility.privateFunction() does not compile: name privateFunction not exported by package visibility")
}

func structVisibility(r *output.Renderer) {
	r.Section("Struct Visibility")
	r.Println("Fields follow the same rule; a struct with unexported fields needs a constructor outside its package")

	openBox := visibility.OpenBox[string]{Contents: "public information"}
	r.Printf("The open box contains: %s\n", openBox.Contents)

	closedBox := visibility.NewClosedBox("classified information")
	r.Printf("The closed box is %s\n", closedBox.Describe())
	r.Note("closedBox.contents does not compile: closedBox.contents undefined (cannot refer to unexported field contents)")
}

func importDeclaration(r *output.Renderer) {
	r.Section("The `import` declaration")
	r.Println("import binds a package path to a name, optionally renamed")
	r.Code(
		"import (",
		"\t\"strings\"",
		"\tvnested \"github.com/leapstack-labs/tour/internal/lessons/visibility/nested\"",
		"\t_ \"embed\"          // imported for side effects only",
		"\t. \"math\"           // dot import, rarely a good idea",
		")",
	)
	r.Println("Unused imports are compile errors, just like unused variables")
}

func internalPackages(r *output.Renderer) {
	r.Section("`internal` packages")
	r.Println("A package under a directory named internal is importable only from the tree rooted at internal's parent")
	printCall(r, visibility.CallInternal())
	r.Note("importing visibility/internal/secret from this package does not compile: use of internal package not allowed")
}

func fileHierarchy(r *output.Renderer) {
	r.Subtitle("File Hierarchy")
	r.Println("Directories map to packages; a package's files can be split however reads best")
	r.Code(
		"internal/lessons/",
		"├── packages.go",
		"└── visibility/",
		"    ├── visibility.go",
		"    ├── nested/",
		"    │   └── nested.go",
		"    └── internal/",
		"        └── secret/",
		"            └── secret.go",
	)
}
