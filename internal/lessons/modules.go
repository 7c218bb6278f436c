package lessons

import (
	"runtime"

	"github.com/leapstack-labs/tour/internal/cli/output"
)

var modules = Lesson{
	Number: 12,
	Slug:   "modules",
	Title:  "Modules",
	Sections: []string{
		"Creating a project",
		"More than one Binary",
		"Testing",
		"Code Generation and Build Constraints",
	},
	run: runModules,
}

func runModules(r *output.Renderer) {
	r.Println("The go command builds, tests and manages dependencies; there is no separate package manager")
	r.Println("It brings:")
	r.Println("\tDependency management through modules and the module proxy")
	r.Println("\tAwareness of unit tests, benchmarks, fuzz tests and examples")
	r.Println("\tReproducible builds from go.mod and go.sum")
	r.Println("\nThis lesson is mostly text, since the go command is external to a Go program")

	creatingAProject(r)
	goMod(r)
	moduleDependencies(r)
	buildingAProject(r)
	multipleBinaries(r)
	testingSection(r)
	codeGeneration(r)
}

func creatingAProject(r *output.Renderer) {
	r.Section("Creating a project")
	r.Println("A module starts with go mod init and the path it will be imported by:")
	r.Code("mkdir foo && cd foo", "go mod init example.com/foo")
	r.Println("\nA minimal executable module looks like this:")
	r.Code(
		"foo/",
		" ├── go.mod",
		" └── main.go",
	)
	r.Println("main.go - package main with a func main(), the program's entry point")
	r.Println("go.mod  - the module definition: its path, Go version and requirements")
}

func goMod(r *output.Renderer) {
	r.Subtitle("go.mod")
	r.Println("A new go.mod is short:")
	r.Code(
		"module example.com/foo",
		"",
		"go 1.24",
	)
	r.Println("\nmodule - the path other code imports this module's packages by")
	r.Println("go      - the minimum Go version, which also selects language semantics")
	r.Println("toolchain, require, replace, exclude and retract directives follow as needed")
	r.Println("\nThe reference lives at https://go.dev/ref/mod")
}

func moduleDependencies(r *output.Renderer) {
	r.Subtitle("Dependencies")
	r.Println("go get records a requirement and downloads the module into the module cache")
	r.Code("go get github.com/spf13/cobra@v1.10.2")
	r.Println("\nwhich adds to go.mod:")
	r.Code(
		"require github.com/spf13/cobra v1.10.2",
	)
	r.Println("\nModules can also come from a local directory or a fork:")
	r.Code(
		"replace example.com/bar => ../bar",
		"replace example.com/baz => github.com/someone/baz v1.2.3",
	)
	r.Println("go.sum pins the expected cryptographic hash of every module version used")
	r.Println("go mod tidy adds missing requirements and removes unused ones")
}

func buildingAProject(r *output.Renderer) {
	r.Subtitle("Building your project")
	r.Println("The go command resolves dependencies, downloads what is missing and rebuilds only what changed")
	r.Code(
		"go build ./...   # build every package in the module",
		"go run .         # build and run the main package in the current directory",
		"go vet ./...     # report suspicious constructs",
	)
	r.Printf("This binary was built for %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func multipleBinaries(r *output.Renderer) {
	r.Section("More than one Binary")
	r.Println("By convention each executable lives in its own directory under cmd/")
	r.Code(
		"foo/",
		" ├── go.mod",
		" ├── cmd/",
		" │    ├── foo/main.go",
		" │    └── foo-admin/main.go",
		" └── internal/",
		"      └── ...",
	)
	r.Println("go build ./cmd/foo-admin builds just that one, go install ./cmd/... builds them all")
}

func testingSection(r *output.Renderer) {
	r.Section("Testing")
	r.Println("Tests live next to the code they test, in files ending in _test.go")
	r.Code(
		"foo/",
		" ├── go.mod",
		" └── banner/",
		"      ├── banner.go",
		"      └── banner_test.go",
	)
	r.Println("Test functions look like func TestXxx(t *testing.T)")
	r.Code(
		"go test ./...                # run every test",
		"go test -run TestTitle ./... # -run takes a regular expression",
		"go test -race ./...          # with the race detector",
		"go test -bench . ./...       # benchmarks too",
	)
	r.Println("\nPackages are tested in parallel; tests inside a package run one at a time unless they call t.Parallel()")
}

func codeGeneration(r *output.Renderer) {
	r.Section("Code Generation and Build Constraints")
	r.Println("The go command never runs arbitrary code during a build")
	r.Println("Generated code is produced ahead of time by go generate and committed:")
	r.Code("//go:generate stringer -type=BannerLevel")
	r.Println("\nBuild constraints select files per platform or tag:")
	r.Code(
		"//go:build linux && !cgo",
		"",
		"// or by file name: exec_linux.go, exec_windows_amd64.go",
	)

	r.Subtitle("go generate environment variables")
	r.Println("Commands run by go generate see:")
	r.Println("\tGOARCH    - the execution architecture (arm, amd64, etc.)")
	r.Println("\tGOOS      - the execution operating system (linux, windows, etc.)")
	r.Println("\tGOFILE    - the base name of the file")
	r.Println("\tGOLINE    - the line number of the directive in the source file")
	r.Println("\tGOPACKAGE - the name of the package of the file containing the directive")
	r.Println("\tGOROOT    - the GOROOT directory for the 'go' command that invoked the generator")
	r.Println("\tDOLLAR    - a dollar sign")
	r.Println("\tPATH      - the $PATH of the parent process, with $GOROOT/bin placed at the beginning")
	r.Println("\nRead them with os.Getenv(\"GOFILE\") like any other environment variable")
}
