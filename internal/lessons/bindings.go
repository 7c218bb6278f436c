package lessons

import (
	"github.com/leapstack-labs/tour/internal/cli/output"
)

var variableBindings = Lesson{
	Number: 4,
	Slug:   "variable-bindings",
	Title:  "Variable Bindings",
	Sections: []string{
		"Declarations",
		"Mutability",
		"Scope and Shadowing",
		"Declare First",
	},
	run: runVariableBindings,
}

func runVariableBindings(r *output.Renderer) {
	declarations(r)
	mutability(r)
	scopeAndShadowing(r)
	declareFirst(r)
}

func declarations(r *output.Renderer) {
	r.Section("Declarations")
	r.Println("Go binds values with var or, inside functions, with :=")

	anInteger := uint32(1)
	aBoolean := true
	unit := struct{}{}
	copiedInteger := anInteger

	r.Code(
		"anInteger := uint32(1)",
		"aBoolean := true",
		"unit := struct{}{}",
		"copiedInteger := anInteger",
	)
	r.Result("anInteger", anInteger)
	r.Result("aBoolean", aBoolean)
	r.Result("unit", unit)
	r.Result("copiedInteger", copiedInteger)

	r.Println("\nDeclared variables start at their zero value:")
	var (
		zi int
		zs string
		zp *int
		zm map[string]int
	)
	r.Result("var zi int", zi)
	r.Result("var zs string", zs == "")
	r.Result("var zp *int", zp == nil)
	r.Result("var zm map[string]int", zm == nil)
	r.Note("an unused local variable is a compile error, assign it to _ to discard it")
}

func mutability(r *output.Renderer) {
	r.Section("Mutability")
	r.Println("Every variable can be reassigned; constants and unexported fields give immutability")

	const immutable = 1
	mutable := 1
	r.Result("before mutation: mutable", mutable)
	mutable += 5
	r.Result("after mutation: mutable", mutable)
	r.Result("immutable", immutable)
	r.Note("immutable = 2 does not compile: cannot assign to immutable")
}

func scopeAndShadowing(r *output.Renderer) {
	r.Section("Scope and Shadowing")
	r.Println("Variables live in the block where they are declared")

	longLived := 1
	{
		shortLived := 2
		r.Result("inner shortLived", shortLived)

		longLived := int32(5)
		r.Result("inner longLived (shadowed)", longLived)
	}
	r.Note("shortLived is not in scope here")
	r.Result("outer longLived", longLived)

	r.Subtitle("Shadowing")
	shadowed := 1
	r.Result("before shadowing", shadowed)
	{
		shadowed := "abc"
		r.Result("shadowed in inner block", shadowed)
	}
	r.Result("outside inner block", shadowed)
	r.Note("the shadow analyzer from golang.org/x/tools reports these")
}

func declareFirst(r *output.Renderer) {
	r.Section("Declare First")
	r.Println("A variable can be declared first and assigned later")

	var aBinding int
	{
		x := 2
		aBinding = x * x
	}
	r.Result("aBinding", aBinding)

	var anotherBinding int
	r.Result("anotherBinding before assignment (zero value)", anotherBinding)
	anotherBinding = 1
	r.Result("anotherBinding", anotherBinding)
}
