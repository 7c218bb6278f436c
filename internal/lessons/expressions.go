package lessons

import (
	"github.com/leapstack-labs/tour/internal/cli/output"
)

var expressions = Lesson{
	Number:   7,
	Slug:     "expressions",
	Title:    "Expressions",
	Sections: []string{"Statements and Expressions", "Blocks as Values"},
	run:      runExpressions,
}

func runExpressions(r *output.Renderer) {
	r.Section("Statements and Expressions")
	r.Println("A Go program is mostly statements; assignments and declarations are not expressions")
	r.Code(
		"x := 5     // declaration statement",
		"x++        // increment statement, x++ cannot be used as a value",
		"x + 1      // expression, but unused expressions do not compile",
	)

	r.Section("Blocks as Values")
	r.Println("Blocks do not produce values. An immediately-invoked function literal does")

	x := 5
	y := func() int {
		xSquared := x * x
		xCube := xSquared * x
		return xCube + xSquared + x
	}()
	z := func() struct{} {
		_ = 2 * x
		return struct{}{}
	}()

	r.Code(
		"y := func() int {",
		"\txSquared := x * x",
		"\txCube := xSquared * x",
		"\treturn xCube + xSquared + x",
		"}()",
	)
	r.Result("x", x)
	r.Result("y", y)
	r.Result("z", z)
	r.Note("a function literal with no return value cannot be assigned at all")
}
