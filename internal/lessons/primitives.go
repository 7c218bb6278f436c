package lessons

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/leapstack-labs/tour/internal/cli/output"
)

var primitives = Lesson{
	Number: 2,
	Slug:   "primitives",
	Title:  "Primitives",
	Sections: []string{
		"Scalar Types",
		"Compound Types",
		"Variable Annotation",
		"Literals",
		"Operators",
		"Tuples",
		"Arrays and Slices",
	},
	run: runPrimitives,
}

func runPrimitives(r *output.Renderer) {
	scalarTypes(r)
	compoundTypes(r)
	variableAnnotation(r)
	primitiveLiterals(r)
	operators(r)
	tuples(r)
	arraysAndSlices(r)
}

func scalarTypes(r *output.Renderer) {
	r.Section("Scalar Types")
	r.Println("signed integers:   int8, int16, int32, int64 and int (pointer size)")
	r.Println("unsigned integers: uint8, uint16, uint32, uint64, uint and uintptr")
	r.Println("floating point:    float32, float64")
	r.Println("complex:           complex64, complex128")
	r.Println("byte is an alias for uint8, rune is an alias for int32 (a Unicode code point)")
	r.Println("bool is either true or false")
	r.Println("string is an immutable sequence of bytes, usually UTF-8")

	r.Println()
	r.Result("unsafe.Sizeof(int(0))", unsafe.Sizeof(int(0)))
	r.Result("unsafe.Sizeof(rune(0))", unsafe.Sizeof(rune(0)))
	r.Result("math.MaxInt8", math.MaxInt8)
	r.Result("math.MinInt16", math.MinInt16)
	r.Result("math.MaxUint32", uint64(math.MaxUint32))
}

func compoundTypes(r *output.Renderer) {
	r.Section("Compound Types")
	r.Println("arrays like [3]int{1, 2, 3} have their length in the type")
	r.Println("structs group named fields; Go has no anonymous tuple type")
	r.Println("slices, maps and channels are reference-like headers over shared storage")
}

func variableAnnotation(r *output.Renderer) {
	r.Section("Variable Annotation")
	r.Println("Variables can be given a type explicitly, or have it inferred from the value")

	var logical = true
	var aFloat float64 = 1.0
	anInteger := 5
	var defaultFloat = 3.0
	var defaultInteger = 7

	r.Code(
		"var logical = true",
		"var aFloat float64 = 1.0",
		"anInteger := 5",
		"var defaultFloat = 3.0",
		"var defaultInteger = 7",
	)
	r.Result("logical", fmt.Sprintf("%v (%T)", logical, logical))
	r.Result("aFloat", fmt.Sprintf("%v (%T)", aFloat, aFloat))
	r.Result("anInteger", fmt.Sprintf("%v (%T)", anInteger, anInteger))
	r.Result("defaultFloat", fmt.Sprintf("%v (%T)", defaultFloat, defaultFloat))
	r.Result("defaultInteger", fmt.Sprintf("%v (%T)", defaultInteger, defaultInteger))

	r.Println("\nA variable's type is fixed once declared, but its value may change:")
	mutable := 12
	r.Code("mutable := 12", "mutable = 21")
	mutable = 21
	r.Result("mutable", mutable)
	r.Note(`mutable = true does not compile: cannot use true (untyped bool constant) as int value`)
}

func primitiveLiterals(r *output.Renderer) {
	r.Section("Literals")
	r.Println("Integers can be written in several bases, and _ groups digits")
	r.Result("0x80", 0x80)
	r.Result("0o70", 0o70)
	r.Result("0b0011_1000", 0b0011_1000)
	r.Result("1_000_000", 1_000_000)
	r.Result("1e3", 1e3)
	r.Result("'a'", 'a')
	r.Result("\"\\u00e9\"", "\u00e9")
	r.Note("untyped constants take the type their context needs")
}

func operators(r *output.Renderer) {
	r.Section("Operators")
	r.Result("1 + 2", 1+2)
	r.Result("1 - 2", 1-2)
	one := uint32(1)
	r.Result("one - 2 (one is a uint32)", one-2)
	r.Result("true && false", true && false)
	r.Result("true || false", true || false)
	r.Result("!true", !true)

	r.Println()
	r.Result("0b0011 & 0b0101", fmt.Sprintf("%04b", 0b0011&0b0101))
	r.Result("0b0011 | 0b0101", fmt.Sprintf("%04b", 0b0011|0b0101))
	r.Result("0b0011 ^ 0b0101", fmt.Sprintf("%04b", 0b0011^0b0101))
	r.Result("0b0011 &^ 0b0101", fmt.Sprintf("%04b", 0b0011&^0b0101))
	r.Result("1 << 5", 1<<5)
	r.Result("0x80 >> 2", fmt.Sprintf("0x%x", 0x80>>2))
}

// reverse swaps a pair; multiple return values stand in for tuples.
func reverse(i int, b bool) (bool, int) {
	return b, i
}

type matrix struct {
	a, b, c, d float32
}

func (m matrix) String() string {
	return fmt.Sprintf("( %v %v )\n( %v %v )", m.a, m.b, m.c, m.d)
}

func transpose(m matrix) matrix {
	return matrix{m.a, m.c, m.b, m.d}
}

func tuples(r *output.Renderer) {
	r.Section("Tuples")
	r.Println("Functions return several values; structs hold heterogeneous groups")

	b, i := reverse(1, true)
	r.Code("func reverse(i int, b bool) (bool, int) { return b, i }")
	r.Result("reverse(1, true)", fmt.Sprintf("%v %v", b, i))

	pair := struct {
		A int
		B bool
	}{1, true}
	r.Result("struct{A int; B bool}{1, true}", fmt.Sprintf("%+v", pair))

	r.Subtitle("Activity: Matrix")
	m := matrix{1.1, 1.2, 2.1, 2.2}
	r.Println("Matrix:")
	r.Println(m)
	r.Println("Transpose:")
	r.Println(transpose(m))
}

// analyzeSlice reports on a slice borrowed from an array or another slice.
func analyzeSlice(r *output.Renderer, s []int) {
	r.Printf("first element of the slice: %d\n", s[0])
	r.Printf("the slice has %d elements\n", len(s))
}

func arraysAndSlices(r *output.Renderer) {
	r.Section("Arrays and Slices")

	xs := [5]int{1, 2, 3, 4, 5}
	var ys [500]int
	r.Code("xs := [5]int{1, 2, 3, 4, 5}", "var ys [500]int")
	r.Result("xs[0]", xs[0])
	r.Result("xs[1]", xs[1])
	r.Result("len(xs)", len(xs))
	r.Result("unsafe.Sizeof(xs)", unsafe.Sizeof(xs))

	r.Println("\nArrays can be sliced:")
	analyzeSlice(r, xs[:])
	r.Println("\nSlices can point at a section of an array:")
	analyzeSlice(r, ys[1:4])

	r.Println("\nIndexing past the end panics at run time:")
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				r.Result("xs[5]", fmt.Sprintf("panic: %v", rec))
			}
		}()
		idx := len(xs)
		_ = xs[:][idx]
	}()
}
