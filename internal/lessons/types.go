package lessons

import (
	"fmt"
	"unsafe"

	"github.com/leapstack-labs/tour/internal/cli/output"
)

var types = Lesson{
	Number: 5,
	Slug:   "types",
	Title:  "Types",
	Sections: []string{
		"Casting",
		"Literals",
		"Inference",
		"Aliasing",
	},
	run: runTypes,
}

func runTypes(r *output.Renderer) {
	casting(r)
	typedLiterals(r)
	inference(r)
	aliasing(r)
}

func casting(r *output.Renderer) {
	r.Section("Casting")
	r.Println("Go never converts between numeric types implicitly; every conversion is written T(v)")

	decimal := 65.4321
	integer := uint8(decimal)
	character := rune(integer)
	r.Code("decimal := 65.4321", "integer := uint8(decimal)", "character := rune(integer)")
	r.Printf("Casting: %v -> %d -> %c\n", decimal, integer, character)
	r.Note("var integer uint8 = decimal does not compile: cannot use decimal (variable of type float64) as uint8 value")

	r.Subtitle("Wrap-around")
	r.Println("Converting a variable to a narrower integer type keeps the low-order bits")
	thousand := 1000
	minusOne := -1
	big := 128
	r.Result("uint16(1000)", uint16(thousand))
	r.Result("uint8(1000)", uint8(thousand))
	r.Result("uint8(-1)", uint8(minusOne))
	r.Result("int8(128)", int8(big))
	r.Result("int8(232)", int8(thousand%256))
	r.Note("constant conversions that overflow, like uint8(1000), are compile errors")
	r.Note("out-of-range float to integer conversions are implementation-defined")
}

func typedLiterals(r *output.Renderer) {
	r.Section("Literals")
	r.Println("Numeric literals are untyped constants; a conversion gives them a type")

	x := uint8(1)
	y := uint32(2)
	z := float32(3)
	i := 1
	f := 1.0

	r.Result("unsafe.Sizeof(uint8(1))", unsafe.Sizeof(x))
	r.Result("unsafe.Sizeof(uint32(2))", unsafe.Sizeof(y))
	r.Result("unsafe.Sizeof(float32(3))", unsafe.Sizeof(z))
	r.Result("unsafe.Sizeof(1)", unsafe.Sizeof(i))
	r.Result("unsafe.Sizeof(1.0)", unsafe.Sizeof(f))
}

func inference(r *output.Renderer) {
	r.Section("Inference")
	r.Println("The type of a := declaration comes from the right-hand side")

	elem := uint8(5)
	vec := make([]uint8, 0, 4)
	vec = append(vec, elem)

	r.Code("elem := uint8(5)", "vec := make([]uint8, 0, 4)", "vec = append(vec, elem)")
	r.Result("vec", vec)
	r.Result("fmt.Sprintf(\"%T\", vec)", fmt.Sprintf("%T", vec))

	r.Println("\nGeneric functions infer type parameters from arguments:")
	r.Result("maxOf(3, 7)", maxOf(3, 7))
	r.Result("maxOf(2.5, 1.5)", maxOf(2.5, 1.5))
	r.Result("maxOf(\"a\", \"b\")", maxOf("a", "b"))
}

type ordered interface {
	~int | ~int64 | ~float64 | ~string
}

func maxOf[T ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// nanoSecond is a distinct type; inch is an alias for the same type.
type (
	nanoSecond uint64
	inch       = uint64
	u64        = uint64
)

func aliasing(r *output.Renderer) {
	r.Section("Aliasing")
	r.Println("type T = U declares an alias; type T U declares a new named type")
	r.Code(
		"type nanoSecond uint64",
		"type inch = uint64",
		"type u64 = uint64",
	)

	var nanoseconds nanoSecond = 5
	var inches inch = 2
	var plain u64 = 3

	// Aliases mix freely; a defined type needs an explicit conversion.
	total := inches + plain + uint64(nanoseconds)
	r.Printf("%d nanoseconds + %d inches + %d unsigned 64-bit = %d unit?\n", nanoseconds, inches, plain, total)
	r.Result("fmt.Sprintf(\"%T\", inches)", fmt.Sprintf("%T", inches))
	r.Result("fmt.Sprintf(\"%T\", nanoseconds)", fmt.Sprintf("%T", nanoseconds))
}
