package lessons

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/leapstack-labs/tour/internal/cli/output"
)

var functions = Lesson{
	Number: 9,
	Slug:   "functions",
	Title:  "Functions",
	Sections: []string{
		"Functions",
		"Methods",
		"Closures",
		"Higher Order Functions",
		"Diverging Functions",
	},
	run: runFunctions,
}

func runFunctions(r *output.Renderer) {
	plainFunctions(r)
	methods(r)
	closures(r)
	closureCapture(r)
	closuresAsInputs(r)
	closuresAsOutputs(r)
	higherOrder(r)
	diverging(r)
}

func isDivisibleBy(lhs, rhs uint32) bool {
	if rhs == 0 {
		return false
	}
	return lhs%rhs == 0
}

func fizzbuzzWord(n uint32) string {
	switch {
	case isDivisibleBy(n, 15):
		return "fizzbuzz"
	case isDivisibleBy(n, 3):
		return "fizz"
	case isDivisibleBy(n, 5):
		return "buzz"
	default:
		return fmt.Sprint(n)
	}
}

func fizzbuzzTo(n uint32) []string {
	out := make([]string, 0, n)
	for i := uint32(1); i <= n; i++ {
		out = append(out, fizzbuzzWord(i))
	}
	return out
}

func plainFunctions(r *output.Renderer) {
	r.Section("Functions")
	r.Println("Functions are declared with func; parameters and results are typed")
	r.Code(
		"func isDivisibleBy(lhs, rhs uint32) bool {",
		"\tif rhs == 0 {",
		"\t\treturn false",
		"\t}",
		"\treturn lhs%rhs == 0",
		"}",
	)
	r.Result("isDivisibleBy(10, 0)", isDivisibleBy(10, 0))
	r.Result("fizzbuzzTo(15)", strings.Join(fizzbuzzTo(15), " "))
}

type methodPoint struct {
	x, y float64
}

func origin() methodPoint {
	return methodPoint{x: 0, y: 0}
}

func newMethodPoint(x, y float64) methodPoint {
	return methodPoint{x: x, y: y}
}

type methodRectangle struct {
	p1, p2 methodPoint
}

// area uses a value receiver: it reads a copy.
func (rect methodRectangle) area() float64 {
	return math.Abs((rect.p1.x - rect.p2.x) * (rect.p1.y - rect.p2.y))
}

func (rect methodRectangle) perimeter() float64 {
	return 2 * (math.Abs(rect.p1.x-rect.p2.x) + math.Abs(rect.p1.y-rect.p2.y))
}

// translate uses a pointer receiver: it mutates the caller's value.
func (rect *methodRectangle) translate(x, y float64) {
	rect.p1.x += x
	rect.p2.x += x
	rect.p1.y += y
	rect.p2.y += y
}

// methodPair owns its contents; destroy consumes it by clearing them.
type methodPair struct {
	first, second *int
}

func (p *methodPair) destroy() string {
	msg := fmt.Sprintf("Destroying Pair(%d, %d)", *p.first, *p.second)
	p.first, p.second = nil, nil
	return msg
}

func methods(r *output.Renderer) {
	r.Section("Methods")
	r.Println("Methods are functions with a receiver; pointer receivers can mutate it")

	rect := methodRectangle{p1: origin(), p2: newMethodPoint(3, 4)}
	r.Result("rect.perimeter()", rect.perimeter())
	r.Result("rect.area()", rect.area())

	square := methodRectangle{p1: origin(), p2: newMethodPoint(1, 1)}
	square.translate(1, 1)
	r.Result("square after translate(1, 1)", fmt.Sprintf("%+v", square))

	a, b := 1, 2
	p := &methodPair{first: &a, second: &b}
	r.Println(p.destroy())
	r.Result("p.first == nil", p.first == nil)
}

func closures(r *output.Renderer) {
	r.Section("Closures")
	r.Println("Function literals capture variables from the enclosing scope")

	closureAnnotated := func(i int32) int32 { return i + 1 }
	one := func() int32 { return 1 }

	i := int32(1)
	r.Result("closureAnnotated(1)", closureAnnotated(i))
	r.Result("one()", one())
}

func closureCapture(r *output.Renderer) {
	r.Subtitle("Capturing")
	r.Println("Captured variables are shared by reference, not copied")

	color := "green"
	printColor := func() string { return "color: " + color }
	r.Println(printColor())
	color = "red"
	r.Println(printColor())

	count := 0
	inc := func() int {
		count++
		return count
	}
	inc()
	inc()
	r.Result("count after two calls to inc()", count)

	r.Println("\nTo capture a value instead, copy it first:")
	var funcs []func() int
	for i := range 3 {
		funcs = append(funcs, func() int { return i * i })
	}
	var results []string
	for _, f := range funcs {
		results = append(results, fmt.Sprint(f()))
	}
	r.Result("squares from closures", strings.Join(results, " "))
	r.Note("since Go 1.22 each loop iteration declares a fresh i")
}

// apply calls f; closures of any shape that match the signature are accepted.
func apply(f func()) {
	f()
}

func applyTo3(f func(int) int) int {
	return f(3)
}

func closuresAsInputs(r *output.Renderer) {
	r.Subtitle("As Input Parameters")
	greeting := "hello"
	farewell := "goodbye"

	var said []string
	apply(func() {
		said = append(said, "I said "+greeting)
		farewell = strings.ToUpper(farewell) + "!!!"
		said = append(said, "Then I screamed "+farewell)
	})
	for _, s := range said {
		r.Println(s)
	}

	double := func(x int) int { return 2 * x }
	r.Result("applyTo3(double)", applyTo3(double))
}

func createFn() func() string {
	text := "Fn"
	return func() string { return "This is a: " + text }
}

func createCounter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

func closuresAsOutputs(r *output.Renderer) {
	r.Subtitle("As Output Parameters")
	fn := createFn()
	r.Println(fn())

	counter := createCounter()
	counter()
	counter()
	r.Result("third call to counter()", counter())
}

func isOdd(n uint32) bool {
	return n%2 == 1
}

func higherOrder(r *output.Renderer) {
	r.Section("Higher Order Functions")
	r.Println("Find the sum of all the squared odd numbers under 1000")

	const upper = 1000

	// Imperative approach.
	acc := uint32(0)
	for n := uint32(0); ; n++ {
		nSquared := n * n
		if nSquared >= upper {
			break
		}
		if isOdd(nSquared) {
			acc += nSquared
		}
	}
	r.Result("imperative style", acc)

	// Functional approach.
	squares := mapSlice(rangeUint32(0, 32), func(n uint32) uint32 { return n * n })
	below := takeWhile(squares, func(n uint32) bool { return n < upper })
	odd := filter(below, isOdd)
	sum := reduce(odd, 0, func(a, b uint32) uint32 { return a + b })
	r.Result("functional style", sum)

	words := []string{"pear", "fig", "banana"}
	sort.Slice(words, func(i, j int) bool { return len(words[i]) < len(words[j]) })
	r.Result("sort.Slice by length", words)
}

func rangeUint32(from, to uint32) []uint32 {
	out := make([]uint32, 0, to-from)
	for n := from; n < to; n++ {
		out = append(out, n)
	}
	return out
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func takeWhile[T any](in []T, pred func(T) bool) []T {
	for i, v := range in {
		if !pred(v) {
			return in[:i]
		}
	}
	return in
}

func filter[T any](in []T, pred func(T) bool) []T {
	var out []T
	for _, v := range in {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func reduce[T, A any](in []T, init A, f func(A, T) A) A {
	acc := init
	for _, v := range in {
		acc = f(acc, v)
	}
	return acc
}

func diverge() {
	panic("This call never returns.")
}

func sumOddNumbers(upTo uint32) uint32 {
	acc := uint32(0)
	for i := uint32(0); i < upTo; i++ {
		if i%2 == 0 {
			continue
		}
		acc += i
	}
	return acc
}

func diverging(r *output.Renderer) {
	r.Section("Diverging Functions")
	r.Println("A function that always panics never returns; recover stops the unwinding")

	r.Result("sumOddNumbers(9)", sumOddNumbers(9))

	msg := func() (msg string) {
		defer func() {
			if rec := recover(); rec != nil {
				msg = fmt.Sprint("recovered: ", rec)
			}
		}()
		diverge()
		return "unreachable"
	}()
	r.Println(msg)
}
