package lessons

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/tour/internal/cli/output"
)

var flowControl = Lesson{
	Number: 8,
	Slug:   "flow-control",
	Title:  "Flow Control",
	Sections: []string{
		"`if` and `else`",
		"(Infinite) `for`",
		"while-style `for`",
		"`for` and `range`",
		"`switch`",
	},
	run: runFlowControl,
}

func runFlowControl(r *output.Renderer) {
	ifElse(r)
	infiniteFor(r)
	nestingAndLabels(r)
	returningFromLoops(r)
	whileFor(r)
	forRange(r)
	fizzBuzzRange(r)
	switchFlow(r)
	typeSwitch(r)
	switchGuards(r)
}

func ifElse(r *output.Renderer) {
	r.Section("`if` and `else`")
	r.Println("Conditions need no parentheses, braces are mandatory, and if is a statement")

	for _, n := range []int{5, -5, 0} {
		var sign string
		if n < 0 {
			sign = "negative"
		} else if n > 0 {
			sign = "positive"
		} else {
			sign = "zero"
		}
		r.Printf("%d is %s\n", n, sign)
	}

	n := 5
	bigN := n
	if n > -10 && n < 10 {
		r.Println("and is a small number, increase ten-fold")
		bigN = 10 * n
	} else {
		r.Println("and is a big number, halve the number")
		bigN = n / 2
	}
	r.Printf("%d -> %d\n", n, bigN)

	r.Subtitle("if with a short statement")
	if v := n * n; v > 20 {
		r.Printf("v := n * n is %d, which is over 20\n", v)
	}
	r.Note("v is only in scope inside the if and its else branches")
}

func infiniteFor(r *output.Renderer) {
	r.Section("(Infinite) `for`")
	r.Println("for with no condition loops until break or return")

	count := 0
	r.Println("Let's count until infinity!")
	for {
		count++
		if count == 3 {
			r.Println("three")
			continue
		}
		r.Println(count)
		if count == 5 {
			r.Println("OK, that's enough")
			break
		}
	}
}

func nestingAndLabels(r *output.Renderer) {
	r.Subtitle("Nesting and Labels")
	r.Println("Labels let break and continue target an outer loop")

	r.Println("Entered the outer loop")
outer:
	for {
		r.Println("Entered the inner loop")
		for {
			// break would only exit the inner loop.
			break outer
		}
	}
	r.Println("Exited the outer loop")
}

func returningFromLoops(r *output.Renderer) {
	r.Subtitle("Returning from Loops")
	r.Println("A loop is a statement; assign before break, or wrap it in a function and return")

	counter := 0
	result := func() int {
		for {
			counter++
			if counter == 10 {
				return counter * 2
			}
		}
	}()
	r.Result("result", result)
}

func whileFor(r *output.Renderer) {
	r.Section("while-style `for`")
	r.Println("for with only a condition is Go's while loop")

	var lines []string
	n := 1
	for n < 16 {
		switch {
		case n%15 == 0:
			lines = append(lines, "fizzbuzz")
		case n%3 == 0:
			lines = append(lines, "fizz")
		case n%5 == 0:
			lines = append(lines, "buzz")
		default:
			lines = append(lines, fmt.Sprint(n))
		}
		n++
	}
	r.Println(strings.Join(lines, " "))
}

func forRange(r *output.Renderer) {
	r.Section("`for` and `range`")
	r.Println("range iterates over integers, slices, strings, maps and channels")

	r.Subtitle("Ranging over an integer")
	var count []string
	for i := range 4 {
		count = append(count, fmt.Sprint(i))
	}
	r.Result("for i := range 4", strings.Join(count, " "))

	r.Subtitle("Ranging over a slice")
	names := []string{"Bob", "Frank", "Gordon"}
	for i, name := range names {
		greeting := "Hello " + name
		if name == "Gordon" {
			greeting = "There is a gopher among us!"
		}
		r.Printf("%d: %s\n", i, greeting)
	}

	r.Println("\nThe value is a copy; write through the index to modify the slice:")
	for i := range names {
		if names[i] == "Gordon" {
			names[i] = "Gordon the Gopher"
		}
	}
	r.Result("names", names)

	r.Subtitle("Ranging over a string")
	var runes []string
	for i, ch := range "héllo" {
		runes = append(runes, fmt.Sprintf("%d:%c", i, ch))
	}
	r.Result(`for i, ch := range "héllo"`, strings.Join(runes, " "))
	r.Note("the index is a byte offset, so it skips over multi-byte runes")

	r.Subtitle("Ranging over a map")
	ages := map[string]int{"Alice": 31, "Bob": 27, "Carol": 45}
	keys := make([]string, 0, len(ages))
	for k := range ages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.Printf("%s is %d\n", k, ages[k])
	}
	r.Note("map iteration order is unspecified; sort the keys for stable output")
}

func fizzBuzzRange(r *output.Renderer) {
	r.Subtitle("FizzBuzz with range")
	var lines []string
	for n := 1; n <= 15; n++ {
		word := ""
		if n%3 == 0 {
			word += "fizz"
		}
		if n%5 == 0 {
			word += "buzz"
		}
		if word == "" {
			word = fmt.Sprint(n)
		}
		lines = append(lines, word)
	}
	r.Println(strings.Join(lines, " "))
}

func switchFlow(r *output.Renderer) {
	r.Section("`switch`")
	r.Println("Cases do not fall through unless they say fallthrough; a case may list several values")

	for _, n := range []int{1, 3, 13, 42} {
		var desc string
		switch n {
		case 1:
			desc = "One!"
		case 2, 3, 5, 7, 11:
			desc = "This is a prime"
		case 13, 14, 15, 16, 17, 18, 19:
			desc = "A teen"
		default:
			desc = "Ain't special"
		}
		r.Printf("Tell me about %d: %s\n", n, desc)
	}

	boolean := true
	binary := 0
	switch boolean {
	case false:
		binary = 0
	case true:
		binary = 1
	}
	r.Printf("%v -> %d\n", boolean, binary)

	r.Subtitle("fallthrough")
	var steps []string
	switch level := 1; level {
	case 1:
		steps = append(steps, "one")
		fallthrough
	case 2:
		steps = append(steps, "two")
	case 3:
		steps = append(steps, "three")
	}
	r.Result("switch 1 with fallthrough", strings.Join(steps, ", "))
}

type shape interface {
	area() float32
}

type triangle struct {
	base, height float32
}

func (t triangle) area() float32 {
	return t.base * t.height / 2
}

func typeSwitch(r *output.Renderer) {
	r.Subtitle("Type switches")
	r.Println("A type switch destructures an interface value by its dynamic type")

	values := []any{
		42,
		"gopher",
		[]int{1, 2},
		pair{First: 1, Second: -1},
		triangle{base: 3, height: 4},
		nil,
	}
	for _, v := range values {
		r.Result(fmt.Sprintf("%#v", v), describe(v))
	}
}

func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case int:
		return fmt.Sprintf("an int, doubled: %d", x*2)
	case string:
		return fmt.Sprintf("a string of %d bytes", len(x))
	case []int:
		return fmt.Sprintf("a slice of %d ints", len(x))
	case pair:
		// Fields bind directly from the matched value.
		first, second := x.First, x.Second
		if second < 0 {
			return fmt.Sprintf("a pair whose second field is negative, first is %d", first)
		}
		return fmt.Sprintf("a pair (%d, %v)", first, second)
	case shape:
		return fmt.Sprintf("a shape with area %v", x.area())
	default:
		return fmt.Sprintf("something else: %T", x)
	}
}

func age() uint32 {
	return 15
}

func switchGuards(r *output.Renderer) {
	r.Subtitle("Guards")
	r.Println("switch with no tag tests each case as a boolean, which works as a guard")

	p := pair{First: 2, Second: -2}
	switch {
	case p.First == int32(p.Second):
		r.Println("These are twins")
	case p.First+int32(p.Second) == 0:
		r.Println("Antimatter, kaboom!")
	case p.First%2 == 1:
		r.Println("The first one is odd")
	default:
		r.Println("No correlation...")
	}

	r.Subtitle("Binding")
	r.Println("Bind the result of a call in the switch header and match on ranges")
	switch n := age(); {
	case n == 0:
		r.Println("I haven't celebrated my first birthday yet")
	case n >= 1 && n <= 12:
		r.Printf("I'm a child of age %d\n", n)
	case n >= 13 && n <= 19:
		r.Printf("I'm a teen of age %d\n", n)
	default:
		r.Printf("I'm an old person of age %d\n", n)
	}
}
