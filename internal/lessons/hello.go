package lessons

import (
	"fmt"
	"math"

	"github.com/leapstack-labs/tour/internal/cli/output"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var helloWorld = Lesson{
	Number: 1,
	Slug:   "hello-world",
	Title:  "Hello World",
	Sections: []string{
		"Print with the fmt package",
		"Formatting",
		"Debug",
		"Display",
		"Locale-aware printing",
	},
	run: runHelloWorld,
}

func runHelloWorld(r *output.Renderer) {
	r.Println("Hello World!")
	r.Println("I'm a Gopher!")

	// Comments nest inside expressions too.
	x := 5 + /* 90 + */ 5
	r.Printf("\nIs x 100 or 10? x = %d\n", x)

	printFamily(r)
	formattingVerbs(r)
	debugFormatting(r)
	displayFormatting(r)
	localePrinting(r)
}

func printFamily(r *output.Renderer) {
	r.Section("Print with the fmt package")
	r.Println("fmt.Sprintf writes formatted text to a string")
	r.Println("fmt.Printf does the same as Sprintf but writes to stdout")
	r.Println("fmt.Fprintf writes to any io.Writer, e.g. os.Stderr")
	r.Println("fmt.Println separates operands with spaces and appends a newline")
	r.Text("fmt.Errorf builds an error, and %w wraps another error inside it")
}

func formattingVerbs(r *output.Renderer) {
	r.Section("Formatting")
	r.Text("Use %v to include a value in its default format")
	r.Result(`fmt.Sprintf("%v days in December", 31)`, fmt.Sprintf("%v days in December", 31))

	r.Text("\n\t1. Arguments can be indexed explicitly with %[n]v:")
	r.Result(`fmt.Sprintf("%[1]s, this is %[2]s. %[2]s, meet %[1]s.", "Alice", "Bob")`,
		fmt.Sprintf("%[1]s, this is %[2]s. %[2]s, meet %[1]s.", "Alice", "Bob"))

	r.Println("\n\t2. Each verb picks a representation:")
	r.Text("\t\t%v  - default format")
	r.Text("\t\t%+v - default format with struct field names")
	r.Text("\t\t%#v - Go-syntax representation")
	r.Text("\t\t%T  - type of the value")
	r.Text("\t\t%d  - base 10")
	r.Text("\t\t%b  - base 2")
	r.Text("\t\t%o  - base 8")
	r.Text("\t\t%x  - base 16, lower-case")
	r.Text("\t\t%X  - base 16, upper-case")
	r.Text("\t\t%e  - scientific notation")
	r.Text("\t\t%q  - quoted string")
	r.Result(`fmt.Sprintf("%d of %b people know binary, the other half doesn't", 1, 2)`,
		fmt.Sprintf("%d of %b people know binary, the other half doesn't", 1, 2))

	r.Println("\n\t3. Width and alignment:")
	r.Result(`fmt.Sprintf("[%6d]", 1)`, fmt.Sprintf("[%6d]", 1))
	r.Result(`fmt.Sprintf("[%-6d]", 1)`, fmt.Sprintf("[%-6d]", 1))
	r.Result(`fmt.Sprintf("[%06d]", 1)`, fmt.Sprintf("[%06d]", 1))
	r.Result(`fmt.Sprintf("[%*d]", 6, 1)`, fmt.Sprintf("[%*d]", 6, 1))

	r.Println("\n\t4. Precision:")
	r.Result(`fmt.Sprintf("Pi is roughly %.3f", math.Pi)`, fmt.Sprintf("Pi is roughly %.3f", math.Pi))
	r.Result(`fmt.Sprintf("%.2s", "Gopher")`, fmt.Sprintf("%.2s", "Gopher"))

	r.Println("\n\t5. A wrong argument count is reported in the output, not at compile time:")
	format := "My name is %s, %s"
	r.Result(`fmt.Sprintf("My name is %s, %s", "Bond")`, fmt.Sprintf(format, "Bond"))
	r.Note("go vet catches this before it ships")
}

// structure has no String method, so fmt prints it field by field.
type structure int32

type deep struct {
	S structure
}

type person struct {
	Name string
	Age  uint8
}

func debugFormatting(r *output.Renderer) {
	r.Section("Debug")
	r.Text("Every value can be printed with %v; %+v and %#v add detail")

	r.Code("type structure int32", "type deep struct { S structure }")
	r.Result(`fmt.Sprintf("%v", structure(3))`, fmt.Sprintf("%v", structure(3)))
	r.Result(`fmt.Sprintf("%+v", deep{S: 7})`, fmt.Sprintf("%+v", deep{S: 7}))
	r.Result(`fmt.Sprintf("%#v", deep{S: 7})`, fmt.Sprintf("%#v", deep{S: 7}))

	peter := person{Name: "Peter", Age: 27}
	r.Println()
	r.Code("peter := person{Name: \"Peter\", Age: 27}")
	r.Result(`fmt.Sprintf("%+v", peter)`, fmt.Sprintf("%+v", peter))
	r.Result(`fmt.Sprintf("%T", peter)`, fmt.Sprintf("%T", peter))
}

// city implements fmt.Stringer.
type city struct {
	Name string
	Lat  float64
	Lon  float64
}

func (c city) String() string {
	latC := 'N'
	if c.Lat < 0 {
		latC = 'S'
	}
	lonC := 'E'
	if c.Lon < 0 {
		lonC = 'W'
	}
	return fmt.Sprintf("%s: %.3f°%c %.3f°%c", c.Name, math.Abs(c.Lat), latC, math.Abs(c.Lon), lonC)
}

type color struct {
	Red, Green, Blue uint8
}

func (c color) String() string {
	return fmt.Sprintf("RGB (%d, %d, %d) 0x%02X%02X%02X", c.Red, c.Green, c.Blue, c.Red, c.Green, c.Blue)
}

// list implements fmt.Stringer over a slice.
type list []int

func (l list) String() string {
	s := "["
	for i, v := range l {
		if i != 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d: %d", i, v)
	}
	return s + "]"
}

func displayFormatting(r *output.Renderer) {
	r.Section("Display")
	r.Text("Implement fmt.Stringer (a String() string method) to control %v and %s")

	r.Code(
		"func (c city) String() string {",
		"\treturn fmt.Sprintf(\"%s: %.3f°%c %.3f°%c\", ...)",
		"}",
	)
	for _, c := range []city{
		{Name: "Dublin", Lat: 53.347778, Lon: -6.259722},
		{Name: "Oslo", Lat: 59.95, Lon: 10.75},
		{Name: "Vancouver", Lat: 49.25, Lon: -123.1},
	} {
		r.Println(c)
	}

	r.Subtitle("Testcase: List")
	r.Result("list{1, 2, 3}", list{1, 2, 3})

	r.Subtitle("Activity: Colors")
	for _, c := range []color{
		{Red: 128, Green: 255, Blue: 90},
		{Red: 0, Green: 3, Blue: 254},
		{Red: 0, Green: 0, Blue: 0},
	} {
		r.Println(c)
	}
}

func localePrinting(r *output.Renderer) {
	r.Section("Locale-aware printing")
	r.Println("golang.org/x/text/message prints numbers with locale separators")

	for _, tag := range []language.Tag{language.English, language.German, language.French} {
		p := message.NewPrinter(tag)
		r.Result(fmt.Sprintf("message.NewPrinter(%s).Sprintf(\"%%d\", 1234567)", tag), p.Sprintf("%d", 1234567))
	}
}
