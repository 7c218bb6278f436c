package lessons

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/leapstack-labs/tour/internal/cli/output"
)

var conversion = Lesson{
	Number: 6,
	Slug:   "conversion",
	Title:  "Conversion",
	Sections: []string{
		"Constructors",
		"To and From Strings",
	},
	run: runConversion,
}

func runConversion(r *output.Renderer) {
	constructors(r)
	toAndFromStrings(r)
}

type numberValue struct {
	Value int32
}

// numberFrom builds a numberValue; Go spells From/Into as plain constructor functions.
func numberFrom(item int32) numberValue {
	return numberValue{Value: item}
}

func constructors(r *output.Renderer) {
	r.Section("Constructors")
	r.Println("Built-in conversions cover numeric types, strings, and byte or rune slices")

	myStr := "hello"
	myBytes := []byte(myStr)
	myRunes := []rune("héllo")
	r.Result(`[]byte("hello")`, myBytes)
	r.Result(`[]rune("héllo")`, myRunes)
	r.Result(`string([]rune("héllo"))`, string(myRunes))

	r.Println("\nFor your own types, write a constructor function:")
	r.Code(
		"type numberValue struct { Value int32 }",
		"func numberFrom(item int32) numberValue {",
		"\treturn numberValue{Value: item}",
		"}",
	)
	num := numberFrom(30)
	r.Result("numberFrom(30)", fmt.Sprintf("%+v", num))
}

type circle struct {
	Radius int32
}

// String makes circle a fmt.Stringer.
func (c circle) String() string {
	return fmt.Sprintf("Circle of radius %d", c.Radius)
}

func toAndFromStrings(r *output.Renderer) {
	r.Section("To and From Strings")
	r.Println("To convert a value to a string, implement fmt.Stringer:")
	r.Code(
		"func (c circle) String() string {",
		"\treturn fmt.Sprintf(\"Circle of radius %d\", c.Radius)",
		"}",
	)
	c := circle{Radius: 6}
	r.Result("circle{Radius: 6}.String()", c.String())

	r.Subtitle("Parsing a String")
	r.Println("strconv parses strings and reports failures as errors")

	parsed, err := strconv.Atoi("5")
	r.Result(`strconv.Atoi("5")`, fmt.Sprintf("%d, %v", parsed, err))

	turbo, err := strconv.ParseInt("10", 10, 32)
	r.Result(`strconv.ParseInt("10", 10, 32)`, fmt.Sprintf("%d, %v", turbo, err))
	r.Result("sum", parsed+int(turbo))

	f, err := strconv.ParseFloat("2.5", 64)
	r.Result(`strconv.ParseFloat("2.5", 64)`, fmt.Sprintf("%v, %v", f, err))

	b, err := strconv.ParseBool("true")
	r.Result(`strconv.ParseBool("true")`, fmt.Sprintf("%v, %v", b, err))

	_, err = strconv.Atoi("five")
	r.Result(`strconv.Atoi("five")`, err)

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		r.Result("errors.Is(numErr.Err, strconv.ErrSyntax)", errors.Is(numErr.Err, strconv.ErrSyntax))
	}

	r.Println("\nAnd back again:")
	r.Result("strconv.Itoa(42)", strconv.Quote(strconv.Itoa(42)))
	r.Result("strconv.FormatFloat(2.5, 'f', 2, 64)", strconv.FormatFloat(2.5, 'f', 2, 64))
	r.Result("strconv.FormatInt(255, 16)", strconv.FormatInt(255, 16))
}
