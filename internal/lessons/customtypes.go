package lessons

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/tour/internal/cli/output"
)

var customTypes = Lesson{
	Number: 3,
	Slug:   "custom-types",
	Title:  "Custom Types",
	Sections: []string{
		"Structures",
		"Enumerations",
		"Testcase: Linked List",
		"Constants",
	},
	run: runCustomTypes,
}

func runCustomTypes(r *output.Renderer) {
	structures(r)
	enumerations(r)
	linkedList(r)
	constants(r)
}

type point struct {
	X, Y float32
}

type rectangle struct {
	TopLeft     point
	BottomRight point
}

// area uses the absolute width and height so either corner order works.
func (rect rectangle) area() float32 {
	w := rect.BottomRight.X - rect.TopLeft.X
	h := rect.TopLeft.Y - rect.BottomRight.Y
	if w < 0 {
		w = -w
	}
	if h < 0 {
		h = -h
	}
	return w * h
}

func square(lowerLeft point, size float32) rectangle {
	return rectangle{
		TopLeft:     point{X: lowerLeft.X, Y: lowerLeft.Y + size},
		BottomRight: point{X: lowerLeft.X + size, Y: lowerLeft.Y},
	}
}

// unit carries no data.
type unit struct{}

// pair is a struct with positional-looking fields.
type pair struct {
	First  int32
	Second float32
}

func structures(r *output.Renderer) {
	r.Section("Structures")

	r.Subtitle("Named-field Structs")
	r.Code(
		"type point struct { X, Y float32 }",
		"type rectangle struct { TopLeft, BottomRight point }",
	)
	p := point{X: 10.3, Y: 0.4}
	r.Result("point{X: 10.3, Y: 0.4}", fmt.Sprintf("%+v", p))

	// Copy p and override Y, like a struct update.
	bottom := p
	bottom.Y = 5.2
	r.Result("bottom := p; bottom.Y = 5.2", fmt.Sprintf("%+v", bottom))

	x, y := p.X, p.Y
	r.Result("x, y := p.X, p.Y", fmt.Sprintf("%v %v", x, y))

	rect := rectangle{TopLeft: point{X: 1, Y: 6}, BottomRight: point{X: 4, Y: 2}}
	r.Result("rect.area()", rect.area())

	sq := square(point{X: 2, Y: 3}, 4)
	r.Result("square(point{2, 3}, 4)", fmt.Sprintf("%+v", sq))
	r.Result("square(point{2, 3}, 4).area()", sq.area())

	r.Subtitle("Empty Structs")
	r.Println("struct{} has no fields and occupies no memory; it is useful as a set value or signal")
	r.Result("unit{}", fmt.Sprintf("%+v", unit{}))

	r.Subtitle("Positional Literals")
	pr := pair{1, 0.1}
	r.Result("pair{1, 0.1}", fmt.Sprintf("%+v", pr))
	r.Note("positional literals break when fields are added; prefer named fields")
}

// webEvent is a closed set of event shapes, discriminated with a type switch.
type webEvent interface {
	isWebEvent()
}

type (
	pageLoad   struct{}
	pageUnload struct{}
	keyPress   struct{ Key rune }
	paste      struct{ Text string }
	click      struct{ X, Y int64 }
)

func (pageLoad) isWebEvent()   {}
func (pageUnload) isWebEvent() {}
func (keyPress) isWebEvent()   {}
func (paste) isWebEvent()      {}
func (click) isWebEvent()      {}

func inspect(event webEvent) string {
	switch e := event.(type) {
	case pageLoad:
		return "page loaded"
	case pageUnload:
		return "page unloaded"
	case keyPress:
		return fmt.Sprintf("pressed '%c'.", e.Key)
	case paste:
		return fmt.Sprintf("pasted %q.", e.Text)
	case click:
		return fmt.Sprintf("clicked at x=%d, y=%d.", e.X, e.Y)
	default:
		return "unknown event"
	}
}

type status int

const (
	rich status = iota
	poor
)

type work int

const (
	civilian work = iota
	soldier
)

// number is a C-like enumeration with implicit values.
type number int

const (
	zero number = iota
	one
	two
)

// webColor is a C-like enumeration with explicit values.
type webColor uint32

const (
	webRed   webColor = 0xff0000
	webGreen webColor = 0x00ff00
	webBlue  webColor = 0x0000ff
)

func enumerations(r *output.Renderer) {
	r.Section("Enumerations")
	r.Println("Go has no sum types; a sealed interface plus a type switch covers the same ground")

	events := []webEvent{
		keyPress{Key: 'x'},
		paste{Text: "my text"},
		click{X: 20, Y: 80},
		pageLoad{},
		pageUnload{},
	}
	for _, e := range events {
		r.Result(fmt.Sprintf("inspect(%T)", e), inspect(e))
	}

	r.Subtitle("Named Constants")
	money := rich
	job := soldier
	if money == rich {
		r.Println("The rich have lots of money!")
	} else {
		r.Println("The poor have no money...")
	}
	switch job {
	case civilian:
		r.Println("Civilians work!")
	case soldier:
		r.Println("Soldiers fight!")
	}

	r.Subtitle("C-like Enums")
	r.Println("iota numbers constants inside one const block")
	r.Result("zero", int(zero))
	r.Result("one", int(one))
	r.Result("two", int(two))
	r.Result("webRed", fmt.Sprintf("#%06x", uint32(webRed)))
	r.Result("webGreen", fmt.Sprintf("#%06x", uint32(webGreen)))
	r.Result("webBlue", fmt.Sprintf("#%06x", uint32(webBlue)))
}

// node is a cons cell; a nil *node is the empty list.
type node struct {
	elem uint32
	next *node
}

func (n *node) prepend(elem uint32) *node {
	return &node{elem: elem, next: n}
}

func (n *node) len() int {
	count := 0
	for cur := n; cur != nil; cur = cur.next {
		count++
	}
	return count
}

func (n *node) stringify() string {
	var sb strings.Builder
	for cur := n; cur != nil; cur = cur.next {
		fmt.Fprintf(&sb, "%d, ", cur.elem)
	}
	sb.WriteString("Nil")
	return sb.String()
}

func linkedList(r *output.Renderer) {
	r.Section("Testcase: Linked List")
	r.Code(
		"type node struct {",
		"\telem uint32",
		"\tnext *node",
		"}",
	)

	var head *node
	head = head.prepend(1)
	head = head.prepend(2)
	head = head.prepend(3)

	r.Printf("linked list has length: %d\n", head.len())
	r.Println(head.stringify())
}

const (
	langName  = "Go"
	threshold = 10
)

func isBig(n int) bool {
	return n > threshold
}

func constants(r *output.Renderer) {
	r.Section("Constants")
	r.Println("const declares values fixed at compile time; they may be untyped")
	r.Code(`const langName = "Go"`, "const threshold = 10", "func isBig(n int) bool { return n > threshold }")

	n := 16
	r.Printf("This is %s\n", langName)
	r.Printf("The threshold is %d\n", threshold)
	big := "small"
	if isBig(n) {
		big = "big"
	}
	r.Printf("%d is %s\n", n, big)
	r.Note("threshold = 5 does not compile: cannot assign to threshold")
}
