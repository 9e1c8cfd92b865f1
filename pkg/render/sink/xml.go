package sink

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/pianolayout/pkg/keyboard"
)

// XMLOption configures XML rendering via [RenderXML].
type XMLOption func(*xmlRenderer)

type xmlRenderer struct {
	orientation Orientation
	keyType     string
}

// WithXMLOrientation selects the axis mapping. Default is [Vertical].
func WithXMLOrientation(o Orientation) XMLOption {
	return func(r *xmlRenderer) { r.orientation = o }
}

// WithXMLKeyType sets the type attribute of every key node (default "NORMAL").
func WithXMLKeyType(t string) XMLOption {
	return func(r *xmlRenderer) { r.keyType = t }
}

// RenderXML writes the layout in the Layout DSL: a root node of unit size
// with one child per key. Positions on the long axis are "SCALE" fractions
// of the root; the cross-axis position is "REL 0".
func RenderXML(l keyboard.Layout, opts ...XMLOption) []byte {
	r := xmlRenderer{orientation: Vertical, keyType: "NORMAL"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString("<Layout>\n")
	writeDims(&buf, "  ", "REL 0", "REL 0", "SCALE 1.0", "SCALE 1.0")
	buf.WriteString("  <children>\n")
	for _, k := range l.Keys {
		r.writeKey(&buf, k)
	}
	buf.WriteString("  </children>\n")
	buf.WriteString("</Layout>\n")
	return buf.Bytes()
}

func (r xmlRenderer) writeKey(buf *bytes.Buffer, k keyboard.Key) {
	fmt.Fprintf(buf, "  <Layout name=%q type=%q>\n", k.Name, r.keyType)

	long := "SCALE " + formatScale(k.Offset)
	longExtent := "SCALE " + formatScale(k.Extent)
	cross := "REL 0"
	crossExtent := "SCALE " + formatScale(k.CrossExtent)

	if r.orientation == Horizontal {
		writeDims(buf, "    ", long, cross, longExtent, crossExtent)
	} else {
		writeDims(buf, "    ", cross, long, crossExtent, longExtent)
	}

	buf.WriteString("    <children>\n")
	buf.WriteString("    </children>\n")
	buf.WriteString("  </Layout>\n")
}

func writeDims(buf *bytes.Buffer, indent, x, y, w, h string) {
	fmt.Fprintf(buf, "%s<x>%s</x>\n", indent, x)
	fmt.Fprintf(buf, "%s<y>%s</y>\n", indent, y)
	fmt.Fprintf(buf, "%s<w>%s</w>\n", indent, w)
	fmt.Fprintf(buf, "%s<h>%s</h>\n", indent, h)
}

// formatScale prints the shortest representation that round-trips, keeping
// a trailing ".0" on whole numbers other than zero (e.g. "1.0", "0.6",
// "0.011363636363636364").
func formatScale(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
