package dump

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const rule = "===================================================\n"

// Printer writes titled lists of vectors in a format.
//
// Call Close once done to end YAML stream.
type Printer struct {
	w       io.Writer
	format  Format
	encoder *yaml.Encoder
}

func New(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

func (p *Printer) Close() error {
	if p.encoder == nil {
		return nil
	}
	return p.encoder.Close()
}

// Vectors writes vectors under title, in printer format.
func Vectors[T any](p *Printer, title string, vectors [][]T) error {
	switch p.format {
	case Table:
		return table(p.w, title, vectors)
	case YAML:
		if p.encoder == nil {
			p.encoder = yaml.NewEncoder(p.w)
			p.encoder.SetIndent(2)
		}
		return document(p.encoder, title, vectors)
	default:
		return plain(p.w, title, vectors)
	}
}

func plain[T any](w io.Writer, title string, vectors [][]T) (err error) {
	_, err = fmt.Fprintf(w, "\n\n%s: ========================================\n", title)
	if err != nil {
		return
	}
	if len(vectors) == 0 {
		_, err = fmt.Fprintf(w, "Printing 0 vectors\n")
	} else {
		_, err = fmt.Fprintf(w, "Printing %d vectors numbered 0..%d\n", len(vectors), len(vectors)-1)
	}
	if err != nil {
		return
	}
	for i, v := range vectors {
		_, err = fmt.Fprintf(w, "%d: %s\n", i, FormatVector(v))
		if err != nil {
			return
		}
	}
	_, err = io.WriteString(w, rule)
	return
}

// table writes one row per vector, one column per position.
func table[T any](w io.Writer, title string, vectors [][]T) error {
	width := 0
	for _, v := range vectors {
		width = max(width, len(v))
	}

	header := []string{"#"}
	for i := 0; i < width; i++ {
		header = append(header, strconv.Itoa(i))
	}

	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetBorder(false)
	t.SetCenterSeparator("")
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, v := range vectors {
		row := make([]string, width+1)
		row[0] = strconv.Itoa(i)
		for j, value := range v {
			row[j+1] = fmt.Sprint(value)
		}
		t.Append(row)
	}
	t.SetFooter(append([]string{"Total"}, footer(width, len(vectors))...))

	_, err := fmt.Fprintf(w, "\n%s:\n", title)
	if err != nil {
		return err
	}
	t.Render()
	return nil
}

func footer(width, count int) []string {
	out := make([]string, width)
	if width > 0 {
		out[width-1] = strconv.Itoa(count)
	}
	return out
}

// document encodes a YAML document, each vector as a flow sequence.
func document[T any](encoder *yaml.Encoder, title string, vectors [][]T) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, v := range vectors {
		var n yaml.Node
		err := n.Encode(v)
		if err != nil {
			return err
		}
		n.Style = yaml.FlowStyle
		seq.Content = append(seq.Content, &n)
	}
	return encoder.Encode(struct {
		Title   string     `yaml:"title"`
		Count   int        `yaml:"count"`
		Vectors *yaml.Node `yaml:"vectors"`
	}{title, len(vectors), seq})
}
