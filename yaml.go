package tabyl

import (
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML renders t as a YAML sequence of mappings, one mapping per row.
// Building yaml.Node values directly keeps the column order; plain maps
// would be re-sorted by the encoder. Missing cells render as null.
func WriteYAML(w io.Writer, t *Table) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	names := t.Names()
	for r := 0; r < t.NumRows(); r++ {
		row := &yaml.Node{Kind: yaml.MappingNode}
		for c := 0; c < t.NumCols(); c++ {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: names[c]}
			row.Content = append(row.Content, key, cellNode(t.cell(r, c)))
		}
		doc.Content = append(doc.Content, row)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func cellNode(c Cell) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch c.Kind() {
	case KindNumber:
		n.Value = c.Display()
	case KindBool:
		n.Tag = "!!bool"
		n.Value = c.Display()
	case KindString:
		n.Tag = "!!str"
		n.Value = c.Str()
	default:
		n.Tag = "!!null"
		n.Value = "null"
	}
	return n
}
