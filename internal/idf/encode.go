package idf

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func objectLists(objs []Object) [][]string {
	lists := make([][]string, 0, len(objs))
	for _, obj := range objs {
		lists = append(lists, obj.Strings())
	}

	return lists
}

// Format writes all objects of doc to w, one per line in canonical syntax.
// Parsing the output again yields an equal document.
func Format(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)

	doc.each(func(_ string, objs []Object) {
		for _, obj := range objs {
			bw.WriteString(obj.String())
			bw.WriteByte('\n')
		}
	})

	return errors.Wrap(bw.Flush(), "Flush")
}

// MarshalJSON encodes the document as a JSON object, keys in document order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var (
		buf   bytes.Buffer
		err   error
		first = true
	)

	buf.WriteByte('{')
	d.each(func(key string, objs []Object) {
		if err != nil {
			return
		}

		var k, v []byte
		if k, err = json.Marshal(key); err != nil {
			return
		}
		if v, err = json.Marshal(objectLists(objs)); err != nil {
			return
		}

		if !first {
			buf.WriteByte(',')
		}
		first = false

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	})
	buf.WriteByte('}')

	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// MarshalYAML encodes the document as a YAML mapping, keys in document order
// and each object as a flow sequence of strings.
func (d *Document) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	d.each(func(key string, objs []Object) {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, obj := range objs {
			item := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, s := range obj.Strings() {
				item.Content = append(item.Content, yamlString(s))
			}
			seq.Content = append(seq.Content, item)
		}

		root.Content = append(root.Content, yamlString(key), seq)
	})

	return root, nil
}
