package idf

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFormatRoundTrip(t *testing.T) {
	buf, err := ioutil.ReadFile(filepath.Join("testdata", "sample.idf"))
	if err != nil {
		t.Fatal(err)
	}

	inputs := []string{
		string(buf),
		"Version;",
		"Schedule, *, *, *;\nzone, a;\nZone, b, c;",
		"  Material ,  Wood , 0.3 , 0.6 ; ! comment\n\nZone , Bedroom , 12 ;",
	}

	for i, input := range inputs {
		doc, err := Parse(input)
		if err != nil {
			t.Errorf("test %v: parse failed: %v", i, err)
			continue
		}

		var out bytes.Buffer
		if err = Format(&out, doc); err != nil {
			t.Errorf("test %v: Format failed: %v", i, err)
			continue
		}

		doc2, err := Parse(out.String())
		if err != nil {
			t.Errorf("test %v: parsing formatted document failed: %v\n%s", i, err, out.String())
			continue
		}

		if !reflect.DeepEqual(doc.Map(), doc2.Map()) {
			t.Errorf("test %v: documents differ, want\n  %v\ngot\n  %v", i, doc.Map(), doc2.Map())
		}

		if !reflect.DeepEqual(doc.Types(), doc2.Types()) {
			t.Errorf("test %v: type order differs, want %v, got %v", i, doc.Types(), doc2.Types())
		}
	}
}

func TestFormat(t *testing.T) {
	doc, err := Parse("Zone, A, 1;\nVersion;\nzone,  B ;")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err = Format(&buf, doc); err != nil {
		t.Fatal(err)
	}

	want := "Zone, A, 1;\nzone, B;\nVersion;\n"
	if buf.String() != want {
		t.Errorf("wrong output, want\n%q\ngot\n%q", want, buf.String())
	}
}

func TestMarshalJSON(t *testing.T) {
	doc, err := Parse("Zone, A, 1;\nMaterial, Brick, 0.5;\nzone, B;")
	if err != nil {
		t.Fatal(err)
	}

	buf, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"ZONE":[["Zone","A","1"],["zone","B"]],"MATERIAL":[["Material","Brick","0.5"]]}`
	if string(buf) != want {
		t.Errorf("wrong JSON, want\n  %s\ngot\n  %s", want, buf)
	}

	var m map[string][][]string
	if err = json.Unmarshal(buf, &m); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(doc.Map(), m) {
		t.Errorf("decoded JSON differs, want %v, got %v", doc.Map(), m)
	}
}

func TestMarshalYAML(t *testing.T) {
	doc, err := Parse("Zone, A, 1;\nMaterial, Brick, 0.5;\nSchedule, *, true, ~;\nzone, B;")
	if err != nil {
		t.Fatal(err)
	}

	buf, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string][][]string
	if err = yaml.Unmarshal(buf, &m); err != nil {
		t.Fatalf("unmarshal failed: %v\n%s", err, buf)
	}

	if !reflect.DeepEqual(doc.Map(), m) {
		t.Errorf("decoded YAML differs, want %v, got %v\n%s", doc.Map(), m, buf)
	}

	var node yaml.Node
	if err = yaml.Unmarshal(buf, &node); err != nil {
		t.Fatal(err)
	}

	var keys []string
	mapping := node.Content[0]
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}

	if !reflect.DeepEqual(doc.Types(), keys) {
		t.Errorf("wrong key order in YAML, want %v, got %v", doc.Types(), keys)
	}
}
