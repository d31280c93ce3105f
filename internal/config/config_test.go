package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

var testConfigs = []struct {
	data string
	cfg  Config
}{
	{
		data: ``,
		cfg:  Default(),
	},
	{
		data: `encoding = "latin1"`,
		cfg: Config{
			Encoding: "latin1",
			Format:   "json",
			Color:    true,
		},
	},
	{
		data: `
# comment
format = "idf"
color = false
verbose = true
`,
		cfg: Config{
			Encoding: "utf-8",
			Format:   "idf",
			Color:    false,
			Verbose:  true,
		},
	},
	{
		data: `encoding = "utf-16le"`,
		cfg: Config{
			Encoding: "utf-16le",
			Format:   "json",
			Color:    true,
		},
	},
}

func TestParseConfig(t *testing.T) {
	for i, test := range testConfigs {
		cfg, err := Parse(test.data)
		if err != nil {
			t.Errorf("test %v: parse failed: %v", i, err)
			continue
		}

		if !reflect.DeepEqual(test.cfg, cfg) {
			t.Errorf("test %v: wrong config, want %#v, got %#v", i, test.cfg, cfg)
		}
	}
}

var testInvalidConfigs = []string{
	`foo = "bar"`,
	`Encoding = "utf-8"`,
	`color = "yes"`,
	`encoding = 23`,
	`format = [ "json" ]`,
	`[section]
encoding = "utf-8"`,
	`encoding = `,
}

func TestParseInvalidConfig(t *testing.T) {
	for i, data := range testInvalidConfigs {
		cfg, err := Parse(data)
		if err == nil {
			t.Errorf("test %v: expected error for %q not found, got %#v", i, data, cfg)
		}
	}
}

func TestParseSampleConfig(t *testing.T) {
	cfg, err := ParseFile(filepath.Join("testdata", "idfparse.toml"))
	if err != nil {
		t.Fatalf("parsing sample config failed: %v", err)
	}

	want := Config{
		Encoding: "windows-1252",
		Format:   "yaml",
		Color:    false,
	}
	if !reflect.DeepEqual(want, cfg) {
		t.Errorf("wrong config, want %#v, got %#v", want, cfg)
	}

	if _, err = ParseFile(filepath.Join("testdata", "missing.toml")); err == nil {
		t.Errorf("expected error for missing file not found")
	}
}

func TestValues(t *testing.T) {
	values, err := Values(Config{Encoding: "latin1", Format: "idf", Verbose: true})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"encoding": "latin1",
		"format":   "idf",
		"color":    "false",
		"verbose":  "true",
	}
	if !reflect.DeepEqual(want, values) {
		t.Errorf("wrong values, want %v, got %v", want, values)
	}
}
