// Package config loads the settings file of the idfparse program.
package config

import (
	"fmt"
	"io/ioutil"
	"reflect"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/tkrajina/go-reflector/reflector"
)

// Config holds all settings from a configuration file.
type Config struct {
	Encoding string `name:"encoding"`
	Format   string `name:"format"`
	Color    bool   `name:"color"`
	Verbose  bool   `name:"verbose"`
}

// Default returns the settings used when no configuration file exists.
func Default() Config {
	return Config{
		Encoding: "utf-8",
		Format:   "json",
		Color:    true,
	}
}

// settingField returns the field of obj whose tag is key.
func settingField(obj *reflector.Obj, tag, key string) (*reflector.ObjField, error) {
	for _, field := range obj.FieldsAll() {
		name, err := field.Tag(tag)
		if err == nil && name == key {
			return &field, nil
		}
	}

	return nil, errors.Errorf("unknown setting %q", key)
}

// updateField sets the field to value, which must match the field's type.
func updateField(field *reflector.ObjField, value interface{}) error {
	var ok bool
	switch field.Kind() {
	case reflect.String:
		_, ok = value.(string)
	case reflect.Bool:
		_, ok = value.(bool)
	default:
		return errors.Errorf("field %v has unsupported type %v", field.Name(), field.Kind())
	}

	if !ok {
		return errors.Errorf("wrong type %T, want %v", value, field.Kind())
	}

	return field.Set(value)
}

// apply stores the settings in data into the fields of target, which must be a
// pointer to a struct. Keys are handled in sorted order so that errors are
// reported deterministically.
func apply(data map[string]interface{}, tag string, target interface{}) error {
	obj := reflector.New(target)
	if !obj.IsPtr() {
		return errors.New("object is not a pointer")
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field, err := settingField(obj, tag, key)
		if err != nil {
			return err
		}

		err = updateField(field, data[key])
		if err != nil {
			return errors.WithMessage(err, key)
		}
	}

	return nil
}

// Parse parses data in TOML format. Settings not present in data keep their
// default value.
func Parse(data string) (Config, error) {
	var m map[string]interface{}
	if _, err := toml.Decode(data, &m); err != nil {
		return Config{}, errors.Wrap(err, "toml.Decode")
	}

	cfg := Default()
	if err := apply(m, "name", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseFile loads config data from a file and parses it.
func ParseFile(filename string) (Config, error) {
	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Wrap(err, "ReadFile")
	}

	cfg, err := Parse(string(buf))
	if err != nil {
		return Config{}, errors.WithMessage(err, filename)
	}

	return cfg, nil
}

// Values returns all settings of cfg formatted as strings, indexed by the
// name used in the configuration file.
func Values(cfg Config) (map[string]string, error) {
	obj := reflector.New(&cfg)

	values := make(map[string]string)
	for _, field := range obj.FieldsAll() {
		name, err := field.Tag("name")
		if err != nil || name == "" {
			continue
		}

		v, err := field.Get()
		if err != nil {
			return nil, errors.WithMessage(err, name)
		}

		values[name] = fmt.Sprint(v)
	}

	return values, nil
}
