package idf

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Document holds parsed objects grouped by upper-cased type name. Types are
// kept in the order they first appear in the input, objects of one type in
// input order. A Document is not modified after it has been built.
type Document struct {
	types *linkedhashmap.Map // string -> []Object
	count int
}

// NewDocument groups objs by the upper-cased type name. The field lists are
// copied, later changes to objs do not reach the document.
func NewDocument(objs []Object) *Document {
	doc := &Document{types: linkedhashmap.New()}
	for _, obj := range objs {
		obj.Fields = cloneFields(obj.Fields)
		doc.add(obj)
	}

	return doc
}

func (d *Document) add(obj Object) {
	key := obj.Key()

	var list []Object
	if v, ok := d.types.Get(key); ok {
		list = v.([]Object)
	}

	d.types.Put(key, append(list, obj))
	d.count++
}

func cloneFields(fields []string) []string {
	if fields == nil {
		return nil
	}

	return append([]string(nil), fields...)
}

// cloneObjects returns a deep copy of list.
func cloneObjects(list []Object) []Object {
	res := make([]Object, len(list))
	for i, obj := range list {
		obj.Fields = cloneFields(obj.Fields)
		res[i] = obj
	}

	return res
}

func (d *Document) list(key string) []Object {
	v, ok := d.types.Get(key)
	if !ok {
		return nil
	}

	return v.([]Object)
}

// Types returns the upper-cased type names in order of first appearance.
func (d *Document) Types() []string {
	keys := make([]string, 0, d.types.Size())
	for _, k := range d.types.Keys() {
		keys = append(keys, k.(string))
	}

	return keys
}

// Objects returns a copy of the objects of the given type, which is matched
// case-insensitively. The field lists are copied as well.
func (d *Document) Objects(typ string) []Object {
	list := d.list(strings.ToUpper(typ))
	if list == nil {
		return nil
	}

	return cloneObjects(list)
}

// Len returns the number of distinct types.
func (d *Document) Len() int {
	return d.types.Size()
}

// Count returns the number of objects.
func (d *Document) Count() int {
	return d.count
}

// Each calls fn for all types in order with a copy of the objects.
func (d *Document) Each(fn func(key string, objs []Object)) {
	d.each(func(key string, objs []Object) {
		fn(key, cloneObjects(objs))
	})
}

// each is like Each without copying, fn must not modify objs.
func (d *Document) each(fn func(key string, objs []Object)) {
	it := d.types.Iterator()
	for it.Next() {
		fn(it.Key().(string), it.Value().([]Object))
	}
}

// Map returns the document as a plain map from upper-cased type name to the
// objects' string lists.
func (d *Document) Map() map[string][][]string {
	m := make(map[string][][]string, d.types.Size())
	d.each(func(key string, objs []Object) {
		lists := make([][]string, 0, len(objs))
		for _, obj := range objs {
			lists = append(lists, obj.Strings())
		}
		m[key] = lists
	})

	return m
}

// Select returns a new document with only the given types. Types missing in
// d are ignored, the order of d is kept.
func (d *Document) Select(types ...string) *Document {
	want := make(map[string]struct{}, len(types))
	for _, t := range types {
		want[strings.ToUpper(t)] = struct{}{}
	}

	var objs []Object
	d.each(func(key string, list []Object) {
		if _, ok := want[key]; ok {
			objs = append(objs, list...)
		}
	})

	return NewDocument(objs)
}
