package nostr

import (
	"iter"
	"slices"
)

type Tag []string

type Tags []Tag

// Find returns the first tag with the given key that has at least a value, or nil.
func (tags Tags) Find(key string) Tag {
	for _, v := range tags {
		if len(v) >= 2 && v[0] == key {
			return v
		}
	}
	return nil
}

// FindAll yields every tag with the given key that has at least a value.
func (tags Tags) FindAll(key string) iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for _, v := range tags {
			if len(v) >= 2 && v[0] == key {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FindWithValue is like Find, but also checks the value.
func (tags Tags) FindWithValue(key, value string) Tag {
	for _, v := range tags {
		if len(v) >= 2 && v[0] == key && v[1] == value {
			return v
		}
	}
	return nil
}

// AppendUnique appends the tag unless one with the same key and value is already there.
func (tags Tags) AppendUnique(tag Tag) Tags {
	if len(tag) >= 2 && tags.FindWithValue(tag[0], tag[1]) != nil {
		return tags
	}
	return append(tags, tag)
}

func (tag Tag) Clone() Tag {
	return slices.Clone(tag)
}
