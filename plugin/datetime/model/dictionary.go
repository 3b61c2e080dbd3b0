package model

import (
	"bytes"
	"encoding/json"
)

// Keys of the rendered resolution dictionary.
const (
	KeyTimex           = "timex"
	KeyComment         = "Comment"
	KeyMod             = "Mod"
	KeyType            = "type"
	KeyIsLunar         = "isLunar"
	KeyValue           = "value"
	KeyStart           = "start"
	KeyEnd             = "end"
	KeyList            = "list"
	KeyResolve         = "resolve"
	KeyResolveToPast   = "resolveToPast"
	KeyResolveToFuture = "resolveToFuture"
	KeyTimezone        = "timezone"
	KeyTimezoneText    = "timezoneText"
	KeyUtcOffsetMins   = "utcOffsetMins"
)

// NotResolved is the value of an entry that has no calendar reading.
const NotResolved = "not resolved"

// ResolutionDictionary is an insertion-ordered string map.
type ResolutionDictionary struct {
	keys   []string
	values map[string]string
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *ResolutionDictionary {
	return &ResolutionDictionary{values: make(map[string]string)}
}

// Set stores value under key, keeping the first insertion position.
func (d *ResolutionDictionary) Set(key, value string) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Add stores non-empty values only.
func (d *ResolutionDictionary) Add(key, value string) {
	if value != "" {
		d.Set(key, value)
	}
}

// Get returns the value stored under key.
func (d *ResolutionDictionary) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *ResolutionDictionary) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (d *ResolutionDictionary) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of entries.
func (d *ResolutionDictionary) Len() int {
	return len(d.keys)
}

// MarshalJSON writes the entries in insertion order.
func (d *ResolutionDictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ValueSet is the envelope handed to callers.
type ValueSet struct {
	Values []*ResolutionDictionary `json:"valueSet"`
}
