package domain

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Payload is an insertion-ordered string-keyed record. Top-level payloads
// always carry a status; nested records (source, article) do not.
type Payload struct {
	keys   []string
	values map[string]any
}

// NewPayload returns a payload with its status set.
func NewPayload(status int) *Payload {
	p := NewRecord()
	p.Set("status", status)
	return p
}

// NewRecord returns an empty ordered record.
func NewRecord() *Payload {
	return &Payload{values: make(map[string]any)}
}

// Set stores v under key, keeping the position of an existing key.
func (p *Payload) Set(key string, v any) *Payload {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
	return p
}

func (p *Payload) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (p *Payload) Keys() []string {
	return slices.Clone(p.keys)
}

// Status returns the status field, or 0 when absent.
func (p *Payload) Status() int {
	s, _ := p.values["status"].(int)
	return s
}

// Messages returns the messages list, or nil when none were added.
func (p *Payload) Messages() []string {
	m, _ := p.values["messages"].([]string)
	return m
}

// Clone copies the record. Nested records are cloned too; other values are shared.
func (p *Payload) Clone() *Payload {
	c := NewRecord()
	for _, k := range p.keys {
		v := p.values[k]
		if nested, ok := v.(*Payload); ok && nested != nil {
			v = nested.Clone()
		}
		c.Set(k, v)
	}
	return c
}

func (p *Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
