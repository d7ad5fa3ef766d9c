package models

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Board lists are a client-owned document. The typed structs only name the
// fields the API reads; every other key is carried in Extra and written back
// unchanged.

type (
	listFields     List
	cardFields     Card
	movementFields Movement
)

var (
	listKeys     = jsonKeys(reflect.TypeOf(listFields{}))
	cardKeys     = jsonKeys(reflect.TypeOf(cardFields{}))
	movementKeys = jsonKeys(reflect.TypeOf(movementFields{}))
)

// jsonKeys lists the lowercased json names of t's fields. encoding/json
// matches keys case-insensitively, so unknownFields does too.
func jsonKeys(t reflect.Type) map[string]bool {
	keys := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		keys[strings.ToLower(name)] = true
	}
	return keys
}

func unknownFields(data []byte, known map[string]bool) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k := range all {
		if known[strings.ToLower(k)] {
			delete(all, k)
		}
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

func withUnknownFields(data []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return data, nil
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := all[k]; !ok {
			all[k] = v
		}
	}
	return json.Marshal(all)
}

func (l *List) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var fields listFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := unknownFields(data, listKeys)
	if err != nil {
		return err
	}
	*l = List(fields)
	l.Extra = extra
	return nil
}

func (l List) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(listFields(l))
	if err != nil {
		return nil, err
	}
	return withUnknownFields(data, l.Extra)
}

func (c *Card) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var fields cardFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := unknownFields(data, cardKeys)
	if err != nil {
		return err
	}
	*c = Card(fields)
	c.Extra = extra
	return nil
}

func (c Card) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(cardFields(c))
	if err != nil {
		return nil, err
	}
	return withUnknownFields(data, c.Extra)
}

func (m *Movement) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var fields movementFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := unknownFields(data, movementKeys)
	if err != nil {
		return err
	}
	*m = Movement(fields)
	m.Extra = extra
	return nil
}

func (m Movement) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(movementFields(m))
	if err != nil {
		return nil, err
	}
	return withUnknownFields(data, m.Extra)
}

// Grade is a test score kept exactly as the client sent it, usually a numeric
// string or a JSON number. Other values are kept too and read as no grade.
type Grade struct {
	raw json.RawMessage
}

func NewGrade(s string) *Grade {
	raw, _ := json.Marshal(s)
	return &Grade{raw: raw}
}

// String returns string grades unquoted and any other value as its JSON text.
func (g *Grade) String() string {
	if g == nil || len(g.raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(g.raw, &s); err == nil {
		return s
	}
	return string(g.raw)
}

func (g Grade) MarshalJSON() ([]byte, error) {
	if len(g.raw) == 0 {
		return []byte("null"), nil
	}
	return g.raw, nil
}

func (g *Grade) UnmarshalJSON(data []byte) error {
	g.raw = append(json.RawMessage(nil), data...)
	return nil
}
