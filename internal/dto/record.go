package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is one backend object consumed opaquely. Views only ever read a few
// display fields out of it.
type Record map[string]interface{}

// Lookup resolves a dotted path such as "candidate.name".
func (r Record) Lookup(path string) (interface{}, bool) {
	var cur interface{} = map[string]interface{}(r)
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Text returns the first path that holds a non-empty scalar, formatted for display.
func (r Record) Text(paths ...string) string {
	for _, p := range paths {
		v, ok := r.Lookup(p)
		if !ok {
			continue
		}
		if s := scalarText(v); s != "" {
			return s
		}
	}
	return ""
}

func (r Record) ID() string {
	return r.Text("id", "_id", "uuid")
}

func scalarText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// FlexibleID accepts both string and numeric JSON ids.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}

func (id FlexibleID) String() string { return string(id) }
