package htmlcheck

import (
	"bytes"
	"encoding/json"
)

// Result is the presence outcome for a single selector.
type Result struct {
	Selector string
	Present  bool
}

// Report maps selectors to whether at least one element matched.
// Entries keep the order in which they were first recorded; Evaluate
// records them in sorted selector order.
type Report struct {
	results []Result
	index   map[string]int
}

// Len returns the number of distinct selectors in the report.
func (r *Report) Len() int {
	return len(r.results)
}

// Selectors returns the report keys in order.
func (r *Report) Selectors() []string {
	keys := make([]string, len(r.results))
	for i, res := range r.results {
		keys[i] = res.Selector
	}
	return keys
}

// Results returns a copy of the report entries in order.
func (r *Report) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Present reports whether the selector matched. The second value is false
// if the selector is not part of the report.
func (r *Report) Present(selector string) (present, ok bool) {
	i, ok := r.index[selector]
	if !ok {
		return false, false
	}
	return r.results[i].Present, true
}

// set records a result, overwriting an earlier entry for the same selector
// in place.
func (r *Report) set(selector string, present bool) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[selector]; ok {
		r.results[i].Present = present
		return
	}
	r.index[selector] = len(r.results)
	r.results = append(r.results, Result{Selector: selector, Present: present})
}

// MarshalJSON encodes the report as a JSON object with keys in report order.
// HTML characters in selectors (">", "&") are not escaped.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf, key bytes.Buffer
	enc := json.NewEncoder(&key)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, res := range r.results {
		if i > 0 {
			buf.WriteByte(',')
		}
		key.Reset()
		if err := enc.Encode(res.Selector); err != nil {
			return nil, err
		}
		buf.Write(bytes.TrimSuffix(key.Bytes(), []byte("\n")))
		buf.WriteByte(':')
		if res.Present {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
