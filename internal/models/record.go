package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	// SensitiveField is never rendered or exported in plaintext
	SensitiveField = "password"

	// RedactedToken replaces the value of SensitiveField in every display row
	RedactedToken = "••••••••"
)

// identityFields lists the record identity keys in resolution priority order
var identityFields = []string{"id", "userId", "user_id", "accountId"}

var ErrNotAnObject = errors.New("record: JSON value is not an object")

// Record is a schema-less backend entity. Keys keep the order in which the
// backend sent them so headers and "first primitive" lookups are stable.
type Record struct {
	keys   []string
	values map[string]any
}

// Collection is the ordered result of a single list fetch
type Collection []*Record

func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// RecordOf builds a record from alternating key/value arguments.
func RecordOf(kv ...any) *Record {
	r := NewRecord()
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		r.Set(key, kv[i+1])
	}
	return r
}

func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Set stores value under key. A new key is appended to the key order, an
// existing key keeps its position.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *Record) Delete(key string) {
	if _, exists := r.values[key]; !exists {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the key order
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Clone copies the record and any nested records or arrays.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := &Record{keys: make([]string, len(r.keys)), values: make(map[string]any, len(r.values))}
	copy(out.keys, r.keys)
	for k, v := range r.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Record:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// String returns the scalarized value of key, or "" when absent.
func (r *Record) String(key string) string {
	v, _ := r.Get(key)
	return Scalarize(v)
}

// ID resolves the record identity using the id/userId/user_id/accountId priority.
func (r *Record) ID() string {
	id, _ := r.identity()
	return id
}

// identity reports the first identity field holding a string or number,
// even when that value is the empty string.
func (r *Record) identity() (string, bool) {
	for _, key := range identityFields {
		if v, ok := r.Get(key); ok && isStringOrNumber(v) {
			return Scalarize(v), true
		}
	}
	return "", false
}

// Without returns a copy of the record lacking the given fields.
func (r *Record) Without(fields ...string) *Record {
	out := r.Clone()
	if out == nil {
		return nil
	}
	for _, f := range fields {
		out.Delete(f)
	}
	return out
}

// Masked returns a display row: every value scalarized, the sensitive field redacted.
func (r *Record) Masked() *Record {
	out := NewRecord()
	for _, k := range r.Keys() {
		v, _ := r.Get(k)
		out.Set(k, MaskValue(k, v))
	}
	return out
}

func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := EncodeJSON(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := EncodeJSON(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	v, err := decodeValue(dec)
	if err != nil {
		return err
	}
	rec, ok := v.(*Record)
	if !ok {
		return ErrNotAnObject
	}
	*r = *rec
	return nil
}

// DecodeValue decodes any JSON document, turning objects into ordered Records.
func DecodeValue(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return decodeValue(json.NewDecoder(bytes.NewReader(data)))
}

// DecodeCollection decodes a JSON array of objects. A null body is an empty
// collection; a single object becomes a one-element collection.
func DecodeCollection(data []byte) (Collection, error) {
	v, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case nil:
		return Collection{}, nil
	case *Record:
		return Collection{t}, nil
	case []any:
		out := make(Collection, 0, len(t))
		for i, e := range t {
			rec, ok := e.(*Record)
			if !ok {
				return nil, fmt.Errorf("element %d: %w", i, ErrNotAnObject)
			}
			out = append(out, rec)
		}
		return out, nil
	default:
		return nil, ErrNotAnObject
	}
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		rec := NewRecord()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("record: unexpected key token %v", keyTok)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			rec.Set(key, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return rec, nil
	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("record: unexpected delimiter %v", delim)
	}
}

// EncodeJSON marshals v without HTML escaping and without a trailing newline.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Scalarize reduces any record value to a single display string. It never fails.
func Scalarize(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = scalarizeElement(e)
		}
		return strings.Join(parts, "-")
	case *Record:
		if t == nil {
			return ""
		}
		return scalarizeObject(t)
	case map[string]any:
		return scalarizeObject(recordFromMap(t))
	}
	if s, ok := formatPrimitive(v); ok {
		return s
	}
	if b, err := EncodeJSON(v); err == nil {
		return string(b)
	}
	return fmt.Sprint(v)
}

func scalarizeObject(r *Record) string {
	if id, ok := r.identity(); ok {
		return id
	}
	for _, k := range r.keys {
		if v := r.values[k]; isStringOrNumber(v) {
			return Scalarize(v)
		}
	}
	if b, err := EncodeJSON(r); err == nil {
		return string(b)
	}
	return fmt.Sprint(r.values)
}

// scalarizeElement stringifies one array element without recursing into it.
func scalarizeElement(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			if s, ok := formatPrimitive(e); ok {
				parts[i] = s
			}
		}
		return strings.Join(parts, ",")
	case *Record, map[string]any:
		if b, err := EncodeJSON(t); err == nil {
			return string(b)
		}
		return fmt.Sprint(t)
	}
	if s, ok := formatPrimitive(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

func recordFromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := NewRecord()
	for _, k := range keys {
		r.Set(k, m[k])
	}
	return r
}

// MaskValue redacts the sensitive field and scalarizes everything else.
func MaskValue(field string, v any) string {
	if field == SensitiveField {
		return RedactedToken
	}
	return Scalarize(v)
}

// ResolveID turns a raw identity (string, number or record) into an ID string.
func ResolveID(raw any) string {
	switch t := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case *Record:
		if t == nil {
			return ""
		}
		for _, key := range identityFields {
			if v, ok := t.Get(key); ok {
				return Scalarize(v)
			}
		}
		return ""
	case map[string]any:
		return ResolveID(recordFromMap(t))
	}
	return Scalarize(raw)
}

// AsFloat reports whether v holds a JSON number and returns it.
func AsFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func isStringOrNumber(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}
	_, ok := AsFloat(v)
	return ok
}

func formatPrimitive(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return formatFloat(float64(t)), true
	case float64:
		return formatFloat(t), true
	}
	return "", false
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
