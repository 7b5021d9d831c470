package marketstack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
)

// AdditionalProperties holds the JSON object members that a model does not
// declare. Values are kept as raw JSON so they survive re-encoding unchanged.
type AdditionalProperties struct {
	fields map[string]json.RawMessage
}

// Get returns the raw JSON stored under key.
func (a *AdditionalProperties) Get(key string) (json.RawMessage, bool) {
	raw, ok := a.fields[key]

	return raw, ok
}

// Decode unmarshals the value stored under key into target.
func (a *AdditionalProperties) Decode(key string, target interface{}) error {
	raw, ok := a.fields[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAdditionalPropertyNotFound, key)
	}

	err := json.Unmarshal(raw, target)
	if err != nil {
		return fmt.Errorf("decoding additional property %s: %w", key, err)
	}

	return nil
}

// Set stores value under key after encoding it to JSON.
func (a *AdditionalProperties) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding additional property %s: %w", key, err)
	}

	a.put(key, raw)

	return nil
}

// SetRaw stores an already encoded JSON value under key.
func (a *AdditionalProperties) SetRaw(key string, raw json.RawMessage) error {
	if !json.Valid(raw) {
		return fmt.Errorf("%w: %s", ErrInvalidRawJSON, key)
	}

	a.put(key, append(json.RawMessage(nil), raw...))

	return nil
}

// Delete removes key.
func (a *AdditionalProperties) Delete(key string) {
	delete(a.fields, key)
}

// Has reports whether key is stored.
func (a *AdditionalProperties) Has(key string) bool {
	_, ok := a.fields[key]

	return ok
}

// Keys returns the stored keys in sorted order.
func (a *AdditionalProperties) Keys() []string {
	keys := make([]string, 0, len(a.fields))
	for k := range a.fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Len returns the number of stored keys.
func (a *AdditionalProperties) Len() int {
	return len(a.fields)
}

// Map returns a copy of the stored members.
func (a *AdditionalProperties) Map() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(a.fields))
	for k, v := range a.fields {
		out[k] = v
	}

	return out
}

func (a *AdditionalProperties) put(key string, raw json.RawMessage) {
	if a.fields == nil {
		a.fields = make(map[string]json.RawMessage)
	}

	a.fields[key] = raw
}

func (a *AdditionalProperties) reset() {
	a.fields = nil
}

// decodeObject unmarshals data into target (a pointer to a struct type without
// custom JSON methods) and captures every member with no matching field.
// Only members whose names match a declared field exactly reach target, so a
// case variant such as "Symbol" stays an additional member.
func decodeObject(data []byte, target interface{}, additional *AdditionalProperties) error {
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() || !json.Valid(data) {
		additional.reset()

		return json.Unmarshal(data, target) //nolint:wrapcheck // callers wrap with the model name
	}

	known := knownFields(reflect.TypeOf(target).Elem())

	var declared bytes.Buffer

	declared.WriteByte('{')

	unknown := make(map[string]json.RawMessage)

	parsed.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, ok := known[name]; !ok {
			unknown[name] = json.RawMessage(value.Raw)

			return true
		}

		if declared.Len() > 1 {
			declared.WriteByte(',')
		}

		declared.WriteString(key.Raw)
		declared.WriteByte(':')
		declared.WriteString(value.Raw)

		return true
	})

	declared.WriteByte('}')

	err := json.Unmarshal(declared.Bytes(), target)
	if err != nil {
		return err //nolint:wrapcheck // callers wrap with the model name
	}

	additional.reset()

	for name, raw := range unknown {
		additional.put(name, raw)
	}

	return nil
}

// encodeObject marshals value and appends the additional members. Declared
// fields win over additional members that share a key.
func encodeObject(value interface{}, additional AdditionalProperties) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err //nolint:wrapcheck // callers wrap with the model name
	}

	if additional.Len() == 0 {
		return data, nil
	}

	emitted := make(map[string]struct{})

	gjson.ParseBytes(data).ForEach(func(key, _ gjson.Result) bool {
		emitted[key.String()] = struct{}{}

		return true
	})

	var buf bytes.Buffer

	body := bytes.TrimSuffix(bytes.TrimSpace(data), []byte("}"))
	buf.Write(body)

	wroteMember := len(emitted) > 0

	for _, key := range additional.Keys() {
		if _, clash := emitted[key]; clash {
			continue
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err //nolint:wrapcheck // strings always encode
		}

		if wroteMember {
			buf.WriteByte(',')
		}

		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(additional.fields[key])

		wroteMember = true
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

var knownFieldCache sync.Map // reflect.Type -> map[string]struct{}

// knownFields returns the JSON member names declared by a struct type.
func knownFields(t reflect.Type) map[string]struct{} {
	if cached, ok := knownFieldCache.Load(t); ok {
		return cached.(map[string]struct{}) //nolint:forcetypeassert // cache holds one type
	}

	names := make(map[string]struct{})
	collectFields(t, names)
	knownFieldCache.Store(t, names)

	return names
}

func collectFields(t reflect.Type, names map[string]struct{}) {
	for i := range t.NumField() {
		field := t.Field(i)

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")

		if field.Anonymous && name == "" && field.Type.Kind() == reflect.Struct {
			collectFields(field.Type, names)

			continue
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		names[name] = struct{}{}
	}
}
