package trait

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Data is the property container every trait and specification reads and
// writes through. It maps (trait id, property key) to a Value. Ordering is
// irrelevant and mutation happens in place.
//
// The container is owned by the host API. Implementations are not required
// to be safe for concurrent mutation.
type Data interface {
	HasTrait(id string) bool
	TraitSet() Set
	AddTrait(id string)
	HasTraitProperty(id, key string) bool
	GetTraitProperty(id, key string) (Value, bool)
	SetTraitProperty(id, key string, v Value)
	TraitPropertyKeys(id string) []string
}

// TraitsData is a map-backed Data. A nil *TraitsData reads as empty and
// ignores writes.
type TraitsData struct {
	traits map[string]map[string]Value
}

var _ Data = (*TraitsData)(nil)

// NewTraitsData returns a container imbued with ids and no properties.
func NewTraitsData(ids ...string) *TraitsData {
	d := &TraitsData{traits: make(map[string]map[string]Value, len(ids))}
	for _, id := range ids {
		d.AddTrait(id)
	}
	return d
}

func (d *TraitsData) HasTrait(id string) bool {
	if d == nil {
		return false
	}
	_, ok := d.traits[id]
	return ok
}

func (d *TraitsData) TraitSet() Set {
	if d == nil {
		return NewSet()
	}
	return NewSet(slices.Collect(maps.Keys(d.traits))...)
}

// AddTrait imbues id. Existing properties of id are kept.
func (d *TraitsData) AddTrait(id string) {
	if d == nil {
		return
	}
	if d.traits == nil {
		d.traits = make(map[string]map[string]Value)
	}
	if _, ok := d.traits[id]; !ok {
		d.traits[id] = make(map[string]Value)
	}
}

func (d *TraitsData) HasTraitProperty(id, key string) bool {
	if d == nil {
		return false
	}
	_, ok := d.traits[id][key]
	return ok
}

func (d *TraitsData) GetTraitProperty(id, key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	v, ok := d.traits[id][key]
	return v, ok
}

// SetTraitProperty stores v, adding the trait if needed. An invalid v
// removes the property.
func (d *TraitsData) SetTraitProperty(id, key string, v Value) {
	if d == nil {
		return
	}
	d.AddTrait(id)
	if !v.IsValid() {
		delete(d.traits[id], key)
		return
	}
	d.traits[id][key] = v
}

// TraitPropertyKeys returns the keys set for id, sorted.
func (d *TraitsData) TraitPropertyKeys(id string) []string {
	if d == nil {
		return nil
	}
	keys := slices.Collect(maps.Keys(d.traits[id]))
	slices.Sort(keys)
	return keys
}

// Copy returns a deep copy of d. The copy of nil is nil.
func (d *TraitsData) Copy() *TraitsData {
	if d == nil {
		return nil
	}
	c := NewTraitsData()
	for id, props := range d.traits {
		c.traits[id] = maps.Clone(props)
	}
	return c
}

// Equal reports whether d and o hold the same traits and properties. Nil
// equals an empty container.
func (d *TraitsData) Equal(o *TraitsData) bool {
	if len(d.entries()) != len(o.entries()) {
		return false
	}
	for id, props := range d.entries() {
		other, ok := o.entries()[id]
		if !ok || !maps.Equal(props, other) {
			return false
		}
	}
	return true
}

func (d *TraitsData) entries() map[string]map[string]Value {
	if d == nil {
		return nil
	}
	return d.traits
}

// MarshalJSON encodes d as {"traitId": {"key": value}}.
func (d *TraitsData) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]any, len(d.traits))
	for id, props := range d.traits {
		m := make(map[string]any, len(props))
		for k, v := range props {
			m[k] = v.Interface()
		}
		out[id] = m
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON. Integral JSON numbers decode
// as Int, all others as Float.
func (d *TraitsData) UnmarshalJSON(b []byte) error {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	d.traits = make(map[string]map[string]Value, len(raw))
	for id, props := range raw {
		d.AddTrait(id)
		for k, msg := range props {
			v, err := decodeJSONValue(msg)
			if err != nil {
				return fmt.Errorf("trait %q property %q: %w", id, k, err)
			}
			d.traits[id][k] = v
		}
	}
	return nil
}

func decodeJSONValue(msg json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) > 0 && (trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9')) {
		n := json.Number(trimmed)
		if i, err := n.Int64(); err == nil {
			return IntValue(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	}
	var x any
	if err := json.Unmarshal(trimmed, &x); err != nil {
		return Value{}, err
	}
	return ValueOf(x)
}
