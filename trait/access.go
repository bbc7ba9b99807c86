package trait

import "errors"

// Trait is implemented by every generated trait class. A trait holds no
// state of its own beyond the container it is bound to.
type Trait interface {
	ID() string
	IsImbued() bool
	Imbue()
	Properties() []Property
}

// Property declares one typed property of a trait.
type Property struct {
	Key  string
	Kind Kind
}

// Get reads the property of traitID from d. The bool result is false when
// the property is not set.
func (p Property) Get(d Data, traitID string) (Value, bool, error) {
	if err := requireTrait(d, traitID, p.Key); err != nil {
		return Value{}, false, err
	}
	v, ok := d.GetTraitProperty(traitID, p.Key)
	if !ok || !v.IsValid() {
		return Value{}, false, nil
	}
	if v.Kind() != p.Kind {
		return Value{}, false, &TypeError{TraitID: traitID, Key: p.Key, Want: p.Kind, Value: v, Stored: true}
	}
	return v, true, nil
}

// GetOr is Get with a fallback: defaultValue is returned when the property
// is unset or holds the wrong kind. A missing trait is still an error.
func (p Property) GetOr(d Data, traitID string, defaultValue Value) (Value, error) {
	v, ok, err := p.Get(d, traitID)
	if errors.Is(err, ErrTypeMismatch) {
		return defaultValue, nil
	}
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return defaultValue, nil
	}
	return v, nil
}

// Set writes v after checking the trait is present and v has the declared
// kind. Values are never coerced.
func (p Property) Set(d Data, traitID string, v Value) error {
	if err := requireTrait(d, traitID, p.Key); err != nil {
		return err
	}
	if v.Kind() != p.Kind {
		return &TypeError{TraitID: traitID, Key: p.Key, Want: p.Kind, Value: v}
	}
	d.SetTraitProperty(traitID, p.Key, v)
	return nil
}

// CheckProperties verifies that every declared property stored for traitID
// has its declared kind. All mismatches are reported.
func CheckProperties(d Data, traitID string, props []Property) error {
	if err := requireTrait(d, traitID, ""); err != nil {
		return err
	}
	var errs []error
	for _, p := range props {
		if _, _, err := p.Get(d, traitID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IsImbued reports whether d has traitID. A nil d has no traits.
func IsImbued(d Data, traitID string) bool {
	return d != nil && d.HasTrait(traitID)
}

// Imbue adds traitID to d. A nil d is left unchanged.
func Imbue(d Data, traitID string) {
	if d != nil {
		d.AddTrait(traitID)
	}
}

func requireTrait(d Data, traitID, key string) error {
	if !IsImbued(d, traitID) {
		return &NotPresentError{TraitID: traitID, Key: key}
	}
	return nil
}

func getAs[T any](d Data, traitID, key string, kind Kind, as func(Value) (T, bool)) (T, bool, error) {
	var zero T
	v, ok, err := Property{Key: key, Kind: kind}.Get(d, traitID)
	if err != nil || !ok {
		return zero, false, err
	}
	out, _ := as(v)
	return out, true, nil
}

func getOrAs[T any](d Data, traitID, key string, kind Kind, as func(Value) (T, bool), defaultValue T) (T, error) {
	out, ok, err := getAs(d, traitID, key, kind, as)
	if errors.Is(err, ErrTypeMismatch) {
		return defaultValue, nil
	}
	if err != nil {
		return out, err
	}
	if !ok {
		return defaultValue, nil
	}
	return out, nil
}

// GetBool reads a boolean property. See Property.Get.
func GetBool(d Data, traitID, key string) (bool, bool, error) {
	return getAs(d, traitID, key, Bool, Value.AsBool)
}

// GetBoolOr reads a boolean property with a fallback. See Property.GetOr.
func GetBoolOr(d Data, traitID, key string, defaultValue bool) (bool, error) {
	return getOrAs(d, traitID, key, Bool, Value.AsBool, defaultValue)
}

// SetBool writes a boolean property. See Property.Set.
func SetBool(d Data, traitID, key string, v bool) error {
	return Property{Key: key, Kind: Bool}.Set(d, traitID, BoolValue(v))
}

// GetInt reads an integer property. See Property.Get.
func GetInt(d Data, traitID, key string) (int64, bool, error) {
	return getAs(d, traitID, key, Int, Value.AsInt)
}

// GetIntOr reads an integer property with a fallback. See Property.GetOr.
func GetIntOr(d Data, traitID, key string, defaultValue int64) (int64, error) {
	return getOrAs(d, traitID, key, Int, Value.AsInt, defaultValue)
}

// SetInt writes an integer property. See Property.Set.
func SetInt(d Data, traitID, key string, v int64) error {
	return Property{Key: key, Kind: Int}.Set(d, traitID, IntValue(v))
}

// GetFloat reads a floating point property. See Property.Get.
func GetFloat(d Data, traitID, key string) (float64, bool, error) {
	return getAs(d, traitID, key, Float, Value.AsFloat)
}

// GetFloatOr reads a floating point property with a fallback. See
// Property.GetOr.
func GetFloatOr(d Data, traitID, key string, defaultValue float64) (float64, error) {
	return getOrAs(d, traitID, key, Float, Value.AsFloat, defaultValue)
}

// SetFloat writes a floating point property. See Property.Set.
func SetFloat(d Data, traitID, key string, v float64) error {
	return Property{Key: key, Kind: Float}.Set(d, traitID, FloatValue(v))
}

// GetString reads a string property. See Property.Get.
func GetString(d Data, traitID, key string) (string, bool, error) {
	return getAs(d, traitID, key, String, Value.AsString)
}

// GetStringOr reads a string property with a fallback. See Property.GetOr.
func GetStringOr(d Data, traitID, key string, defaultValue string) (string, error) {
	return getOrAs(d, traitID, key, String, Value.AsString, defaultValue)
}

// SetString writes a string property. See Property.Set.
func SetString(d Data, traitID, key string, v string) error {
	return Property{Key: key, Kind: String}.Set(d, traitID, StringValue(v))
}
