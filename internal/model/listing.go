package model

import (
	"encoding/json"
	"fmt"
)

// JSON keys of the fields every listing carries.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldType        = "type"
)

// CommonFields are required on every listing regardless of category.
var CommonFields = []string{FieldName, FieldDescription, FieldLocation, FieldType}

// Listing is a classified ad.
//
// Category-specific fields (brand, area, cost, ...) and any extra fields the
// client sent live in Attributes. On the wire the listing is one flat object.
type Listing struct {
	ID          int
	Name        string
	Description string
	Location    string
	Type        Category
	Attributes  map[string]interface{}
}

// RuleError reports which required fields a payload is missing.
type RuleError struct {
	Message string
	Missing []string
}

func (e *RuleError) Error() string {
	return e.Message
}

// Present reports whether fields holds a usable value for key. Absent
// keys, null, "", 0 and false all count as missing.
func Present(fields map[string]interface{}, key string) bool {
	v, ok := fields[key]
	if !ok || v == nil {
		return false
	}

	switch t := v.(type) {
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case json.Number:
		return t != "" && t != "0"
	}

	return true
}

// CheckFields applies the common-field rule and then the rule of the
// payload's category. The returned error is a *RuleError.
func CheckFields(fields map[string]interface{}) error {
	if missing := missingFields(fields, CommonFields); len(missing) > 0 {
		return &RuleError{Message: "Missing required common fields", Missing: missing}
	}

	category, ok := fields[FieldType].(string)
	if !ok {
		return &RuleError{Message: "Invalid type"}
	}

	if !Category(category).Valid() {
		return &RuleError{Message: "Invalid type"}
	}
	rule := CategoryRules[Category(category)]

	if missing := missingFields(fields, rule.Required); len(missing) > 0 {
		return &RuleError{
			Message: fmt.Sprintf("Missing required fields for %s", rule.Label),
			Missing: missing,
		}
	}

	return nil
}

func missingFields(fields map[string]interface{}, keys []string) []string {
	var missing []string
	for _, key := range keys {
		if !Present(fields, key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// NewListing checks fields and builds a Listing from them. Any id in
// fields is ignored; ids are assigned by the store.
func NewListing(fields map[string]interface{}) (*Listing, error) {
	if err := CheckFields(fields); err != nil {
		return nil, err
	}

	listing := &Listing{Attributes: make(map[string]interface{})}
	listing.Merge(fields)

	return listing, nil
}

// Merge copies fields over l, key by key. Common keys update the typed
// fields; everything else lands in Attributes. The id is never changed and
// nothing is re-validated.
//
// A common key whose value is not a string is kept in Attributes, and its
// typed field cleared, so the client gets back what it sent.
func (l *Listing) Merge(fields map[string]interface{}) {
	if l.Attributes == nil {
		l.Attributes = make(map[string]interface{})
	}

	for key, value := range fields {
		if key == FieldID {
			continue
		}

		s, isString := value.(string)

		switch {
		case key == FieldName && isString:
			l.Name = s
		case key == FieldDescription && isString:
			l.Description = s
		case key == FieldLocation && isString:
			l.Location = s
		case key == FieldType && isString:
			l.Type = Category(s)
		default:
			l.Attributes[key] = value
			l.clearCommon(key)
			continue
		}

		delete(l.Attributes, key)
	}
}

// clearCommon zeroes the typed field behind a common key that was given a
// non-string value.
func (l *Listing) clearCommon(key string) {
	switch key {
	case FieldName:
		l.Name = ""
	case FieldDescription:
		l.Description = ""
	case FieldLocation:
		l.Location = ""
	case FieldType:
		l.Type = ""
	}
}

// Clone returns a copy of l that shares no map with it.
func (l *Listing) Clone() *Listing {
	clone := *l
	clone.Attributes = make(map[string]interface{}, len(l.Attributes))
	for k, v := range l.Attributes {
		clone.Attributes[k] = v
	}
	return &clone
}

// MarshalJSON writes the listing as one flat object.
func (l Listing) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(l.Attributes)+5)
	for k, v := range l.Attributes {
		out[k] = v
	}

	out[FieldID] = l.ID
	setIfNotEmpty(out, FieldName, l.Name)
	setIfNotEmpty(out, FieldDescription, l.Description)
	setIfNotEmpty(out, FieldLocation, l.Location)
	setIfNotEmpty(out, FieldType, string(l.Type))

	return json.Marshal(out)
}

// setIfNotEmpty keeps a non-string value the client stored under a common
// key (see Merge) from being overwritten by the zero string.
func setIfNotEmpty(out map[string]interface{}, key, value string) {
	if value != "" {
		out[key] = value
		return
	}
	if _, ok := out[key]; !ok {
		out[key] = value
	}
}

// UnmarshalJSON reads a flat listing object, including its id.
func (l *Listing) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*l = Listing{Attributes: make(map[string]interface{})}
	if id, ok := fields[FieldID].(float64); ok {
		l.ID = int(id)
	}
	l.Merge(fields)

	return nil
}
