package caps

import (
	"encoding/json"
	"errors"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FieldType is the data type reported for a field in a field capabilities report.
// Only these types are eligible for aggregation matching; fields of any other reported type are
// dropped from the results.
type FieldType uint8

const (
	FieldTypeDate FieldType = iota + 1
	FieldTypeKeyword
	FieldTypeText
	FieldTypeDouble
	FieldTypeInteger
	FieldTypeFloat
	FieldTypeLong
	FieldTypeByte
	FieldTypeHalfFloat
	FieldTypeScaledFloat
	FieldTypeShort
)

// Field type names follow the Elasticsearch mapping type names, since that is how they appear in
// field capability reports.
var fieldTypeNames = map[FieldType]string{
	FieldTypeDate:        "date",
	FieldTypeKeyword:     "keyword",
	FieldTypeText:        "text",
	FieldTypeDouble:      "double",
	FieldTypeInteger:     "integer",
	FieldTypeFloat:       "float",
	FieldTypeLong:        "long",
	FieldTypeByte:        "byte",
	FieldTypeHalfFloat:   "half_float",
	FieldTypeScaledFloat: "scaled_float",
	FieldTypeShort:       "short",
}

func FieldTypeFromName(name string) (fieldType FieldType, ok bool) {
	for candidate, candidateName := range fieldTypeNames {
		if candidateName == name {
			return candidate, true
		}
	}

	return 0, false
}

func (fieldType FieldType) IsValid() bool {
	_, ok := fieldTypeNames[fieldType]
	return ok
}

// IsNumeric reports whether fields of this type can be paired with numeric metric aggregations.
// Narrower numeric types (integer, byte, short, half_float, scaled_float) are valid field types,
// but are not eligible for numeric aggregation pairing.
func (fieldType FieldType) IsNumeric() bool {
	switch fieldType {
	case FieldTypeDouble, FieldTypeFloat, FieldTypeLong:
		return true
	default:
		return false
	}
}

func (fieldType FieldType) IsTextual() bool {
	return fieldType == FieldTypeKeyword || fieldType == FieldTypeText
}

func (fieldType FieldType) String() string {
	if name, ok := fieldTypeNames[fieldType]; ok {
		return name
	} else {
		return "[INVALID]"
	}
}

func (fieldType FieldType) MarshalJSON() ([]byte, error) {
	if name, ok := fieldTypeNames[fieldType]; ok {
		return json.Marshal(name)
	} else {
		return nil, errors.New("unrecognized field type")
	}
}

func (fieldType *FieldType) UnmarshalJSON(bytes []byte) error {
	var name string
	if err := json.Unmarshal(bytes, &name); err != nil {
		return err
	}

	if parsed, ok := FieldTypeFromName(name); ok {
		*fieldType = parsed
		return nil
	}

	return errors.New("unrecognized field type")
}

// Field is a field from a capability report, annotated with the aggregations that apply to it.
// Constructed fresh per request, never persisted.
type Field struct {
	Name         string            `json:"name"`
	Type         FieldType         `json:"type"`
	Aggregatable bool              `json:"aggregatable"`
	Aggs         []AggregationKind `json:"aggs"`
}

// FieldCapsReport is the raw field capability metadata for an index pattern: for every field name,
// the capabilities observed per type variant across the pattern's matching indices.
type FieldCapsReport struct {
	Indices []string                              `json:"indices"`
	Fields  map[string]map[string]FieldCapability `json:"fields"`
}

type FieldCapability struct {
	Type         string `json:"type"`
	Aggregatable bool   `json:"aggregatable"`
}

// FieldsFromReport transforms a raw capability report into a field list, keeping only fields whose
// reported type is one of the supported field types. Fields with malformed or unsupported type
// information are dropped silently.
//
// The returned list is sorted ascending by field name, using locale-aware comparison.
func FieldsFromReport(report FieldCapsReport) []Field {
	fields := make([]Field, 0, len(report.Fields))

	for name, typeVariants := range report.Fields {
		capability, ok := firstTypeVariant(typeVariants)
		if !ok {
			continue
		}

		fieldType, ok := FieldTypeFromName(capability.Type)
		if !ok {
			continue
		}

		fields = append(fields, Field{
			Name:         name,
			Type:         fieldType,
			Aggregatable: capability.Aggregatable,
			Aggs:         nil,
		})
	}

	collator := collate.New(language.Und)
	slices.SortFunc(fields, func(field1 Field, field2 Field) int {
		return collator.CompareString(field1.Name, field2.Name)
	})

	return fields
}

// Capability reports key capabilities by type variant, and almost always contain a single variant
// per field. When a field has conflicting types across indices, we take the first variant in type
// name order, so that the choice is deterministic.
func firstTypeVariant(
	typeVariants map[string]FieldCapability,
) (capability FieldCapability, ok bool) {
	if len(typeVariants) == 0 {
		return FieldCapability{}, false
	}

	variantNames := make([]string, 0, len(typeVariants))
	for variantName := range typeVariants {
		variantNames = append(variantNames, variantName)
	}
	slices.Sort(variantNames)

	return typeVariants[variantNames[0]], true
}
