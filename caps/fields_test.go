package caps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTypeFromName(t *testing.T) {
	for fieldType, name := range fieldTypeNames {
		parsed, ok := FieldTypeFromName(name)
		require.True(t, ok)
		assert.Equal(t, fieldType, parsed)
	}

	_, ok := FieldTypeFromName("boolean")
	assert.False(t, ok)
}

func TestFieldTypePredicates(t *testing.T) {
	numeric := []FieldType{FieldTypeDouble, FieldTypeFloat, FieldTypeLong}
	textual := []FieldType{FieldTypeKeyword, FieldTypeText}

	for fieldType := range fieldTypeNames {
		assert.Equal(t, contains(numeric, fieldType), fieldType.IsNumeric(), fieldType.String())
		assert.Equal(t, contains(textual, fieldType), fieldType.IsTextual(), fieldType.String())
	}
}

func contains(fieldTypes []FieldType, fieldType FieldType) bool {
	for _, candidate := range fieldTypes {
		if candidate == fieldType {
			return true
		}
	}
	return false
}

func TestFieldsFromReport(t *testing.T) {
	report := FieldCapsReport{
		Indices: []string{"test-index"},
		Fields: map[string]map[string]FieldCapability{
			"age": {
				"long": {Type: "long", Aggregatable: true},
			},
			"description": {
				"text": {Type: "text", Aggregatable: false},
			},
			"enabled": {
				"boolean": {Type: "boolean", Aggregatable: true},
			},
			"empty": {},
		},
	}

	fields := FieldsFromReport(report)
	require.Len(t, fields, 2)

	assert.Equal(
		t,
		Field{Name: "age", Type: FieldTypeLong, Aggregatable: true},
		fields[0],
	)
	assert.Equal(
		t,
		Field{Name: "description", Type: FieldTypeText, Aggregatable: false},
		fields[1],
	)
}

func TestFieldsFromReportWithConflictingTypeVariants(t *testing.T) {
	report := FieldCapsReport{
		Fields: map[string]map[string]FieldCapability{
			"title": {
				"text":    {Type: "text", Aggregatable: false},
				"keyword": {Type: "keyword", Aggregatable: true},
			},
		},
	}

	fields := FieldsFromReport(report)
	require.Len(t, fields, 1)

	// Type variants are inspected in type name order, so keyword wins over text here.
	assert.Equal(t, FieldTypeKeyword, fields[0].Type)
	assert.True(t, fields[0].Aggregatable)
}
