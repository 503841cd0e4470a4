package caps

import (
	"hermannm.dev/enumnames"
)

// AggregationKind identifies an aggregation by its Elasticsearch DSL name.
type AggregationKind uint8

const (
	AggregationCount AggregationKind = iota + 1
	AggregationAverage
	AggregationMin
	AggregationMax
	AggregationSum
	AggregationCardinality
)

var aggregationKindNames = enumnames.NewMap(map[AggregationKind]string{
	AggregationCount:       "count",
	AggregationAverage:     "avg",
	AggregationMin:         "min",
	AggregationMax:         "max",
	AggregationSum:         "sum",
	AggregationCardinality: "cardinality",
})

func (kind AggregationKind) IsValid() bool {
	return aggregationKindNames.ContainsEnumValue(kind)
}

// DSLName returns the aggregation's name in the Elasticsearch aggregation DSL. Rollup job
// definitions list permitted aggregations per field under this name.
func (kind AggregationKind) DSLName() string {
	return aggregationKindNames.GetNameOrFallback(kind, "INVALID_AGGREGATION")
}

func (kind AggregationKind) String() string {
	return kind.DSLName()
}

func (kind AggregationKind) MarshalJSON() ([]byte, error) {
	return aggregationKindNames.MarshalToNameJSON(kind)
}

func (kind *AggregationKind) UnmarshalJSON(bytes []byte) error {
	return aggregationKindNames.UnmarshalFromNameJSON(bytes, kind)
}

// AggregationCategory distinguishes metric aggregations (numeric summaries over a single field)
// from bucketing aggregations. Only metric aggregations take part in field pairing.
type AggregationCategory uint8

const (
	AggregationCategoryMetric AggregationCategory = iota + 1
	AggregationCategoryBucket
)

var aggregationCategoryNames = enumnames.NewMap(map[AggregationCategory]string{
	AggregationCategoryMetric: "metrics",
	AggregationCategoryBucket: "buckets",
})

func (category AggregationCategory) IsValid() bool {
	return aggregationCategoryNames.ContainsEnumValue(category)
}

func (category AggregationCategory) String() string {
	return aggregationCategoryNames.GetNameOrFallback(category, "INVALID_AGGREGATION_CATEGORY")
}

func (category AggregationCategory) MarshalJSON() ([]byte, error) {
	return aggregationCategoryNames.MarshalToNameJSON(category)
}

func (category *AggregationCategory) UnmarshalJSON(bytes []byte) error {
	return aggregationCategoryNames.UnmarshalFromNameJSON(bytes, category)
}

// Aggregation is an entry from the aggregation catalog, annotated with the fields it applies to.
type Aggregation struct {
	Kind     AggregationKind     `json:"agg"`
	Category AggregationCategory `json:"type"`
	Fields   []string            `json:"fields"`
}

// The shared catalog template. Field lists stay nil here; requests link fields into their own
// copies from NewAggregationCatalog.
var aggregationCatalog = []Aggregation{
	{Kind: AggregationCount, Category: AggregationCategoryMetric},
	{Kind: AggregationAverage, Category: AggregationCategoryMetric},
	{Kind: AggregationMin, Category: AggregationCategoryMetric},
	{Kind: AggregationMax, Category: AggregationCategoryMetric},
	{Kind: AggregationSum, Category: AggregationCategoryMetric},
	{Kind: AggregationCardinality, Category: AggregationCategoryMetric},
}

// NewAggregationCatalog returns a fresh copy of the aggregation catalog, so that linking fields
// into it never mutates state shared with concurrent requests.
func NewAggregationCatalog() []Aggregation {
	catalog := make([]Aggregation, len(aggregationCatalog))

	for i, aggregation := range aggregationCatalog {
		aggregation.Fields = make([]string, 0)
		catalog[i] = aggregation
	}

	return catalog
}
