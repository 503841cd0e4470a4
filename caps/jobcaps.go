package caps

import (
	"context"
	"errors"
	"slices"

	"hermannm.dev/devlog/log"
	"hermannm.dev/wrap"
)

// CapabilityFetcher abstracts the external service that reports field capability metadata for an
// index pattern.
type CapabilityFetcher interface {
	GetFieldCaps(ctx context.Context, indexPattern string) (FieldCapsReport, error)
}

// RollupService abstracts the external service that looks up rollup job definitions matching an
// index pattern. An empty job list means no rollup jobs matched, which is not an error.
type RollupService interface {
	GetRollupJobs(ctx context.Context, indexPattern string) ([]RollupJob, error)
}

// JobCapsRequest is the caller's input to ComputeJobCaps, passed by value.
type JobCapsRequest struct {
	IndexPattern string
	IsRollup     bool
}

// JobCaps is the result of capability matching: fields annotated with the aggregations that apply
// to them, and aggregations annotated with the fields they apply to. Both lists are mutually
// filtered, so every field has at least one aggregation and every aggregation at least one field.
type JobCaps struct {
	Fields []Field       `json:"fields"`
	Aggs   []Aggregation `json:"aggs"`
}

// ComputeJobCaps fetches field capability metadata for the requested index pattern, and
// cross-references the reported fields against the aggregation catalog:
//   - cardinality pairs with textual (keyword, text) and numeric (double, float, long) fields
//   - count pairs with no field, as it applies to documents rather than a specific field
//   - every other metric aggregation pairs with numeric fields only
//
// In rollup mode, the field/aggregation maps of the matching rollup jobs are merged, capability
// metadata is fetched for the jobs' backing rollup indices instead of the requested pattern, and a
// field/aggregation pair is kept only if the merged map explicitly permits it. If no rollup jobs
// match the pattern, the result is empty.
//
// Errors from the collaborators are propagated to the caller; there is no retry or local recovery.
func ComputeJobCaps(
	ctx context.Context,
	request JobCapsRequest,
	fetcher CapabilityFetcher,
	rollups RollupService,
) (JobCaps, error) {
	if request.IndexPattern == "" {
		return JobCaps{}, errors.New("index pattern must not be empty")
	}

	indexPattern := request.IndexPattern

	// In rollup mode, rollupFieldAggs restricts which field/aggregation pairs may be linked.
	// A nil map permits every pair.
	var rollupFieldAggs map[string][]string

	if request.IsRollup {
		jobs, err := rollups.GetRollupJobs(ctx, indexPattern)
		if err != nil {
			return JobCaps{}, wrap.Errorf(
				err, "failed to get rollup jobs for index pattern '%s'", indexPattern,
			)
		}

		if len(jobs) == 0 {
			log.Debugf("no rollup jobs matched index pattern '%s'", indexPattern)
			return JobCaps{Fields: []Field{}, Aggs: []Aggregation{}}, nil
		}

		rollupFieldAggs = MergeFieldAggs(jobs)
		indexPattern = RollupIndices(jobs)
	}

	report, err := fetcher.GetFieldCaps(ctx, indexPattern)
	if err != nil {
		return JobCaps{}, wrap.Errorf(
			err, "failed to get field capabilities for index pattern '%s'", indexPattern,
		)
	}

	fields := FieldsFromReport(report)
	aggs := NewAggregationCatalog()

	for i := range aggs {
		agg := &aggs[i]
		if agg.Category != AggregationCategoryMetric {
			continue
		}

		switch agg.Kind {
		case AggregationCount:
			// Count applies implicitly to all documents, so it is never paired with a field.
		case AggregationCardinality:
			for j := range fields {
				field := &fields[j]
				if field.Type.IsTextual() || field.Type.IsNumeric() {
					linkIfPermitted(field, agg, rollupFieldAggs)
				}
			}
		default:
			for j := range fields {
				field := &fields[j]
				if field.Type.IsNumeric() {
					linkIfPermitted(field, agg, rollupFieldAggs)
				}
			}
		}
	}

	fields = slices.DeleteFunc(fields, func(field Field) bool {
		return len(field.Aggs) == 0
	})
	aggs = slices.DeleteFunc(aggs, func(agg Aggregation) bool {
		return len(agg.Fields) == 0
	})

	return JobCaps{Fields: fields, Aggs: aggs}, nil
}

func linkIfPermitted(field *Field, agg *Aggregation, rollupFieldAggs map[string][]string) {
	if rollupFieldAggs != nil {
		permittedAggs, ok := rollupFieldAggs[field.Name]
		if !ok || !slices.Contains(permittedAggs, agg.Kind.DSLName()) {
			return
		}
	}

	field.Aggs = append(field.Aggs, agg.Kind)
	agg.Fields = append(agg.Fields, field.Name)
}
