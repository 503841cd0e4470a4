package caps

import (
	"slices"
	"strings"
)

// RollupJob is the definition of a rollup job: a pre-aggregated materialized view over raw data,
// supporting only the field/aggregation combinations listed in Fields.
type RollupJob struct {
	ID           string                      `json:"job_id"`
	IndexPattern string                      `json:"index_pattern"`
	RollupIndex  string                      `json:"rollup_index"`
	Fields       map[string][]RollupFieldAgg `json:"fields"`
}

// RollupFieldAgg is a single aggregation permitted for a field within a rollup job definition.
type RollupFieldAgg struct {
	Agg string `json:"agg"`
}

// MergeFieldAggs merges the field/aggregation maps of the given rollup jobs into one map from
// field name to permitted aggregation names. Aggregation names are unioned across jobs, with each
// field/aggregation pair recorded once.
func MergeFieldAggs(jobs []RollupJob) map[string][]string {
	merged := make(map[string][]string)

	for _, job := range jobs {
		for fieldName, fieldAggs := range job.Fields {
			for _, fieldAgg := range fieldAggs {
				if !slices.Contains(merged[fieldName], fieldAgg.Agg) {
					merged[fieldName] = append(merged[fieldName], fieldAgg.Agg)
				}
			}
		}
	}

	return merged
}

// RollupIndices returns the comma-joined list of the jobs' backing rollup indices, which is the
// index pattern to use when fetching field capabilities for rolled-up data.
func RollupIndices(jobs []RollupJob) string {
	indices := make([]string, 0, len(jobs))
	for _, job := range jobs {
		indices = append(indices, job.RollupIndex)
	}

	return strings.Join(indices, ",")
}
