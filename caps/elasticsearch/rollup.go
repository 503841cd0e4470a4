package elasticsearch

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"hermannm.dev/fieldcaps/caps"
	"hermannm.dev/wrap"
)

// GetRollupJobs looks up the rollup job definitions whose source data matches the given index
// pattern, flattened across the backing rollup indices in the response. An empty job list means no
// rollup jobs matched (also when the index pattern itself is not found).
func (elastic CapsClient) GetRollupJobs(
	ctx context.Context,
	indexPattern string,
) ([]caps.RollupJob, error) {
	request := esapi.RollupGetRollupIndexCapsRequest{Index: indexPattern}

	res, err := request.Do(ctx, elastic.client)
	if err != nil {
		return nil, wrap.Error(err, "rollup index capabilities request failed")
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.IsError() {
		return nil, wrap.Errorf(
			errorFromResponse(res),
			"rollup index capabilities request failed for index pattern '%s'",
			indexPattern,
		)
	}

	var response map[string]rollupIndexCaps
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, wrap.Error(err, "failed to parse rollup index capabilities response")
	}

	var jobs []caps.RollupJob
	for _, indexCaps := range response {
		jobs = append(jobs, indexCaps.RollupJobs...)
	}

	return jobs, nil
}

type rollupIndexCaps struct {
	RollupJobs []caps.RollupJob `json:"rollup_jobs"`
}
