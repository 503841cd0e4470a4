package elasticsearch

import (
	"context"
	"encoding/json"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"hermannm.dev/fieldcaps/caps"
	"hermannm.dev/wrap"
)

// GetFieldCaps fetches field capability metadata for all fields matching the given index pattern.
func (elastic CapsClient) GetFieldCaps(
	ctx context.Context,
	indexPattern string,
) (caps.FieldCapsReport, error) {
	request := esapi.FieldCapsRequest{
		Index:  []string{indexPattern},
		Fields: []string{"*"},
	}

	res, err := request.Do(ctx, elastic.client)
	if err != nil {
		return caps.FieldCapsReport{}, wrap.Error(err, "field capabilities request failed")
	}
	defer res.Body.Close()

	if res.IsError() {
		return caps.FieldCapsReport{}, wrap.Errorf(
			errorFromResponse(res),
			"field capabilities request failed for index pattern '%s'",
			indexPattern,
		)
	}

	var report caps.FieldCapsReport
	if err := json.NewDecoder(res.Body).Decode(&report); err != nil {
		return caps.FieldCapsReport{}, wrap.Error(
			err, "failed to parse field capabilities response",
		)
	}

	return report, nil
}
