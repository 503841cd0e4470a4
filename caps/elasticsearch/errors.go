package elasticsearch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"hermannm.dev/wrap"
)

type elasticErrorResponse struct {
	Status int               `json:"status"`
	Error  elasticErrorCause `json:"error"`
}

type elasticErrorCause struct {
	Type      string              `json:"type"`
	Reason    *string             `json:"reason"`
	RootCause []elasticErrorCause `json:"root_cause"`
}

// errorFromResponse decodes the error body of a failed Elasticsearch request into a readable
// error. If the body is not the expected error document, it falls back to the raw response.
func errorFromResponse(res *esapi.Response) error {
	var errorResponse elasticErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&errorResponse); err != nil {
		return errors.New(res.String())
	}

	var errMessage string
	if errorResponse.Error.Reason == nil {
		errMessage = fmt.Sprintf("%s (status %d)", errorResponse.Error.Type, errorResponse.Status)
	} else {
		errMessage = fmt.Sprintf(
			"%s (%s, status %d)",
			*errorResponse.Error.Reason,
			errorResponse.Error.Type,
			errorResponse.Status,
		)
	}

	rootCause := make([]error, len(errorResponse.Error.RootCause))
	for i, cause := range errorResponse.Error.RootCause {
		if cause.Reason == nil {
			rootCause[i] = errors.New(cause.Type)
		} else {
			rootCause[i] = fmt.Errorf("%s (%s)", *cause.Reason, cause.Type)
		}
	}

	if len(rootCause) == 0 {
		return errors.New(errMessage)
	} else {
		return wrap.Errors(errMessage, rootCause...)
	}
}
