package elasticsearch

import (
	"github.com/elastic/go-elasticsearch/v8"
	"hermannm.dev/fieldcaps/config"
	"hermannm.dev/wrap"
)

// CapsClient implements the caps.CapabilityFetcher and caps.RollupService collaborator contracts
// against an Elasticsearch cluster.
type CapsClient struct {
	client *elasticsearch.Client
}

func NewCapsClient(config config.Config) (CapsClient, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{config.Elasticsearch.Address},
		Username:          config.Elasticsearch.Username,
		Password:          config.Elasticsearch.Password,
		EnableDebugLogger: config.Elasticsearch.Debug,
	})
	if err != nil {
		return CapsClient{}, wrap.Error(err, "failed to connect to Elasticsearch")
	}

	return CapsClient{client: client}, nil
}
