package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"hermannm.dev/devlog"
	"hermannm.dev/devlog/log"
	"hermannm.dev/fieldcaps/caps"
	"hermannm.dev/fieldcaps/caps/elasticsearch"
	"hermannm.dev/fieldcaps/config"
)

func main() {
	indexPattern := flag.String("index", "", "index pattern to compute capabilities for")
	isRollup := flag.Bool("rollup", false, "restrict capabilities to matching rollup jobs")
	flag.Parse()

	logHandler := devlog.NewHandler(os.Stdout, &devlog.Options{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(logHandler))

	conf, err := config.ReadFromEnv()
	if err != nil {
		log.ErrorCause(err, "failed to read config from env")
		os.Exit(1)
	}

	client, err := elasticsearch.NewCapsClient(conf)
	if err != nil {
		log.ErrorCause(err, "failed to initialize Elasticsearch client")
		os.Exit(1)
	}

	request := caps.JobCapsRequest{IndexPattern: *indexPattern, IsRollup: *isRollup}
	jobCaps, err := caps.ComputeJobCaps(context.Background(), request, client, client)
	if err != nil {
		log.ErrorCause(err, "failed to compute job capabilities")
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jobCaps); err != nil {
		log.ErrorCause(err, "failed to serialize job capabilities")
		os.Exit(1)
	}
}
