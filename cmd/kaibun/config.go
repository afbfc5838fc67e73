package main

import "flag"

type cliConfig struct {
	ConfigPath string
	MinLength  int
	WriteLogs  bool
	Files      []string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to kaibun YAML config")
	flag.IntVar(&cfg.MinLength, "min", 0, "Minimum reading length in kana (overrides config)")
	flag.BoolVar(&cfg.WriteLogs, "json-log", true, "Write one JSON analysis per document to the log dir")

	flag.Parse()
	cfg.Files = flag.Args()
	return cfg
}
