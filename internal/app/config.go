package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenarioPath string // .hcl file or directory of .hcl files
	OutputDir    string // destination for generated XML; "" uses the model default

	Timezone   string // IANA zone name for document timestamps; "" uses the host zone
	SchemaPath string // external XSD; "" uses the embedded copy
	Validate   bool   // validate each written file against the schema

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" {
		return nil, errors.New("ScenarioPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
