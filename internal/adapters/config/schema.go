package config

// Reqsfile represents the structure of the .reqs.yaml configuration file.
type Reqsfile struct {
	Exclude     []string `yaml:"exclude"`
	Extensions  []string `yaml:"extensions"`
	Exempt      []string `yaml:"exempt"`
	BestEffort  bool     `yaml:"bestEffort"`
	Concurrency int      `yaml:"concurrency"`
}
