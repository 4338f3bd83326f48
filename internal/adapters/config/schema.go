package config

// Packfile represents the structure of the pack.yaml configuration file.
type Packfile struct {
	Version  string              `yaml:"version"`
	Root     string              `yaml:"root"`
	OutDir   string              `yaml:"outDir"`
	Strategy string              `yaml:"strategy"`
	Assets   AssetsDTO           `yaml:"assets"`
	Chunks   map[string][]string `yaml:"chunks"`
}

// AssetsDTO selects the files emitted untouched.
type AssetsDTO struct {
	Include []string `yaml:"include"`
	Ignore  []string `yaml:"ignore"`
}
