package seeder

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds base-vocabulary seeder settings.
type Config struct {
	WordListPath string `yaml:"word_list_path" env:"SEEDER_WORD_LIST_PATH"`
	BatchSize    int    `yaml:"batch_size"     env:"SEEDER_BATCH_SIZE" env-default:"500"`
	DryRun       bool   `yaml:"dry_run"        env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}
	return &cfg, nil
}
