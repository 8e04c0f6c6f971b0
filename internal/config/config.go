package config

import (
	"encoding/json"
	"os"
)

// Config is the single JSON configuration document read by every
// cmd/taxorf* binary. Unknown or missing fields fall back to zero values,
// never to an error (spec.md Non-goals; this package mirrors the
// source's original load-or-default behaviour).
type Config struct {
	LogFile  string `json:"log_file"`
	LogLevel string `json:"log_level"`

	TaxdumpDir      string `json:"taxdump_dir"`
	TaxdumpURL      string `json:"taxdump_url"`
	TaxdumpCacheTTL int64  `json:"taxdump_cache_ttl_seconds"`
	NodesDmp        string `json:"nodes_dmp"`
	NamesDmp        string `json:"names_dmp"`
	MergedDmp       string `json:"merged_dmp"`

	GeneticCode       string `json:"genetic_code"`
	UseAllTableStarts bool   `json:"use_all_table_starts"`
	MinOrfLength      int    `json:"min_orf_length"`
	MaxOrfLength      int    `json:"max_orf_length"`
	MaxOrfGaps        int    `json:"max_orf_gaps"`

	JobStoreDriver string `json:"job_store_driver"` // "json" or "sqlite"
	JobStorePath   string `json:"job_store_path"`

	UseExternalTranslator bool   `json:"use_external_translator"`
	TranslatorCommand     string `json:"translator_command"`
}

// Load reads a JSON config from path. If path is empty it looks for
// ./config.json; if that file does not exist, it returns zero-valued
// defaults rather than failing, so every binary runs without a config
// file present.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
	}
	f, err := os.Open(path)
	if err != nil {
		return &Config{}, nil
	}
	defer f.Close()
	var c Config
	dec := json.NewDecoder(f)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
