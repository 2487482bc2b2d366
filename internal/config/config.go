// Package config loads and validates the optional minipl.json project
// file that controls front-end behavior not covered by the language
// itself: watch-mode debounce, whether a failed assert is allowed to
// still flush buffered output, and which minimum toolchain version a
// project file requires.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
)

// Config is the decoded, validated contents of minipl.json.
type Config struct {
	// MinVersion is the lowest minipl toolchain version (semver, "v"
	// prefixed) this project file is known to work with.
	MinVersion string `json:"minVersion"`
	// WatchDebounce is how long --watch waits after the last filesystem
	// event before re-running the program.
	WatchDebounce       time.Duration `json:"-"`
	WatchDebounceMillis int           `json:"watchDebounceMillis"`
	// FlushOnAssertFailure flushes standard output (when the writer has a
	// Flush method) before a failing assert's error propagates.
	FlushOnAssertFailure bool `json:"flushOnAssertFailure"`
}

const schemaDoc = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "minVersion": {"type": "string"},
    "watchDebounceMillis": {"type": "integer", "minimum": 0, "maximum": 60000},
    "flushOnAssertFailure": {"type": "boolean"}
  },
  "additionalProperties": false
}`

var compiledSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("minipl-config.json", bytes.NewReader([]byte(schemaDoc))); err != nil {
		panic(fmt.Sprintf("config: invalid embedded schema: %v", err))
	}
	s, err := compiler.Compile("minipl-config.json")
	if err != nil {
		panic(fmt.Sprintf("config: schema did not compile: %v", err))
	}
	compiledSchema = s
}

// Default returns the configuration used when no minipl.json is present.
func Default() Config {
	return Config{
		MinVersion:           "v0.1.0",
		WatchDebounce:        200 * time.Millisecond,
		WatchDebounceMillis:  200,
		FlushOnAssertFailure: true,
	}
}

// Load reads and validates path, a minipl.json project file. A missing
// file is not an error: Default() is returned instead, matching the
// behavior of an optional, convention-based config file.
func Load(path, toolchainVersion string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("config: %s is not valid JSON: %w", path, err)
	}
	if err := compiledSchema.Validate(raw); err != nil {
		return Config{}, fmt.Errorf("config: %s failed schema validation: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	cfg.WatchDebounce = time.Duration(cfg.WatchDebounceMillis) * time.Millisecond

	if err := checkVersion(cfg.MinVersion, toolchainVersion); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkVersion(required, actual string) error {
	if required == "" {
		return nil
	}
	if !semver.IsValid(required) {
		return fmt.Errorf("config: minVersion %q is not a valid semver", required)
	}
	if actual == "" || !semver.IsValid(actual) {
		return nil // toolchain built without a stamped version; skip the check
	}
	if semver.Compare(actual, required) < 0 {
		return fmt.Errorf("config: this project requires minipl %s or newer, running %s", required, actual)
	}
	return nil
}
