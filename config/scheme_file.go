// Package config loads operator-defined wipe schemes from a JSON-with-
// comments file and can persist a derived scheme back to disk.
package config

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"github.com/Kostassoid/lethe/sanitization"
)

// stageFile is the on-disk shape of one stage: either {"constant": N} or
// {"random": true} / {"random_seed": "<64 hex chars>"}.
type stageFile struct {
	Constant   *int    `json:"constant,omitempty"`
	Random     bool    `json:"random,omitempty"`
	RandomSeed *string `json:"random_seed,omitempty"`
}

// schemeFile is the on-disk shape of one scheme.
type schemeFile struct {
	Description string      `json:"description"`
	Stages      []stageFile `json:"stages"`
}

// SchemeFile is the on-disk shape of a custom scheme definition file: a
// name -> scheme map, tolerant of // and /* */ comments (JSONC via hujson).
type SchemeFile struct {
	Schemes map[string]schemeFile `json:"schemes"`
}

// Load reads and parses path, returning the decoded schemes as plain
// sanitization.Scheme values ready to hand to sanitization.Registry.Merge.
func Load(path string) (map[string]sanitization.Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s is not valid JSONC: %w", path, err)
	}

	var file SchemeFile
	if err := json.Unmarshal(standardized, &file); err != nil {
		return nil, fmt.Errorf("config: %s is not valid JSON after stripping comments: %w", path, err)
	}

	schemes := make(map[string]sanitization.Scheme, len(file.Schemes))
	for name, sf := range file.Schemes {
		scheme, err := sf.toScheme()
		if err != nil {
			return nil, fmt.Errorf("config: scheme %q: %w", name, err)
		}
		schemes[name] = scheme
	}
	return schemes, nil
}

// Save writes schemes to path as JSON, atomically (via a temp file renamed
// into place) so a crash mid-write never leaves a truncated config behind.
func Save(path string, schemes map[string]sanitization.Scheme) error {
	file := SchemeFile{Schemes: make(map[string]schemeFile, len(schemes))}
	for name, scheme := range schemes {
		file.Schemes[name] = fromScheme(scheme)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encoding schemes: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

func decodeSeed(s string) ([sanitization.RandomSeedSize]byte, error) {
	var seed [sanitization.RandomSeedSize]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return seed, fmt.Errorf("invalid hex seed: %w", err)
	}
	if len(raw) != sanitization.RandomSeedSize {
		return seed, fmt.Errorf("seed must be %d bytes, got %d", sanitization.RandomSeedSize, len(raw))
	}
	copy(seed[:], raw)
	return seed, nil
}

func encodeSeed(seed [sanitization.RandomSeedSize]byte) string {
	return hex.EncodeToString(seed[:])
}

// toScheme converts the on-disk schemeFile into a sanitization.Scheme,
// converting each of its stages in order.
func (sf schemeFile) toScheme() (sanitization.Scheme, error) {
	stages := make([]sanitization.Stage, len(sf.Stages))
	for i, stage := range sf.Stages {
		s, err := stage.toStage()
		if err != nil {
			return sanitization.Scheme{}, fmt.Errorf("stage %d: %w", i, err)
		}
		stages[i] = s
	}
	return sanitization.Scheme{Description: sf.Description, Stages: stages}, nil
}

func (sf stageFile) toStage() (sanitization.Stage, error) {
	switch {
	case sf.Constant != nil:
		v := *sf.Constant
		if v < 0 || v > 0xFF {
			return sanitization.Stage{}, fmt.Errorf("constant value %d out of byte range", v)
		}
		return sanitization.Constant(byte(v)), nil
	case sf.RandomSeed != nil:
		seed, err := decodeSeed(*sf.RandomSeed)
		if err != nil {
			return sanitization.Stage{}, err
		}
		return sanitization.RandomWithSeed(seed), nil
	case sf.Random:
		return sanitization.Random(), nil
	default:
		return sanitization.Stage{}, fmt.Errorf("stage has neither constant, random, nor random_seed set")
	}
}

func fromScheme(scheme sanitization.Scheme) schemeFile {
	sf := schemeFile{Description: scheme.Description, Stages: make([]stageFile, len(scheme.Stages))}
	for i, stage := range scheme.Stages {
		if stage.IsRandom() {
			seed := stage.Seed()
			hex := encodeSeed(seed)
			sf.Stages[i] = stageFile{RandomSeed: &hex}
		} else {
			v := int(stage.Value())
			sf.Stages[i] = stageFile{Constant: &v}
		}
	}
	return sf
}
