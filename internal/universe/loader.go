package universe

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a universe YAML file
// KnownFields(true): 오타/미사용 필드 즉시 실패
func Load(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read universe file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates universe YAML
func Parse(data []byte) (*Universe, error) {
	var u Universe
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&u); err != nil {
		return nil, fmt.Errorf("decode universe: %w", err)
	}

	if err := Validate(&u); err != nil {
		return nil, err
	}

	return &u, nil
}

// Hash returns a SHA256 of the canonical JSON form.
// Any change to tickers, order or membership changes the hash.
func Hash(u *Universe) (string, error) {
	jsonBytes, err := json.Marshal(u)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}
