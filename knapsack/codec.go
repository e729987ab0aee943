// SPDX-License-Identifier: MIT

// Package knapsack: YAML and JSON codecs for Instance.
//
// The wire shape is the tagged Instance struct itself:
//
//	id: demo            # optional
//	capacity: 5
//	items:
//	  - {weight: 2, value: 3}
//	  - {weight: 3, value: 4}
//
// Decoders validate before returning, so a decoded instance is always safe
// to solve. Encoders validate before writing, so files on disk are always
// well-formed.
package knapsack

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a single YAML document from r and returns the validated
// instance.
//
// Complexity: O(n) past the parse.
func DecodeYAML(r io.Reader) (*Instance, error) {
	var in Instance
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

// EncodeYAML validates in and writes it to w as one YAML document.
func EncodeYAML(w io.Writer, in *Instance) error {
	if err := in.Validate(); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("knapsack: encode yaml: %w", err)
	}
	return enc.Close()
}

// DecodeJSON reads a single JSON object from r and returns the validated
// instance.
func DecodeJSON(r io.Reader) (*Instance, error) {
	var in Instance
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrDecode, err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

// EncodeJSON validates in and writes it to w as compact JSON.
func EncodeJSON(w io.Writer, in *Instance) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if err := json.NewEncoder(w).Encode(in); err != nil {
		return fmt.Errorf("knapsack: encode json: %w", err)
	}
	return nil
}
