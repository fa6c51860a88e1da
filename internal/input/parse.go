package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/sustaintrack/internal/footprint"
)

// materialFieldCount is the number of colon-separated parts in a material flag.
const materialFieldCount = 3

// LoadFile decodes a product description from a YAML or JSON file and
// validates it. The format is chosen by extension; .json is JSON, anything
// else is read as YAML.
func LoadFile(path string) (footprint.ProductInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return footprint.ProductInput{}, fmt.Errorf("reading product file %s: %w", path, err)
	}

	in, err := Decode(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return footprint.ProductInput{}, fmt.Errorf("decoding product file %s: %w", path, err)
	}

	if err = Validate(in); err != nil {
		return footprint.ProductInput{}, fmt.Errorf("invalid product file %s: %w", path, err)
	}
	return in, nil
}

// Decode parses a product description. Unknown fields are rejected.
func Decode(data []byte, isJSON bool) (footprint.ProductInput, error) {
	var in footprint.ProductInput

	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			return footprint.ProductInput{}, err
		}
		return in, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		return footprint.ProductInput{}, err
	}
	return in, nil
}

// ParseMaterial parses the "type:weightKg:sourcingKm" flag form. The
// sourcing distance may be omitted and defaults to zero.
func ParseMaterial(s string) (footprint.MaterialEntry, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > materialFieldCount {
		return footprint.MaterialEntry{}, fmt.Errorf(
			"invalid material %q: expected type:weight_kg[:sourcing_km]", s)
	}

	entry := footprint.MaterialEntry{
		Type: footprint.MaterialType(strings.ToLower(strings.TrimSpace(parts[0]))),
	}
	if !entry.Type.Valid() {
		return footprint.MaterialEntry{}, &FieldError{Field: "material.type", Value: parts[0], Err: ErrUnknownValue}
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return footprint.MaterialEntry{}, fmt.Errorf("invalid material weight %q: %w", parts[1], err)
	}
	entry.WeightKg = weight

	if len(parts) == materialFieldCount {
		distance, parseErr := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if parseErr != nil {
			return footprint.MaterialEntry{}, fmt.Errorf("invalid sourcing distance %q: %w", parts[2], parseErr)
		}
		entry.SourcingDistanceKm = distance
	}

	return entry, nil
}

// ParseMaterials parses every material flag value in order.
func ParseMaterials(values []string) ([]footprint.MaterialEntry, error) {
	materials := make([]footprint.MaterialEntry, 0, len(values))
	for _, v := range values {
		m, err := ParseMaterial(v)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, nil
}
