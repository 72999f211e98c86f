package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/baratali/rangeset/cmd/rangeset/schema"
	"github.com/baratali/rangeset/pkg/rangeset"
)

// Operation is one add or remove step read from an operations file.
type Operation struct {
	Op         string  `yaml:"op"          json:"op"`
	Lower      float64 `yaml:"lower"       json:"lower"`
	LowerBound string  `yaml:"lower_bound" json:"lower_bound"`
	Upper      float64 `yaml:"upper"       json:"upper"`
	UpperBound string  `yaml:"upper_bound" json:"upper_bound"`
}

// ErrUnknownOp is returned when an operation's op field is neither "add"
// nor "remove".
var ErrUnknownOp = errors.New("unknown operation")

// ErrInvalidBound is returned when a bound field is neither "open" nor
// "closed".
var ErrInvalidBound = errors.New("bound must be \"open\" or \"closed\"")

func float64Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// LoadOperations reads an operations file. A ".json" file is validated
// against the embedded operations schema before being unmarshalled; any
// other extension is parsed as YAML directly.
func LoadOperations(path string) ([]Operation, error) {
	raw, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("read operations file: %w", readErr)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if validateErr := validateJSONOperations(raw); validateErr != nil {
			return nil, validateErr
		}

		var ops []Operation
		if err := json.Unmarshal(raw, &ops); err != nil {
			return nil, fmt.Errorf("unmarshal operations json: %w", err)
		}

		return ops, nil
	}

	var ops []Operation
	if err := yaml.Unmarshal(raw, &ops); err != nil {
		return nil, fmt.Errorf("unmarshal operations yaml: %w", err)
	}

	return ops, nil
}

func validateJSONOperations(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema.OperationsSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var detail strings.Builder

	for _, verr := range result.Errors() {
		fmt.Fprintf(&detail, "\n  - %s: %s", verr.Field(), verr.Description())
	}

	return fmt.Errorf("operations file failed schema validation:%s", detail.String())
}

// Apply replays ops in order against a fresh TreeRangeSet over float64.
func Apply(ops []Operation) (*rangeset.TreeRangeSet[float64], error) {
	set := rangeset.New[float64](float64Cmp)

	for i, op := range ops {
		r, rangeErr := operationRange(op)
		if rangeErr != nil {
			return nil, fmt.Errorf("operation %d: %w", i, rangeErr)
		}

		switch op.Op {
		case "add":
			if err := set.Add(r); err != nil {
				return nil, fmt.Errorf("operation %d: add: %w", i, err)
			}
		case "remove":
			if err := set.Remove(r); err != nil {
				return nil, fmt.Errorf("operation %d: remove: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("operation %d: %w: %q", i, ErrUnknownOp, op.Op)
		}
	}

	return set, nil
}

func operationRange(op Operation) (rangeset.Range[float64], error) {
	lowerType, lowerErr := parseBound(op.LowerBound)
	if lowerErr != nil {
		return rangeset.Range[float64]{}, lowerErr
	}

	upperType, upperErr := parseBound(op.UpperBound)
	if upperErr != nil {
		return rangeset.Range[float64]{}, upperErr
	}

	return rangeset.Of(float64Cmp, op.Lower, lowerType, op.Upper, upperType)
}

func parseBound(s string) (rangeset.BoundType, error) {
	switch s {
	case "open":
		return rangeset.Open, nil
	case "closed":
		return rangeset.Closed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBound, s)
	}
}
