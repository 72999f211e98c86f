package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOpsVal1 = 1.0
const testOpsVal4 = 4.0
const testOpsVal6 = 6.0
const testOpsVal3 = 3.0

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestLoadOperations_YAML verifies a YAML operations file is parsed
// directly without schema validation.
func TestLoadOperations_YAML(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "ops.yaml", `
- op: add
  lower: 1
  lower_bound: closed
  upper: 4
  upper_bound: open
- op: add
  lower: 4
  lower_bound: closed
  upper: 6
  upper_bound: open
`)

	ops, err := LoadOperations(path)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "add", ops[0].Op)
	assert.InDelta(t, testOpsVal1, ops[0].Lower, 0)
}

// TestLoadOperations_JSON verifies a JSON operations file is validated
// against the embedded schema before being unmarshalled.
func TestLoadOperations_JSON(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "ops.json", `[
		{"op": "add", "lower": 1, "lower_bound": "closed", "upper": 4, "upper_bound": "open"}
	]`)

	ops, err := LoadOperations(path)
	require.NoError(t, err)
	require.Len(t, ops, 1)
}

// TestLoadOperations_JSON_SchemaViolation verifies a JSON file missing a
// required field fails schema validation before unmarshal is attempted.
func TestLoadOperations_JSON_SchemaViolation(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "bad.json", `[
		{"op": "add", "lower": 1, "upper": 4, "upper_bound": "open"}
	]`)

	_, err := LoadOperations(path)
	require.Error(t, err)
}

// TestApply_CoalescesAdjacent verifies replaying two touching add
// operations yields a single coalesced range.
func TestApply_CoalescesAdjacent(t *testing.T) {
	t.Parallel()

	ops := []Operation{
		{Op: "add", Lower: testOpsVal1, LowerBound: "closed", Upper: testOpsVal4, UpperBound: "open"},
		{Op: "add", Lower: testOpsVal4, LowerBound: "closed", Upper: testOpsVal6, UpperBound: "open"},
	}

	set, err := Apply(ops)
	require.NoError(t, err)

	ranges := set.AsRanges()
	require.Len(t, ranges, 1)
	assert.True(t, set.Contains(testOpsVal3))
}

// TestApply_UnknownOp verifies an unrecognized op field is rejected.
func TestApply_UnknownOp(t *testing.T) {
	t.Parallel()

	ops := []Operation{
		{Op: "frobnicate", Lower: testOpsVal1, LowerBound: "closed", Upper: testOpsVal4, UpperBound: "open"},
	}

	_, err := Apply(ops)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOp)
}

// TestApply_InvalidBound verifies an unrecognized bound string is
// rejected before any operation is applied.
func TestApply_InvalidBound(t *testing.T) {
	t.Parallel()

	ops := []Operation{
		{Op: "add", Lower: testOpsVal1, LowerBound: "sideways", Upper: testOpsVal4, UpperBound: "open"},
	}

	_, err := Apply(ops)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBound)
}
