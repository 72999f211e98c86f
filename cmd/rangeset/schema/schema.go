// Package schema embeds the JSON Schema used to validate a rangeset
// operations file before it is unmarshalled.
package schema

import _ "embed"

// OperationsSchema is the JSON Schema describing a rangeset operations
// document: an array of add/remove steps over a float64 domain.
//
//go:embed operations.schema.json
var OperationsSchema []byte
