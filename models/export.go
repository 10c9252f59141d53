package models

import "encoding/json"

// ExportCases serializes a case collection to the pretty-printed JSON
// document offered as the dataset download. The shape is the case
// entity graph itself, so parsing the document back yields an equal
// collection.
func ExportCases(cases []Case) ([]byte, error) {
	return json.MarshalIndent(cases, "", "  ")
}
