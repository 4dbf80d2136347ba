package model

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	_ "embed"
)

// The schema is embedded so decoding never depends on the working
// directory of the running binary.
//
//go:embed cv.schema.json
var cvSchema string

// DecodeDocument validates raw JSON against cv.schema.json and decodes it
// into a typed document. Payloads missing any of the five top-level
// sections, or whose list sections are not actually lists, are rejected.
func DecodeDocument(raw json.RawMessage) (CVDocument, error) {
	schemaLoader := gojsonschema.NewStringLoader(cvSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return CVDocument{}, err
	}
	if !res.Valid() {
		// collect errors
		msgs := ""
		for _, e := range res.Errors() {
			msgs += fmt.Sprintf("%s; ", e.String())
		}
		return CVDocument{}, fmt.Errorf("schema validation failed: %s", msgs)
	}

	var doc CVDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return CVDocument{}, err
	}
	if doc.Skills == nil {
		doc.Skills = []Skill{}
	}
	if doc.Experiences == nil {
		doc.Experiences = []Experience{}
	}
	if doc.Education == nil {
		doc.Education = []Education{}
	}
	return doc, nil
}
