package planner

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var decisionSchemaJSON []byte

// DecisionSchema returns the raw JSON schema planner output must satisfy.
// Passed to LLM backends that support structured response formats.
func DecisionSchema() []byte {
	out := make([]byte, len(decisionSchemaJSON))
	copy(out, decisionSchemaJSON)
	return out
}

var (
	compileOnce    sync.Once
	decisionSchema *jsonschema.Schema
	compileErr     error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(decisionSchemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal decision schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("decision.json", doc); err != nil {
			compileErr = fmt.Errorf("add decision schema resource: %w", err)
			return
		}
		decisionSchema, compileErr = c.Compile("decision.json")
	})
	return decisionSchema, compileErr
}

// ValidateDecision parses and validates raw planner JSON. It returns the
// decoded decision on success; otherwise a DecisionError classifying the
// failure so the loop can retry with context.
func ValidateDecision(raw string) (*Decision, *DecisionError) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &DecisionError{
			Code:    ErrCodeInputValidation,
			Message: fmt.Sprintf("planner output is not valid JSON: %v", err),
		}
	}

	schema, err := compiledSchema()
	if err != nil {
		// A broken embedded schema is a programming error; surface it as a
		// validation failure rather than panicking mid-turn.
		return nil, &DecisionError{Code: ErrCodeValidation, Message: err.Error()}
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &DecisionError{
			Code:    ErrCodeValidation,
			Message: fmt.Sprintf("planner output failed schema validation: %v", err),
		}
	}

	var d Decision
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, &DecisionError{
			Code:    ErrCodeInputValidation,
			Message: fmt.Sprintf("planner output does not match decision shape: %v", err),
		}
	}

	// An action plan that neither finishes nor acts gives the loop nothing
	// to do — reject it so the planner self-corrects.
	if d.PlanType == PlanTypeAction && !d.AnalysisComplete && !d.HasAction() {
		return nil, &DecisionError{
			Code:    ErrCodeMissingAction,
			Message: "plan_type is action but no action was provided and analysis_complete is false",
		}
	}

	return &d, nil
}
