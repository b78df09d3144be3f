// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/ent/report"
)

// Completion is the model entity for the Completion schema.
type Completion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// Head user completion for system completions
	ParentID *string `json:"parent_id,omitempty"`
	// Role holds the value of the "role" field.
	Role completion.Role `json:"role,omitempty"`
	// User prompt payload (content, model_id, widget_id, step_id, mode, mentions)
	Prompt map[string]interface{} `json:"prompt,omitempty"`
	// System response payload rebuilt from ordered blocks
	Completion map[string]interface{} `json:"completion,omitempty"`
	// Status holds the value of the "status" field.
	Status completion.Status `json:"status,omitempty"`
	// TurnIndex holds the value of the "turn_index" field.
	TurnIndex int `json:"turn_index,omitempty"`
	// External stop request — the running loop observes it and stops
	Sigkill bool `json:"sigkill,omitempty"`
	// FeedbackScore holds the value of the "feedback_score" field.
	FeedbackScore *int `json:"feedback_score,omitempty"`
	// AI judge scoring written by background tasks
	JudgeScores map[string]interface{} `json:"judge_scores,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Token usage snapshot recorded at turn end
	Usage map[string]interface{} `json:"usage,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompletionQuery when eager-loading is set.
	Edges        CompletionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompletionEdges holds the relations/edges for other nodes in the graph.
type CompletionEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// AgentExecutions holds the value of the agent_executions edge.
	AgentExecutions []*AgentExecution `json:"agent_executions,omitempty"`
	// Blocks holds the value of the blocks edge.
	Blocks []*CompletionBlock `json:"blocks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompletionEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// AgentExecutionsOrErr returns the AgentExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e CompletionEdges) AgentExecutionsOrErr() ([]*AgentExecution, error) {
	if e.loadedTypes[1] {
		return e.AgentExecutions, nil
	}
	return nil, &NotLoadedError{edge: "agent_executions"}
}

// BlocksOrErr returns the Blocks value or an error if the edge
// was not loaded in eager-loading.
func (e CompletionEdges) BlocksOrErr() ([]*CompletionBlock, error) {
	if e.loadedTypes[2] {
		return e.Blocks, nil
	}
	return nil, &NotLoadedError{edge: "blocks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Completion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case completion.FieldPrompt, completion.FieldCompletion, completion.FieldJudgeScores, completion.FieldUsage:
			values[i] = new([]byte)
		case completion.FieldSigkill:
			values[i] = new(sql.NullBool)
		case completion.FieldTurnIndex, completion.FieldFeedbackScore:
			values[i] = new(sql.NullInt64)
		case completion.FieldID, completion.FieldReportID, completion.FieldParentID, completion.FieldRole, completion.FieldStatus, completion.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case completion.FieldCreatedAt, completion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Completion fields.
func (_m *Completion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case completion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case completion.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case completion.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case completion.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = completion.Role(value.String)
			}
		case completion.FieldPrompt:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Prompt); err != nil {
					return fmt.Errorf("unmarshal field prompt: %w", err)
				}
			}
		case completion.FieldCompletion:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completion", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Completion); err != nil {
					return fmt.Errorf("unmarshal field completion: %w", err)
				}
			}
		case completion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = completion.Status(value.String)
			}
		case completion.FieldTurnIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn_index", values[i])
			} else if value.Valid {
				_m.TurnIndex = int(value.Int64)
			}
		case completion.FieldSigkill:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sigkill", values[i])
			} else if value.Valid {
				_m.Sigkill = value.Bool
			}
		case completion.FieldFeedbackScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_score", values[i])
			} else if value.Valid {
				_m.FeedbackScore = new(int)
				*_m.FeedbackScore = int(value.Int64)
			}
		case completion.FieldJudgeScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field judge_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.JudgeScores); err != nil {
					return fmt.Errorf("unmarshal field judge_scores: %w", err)
				}
			}
		case completion.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case completion.FieldUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Usage); err != nil {
					return fmt.Errorf("unmarshal field usage: %w", err)
				}
			}
		case completion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case completion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Completion.
// This includes values selected through modifiers, order, etc.
func (_m *Completion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the Completion entity.
func (_m *Completion) QueryReport() *ReportQuery {
	return NewCompletionClient(_m.config).QueryReport(_m)
}

// QueryAgentExecutions queries the "agent_executions" edge of the Completion entity.
func (_m *Completion) QueryAgentExecutions() *AgentExecutionQuery {
	return NewCompletionClient(_m.config).QueryAgentExecutions(_m)
}

// QueryBlocks queries the "blocks" edge of the Completion entity.
func (_m *Completion) QueryBlocks() *CompletionBlockQuery {
	return NewCompletionClient(_m.config).QueryBlocks(_m)
}

// Update returns a builder for updating this Completion.
// Note that you need to call Completion.Unwrap() before calling this method if this Completion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Completion) Update() *CompletionUpdateOne {
	return NewCompletionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Completion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Completion) Unwrap() *Completion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Completion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Completion) String() string {
	var builder strings.Builder
	builder.WriteString("Completion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Prompt))
	builder.WriteString(", ")
	builder.WriteString("completion=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completion))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("turn_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnIndex))
	builder.WriteString(", ")
	builder.WriteString("sigkill=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sigkill))
	builder.WriteString(", ")
	if v := _m.FeedbackScore; v != nil {
		builder.WriteString("feedback_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("judge_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.JudgeScores))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Usage))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Completions is a parsable slice of Completion.
type Completions []*Completion
