// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datalens-ai/datalens/ent/agentexecution"
	"github.com/datalens-ai/datalens/ent/plandecision"
)

// PlanDecision is the model entity for the PlanDecision schema.
type PlanDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentExecutionID holds the value of the "agent_execution_id" field.
	AgentExecutionID string `json:"agent_execution_id,omitempty"`
	// Decision seq — pinned at pre-creation of the skeleton block
	Seq int `json:"seq,omitempty"`
	// LoopIndex holds the value of the "loop_index" field.
	LoopIndex int `json:"loop_index,omitempty"`
	// PlanType holds the value of the "plan_type" field.
	PlanType plandecision.PlanType `json:"plan_type,omitempty"`
	// ReasoningMessage holds the value of the "reasoning_message" field.
	ReasoningMessage string `json:"reasoning_message,omitempty"`
	// AssistantMessage holds the value of the "assistant_message" field.
	AssistantMessage string `json:"assistant_message,omitempty"`
	// ActionName holds the value of the "action_name" field.
	ActionName *string `json:"action_name,omitempty"`
	// ActionArguments holds the value of the "action_arguments" field.
	ActionArguments map[string]interface{} `json:"action_arguments,omitempty"`
	// AnalysisComplete holds the value of the "analysis_complete" field.
	AnalysisComplete bool `json:"analysis_complete,omitempty"`
	// FinalAnswer holds the value of the "final_answer" field.
	FinalAnswer string `json:"final_answer,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// True once the terminal update for this iteration has landed
	Final bool `json:"final,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlanDecisionQuery when eager-loading is set.
	Edges        PlanDecisionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlanDecisionEdges holds the relations/edges for other nodes in the graph.
type PlanDecisionEdges struct {
	// Execution holds the value of the execution edge.
	Execution *AgentExecution `json:"execution,omitempty"`
	// Block holds the value of the block edge.
	Block []*CompletionBlock `json:"block,omitempty"`
	// ToolExecutions holds the value of the tool_executions edge.
	ToolExecutions []*ToolExecution `json:"tool_executions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PlanDecisionEdges) ExecutionOrErr() (*AgentExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// BlockOrErr returns the Block value or an error if the edge
// was not loaded in eager-loading.
func (e PlanDecisionEdges) BlockOrErr() ([]*CompletionBlock, error) {
	if e.loadedTypes[1] {
		return e.Block, nil
	}
	return nil, &NotLoadedError{edge: "block"}
}

// ToolExecutionsOrErr returns the ToolExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e PlanDecisionEdges) ToolExecutionsOrErr() ([]*ToolExecution, error) {
	if e.loadedTypes[2] {
		return e.ToolExecutions, nil
	}
	return nil, &NotLoadedError{edge: "tool_executions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plandecision.FieldActionArguments:
			values[i] = new([]byte)
		case plandecision.FieldAnalysisComplete, plandecision.FieldFinal:
			values[i] = new(sql.NullBool)
		case plandecision.FieldSeq, plandecision.FieldLoopIndex:
			values[i] = new(sql.NullInt64)
		case plandecision.FieldID, plandecision.FieldAgentExecutionID, plandecision.FieldPlanType, plandecision.FieldReasoningMessage, plandecision.FieldAssistantMessage, plandecision.FieldActionName, plandecision.FieldFinalAnswer, plandecision.FieldErrorCode, plandecision.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case plandecision.FieldCreatedAt, plandecision.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanDecision fields.
func (_m *PlanDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plandecision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case plandecision.FieldAgentExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_execution_id", values[i])
			} else if value.Valid {
				_m.AgentExecutionID = value.String
			}
		case plandecision.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case plandecision.FieldLoopIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field loop_index", values[i])
			} else if value.Valid {
				_m.LoopIndex = int(value.Int64)
			}
		case plandecision.FieldPlanType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_type", values[i])
			} else if value.Valid {
				_m.PlanType = plandecision.PlanType(value.String)
			}
		case plandecision.FieldReasoningMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning_message", values[i])
			} else if value.Valid {
				_m.ReasoningMessage = value.String
			}
		case plandecision.FieldAssistantMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assistant_message", values[i])
			} else if value.Valid {
				_m.AssistantMessage = value.String
			}
		case plandecision.FieldActionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_name", values[i])
			} else if value.Valid {
				_m.ActionName = new(string)
				*_m.ActionName = value.String
			}
		case plandecision.FieldActionArguments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action_arguments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ActionArguments); err != nil {
					return fmt.Errorf("unmarshal field action_arguments: %w", err)
				}
			}
		case plandecision.FieldAnalysisComplete:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_complete", values[i])
			} else if value.Valid {
				_m.AnalysisComplete = value.Bool
			}
		case plandecision.FieldFinalAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_answer", values[i])
			} else if value.Valid {
				_m.FinalAnswer = value.String
			}
		case plandecision.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case plandecision.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case plandecision.FieldFinal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field final", values[i])
			} else if value.Valid {
				_m.Final = value.Bool
			}
		case plandecision.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case plandecision.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PlanDecision.
// This includes values selected through modifiers, order, etc.
func (_m *PlanDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the PlanDecision entity.
func (_m *PlanDecision) QueryExecution() *AgentExecutionQuery {
	return NewPlanDecisionClient(_m.config).QueryExecution(_m)
}

// QueryBlock queries the "block" edge of the PlanDecision entity.
func (_m *PlanDecision) QueryBlock() *CompletionBlockQuery {
	return NewPlanDecisionClient(_m.config).QueryBlock(_m)
}

// QueryToolExecutions queries the "tool_executions" edge of the PlanDecision entity.
func (_m *PlanDecision) QueryToolExecutions() *ToolExecutionQuery {
	return NewPlanDecisionClient(_m.config).QueryToolExecutions(_m)
}

// Update returns a builder for updating this PlanDecision.
// Note that you need to call PlanDecision.Unwrap() before calling this method if this PlanDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlanDecision) Update() *PlanDecisionUpdateOne {
	return NewPlanDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlanDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlanDecision) Unwrap() *PlanDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlanDecision) String() string {
	var builder strings.Builder
	builder.WriteString("PlanDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_execution_id=")
	builder.WriteString(_m.AgentExecutionID)
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("loop_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoopIndex))
	builder.WriteString(", ")
	builder.WriteString("plan_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanType))
	builder.WriteString(", ")
	builder.WriteString("reasoning_message=")
	builder.WriteString(_m.ReasoningMessage)
	builder.WriteString(", ")
	builder.WriteString("assistant_message=")
	builder.WriteString(_m.AssistantMessage)
	builder.WriteString(", ")
	if v := _m.ActionName; v != nil {
		builder.WriteString("action_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("action_arguments=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionArguments))
	builder.WriteString(", ")
	builder.WriteString("analysis_complete=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisComplete))
	builder.WriteString(", ")
	builder.WriteString("final_answer=")
	builder.WriteString(_m.FinalAnswer)
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("final=")
	builder.WriteString(fmt.Sprintf("%v", _m.Final))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PlanDecisions is a parsable slice of PlanDecision.
type PlanDecisions []*PlanDecision
