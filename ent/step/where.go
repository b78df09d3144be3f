// Code generated by ent, DO NOT EDIT.

package step

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldID, id))
}

// WidgetID applies equality check predicate on the "widget_id" field. It's identical to WidgetIDEQ.
func WidgetID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldWidgetID, v))
}

// QueryID applies equality check predicate on the "query_id" field. It's identical to QueryIDEQ.
func QueryID(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldQueryID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldUpdatedAt, v))
}

// WidgetIDEQ applies the EQ predicate on the "widget_id" field.
func WidgetIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldWidgetID, v))
}

// WidgetIDNEQ applies the NEQ predicate on the "widget_id" field.
func WidgetIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldWidgetID, v))
}

// WidgetIDIn applies the In predicate on the "widget_id" field.
func WidgetIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldWidgetID, vs...))
}

// WidgetIDNotIn applies the NotIn predicate on the "widget_id" field.
func WidgetIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldWidgetID, vs...))
}

// WidgetIDGT applies the GT predicate on the "widget_id" field.
func WidgetIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldWidgetID, v))
}

// WidgetIDGTE applies the GTE predicate on the "widget_id" field.
func WidgetIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldWidgetID, v))
}

// WidgetIDLT applies the LT predicate on the "widget_id" field.
func WidgetIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldWidgetID, v))
}

// WidgetIDLTE applies the LTE predicate on the "widget_id" field.
func WidgetIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldWidgetID, v))
}

// WidgetIDContains applies the Contains predicate on the "widget_id" field.
func WidgetIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldWidgetID, v))
}

// WidgetIDHasPrefix applies the HasPrefix predicate on the "widget_id" field.
func WidgetIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldWidgetID, v))
}

// WidgetIDHasSuffix applies the HasSuffix predicate on the "widget_id" field.
func WidgetIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldWidgetID, v))
}

// WidgetIDEqualFold applies the EqualFold predicate on the "widget_id" field.
func WidgetIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldWidgetID, v))
}

// WidgetIDContainsFold applies the ContainsFold predicate on the "widget_id" field.
func WidgetIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldWidgetID, v))
}

// QueryIDEQ applies the EQ predicate on the "query_id" field.
func QueryIDEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldQueryID, v))
}

// QueryIDNEQ applies the NEQ predicate on the "query_id" field.
func QueryIDNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldQueryID, v))
}

// QueryIDIn applies the In predicate on the "query_id" field.
func QueryIDIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldQueryID, vs...))
}

// QueryIDNotIn applies the NotIn predicate on the "query_id" field.
func QueryIDNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldQueryID, vs...))
}

// QueryIDGT applies the GT predicate on the "query_id" field.
func QueryIDGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldQueryID, v))
}

// QueryIDGTE applies the GTE predicate on the "query_id" field.
func QueryIDGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldQueryID, v))
}

// QueryIDLT applies the LT predicate on the "query_id" field.
func QueryIDLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldQueryID, v))
}

// QueryIDLTE applies the LTE predicate on the "query_id" field.
func QueryIDLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldQueryID, v))
}

// QueryIDContains applies the Contains predicate on the "query_id" field.
func QueryIDContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldQueryID, v))
}

// QueryIDHasPrefix applies the HasPrefix predicate on the "query_id" field.
func QueryIDHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldQueryID, v))
}

// QueryIDHasSuffix applies the HasSuffix predicate on the "query_id" field.
func QueryIDHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldQueryID, v))
}

// QueryIDIsNil applies the IsNil predicate on the "query_id" field.
func QueryIDIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldQueryID))
}

// QueryIDNotNil applies the NotNil predicate on the "query_id" field.
func QueryIDNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldQueryID))
}

// QueryIDEqualFold applies the EqualFold predicate on the "query_id" field.
func QueryIDEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldQueryID, v))
}

// QueryIDContainsFold applies the ContainsFold predicate on the "query_id" field.
func QueryIDContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldQueryID, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldCode, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldData))
}

// DataModelIsNil applies the IsNil predicate on the "data_model" field.
func DataModelIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldDataModel))
}

// DataModelNotNil applies the NotNil predicate on the "data_model" field.
func DataModelNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldDataModel))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Step {
	return predicate.Step(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Step {
	return predicate.Step(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Step {
	return predicate.Step(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Step {
	return predicate.Step(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Step {
	return predicate.Step(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Step {
	return predicate.Step(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Step {
	return predicate.Step(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Step {
	return predicate.Step(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWidget applies the HasEdge predicate on the "widget" edge.
func HasWidget() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WidgetTable, WidgetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWidgetWith applies the HasEdge predicate on the "widget" edge with a given conditions (other predicates).
func HasWidgetWith(preds ...predicate.Widget) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newWidgetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVisualizations applies the HasEdge predicate on the "visualizations" edge.
func HasVisualizations() predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VisualizationsTable, VisualizationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVisualizationsWith applies the HasEdge predicate on the "visualizations" edge with a given conditions (other predicates).
func HasVisualizationsWith(preds ...predicate.Visualization) predicate.Step {
	return predicate.Step(func(s *sql.Selector) {
		step := newVisualizationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Step) predicate.Step {
	return predicate.Step(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Step) predicate.Step {
	return predicate.Step(sql.NotPredicates(p))
}
