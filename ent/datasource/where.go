// Code generated by ent, DO NOT EDIT.

package datasource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContainsFold(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldReportID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldName, v))
}

// Dialect applies equality check predicate on the "dialect" field. It's identical to DialectEQ.
func Dialect(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldDialect, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldActive, v))
}

// AuthPolicy applies equality check predicate on the "auth_policy" field. It's identical to AuthPolicyEQ.
func AuthPolicy(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldAuthPolicy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContainsFold(FieldReportID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContainsFold(FieldName, v))
}

// DialectEQ applies the EQ predicate on the "dialect" field.
func DialectEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldDialect, v))
}

// DialectNEQ applies the NEQ predicate on the "dialect" field.
func DialectNEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldDialect, v))
}

// DialectIn applies the In predicate on the "dialect" field.
func DialectIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldDialect, vs...))
}

// DialectNotIn applies the NotIn predicate on the "dialect" field.
func DialectNotIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldDialect, vs...))
}

// DialectGT applies the GT predicate on the "dialect" field.
func DialectGT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldDialect, v))
}

// DialectGTE applies the GTE predicate on the "dialect" field.
func DialectGTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldDialect, v))
}

// DialectLT applies the LT predicate on the "dialect" field.
func DialectLT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldDialect, v))
}

// DialectLTE applies the LTE predicate on the "dialect" field.
func DialectLTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldDialect, v))
}

// DialectContains applies the Contains predicate on the "dialect" field.
func DialectContains(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContains(FieldDialect, v))
}

// DialectHasPrefix applies the HasPrefix predicate on the "dialect" field.
func DialectHasPrefix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasPrefix(FieldDialect, v))
}

// DialectHasSuffix applies the HasSuffix predicate on the "dialect" field.
func DialectHasSuffix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasSuffix(FieldDialect, v))
}

// DialectIsNil applies the IsNil predicate on the "dialect" field.
func DialectIsNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldIsNull(FieldDialect))
}

// DialectNotNil applies the NotNil predicate on the "dialect" field.
func DialectNotNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldNotNull(FieldDialect))
}

// DialectEqualFold applies the EqualFold predicate on the "dialect" field.
func DialectEqualFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEqualFold(FieldDialect, v))
}

// DialectContainsFold applies the ContainsFold predicate on the "dialect" field.
func DialectContainsFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContainsFold(FieldDialect, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldActive, v))
}

// TablesIsNil applies the IsNil predicate on the "tables" field.
func TablesIsNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldIsNull(FieldTables))
}

// TablesNotNil applies the NotNil predicate on the "tables" field.
func TablesNotNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldNotNull(FieldTables))
}

// UserOverlaysIsNil applies the IsNil predicate on the "user_overlays" field.
func UserOverlaysIsNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldIsNull(FieldUserOverlays))
}

// UserOverlaysNotNil applies the NotNil predicate on the "user_overlays" field.
func UserOverlaysNotNil() predicate.DataSource {
	return predicate.DataSource(sql.FieldNotNull(FieldUserOverlays))
}

// AuthPolicyEQ applies the EQ predicate on the "auth_policy" field.
func AuthPolicyEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldAuthPolicy, v))
}

// AuthPolicyNEQ applies the NEQ predicate on the "auth_policy" field.
func AuthPolicyNEQ(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldAuthPolicy, v))
}

// AuthPolicyIn applies the In predicate on the "auth_policy" field.
func AuthPolicyIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldAuthPolicy, vs...))
}

// AuthPolicyNotIn applies the NotIn predicate on the "auth_policy" field.
func AuthPolicyNotIn(vs ...string) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldAuthPolicy, vs...))
}

// AuthPolicyGT applies the GT predicate on the "auth_policy" field.
func AuthPolicyGT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldAuthPolicy, v))
}

// AuthPolicyGTE applies the GTE predicate on the "auth_policy" field.
func AuthPolicyGTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldAuthPolicy, v))
}

// AuthPolicyLT applies the LT predicate on the "auth_policy" field.
func AuthPolicyLT(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldAuthPolicy, v))
}

// AuthPolicyLTE applies the LTE predicate on the "auth_policy" field.
func AuthPolicyLTE(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldAuthPolicy, v))
}

// AuthPolicyContains applies the Contains predicate on the "auth_policy" field.
func AuthPolicyContains(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContains(FieldAuthPolicy, v))
}

// AuthPolicyHasPrefix applies the HasPrefix predicate on the "auth_policy" field.
func AuthPolicyHasPrefix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasPrefix(FieldAuthPolicy, v))
}

// AuthPolicyHasSuffix applies the HasSuffix predicate on the "auth_policy" field.
func AuthPolicyHasSuffix(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldHasSuffix(FieldAuthPolicy, v))
}

// AuthPolicyEqualFold applies the EqualFold predicate on the "auth_policy" field.
func AuthPolicyEqualFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldEqualFold(FieldAuthPolicy, v))
}

// AuthPolicyContainsFold applies the ContainsFold predicate on the "auth_policy" field.
func AuthPolicyContainsFold(v string) predicate.DataSource {
	return predicate.DataSource(sql.FieldContainsFold(FieldAuthPolicy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DataSource {
	return predicate.DataSource(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.DataSource {
	return predicate.DataSource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.DataSource {
	return predicate.DataSource(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DataSource) predicate.DataSource {
	return predicate.DataSource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DataSource) predicate.DataSource {
	return predicate.DataSource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DataSource) predicate.DataSource {
	return predicate.DataSource(sql.NotPredicates(p))
}
