// Code generated by ent, DO NOT EDIT.

package dataquery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldContainsFold(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldReportID, v))
}

// DataSourceID applies equality check predicate on the "data_source_id" field. It's identical to DataSourceIDEQ.
func DataSourceID(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldDataSourceID, v))
}

// SQL applies equality check predicate on the "sql" field. It's identical to SQLEQ.
func SQL(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldSQL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldContainsFold(FieldReportID, v))
}

// DataSourceIDEQ applies the EQ predicate on the "data_source_id" field.
func DataSourceIDEQ(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldDataSourceID, v))
}

// DataSourceIDNEQ applies the NEQ predicate on the "data_source_id" field.
func DataSourceIDNEQ(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNEQ(FieldDataSourceID, v))
}

// DataSourceIDIn applies the In predicate on the "data_source_id" field.
func DataSourceIDIn(vs ...string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldIn(FieldDataSourceID, vs...))
}

// DataSourceIDNotIn applies the NotIn predicate on the "data_source_id" field.
func DataSourceIDNotIn(vs ...string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNotIn(FieldDataSourceID, vs...))
}

// DataSourceIDGT applies the GT predicate on the "data_source_id" field.
func DataSourceIDGT(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGT(FieldDataSourceID, v))
}

// DataSourceIDGTE applies the GTE predicate on the "data_source_id" field.
func DataSourceIDGTE(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGTE(FieldDataSourceID, v))
}

// DataSourceIDLT applies the LT predicate on the "data_source_id" field.
func DataSourceIDLT(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLT(FieldDataSourceID, v))
}

// DataSourceIDLTE applies the LTE predicate on the "data_source_id" field.
func DataSourceIDLTE(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLTE(FieldDataSourceID, v))
}

// DataSourceIDContains applies the Contains predicate on the "data_source_id" field.
func DataSourceIDContains(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldContains(FieldDataSourceID, v))
}

// DataSourceIDHasPrefix applies the HasPrefix predicate on the "data_source_id" field.
func DataSourceIDHasPrefix(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldHasPrefix(FieldDataSourceID, v))
}

// DataSourceIDHasSuffix applies the HasSuffix predicate on the "data_source_id" field.
func DataSourceIDHasSuffix(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldHasSuffix(FieldDataSourceID, v))
}

// DataSourceIDIsNil applies the IsNil predicate on the "data_source_id" field.
func DataSourceIDIsNil() predicate.DataQuery {
	return predicate.DataQuery(sql.FieldIsNull(FieldDataSourceID))
}

// DataSourceIDNotNil applies the NotNil predicate on the "data_source_id" field.
func DataSourceIDNotNil() predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNotNull(FieldDataSourceID))
}

// DataSourceIDEqualFold applies the EqualFold predicate on the "data_source_id" field.
func DataSourceIDEqualFold(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEqualFold(FieldDataSourceID, v))
}

// DataSourceIDContainsFold applies the ContainsFold predicate on the "data_source_id" field.
func DataSourceIDContainsFold(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldContainsFold(FieldDataSourceID, v))
}

// SQLEQ applies the EQ predicate on the "sql" field.
func SQLEQ(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldSQL, v))
}

// SQLNEQ applies the NEQ predicate on the "sql" field.
func SQLNEQ(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNEQ(FieldSQL, v))
}

// SQLIn applies the In predicate on the "sql" field.
func SQLIn(vs ...string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldIn(FieldSQL, vs...))
}

// SQLNotIn applies the NotIn predicate on the "sql" field.
func SQLNotIn(vs ...string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNotIn(FieldSQL, vs...))
}

// SQLGT applies the GT predicate on the "sql" field.
func SQLGT(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGT(FieldSQL, v))
}

// SQLGTE applies the GTE predicate on the "sql" field.
func SQLGTE(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGTE(FieldSQL, v))
}

// SQLLT applies the LT predicate on the "sql" field.
func SQLLT(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLT(FieldSQL, v))
}

// SQLLTE applies the LTE predicate on the "sql" field.
func SQLLTE(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLTE(FieldSQL, v))
}

// SQLContains applies the Contains predicate on the "sql" field.
func SQLContains(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldContains(FieldSQL, v))
}

// SQLHasPrefix applies the HasPrefix predicate on the "sql" field.
func SQLHasPrefix(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldHasPrefix(FieldSQL, v))
}

// SQLHasSuffix applies the HasSuffix predicate on the "sql" field.
func SQLHasSuffix(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldHasSuffix(FieldSQL, v))
}

// SQLEqualFold applies the EqualFold predicate on the "sql" field.
func SQLEqualFold(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEqualFold(FieldSQL, v))
}

// SQLContainsFold applies the ContainsFold predicate on the "sql" field.
func SQLContainsFold(v string) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldContainsFold(FieldSQL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DataQuery {
	return predicate.DataQuery(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.DataQuery {
	return predicate.DataQuery(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.DataQuery {
	return predicate.DataQuery(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DataQuery) predicate.DataQuery {
	return predicate.DataQuery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DataQuery) predicate.DataQuery {
	return predicate.DataQuery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DataQuery) predicate.DataQuery {
	return predicate.DataQuery(sql.NotPredicates(p))
}
