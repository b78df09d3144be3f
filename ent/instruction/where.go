// Code generated by ent, DO NOT EDIT.

package instruction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldReportID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldText, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldCategory, v))
}

// BuildID applies equality check predicate on the "build_id" field. It's identical to BuildIDEQ.
func BuildID(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldBuildID, v))
}

// AiSource applies equality check predicate on the "ai_source" field. It's identical to AiSourceEQ.
func AiSource(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldAiSource, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldUsageCount, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldPosition, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldReportID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldText, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Instruction {
	return predicate.Instruction(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Instruction {
	return predicate.Instruction(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldCategory, v))
}

// LoadModeEQ applies the EQ predicate on the "load_mode" field.
func LoadModeEQ(v LoadMode) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldLoadMode, v))
}

// LoadModeNEQ applies the NEQ predicate on the "load_mode" field.
func LoadModeNEQ(v LoadMode) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldLoadMode, v))
}

// LoadModeIn applies the In predicate on the "load_mode" field.
func LoadModeIn(vs ...LoadMode) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldLoadMode, vs...))
}

// LoadModeNotIn applies the NotIn predicate on the "load_mode" field.
func LoadModeNotIn(vs ...LoadMode) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldLoadMode, vs...))
}

// BuildIDEQ applies the EQ predicate on the "build_id" field.
func BuildIDEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldBuildID, v))
}

// BuildIDNEQ applies the NEQ predicate on the "build_id" field.
func BuildIDNEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldBuildID, v))
}

// BuildIDIn applies the In predicate on the "build_id" field.
func BuildIDIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldBuildID, vs...))
}

// BuildIDNotIn applies the NotIn predicate on the "build_id" field.
func BuildIDNotIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldBuildID, vs...))
}

// BuildIDGT applies the GT predicate on the "build_id" field.
func BuildIDGT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldBuildID, v))
}

// BuildIDGTE applies the GTE predicate on the "build_id" field.
func BuildIDGTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldBuildID, v))
}

// BuildIDLT applies the LT predicate on the "build_id" field.
func BuildIDLT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldBuildID, v))
}

// BuildIDLTE applies the LTE predicate on the "build_id" field.
func BuildIDLTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldBuildID, v))
}

// BuildIDContains applies the Contains predicate on the "build_id" field.
func BuildIDContains(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContains(FieldBuildID, v))
}

// BuildIDHasPrefix applies the HasPrefix predicate on the "build_id" field.
func BuildIDHasPrefix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasPrefix(FieldBuildID, v))
}

// BuildIDHasSuffix applies the HasSuffix predicate on the "build_id" field.
func BuildIDHasSuffix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasSuffix(FieldBuildID, v))
}

// BuildIDIsNil applies the IsNil predicate on the "build_id" field.
func BuildIDIsNil() predicate.Instruction {
	return predicate.Instruction(sql.FieldIsNull(FieldBuildID))
}

// BuildIDNotNil applies the NotNil predicate on the "build_id" field.
func BuildIDNotNil() predicate.Instruction {
	return predicate.Instruction(sql.FieldNotNull(FieldBuildID))
}

// BuildIDEqualFold applies the EqualFold predicate on the "build_id" field.
func BuildIDEqualFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldBuildID, v))
}

// BuildIDContainsFold applies the ContainsFold predicate on the "build_id" field.
func BuildIDContainsFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldBuildID, v))
}

// AiSourceEQ applies the EQ predicate on the "ai_source" field.
func AiSourceEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldAiSource, v))
}

// AiSourceNEQ applies the NEQ predicate on the "ai_source" field.
func AiSourceNEQ(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldAiSource, v))
}

// AiSourceIn applies the In predicate on the "ai_source" field.
func AiSourceIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldAiSource, vs...))
}

// AiSourceNotIn applies the NotIn predicate on the "ai_source" field.
func AiSourceNotIn(vs ...string) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldAiSource, vs...))
}

// AiSourceGT applies the GT predicate on the "ai_source" field.
func AiSourceGT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldAiSource, v))
}

// AiSourceGTE applies the GTE predicate on the "ai_source" field.
func AiSourceGTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldAiSource, v))
}

// AiSourceLT applies the LT predicate on the "ai_source" field.
func AiSourceLT(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldAiSource, v))
}

// AiSourceLTE applies the LTE predicate on the "ai_source" field.
func AiSourceLTE(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldAiSource, v))
}

// AiSourceContains applies the Contains predicate on the "ai_source" field.
func AiSourceContains(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContains(FieldAiSource, v))
}

// AiSourceHasPrefix applies the HasPrefix predicate on the "ai_source" field.
func AiSourceHasPrefix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasPrefix(FieldAiSource, v))
}

// AiSourceHasSuffix applies the HasSuffix predicate on the "ai_source" field.
func AiSourceHasSuffix(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldHasSuffix(FieldAiSource, v))
}

// AiSourceIsNil applies the IsNil predicate on the "ai_source" field.
func AiSourceIsNil() predicate.Instruction {
	return predicate.Instruction(sql.FieldIsNull(FieldAiSource))
}

// AiSourceNotNil applies the NotNil predicate on the "ai_source" field.
func AiSourceNotNil() predicate.Instruction {
	return predicate.Instruction(sql.FieldNotNull(FieldAiSource))
}

// AiSourceEqualFold applies the EqualFold predicate on the "ai_source" field.
func AiSourceEqualFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldEqualFold(FieldAiSource, v))
}

// AiSourceContainsFold applies the ContainsFold predicate on the "ai_source" field.
func AiSourceContainsFold(v string) predicate.Instruction {
	return predicate.Instruction(sql.FieldContainsFold(FieldAiSource, v))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldUsageCount, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldPosition, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Instruction {
	return predicate.Instruction(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.Instruction {
	return predicate.Instruction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.Instruction {
	return predicate.Instruction(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Instruction) predicate.Instruction {
	return predicate.Instruction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Instruction) predicate.Instruction {
	return predicate.Instruction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Instruction) predicate.Instruction {
	return predicate.Instruction(sql.NotPredicates(p))
}
