// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/datalens-ai/datalens/ent/agentexecution"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/ent/contextsnapshot"
	"github.com/datalens-ai/datalens/ent/dataquery"
	"github.com/datalens-ai/datalens/ent/datasource"
	"github.com/datalens-ai/datalens/ent/instruction"
	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/ent/report"
	"github.com/datalens-ai/datalens/ent/schema"
	"github.com/datalens-ai/datalens/ent/step"
	"github.com/datalens-ai/datalens/ent/toolexecution"
	"github.com/datalens-ai/datalens/ent/visualization"
	"github.com/datalens-ai/datalens/ent/widget"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentexecutionFields := schema.AgentExecution{}.Fields()
	_ = agentexecutionFields
	// agentexecutionDescLastSeq is the schema descriptor for last_seq field.
	agentexecutionDescLastSeq := agentexecutionFields[4].Descriptor()
	// agentexecution.DefaultLastSeq holds the default value on creation for the last_seq field.
	agentexecution.DefaultLastSeq = agentexecutionDescLastSeq.Default.(int)
	// agentexecutionDescLoopIterations is the schema descriptor for loop_iterations field.
	agentexecutionDescLoopIterations := agentexecutionFields[5].Descriptor()
	// agentexecution.DefaultLoopIterations holds the default value on creation for the loop_iterations field.
	agentexecution.DefaultLoopIterations = agentexecutionDescLoopIterations.Default.(int)
	// agentexecutionDescStartedAt is the schema descriptor for started_at field.
	agentexecutionDescStartedAt := agentexecutionFields[6].Descriptor()
	// agentexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	agentexecution.DefaultStartedAt = agentexecutionDescStartedAt.Default.(func() time.Time)
	completionFields := schema.Completion{}.Fields()
	_ = completionFields
	// completionDescTurnIndex is the schema descriptor for turn_index field.
	completionDescTurnIndex := completionFields[7].Descriptor()
	// completion.DefaultTurnIndex holds the default value on creation for the turn_index field.
	completion.DefaultTurnIndex = completionDescTurnIndex.Default.(int)
	// completionDescSigkill is the schema descriptor for sigkill field.
	completionDescSigkill := completionFields[8].Descriptor()
	// completion.DefaultSigkill holds the default value on creation for the sigkill field.
	completion.DefaultSigkill = completionDescSigkill.Default.(bool)
	// completionDescCreatedAt is the schema descriptor for created_at field.
	completionDescCreatedAt := completionFields[13].Descriptor()
	// completion.DefaultCreatedAt holds the default value on creation for the created_at field.
	completion.DefaultCreatedAt = completionDescCreatedAt.Default.(func() time.Time)
	// completionDescUpdatedAt is the schema descriptor for updated_at field.
	completionDescUpdatedAt := completionFields[14].Descriptor()
	// completion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	completion.DefaultUpdatedAt = completionDescUpdatedAt.Default.(func() time.Time)
	// completion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	completion.UpdateDefaultUpdatedAt = completionDescUpdatedAt.UpdateDefault.(func() time.Time)
	completionblockFields := schema.CompletionBlock{}.Fields()
	_ = completionblockFields
	// completionblockDescContent is the schema descriptor for content field.
	completionblockDescContent := completionblockFields[7].Descriptor()
	// completionblock.DefaultContent holds the default value on creation for the content field.
	completionblock.DefaultContent = completionblockDescContent.Default.(string)
	// completionblockDescReasoning is the schema descriptor for reasoning field.
	completionblockDescReasoning := completionblockFields[8].Descriptor()
	// completionblock.DefaultReasoning holds the default value on creation for the reasoning field.
	completionblock.DefaultReasoning = completionblockDescReasoning.Default.(string)
	// completionblockDescCreatedAt is the schema descriptor for created_at field.
	completionblockDescCreatedAt := completionblockFields[11].Descriptor()
	// completionblock.DefaultCreatedAt holds the default value on creation for the created_at field.
	completionblock.DefaultCreatedAt = completionblockDescCreatedAt.Default.(func() time.Time)
	// completionblockDescUpdatedAt is the schema descriptor for updated_at field.
	completionblockDescUpdatedAt := completionblockFields[12].Descriptor()
	// completionblock.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	completionblock.DefaultUpdatedAt = completionblockDescUpdatedAt.Default.(func() time.Time)
	// completionblock.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	completionblock.UpdateDefaultUpdatedAt = completionblockDescUpdatedAt.UpdateDefault.(func() time.Time)
	contextsnapshotFields := schema.ContextSnapshot{}.Fields()
	_ = contextsnapshotFields
	// contextsnapshotDescCreatedAt is the schema descriptor for created_at field.
	contextsnapshotDescCreatedAt := contextsnapshotFields[6].Descriptor()
	// contextsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	contextsnapshot.DefaultCreatedAt = contextsnapshotDescCreatedAt.Default.(func() time.Time)
	dataqueryFields := schema.DataQuery{}.Fields()
	_ = dataqueryFields
	// dataqueryDescSQL is the schema descriptor for sql field.
	dataqueryDescSQL := dataqueryFields[3].Descriptor()
	// dataquery.DefaultSQL holds the default value on creation for the sql field.
	dataquery.DefaultSQL = dataqueryDescSQL.Default.(string)
	// dataqueryDescCreatedAt is the schema descriptor for created_at field.
	dataqueryDescCreatedAt := dataqueryFields[4].Descriptor()
	// dataquery.DefaultCreatedAt holds the default value on creation for the created_at field.
	dataquery.DefaultCreatedAt = dataqueryDescCreatedAt.Default.(func() time.Time)
	// dataqueryDescUpdatedAt is the schema descriptor for updated_at field.
	dataqueryDescUpdatedAt := dataqueryFields[5].Descriptor()
	// dataquery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dataquery.DefaultUpdatedAt = dataqueryDescUpdatedAt.Default.(func() time.Time)
	// dataquery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dataquery.UpdateDefaultUpdatedAt = dataqueryDescUpdatedAt.UpdateDefault.(func() time.Time)
	datasourceFields := schema.DataSource{}.Fields()
	_ = datasourceFields
	// datasourceDescActive is the schema descriptor for active field.
	datasourceDescActive := datasourceFields[4].Descriptor()
	// datasource.DefaultActive holds the default value on creation for the active field.
	datasource.DefaultActive = datasourceDescActive.Default.(bool)
	// datasourceDescAuthPolicy is the schema descriptor for auth_policy field.
	datasourceDescAuthPolicy := datasourceFields[7].Descriptor()
	// datasource.DefaultAuthPolicy holds the default value on creation for the auth_policy field.
	datasource.DefaultAuthPolicy = datasourceDescAuthPolicy.Default.(string)
	// datasourceDescCreatedAt is the schema descriptor for created_at field.
	datasourceDescCreatedAt := datasourceFields[8].Descriptor()
	// datasource.DefaultCreatedAt holds the default value on creation for the created_at field.
	datasource.DefaultCreatedAt = datasourceDescCreatedAt.Default.(func() time.Time)
	// datasourceDescUpdatedAt is the schema descriptor for updated_at field.
	datasourceDescUpdatedAt := datasourceFields[9].Descriptor()
	// datasource.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	datasource.DefaultUpdatedAt = datasourceDescUpdatedAt.Default.(func() time.Time)
	// datasource.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	datasource.UpdateDefaultUpdatedAt = datasourceDescUpdatedAt.UpdateDefault.(func() time.Time)
	instructionFields := schema.Instruction{}.Fields()
	_ = instructionFields
	// instructionDescUsageCount is the schema descriptor for usage_count field.
	instructionDescUsageCount := instructionFields[7].Descriptor()
	// instruction.DefaultUsageCount holds the default value on creation for the usage_count field.
	instruction.DefaultUsageCount = instructionDescUsageCount.Default.(int)
	// instructionDescPosition is the schema descriptor for position field.
	instructionDescPosition := instructionFields[8].Descriptor()
	// instruction.DefaultPosition holds the default value on creation for the position field.
	instruction.DefaultPosition = instructionDescPosition.Default.(int)
	// instructionDescCreatedAt is the schema descriptor for created_at field.
	instructionDescCreatedAt := instructionFields[9].Descriptor()
	// instruction.DefaultCreatedAt holds the default value on creation for the created_at field.
	instruction.DefaultCreatedAt = instructionDescCreatedAt.Default.(func() time.Time)
	// instructionDescUpdatedAt is the schema descriptor for updated_at field.
	instructionDescUpdatedAt := instructionFields[10].Descriptor()
	// instruction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	instruction.DefaultUpdatedAt = instructionDescUpdatedAt.Default.(func() time.Time)
	// instruction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	instruction.UpdateDefaultUpdatedAt = instructionDescUpdatedAt.UpdateDefault.(func() time.Time)
	plandecisionFields := schema.PlanDecision{}.Fields()
	_ = plandecisionFields
	// plandecisionDescReasoningMessage is the schema descriptor for reasoning_message field.
	plandecisionDescReasoningMessage := plandecisionFields[5].Descriptor()
	// plandecision.DefaultReasoningMessage holds the default value on creation for the reasoning_message field.
	plandecision.DefaultReasoningMessage = plandecisionDescReasoningMessage.Default.(string)
	// plandecisionDescAssistantMessage is the schema descriptor for assistant_message field.
	plandecisionDescAssistantMessage := plandecisionFields[6].Descriptor()
	// plandecision.DefaultAssistantMessage holds the default value on creation for the assistant_message field.
	plandecision.DefaultAssistantMessage = plandecisionDescAssistantMessage.Default.(string)
	// plandecisionDescAnalysisComplete is the schema descriptor for analysis_complete field.
	plandecisionDescAnalysisComplete := plandecisionFields[9].Descriptor()
	// plandecision.DefaultAnalysisComplete holds the default value on creation for the analysis_complete field.
	plandecision.DefaultAnalysisComplete = plandecisionDescAnalysisComplete.Default.(bool)
	// plandecisionDescFinal is the schema descriptor for final field.
	plandecisionDescFinal := plandecisionFields[13].Descriptor()
	// plandecision.DefaultFinal holds the default value on creation for the final field.
	plandecision.DefaultFinal = plandecisionDescFinal.Default.(bool)
	// plandecisionDescCreatedAt is the schema descriptor for created_at field.
	plandecisionDescCreatedAt := plandecisionFields[14].Descriptor()
	// plandecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	plandecision.DefaultCreatedAt = plandecisionDescCreatedAt.Default.(func() time.Time)
	// plandecisionDescUpdatedAt is the schema descriptor for updated_at field.
	plandecisionDescUpdatedAt := plandecisionFields[15].Descriptor()
	// plandecision.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plandecision.DefaultUpdatedAt = plandecisionDescUpdatedAt.Default.(func() time.Time)
	// plandecision.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plandecision.UpdateDefaultUpdatedAt = plandecisionDescUpdatedAt.UpdateDefault.(func() time.Time)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[3].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportFields[4].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescCode is the schema descriptor for code field.
	stepDescCode := stepFields[3].Descriptor()
	// step.DefaultCode holds the default value on creation for the code field.
	step.DefaultCode = stepDescCode.Default.(string)
	// stepDescCreatedAt is the schema descriptor for created_at field.
	stepDescCreatedAt := stepFields[8].Descriptor()
	// step.DefaultCreatedAt holds the default value on creation for the created_at field.
	step.DefaultCreatedAt = stepDescCreatedAt.Default.(func() time.Time)
	// stepDescUpdatedAt is the schema descriptor for updated_at field.
	stepDescUpdatedAt := stepFields[9].Descriptor()
	// step.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	step.DefaultUpdatedAt = stepDescUpdatedAt.Default.(func() time.Time)
	// step.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	step.UpdateDefaultUpdatedAt = stepDescUpdatedAt.UpdateDefault.(func() time.Time)
	toolexecutionFields := schema.ToolExecution{}.Fields()
	_ = toolexecutionFields
	// toolexecutionDescAttemptNumber is the schema descriptor for attempt_number field.
	toolexecutionDescAttemptNumber := toolexecutionFields[11].Descriptor()
	// toolexecution.DefaultAttemptNumber holds the default value on creation for the attempt_number field.
	toolexecution.DefaultAttemptNumber = toolexecutionDescAttemptNumber.Default.(int)
	// toolexecutionDescStartedAt is the schema descriptor for started_at field.
	toolexecutionDescStartedAt := toolexecutionFields[15].Descriptor()
	// toolexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	toolexecution.DefaultStartedAt = toolexecutionDescStartedAt.Default.(func() time.Time)
	visualizationFields := schema.Visualization{}.Fields()
	_ = visualizationFields
	// visualizationDescKind is the schema descriptor for kind field.
	visualizationDescKind := visualizationFields[2].Descriptor()
	// visualization.DefaultKind holds the default value on creation for the kind field.
	visualization.DefaultKind = visualizationDescKind.Default.(string)
	// visualizationDescCreatedAt is the schema descriptor for created_at field.
	visualizationDescCreatedAt := visualizationFields[5].Descriptor()
	// visualization.DefaultCreatedAt holds the default value on creation for the created_at field.
	visualization.DefaultCreatedAt = visualizationDescCreatedAt.Default.(func() time.Time)
	// visualizationDescUpdatedAt is the schema descriptor for updated_at field.
	visualizationDescUpdatedAt := visualizationFields[6].Descriptor()
	// visualization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	visualization.DefaultUpdatedAt = visualizationDescUpdatedAt.Default.(func() time.Time)
	// visualization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	visualization.UpdateDefaultUpdatedAt = visualizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	widgetFields := schema.Widget{}.Fields()
	_ = widgetFields
	// widgetDescCreatedAt is the schema descriptor for created_at field.
	widgetDescCreatedAt := widgetFields[4].Descriptor()
	// widget.DefaultCreatedAt holds the default value on creation for the created_at field.
	widget.DefaultCreatedAt = widgetDescCreatedAt.Default.(func() time.Time)
	// widgetDescUpdatedAt is the schema descriptor for updated_at field.
	widgetDescUpdatedAt := widgetFields[5].Descriptor()
	// widget.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	widget.DefaultUpdatedAt = widgetDescUpdatedAt.Default.(func() time.Time)
	// widget.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	widget.UpdateDefaultUpdatedAt = widgetDescUpdatedAt.UpdateDefault.(func() time.Time)
}
