// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/datalens-ai/datalens/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datalens-ai/datalens/ent/agentexecution"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/ent/contextsnapshot"
	"github.com/datalens-ai/datalens/ent/dataquery"
	"github.com/datalens-ai/datalens/ent/datasource"
	"github.com/datalens-ai/datalens/ent/instruction"
	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/ent/report"
	"github.com/datalens-ai/datalens/ent/step"
	"github.com/datalens-ai/datalens/ent/toolexecution"
	"github.com/datalens-ai/datalens/ent/visualization"
	"github.com/datalens-ai/datalens/ent/widget"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentExecution is the client for interacting with the AgentExecution builders.
	AgentExecution *AgentExecutionClient
	// Completion is the client for interacting with the Completion builders.
	Completion *CompletionClient
	// CompletionBlock is the client for interacting with the CompletionBlock builders.
	CompletionBlock *CompletionBlockClient
	// ContextSnapshot is the client for interacting with the ContextSnapshot builders.
	ContextSnapshot *ContextSnapshotClient
	// DataQuery is the client for interacting with the DataQuery builders.
	DataQuery *DataQueryClient
	// DataSource is the client for interacting with the DataSource builders.
	DataSource *DataSourceClient
	// Instruction is the client for interacting with the Instruction builders.
	Instruction *InstructionClient
	// PlanDecision is the client for interacting with the PlanDecision builders.
	PlanDecision *PlanDecisionClient
	// Report is the client for interacting with the Report builders.
	Report *ReportClient
	// Step is the client for interacting with the Step builders.
	Step *StepClient
	// ToolExecution is the client for interacting with the ToolExecution builders.
	ToolExecution *ToolExecutionClient
	// Visualization is the client for interacting with the Visualization builders.
	Visualization *VisualizationClient
	// Widget is the client for interacting with the Widget builders.
	Widget *WidgetClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentExecution = NewAgentExecutionClient(c.config)
	c.Completion = NewCompletionClient(c.config)
	c.CompletionBlock = NewCompletionBlockClient(c.config)
	c.ContextSnapshot = NewContextSnapshotClient(c.config)
	c.DataQuery = NewDataQueryClient(c.config)
	c.DataSource = NewDataSourceClient(c.config)
	c.Instruction = NewInstructionClient(c.config)
	c.PlanDecision = NewPlanDecisionClient(c.config)
	c.Report = NewReportClient(c.config)
	c.Step = NewStepClient(c.config)
	c.ToolExecution = NewToolExecutionClient(c.config)
	c.Visualization = NewVisualizationClient(c.config)
	c.Widget = NewWidgetClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AgentExecution:  NewAgentExecutionClient(cfg),
		Completion:      NewCompletionClient(cfg),
		CompletionBlock: NewCompletionBlockClient(cfg),
		ContextSnapshot: NewContextSnapshotClient(cfg),
		DataQuery:       NewDataQueryClient(cfg),
		DataSource:      NewDataSourceClient(cfg),
		Instruction:     NewInstructionClient(cfg),
		PlanDecision:    NewPlanDecisionClient(cfg),
		Report:          NewReportClient(cfg),
		Step:            NewStepClient(cfg),
		ToolExecution:   NewToolExecutionClient(cfg),
		Visualization:   NewVisualizationClient(cfg),
		Widget:          NewWidgetClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AgentExecution:  NewAgentExecutionClient(cfg),
		Completion:      NewCompletionClient(cfg),
		CompletionBlock: NewCompletionBlockClient(cfg),
		ContextSnapshot: NewContextSnapshotClient(cfg),
		DataQuery:       NewDataQueryClient(cfg),
		DataSource:      NewDataSourceClient(cfg),
		Instruction:     NewInstructionClient(cfg),
		PlanDecision:    NewPlanDecisionClient(cfg),
		Report:          NewReportClient(cfg),
		Step:            NewStepClient(cfg),
		ToolExecution:   NewToolExecutionClient(cfg),
		Visualization:   NewVisualizationClient(cfg),
		Widget:          NewWidgetClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentExecution.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentExecution, c.Completion, c.CompletionBlock, c.ContextSnapshot,
		c.DataQuery, c.DataSource, c.Instruction, c.PlanDecision, c.Report, c.Step,
		c.ToolExecution, c.Visualization, c.Widget,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentExecution, c.Completion, c.CompletionBlock, c.ContextSnapshot,
		c.DataQuery, c.DataSource, c.Instruction, c.PlanDecision, c.Report, c.Step,
		c.ToolExecution, c.Visualization, c.Widget,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentExecutionMutation:
		return c.AgentExecution.mutate(ctx, m)
	case *CompletionMutation:
		return c.Completion.mutate(ctx, m)
	case *CompletionBlockMutation:
		return c.CompletionBlock.mutate(ctx, m)
	case *ContextSnapshotMutation:
		return c.ContextSnapshot.mutate(ctx, m)
	case *DataQueryMutation:
		return c.DataQuery.mutate(ctx, m)
	case *DataSourceMutation:
		return c.DataSource.mutate(ctx, m)
	case *InstructionMutation:
		return c.Instruction.mutate(ctx, m)
	case *PlanDecisionMutation:
		return c.PlanDecision.mutate(ctx, m)
	case *ReportMutation:
		return c.Report.mutate(ctx, m)
	case *StepMutation:
		return c.Step.mutate(ctx, m)
	case *ToolExecutionMutation:
		return c.ToolExecution.mutate(ctx, m)
	case *VisualizationMutation:
		return c.Visualization.mutate(ctx, m)
	case *WidgetMutation:
		return c.Widget.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentExecutionClient is a client for the AgentExecution schema.
type AgentExecutionClient struct {
	config
}

// NewAgentExecutionClient returns a client for the AgentExecution from the given config.
func NewAgentExecutionClient(c config) *AgentExecutionClient {
	return &AgentExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentexecution.Hooks(f(g(h())))`.
func (c *AgentExecutionClient) Use(hooks ...Hook) {
	c.hooks.AgentExecution = append(c.hooks.AgentExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentexecution.Intercept(f(g(h())))`.
func (c *AgentExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentExecution = append(c.inters.AgentExecution, interceptors...)
}

// Create returns a builder for creating a AgentExecution entity.
func (c *AgentExecutionClient) Create() *AgentExecutionCreate {
	mutation := newAgentExecutionMutation(c.config, OpCreate)
	return &AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentExecution entities.
func (c *AgentExecutionClient) CreateBulk(builders ...*AgentExecutionCreate) *AgentExecutionCreateBulk {
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentExecutionClient) MapCreateBulk(slice any, setFunc func(*AgentExecutionCreate, int)) *AgentExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentExecutionCreateBulk{err: fmt.Errorf("calling to AgentExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentExecution.
func (c *AgentExecutionClient) Update() *AgentExecutionUpdate {
	mutation := newAgentExecutionMutation(c.config, OpUpdate)
	return &AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentExecutionClient) UpdateOne(_m *AgentExecution) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecution(_m))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentExecutionClient) UpdateOneID(id string) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecutionID(id))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentExecution.
func (c *AgentExecutionClient) Delete() *AgentExecutionDelete {
	mutation := newAgentExecutionMutation(c.config, OpDelete)
	return &AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentExecutionClient) DeleteOne(_m *AgentExecution) *AgentExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentExecutionClient) DeleteOneID(id string) *AgentExecutionDeleteOne {
	builder := c.Delete().Where(agentexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentExecutionDeleteOne{builder}
}

// Query returns a query builder for AgentExecution.
func (c *AgentExecutionClient) Query() *AgentExecutionQuery {
	return &AgentExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentExecution entity by its id.
func (c *AgentExecutionClient) Get(ctx context.Context, id string) (*AgentExecution, error) {
	return c.Query().Where(agentexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentExecutionClient) GetX(ctx context.Context, id string) *AgentExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompletion queries the completion edge of a AgentExecution.
func (c *AgentExecutionClient) QueryCompletion(_m *AgentExecution) *CompletionQuery {
	query := (&CompletionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(completion.Table, completion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentexecution.CompletionTable, agentexecution.CompletionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPlanDecisions queries the plan_decisions edge of a AgentExecution.
func (c *AgentExecutionClient) QueryPlanDecisions(_m *AgentExecution) *PlanDecisionQuery {
	query := (&PlanDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(plandecision.Table, plandecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.PlanDecisionsTable, agentexecution.PlanDecisionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolExecutions queries the tool_executions edge of a AgentExecution.
func (c *AgentExecutionClient) QueryToolExecutions(_m *AgentExecution) *ToolExecutionQuery {
	query := (&ToolExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(toolexecution.Table, toolexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.ToolExecutionsTable, agentexecution.ToolExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContextSnapshots queries the context_snapshots edge of a AgentExecution.
func (c *AgentExecutionClient) QueryContextSnapshots(_m *AgentExecution) *ContextSnapshotQuery {
	query := (&ContextSnapshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(contextsnapshot.Table, contextsnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.ContextSnapshotsTable, agentexecution.ContextSnapshotsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentExecutionClient) Hooks() []Hook {
	return c.hooks.AgentExecution
}

// Interceptors returns the client interceptors.
func (c *AgentExecutionClient) Interceptors() []Interceptor {
	return c.inters.AgentExecution
}

func (c *AgentExecutionClient) mutate(ctx context.Context, m *AgentExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentExecution mutation op: %q", m.Op())
	}
}

// CompletionClient is a client for the Completion schema.
type CompletionClient struct {
	config
}

// NewCompletionClient returns a client for the Completion from the given config.
func NewCompletionClient(c config) *CompletionClient {
	return &CompletionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `completion.Hooks(f(g(h())))`.
func (c *CompletionClient) Use(hooks ...Hook) {
	c.hooks.Completion = append(c.hooks.Completion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `completion.Intercept(f(g(h())))`.
func (c *CompletionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Completion = append(c.inters.Completion, interceptors...)
}

// Create returns a builder for creating a Completion entity.
func (c *CompletionClient) Create() *CompletionCreate {
	mutation := newCompletionMutation(c.config, OpCreate)
	return &CompletionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Completion entities.
func (c *CompletionClient) CreateBulk(builders ...*CompletionCreate) *CompletionCreateBulk {
	return &CompletionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompletionClient) MapCreateBulk(slice any, setFunc func(*CompletionCreate, int)) *CompletionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompletionCreateBulk{err: fmt.Errorf("calling to CompletionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompletionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompletionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Completion.
func (c *CompletionClient) Update() *CompletionUpdate {
	mutation := newCompletionMutation(c.config, OpUpdate)
	return &CompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompletionClient) UpdateOne(_m *Completion) *CompletionUpdateOne {
	mutation := newCompletionMutation(c.config, OpUpdateOne, withCompletion(_m))
	return &CompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompletionClient) UpdateOneID(id string) *CompletionUpdateOne {
	mutation := newCompletionMutation(c.config, OpUpdateOne, withCompletionID(id))
	return &CompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Completion.
func (c *CompletionClient) Delete() *CompletionDelete {
	mutation := newCompletionMutation(c.config, OpDelete)
	return &CompletionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompletionClient) DeleteOne(_m *Completion) *CompletionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompletionClient) DeleteOneID(id string) *CompletionDeleteOne {
	builder := c.Delete().Where(completion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompletionDeleteOne{builder}
}

// Query returns a query builder for Completion.
func (c *CompletionClient) Query() *CompletionQuery {
	return &CompletionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompletion},
		inters: c.Interceptors(),
	}
}

// Get returns a Completion entity by its id.
func (c *CompletionClient) Get(ctx context.Context, id string) (*Completion, error) {
	return c.Query().Where(completion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompletionClient) GetX(ctx context.Context, id string) *Completion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Completion.
func (c *CompletionClient) QueryReport(_m *Completion) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completion.Table, completion.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, completion.ReportTable, completion.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentExecutions queries the agent_executions edge of a Completion.
func (c *CompletionClient) QueryAgentExecutions(_m *Completion) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completion.Table, completion.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, completion.AgentExecutionsTable, completion.AgentExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlocks queries the blocks edge of a Completion.
func (c *CompletionClient) QueryBlocks(_m *Completion) *CompletionBlockQuery {
	query := (&CompletionBlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completion.Table, completion.FieldID, id),
			sqlgraph.To(completionblock.Table, completionblock.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, completion.BlocksTable, completion.BlocksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompletionClient) Hooks() []Hook {
	return c.hooks.Completion
}

// Interceptors returns the client interceptors.
func (c *CompletionClient) Interceptors() []Interceptor {
	return c.inters.Completion
}

func (c *CompletionClient) mutate(ctx context.Context, m *CompletionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompletionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompletionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Completion mutation op: %q", m.Op())
	}
}

// CompletionBlockClient is a client for the CompletionBlock schema.
type CompletionBlockClient struct {
	config
}

// NewCompletionBlockClient returns a client for the CompletionBlock from the given config.
func NewCompletionBlockClient(c config) *CompletionBlockClient {
	return &CompletionBlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `completionblock.Hooks(f(g(h())))`.
func (c *CompletionBlockClient) Use(hooks ...Hook) {
	c.hooks.CompletionBlock = append(c.hooks.CompletionBlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `completionblock.Intercept(f(g(h())))`.
func (c *CompletionBlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompletionBlock = append(c.inters.CompletionBlock, interceptors...)
}

// Create returns a builder for creating a CompletionBlock entity.
func (c *CompletionBlockClient) Create() *CompletionBlockCreate {
	mutation := newCompletionBlockMutation(c.config, OpCreate)
	return &CompletionBlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompletionBlock entities.
func (c *CompletionBlockClient) CreateBulk(builders ...*CompletionBlockCreate) *CompletionBlockCreateBulk {
	return &CompletionBlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompletionBlockClient) MapCreateBulk(slice any, setFunc func(*CompletionBlockCreate, int)) *CompletionBlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompletionBlockCreateBulk{err: fmt.Errorf("calling to CompletionBlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompletionBlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompletionBlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompletionBlock.
func (c *CompletionBlockClient) Update() *CompletionBlockUpdate {
	mutation := newCompletionBlockMutation(c.config, OpUpdate)
	return &CompletionBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompletionBlockClient) UpdateOne(_m *CompletionBlock) *CompletionBlockUpdateOne {
	mutation := newCompletionBlockMutation(c.config, OpUpdateOne, withCompletionBlock(_m))
	return &CompletionBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompletionBlockClient) UpdateOneID(id string) *CompletionBlockUpdateOne {
	mutation := newCompletionBlockMutation(c.config, OpUpdateOne, withCompletionBlockID(id))
	return &CompletionBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompletionBlock.
func (c *CompletionBlockClient) Delete() *CompletionBlockDelete {
	mutation := newCompletionBlockMutation(c.config, OpDelete)
	return &CompletionBlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompletionBlockClient) DeleteOne(_m *CompletionBlock) *CompletionBlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompletionBlockClient) DeleteOneID(id string) *CompletionBlockDeleteOne {
	builder := c.Delete().Where(completionblock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompletionBlockDeleteOne{builder}
}

// Query returns a query builder for CompletionBlock.
func (c *CompletionBlockClient) Query() *CompletionBlockQuery {
	return &CompletionBlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompletionBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a CompletionBlock entity by its id.
func (c *CompletionBlockClient) Get(ctx context.Context, id string) (*CompletionBlock, error) {
	return c.Query().Where(completionblock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompletionBlockClient) GetX(ctx context.Context, id string) *CompletionBlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a CompletionBlock.
func (c *CompletionBlockClient) QueryParent(_m *CompletionBlock) *CompletionQuery {
	query := (&CompletionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completionblock.Table, completionblock.FieldID, id),
			sqlgraph.To(completion.Table, completion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, completionblock.ParentTable, completionblock.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPlanDecision queries the plan_decision edge of a CompletionBlock.
func (c *CompletionBlockClient) QueryPlanDecision(_m *CompletionBlock) *PlanDecisionQuery {
	query := (&PlanDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completionblock.Table, completionblock.FieldID, id),
			sqlgraph.To(plandecision.Table, plandecision.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, completionblock.PlanDecisionTable, completionblock.PlanDecisionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolExecution queries the tool_execution edge of a CompletionBlock.
func (c *CompletionBlockClient) QueryToolExecution(_m *CompletionBlock) *ToolExecutionQuery {
	query := (&ToolExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(completionblock.Table, completionblock.FieldID, id),
			sqlgraph.To(toolexecution.Table, toolexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, completionblock.ToolExecutionTable, completionblock.ToolExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompletionBlockClient) Hooks() []Hook {
	return c.hooks.CompletionBlock
}

// Interceptors returns the client interceptors.
func (c *CompletionBlockClient) Interceptors() []Interceptor {
	return c.inters.CompletionBlock
}

func (c *CompletionBlockClient) mutate(ctx context.Context, m *CompletionBlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompletionBlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompletionBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompletionBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompletionBlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompletionBlock mutation op: %q", m.Op())
	}
}

// ContextSnapshotClient is a client for the ContextSnapshot schema.
type ContextSnapshotClient struct {
	config
}

// NewContextSnapshotClient returns a client for the ContextSnapshot from the given config.
func NewContextSnapshotClient(c config) *ContextSnapshotClient {
	return &ContextSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contextsnapshot.Hooks(f(g(h())))`.
func (c *ContextSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ContextSnapshot = append(c.hooks.ContextSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contextsnapshot.Intercept(f(g(h())))`.
func (c *ContextSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextSnapshot = append(c.inters.ContextSnapshot, interceptors...)
}

// Create returns a builder for creating a ContextSnapshot entity.
func (c *ContextSnapshotClient) Create() *ContextSnapshotCreate {
	mutation := newContextSnapshotMutation(c.config, OpCreate)
	return &ContextSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextSnapshot entities.
func (c *ContextSnapshotClient) CreateBulk(builders ...*ContextSnapshotCreate) *ContextSnapshotCreateBulk {
	return &ContextSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextSnapshotClient) MapCreateBulk(slice any, setFunc func(*ContextSnapshotCreate, int)) *ContextSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextSnapshotCreateBulk{err: fmt.Errorf("calling to ContextSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextSnapshot.
func (c *ContextSnapshotClient) Update() *ContextSnapshotUpdate {
	mutation := newContextSnapshotMutation(c.config, OpUpdate)
	return &ContextSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextSnapshotClient) UpdateOne(_m *ContextSnapshot) *ContextSnapshotUpdateOne {
	mutation := newContextSnapshotMutation(c.config, OpUpdateOne, withContextSnapshot(_m))
	return &ContextSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextSnapshotClient) UpdateOneID(id string) *ContextSnapshotUpdateOne {
	mutation := newContextSnapshotMutation(c.config, OpUpdateOne, withContextSnapshotID(id))
	return &ContextSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextSnapshot.
func (c *ContextSnapshotClient) Delete() *ContextSnapshotDelete {
	mutation := newContextSnapshotMutation(c.config, OpDelete)
	return &ContextSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextSnapshotClient) DeleteOne(_m *ContextSnapshot) *ContextSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextSnapshotClient) DeleteOneID(id string) *ContextSnapshotDeleteOne {
	builder := c.Delete().Where(contextsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextSnapshotDeleteOne{builder}
}

// Query returns a query builder for ContextSnapshot.
func (c *ContextSnapshotClient) Query() *ContextSnapshotQuery {
	return &ContextSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextSnapshot entity by its id.
func (c *ContextSnapshotClient) Get(ctx context.Context, id string) (*ContextSnapshot, error) {
	return c.Query().Where(contextsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextSnapshotClient) GetX(ctx context.Context, id string) *ContextSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a ContextSnapshot.
func (c *ContextSnapshotClient) QueryExecution(_m *ContextSnapshot) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contextsnapshot.Table, contextsnapshot.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contextsnapshot.ExecutionTable, contextsnapshot.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContextSnapshotClient) Hooks() []Hook {
	return c.hooks.ContextSnapshot
}

// Interceptors returns the client interceptors.
func (c *ContextSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ContextSnapshot
}

func (c *ContextSnapshotClient) mutate(ctx context.Context, m *ContextSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContextSnapshot mutation op: %q", m.Op())
	}
}

// DataQueryClient is a client for the DataQuery schema.
type DataQueryClient struct {
	config
}

// NewDataQueryClient returns a client for the DataQuery from the given config.
func NewDataQueryClient(c config) *DataQueryClient {
	return &DataQueryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dataquery.Hooks(f(g(h())))`.
func (c *DataQueryClient) Use(hooks ...Hook) {
	c.hooks.DataQuery = append(c.hooks.DataQuery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dataquery.Intercept(f(g(h())))`.
func (c *DataQueryClient) Intercept(interceptors ...Interceptor) {
	c.inters.DataQuery = append(c.inters.DataQuery, interceptors...)
}

// Create returns a builder for creating a DataQuery entity.
func (c *DataQueryClient) Create() *DataQueryCreate {
	mutation := newDataQueryMutation(c.config, OpCreate)
	return &DataQueryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DataQuery entities.
func (c *DataQueryClient) CreateBulk(builders ...*DataQueryCreate) *DataQueryCreateBulk {
	return &DataQueryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataQueryClient) MapCreateBulk(slice any, setFunc func(*DataQueryCreate, int)) *DataQueryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataQueryCreateBulk{err: fmt.Errorf("calling to DataQueryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataQueryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataQueryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DataQuery.
func (c *DataQueryClient) Update() *DataQueryUpdate {
	mutation := newDataQueryMutation(c.config, OpUpdate)
	return &DataQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataQueryClient) UpdateOne(_m *DataQuery) *DataQueryUpdateOne {
	mutation := newDataQueryMutation(c.config, OpUpdateOne, withDataQuery(_m))
	return &DataQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataQueryClient) UpdateOneID(id string) *DataQueryUpdateOne {
	mutation := newDataQueryMutation(c.config, OpUpdateOne, withDataQueryID(id))
	return &DataQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DataQuery.
func (c *DataQueryClient) Delete() *DataQueryDelete {
	mutation := newDataQueryMutation(c.config, OpDelete)
	return &DataQueryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataQueryClient) DeleteOne(_m *DataQuery) *DataQueryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataQueryClient) DeleteOneID(id string) *DataQueryDeleteOne {
	builder := c.Delete().Where(dataquery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataQueryDeleteOne{builder}
}

// Query returns a query builder for DataQuery.
func (c *DataQueryClient) Query() *DataQueryQuery {
	return &DataQueryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataQuery},
		inters: c.Interceptors(),
	}
}

// Get returns a DataQuery entity by its id.
func (c *DataQueryClient) Get(ctx context.Context, id string) (*DataQuery, error) {
	return c.Query().Where(dataquery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataQueryClient) GetX(ctx context.Context, id string) *DataQuery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a DataQuery.
func (c *DataQueryClient) QueryReport(_m *DataQuery) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dataquery.Table, dataquery.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataquery.ReportTable, dataquery.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DataQueryClient) Hooks() []Hook {
	return c.hooks.DataQuery
}

// Interceptors returns the client interceptors.
func (c *DataQueryClient) Interceptors() []Interceptor {
	return c.inters.DataQuery
}

func (c *DataQueryClient) mutate(ctx context.Context, m *DataQueryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataQueryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataQueryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataQueryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataQueryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DataQuery mutation op: %q", m.Op())
	}
}

// DataSourceClient is a client for the DataSource schema.
type DataSourceClient struct {
	config
}

// NewDataSourceClient returns a client for the DataSource from the given config.
func NewDataSourceClient(c config) *DataSourceClient {
	return &DataSourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `datasource.Hooks(f(g(h())))`.
func (c *DataSourceClient) Use(hooks ...Hook) {
	c.hooks.DataSource = append(c.hooks.DataSource, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `datasource.Intercept(f(g(h())))`.
func (c *DataSourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.DataSource = append(c.inters.DataSource, interceptors...)
}

// Create returns a builder for creating a DataSource entity.
func (c *DataSourceClient) Create() *DataSourceCreate {
	mutation := newDataSourceMutation(c.config, OpCreate)
	return &DataSourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DataSource entities.
func (c *DataSourceClient) CreateBulk(builders ...*DataSourceCreate) *DataSourceCreateBulk {
	return &DataSourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataSourceClient) MapCreateBulk(slice any, setFunc func(*DataSourceCreate, int)) *DataSourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataSourceCreateBulk{err: fmt.Errorf("calling to DataSourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataSourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataSourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DataSource.
func (c *DataSourceClient) Update() *DataSourceUpdate {
	mutation := newDataSourceMutation(c.config, OpUpdate)
	return &DataSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataSourceClient) UpdateOne(_m *DataSource) *DataSourceUpdateOne {
	mutation := newDataSourceMutation(c.config, OpUpdateOne, withDataSource(_m))
	return &DataSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataSourceClient) UpdateOneID(id string) *DataSourceUpdateOne {
	mutation := newDataSourceMutation(c.config, OpUpdateOne, withDataSourceID(id))
	return &DataSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DataSource.
func (c *DataSourceClient) Delete() *DataSourceDelete {
	mutation := newDataSourceMutation(c.config, OpDelete)
	return &DataSourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataSourceClient) DeleteOne(_m *DataSource) *DataSourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataSourceClient) DeleteOneID(id string) *DataSourceDeleteOne {
	builder := c.Delete().Where(datasource.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataSourceDeleteOne{builder}
}

// Query returns a query builder for DataSource.
func (c *DataSourceClient) Query() *DataSourceQuery {
	return &DataSourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataSource},
		inters: c.Interceptors(),
	}
}

// Get returns a DataSource entity by its id.
func (c *DataSourceClient) Get(ctx context.Context, id string) (*DataSource, error) {
	return c.Query().Where(datasource.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataSourceClient) GetX(ctx context.Context, id string) *DataSource {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a DataSource.
func (c *DataSourceClient) QueryReport(_m *DataSource) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(datasource.Table, datasource.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datasource.ReportTable, datasource.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DataSourceClient) Hooks() []Hook {
	return c.hooks.DataSource
}

// Interceptors returns the client interceptors.
func (c *DataSourceClient) Interceptors() []Interceptor {
	return c.inters.DataSource
}

func (c *DataSourceClient) mutate(ctx context.Context, m *DataSourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataSourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataSourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DataSource mutation op: %q", m.Op())
	}
}

// InstructionClient is a client for the Instruction schema.
type InstructionClient struct {
	config
}

// NewInstructionClient returns a client for the Instruction from the given config.
func NewInstructionClient(c config) *InstructionClient {
	return &InstructionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `instruction.Hooks(f(g(h())))`.
func (c *InstructionClient) Use(hooks ...Hook) {
	c.hooks.Instruction = append(c.hooks.Instruction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `instruction.Intercept(f(g(h())))`.
func (c *InstructionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Instruction = append(c.inters.Instruction, interceptors...)
}

// Create returns a builder for creating a Instruction entity.
func (c *InstructionClient) Create() *InstructionCreate {
	mutation := newInstructionMutation(c.config, OpCreate)
	return &InstructionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Instruction entities.
func (c *InstructionClient) CreateBulk(builders ...*InstructionCreate) *InstructionCreateBulk {
	return &InstructionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstructionClient) MapCreateBulk(slice any, setFunc func(*InstructionCreate, int)) *InstructionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstructionCreateBulk{err: fmt.Errorf("calling to InstructionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstructionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstructionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Instruction.
func (c *InstructionClient) Update() *InstructionUpdate {
	mutation := newInstructionMutation(c.config, OpUpdate)
	return &InstructionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstructionClient) UpdateOne(_m *Instruction) *InstructionUpdateOne {
	mutation := newInstructionMutation(c.config, OpUpdateOne, withInstruction(_m))
	return &InstructionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstructionClient) UpdateOneID(id string) *InstructionUpdateOne {
	mutation := newInstructionMutation(c.config, OpUpdateOne, withInstructionID(id))
	return &InstructionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Instruction.
func (c *InstructionClient) Delete() *InstructionDelete {
	mutation := newInstructionMutation(c.config, OpDelete)
	return &InstructionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstructionClient) DeleteOne(_m *Instruction) *InstructionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstructionClient) DeleteOneID(id string) *InstructionDeleteOne {
	builder := c.Delete().Where(instruction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstructionDeleteOne{builder}
}

// Query returns a query builder for Instruction.
func (c *InstructionClient) Query() *InstructionQuery {
	return &InstructionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstruction},
		inters: c.Interceptors(),
	}
}

// Get returns a Instruction entity by its id.
func (c *InstructionClient) Get(ctx context.Context, id string) (*Instruction, error) {
	return c.Query().Where(instruction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstructionClient) GetX(ctx context.Context, id string) *Instruction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Instruction.
func (c *InstructionClient) QueryReport(_m *Instruction) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(instruction.Table, instruction.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, instruction.ReportTable, instruction.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InstructionClient) Hooks() []Hook {
	return c.hooks.Instruction
}

// Interceptors returns the client interceptors.
func (c *InstructionClient) Interceptors() []Interceptor {
	return c.inters.Instruction
}

func (c *InstructionClient) mutate(ctx context.Context, m *InstructionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstructionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstructionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstructionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstructionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Instruction mutation op: %q", m.Op())
	}
}

// PlanDecisionClient is a client for the PlanDecision schema.
type PlanDecisionClient struct {
	config
}

// NewPlanDecisionClient returns a client for the PlanDecision from the given config.
func NewPlanDecisionClient(c config) *PlanDecisionClient {
	return &PlanDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plandecision.Hooks(f(g(h())))`.
func (c *PlanDecisionClient) Use(hooks ...Hook) {
	c.hooks.PlanDecision = append(c.hooks.PlanDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plandecision.Intercept(f(g(h())))`.
func (c *PlanDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlanDecision = append(c.inters.PlanDecision, interceptors...)
}

// Create returns a builder for creating a PlanDecision entity.
func (c *PlanDecisionClient) Create() *PlanDecisionCreate {
	mutation := newPlanDecisionMutation(c.config, OpCreate)
	return &PlanDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlanDecision entities.
func (c *PlanDecisionClient) CreateBulk(builders ...*PlanDecisionCreate) *PlanDecisionCreateBulk {
	return &PlanDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanDecisionClient) MapCreateBulk(slice any, setFunc func(*PlanDecisionCreate, int)) *PlanDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanDecisionCreateBulk{err: fmt.Errorf("calling to PlanDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlanDecision.
func (c *PlanDecisionClient) Update() *PlanDecisionUpdate {
	mutation := newPlanDecisionMutation(c.config, OpUpdate)
	return &PlanDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanDecisionClient) UpdateOne(_m *PlanDecision) *PlanDecisionUpdateOne {
	mutation := newPlanDecisionMutation(c.config, OpUpdateOne, withPlanDecision(_m))
	return &PlanDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanDecisionClient) UpdateOneID(id string) *PlanDecisionUpdateOne {
	mutation := newPlanDecisionMutation(c.config, OpUpdateOne, withPlanDecisionID(id))
	return &PlanDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlanDecision.
func (c *PlanDecisionClient) Delete() *PlanDecisionDelete {
	mutation := newPlanDecisionMutation(c.config, OpDelete)
	return &PlanDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanDecisionClient) DeleteOne(_m *PlanDecision) *PlanDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanDecisionClient) DeleteOneID(id string) *PlanDecisionDeleteOne {
	builder := c.Delete().Where(plandecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanDecisionDeleteOne{builder}
}

// Query returns a query builder for PlanDecision.
func (c *PlanDecisionClient) Query() *PlanDecisionQuery {
	return &PlanDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlanDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a PlanDecision entity by its id.
func (c *PlanDecisionClient) Get(ctx context.Context, id string) (*PlanDecision, error) {
	return c.Query().Where(plandecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanDecisionClient) GetX(ctx context.Context, id string) *PlanDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a PlanDecision.
func (c *PlanDecisionClient) QueryExecution(_m *PlanDecision) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plandecision.Table, plandecision.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, plandecision.ExecutionTable, plandecision.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlock queries the block edge of a PlanDecision.
func (c *PlanDecisionClient) QueryBlock(_m *PlanDecision) *CompletionBlockQuery {
	query := (&CompletionBlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plandecision.Table, plandecision.FieldID, id),
			sqlgraph.To(completionblock.Table, completionblock.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, plandecision.BlockTable, plandecision.BlockColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryToolExecutions queries the tool_executions edge of a PlanDecision.
func (c *PlanDecisionClient) QueryToolExecutions(_m *PlanDecision) *ToolExecutionQuery {
	query := (&ToolExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plandecision.Table, plandecision.FieldID, id),
			sqlgraph.To(toolexecution.Table, toolexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, plandecision.ToolExecutionsTable, plandecision.ToolExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlanDecisionClient) Hooks() []Hook {
	return c.hooks.PlanDecision
}

// Interceptors returns the client interceptors.
func (c *PlanDecisionClient) Interceptors() []Interceptor {
	return c.inters.PlanDecision
}

func (c *PlanDecisionClient) mutate(ctx context.Context, m *PlanDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlanDecision mutation op: %q", m.Op())
	}
}

// ReportClient is a client for the Report schema.
type ReportClient struct {
	config
}

// NewReportClient returns a client for the Report from the given config.
func NewReportClient(c config) *ReportClient {
	return &ReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `report.Hooks(f(g(h())))`.
func (c *ReportClient) Use(hooks ...Hook) {
	c.hooks.Report = append(c.hooks.Report, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `report.Intercept(f(g(h())))`.
func (c *ReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Report = append(c.inters.Report, interceptors...)
}

// Create returns a builder for creating a Report entity.
func (c *ReportClient) Create() *ReportCreate {
	mutation := newReportMutation(c.config, OpCreate)
	return &ReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Report entities.
func (c *ReportClient) CreateBulk(builders ...*ReportCreate) *ReportCreateBulk {
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportClient) MapCreateBulk(slice any, setFunc func(*ReportCreate, int)) *ReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportCreateBulk{err: fmt.Errorf("calling to ReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Report.
func (c *ReportClient) Update() *ReportUpdate {
	mutation := newReportMutation(c.config, OpUpdate)
	return &ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportClient) UpdateOne(_m *Report) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReport(_m))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportClient) UpdateOneID(id string) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReportID(id))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Report.
func (c *ReportClient) Delete() *ReportDelete {
	mutation := newReportMutation(c.config, OpDelete)
	return &ReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportClient) DeleteOne(_m *Report) *ReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportClient) DeleteOneID(id string) *ReportDeleteOne {
	builder := c.Delete().Where(report.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportDeleteOne{builder}
}

// Query returns a query builder for Report.
func (c *ReportClient) Query() *ReportQuery {
	return &ReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReport},
		inters: c.Interceptors(),
	}
}

// Get returns a Report entity by its id.
func (c *ReportClient) Get(ctx context.Context, id string) (*Report, error) {
	return c.Query().Where(report.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportClient) GetX(ctx context.Context, id string) *Report {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompletions queries the completions edge of a Report.
func (c *ReportClient) QueryCompletions(_m *Report) *CompletionQuery {
	query := (&CompletionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(completion.Table, completion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.CompletionsTable, report.CompletionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDataSources queries the data_sources edge of a Report.
func (c *ReportClient) QueryDataSources(_m *Report) *DataSourceQuery {
	query := (&DataSourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(datasource.Table, datasource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.DataSourcesTable, report.DataSourcesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInstructions queries the instructions edge of a Report.
func (c *ReportClient) QueryInstructions(_m *Report) *InstructionQuery {
	query := (&InstructionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(instruction.Table, instruction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.InstructionsTable, report.InstructionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWidgets queries the widgets edge of a Report.
func (c *ReportClient) QueryWidgets(_m *Report) *WidgetQuery {
	query := (&WidgetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(widget.Table, widget.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.WidgetsTable, report.WidgetsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQueries queries the queries edge of a Report.
func (c *ReportClient) QueryQueries(_m *Report) *DataQueryQuery {
	query := (&DataQueryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(dataquery.Table, dataquery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.QueriesTable, report.QueriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportClient) Hooks() []Hook {
	return c.hooks.Report
}

// Interceptors returns the client interceptors.
func (c *ReportClient) Interceptors() []Interceptor {
	return c.inters.Report
}

func (c *ReportClient) mutate(ctx context.Context, m *ReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Report mutation op: %q", m.Op())
	}
}

// StepClient is a client for the Step schema.
type StepClient struct {
	config
}

// NewStepClient returns a client for the Step from the given config.
func NewStepClient(c config) *StepClient {
	return &StepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `step.Hooks(f(g(h())))`.
func (c *StepClient) Use(hooks ...Hook) {
	c.hooks.Step = append(c.hooks.Step, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `step.Intercept(f(g(h())))`.
func (c *StepClient) Intercept(interceptors ...Interceptor) {
	c.inters.Step = append(c.inters.Step, interceptors...)
}

// Create returns a builder for creating a Step entity.
func (c *StepClient) Create() *StepCreate {
	mutation := newStepMutation(c.config, OpCreate)
	return &StepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Step entities.
func (c *StepClient) CreateBulk(builders ...*StepCreate) *StepCreateBulk {
	return &StepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepClient) MapCreateBulk(slice any, setFunc func(*StepCreate, int)) *StepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepCreateBulk{err: fmt.Errorf("calling to StepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Step.
func (c *StepClient) Update() *StepUpdate {
	mutation := newStepMutation(c.config, OpUpdate)
	return &StepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepClient) UpdateOne(_m *Step) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStep(_m))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepClient) UpdateOneID(id string) *StepUpdateOne {
	mutation := newStepMutation(c.config, OpUpdateOne, withStepID(id))
	return &StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Step.
func (c *StepClient) Delete() *StepDelete {
	mutation := newStepMutation(c.config, OpDelete)
	return &StepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepClient) DeleteOne(_m *Step) *StepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepClient) DeleteOneID(id string) *StepDeleteOne {
	builder := c.Delete().Where(step.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepDeleteOne{builder}
}

// Query returns a query builder for Step.
func (c *StepClient) Query() *StepQuery {
	return &StepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStep},
		inters: c.Interceptors(),
	}
}

// Get returns a Step entity by its id.
func (c *StepClient) Get(ctx context.Context, id string) (*Step, error) {
	return c.Query().Where(step.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepClient) GetX(ctx context.Context, id string) *Step {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWidget queries the widget edge of a Step.
func (c *StepClient) QueryWidget(_m *Step) *WidgetQuery {
	query := (&WidgetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(step.Table, step.FieldID, id),
			sqlgraph.To(widget.Table, widget.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, step.WidgetTable, step.WidgetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVisualizations queries the visualizations edge of a Step.
func (c *StepClient) QueryVisualizations(_m *Step) *VisualizationQuery {
	query := (&VisualizationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(step.Table, step.FieldID, id),
			sqlgraph.To(visualization.Table, visualization.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, step.VisualizationsTable, step.VisualizationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepClient) Hooks() []Hook {
	return c.hooks.Step
}

// Interceptors returns the client interceptors.
func (c *StepClient) Interceptors() []Interceptor {
	return c.inters.Step
}

func (c *StepClient) mutate(ctx context.Context, m *StepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Step mutation op: %q", m.Op())
	}
}

// ToolExecutionClient is a client for the ToolExecution schema.
type ToolExecutionClient struct {
	config
}

// NewToolExecutionClient returns a client for the ToolExecution from the given config.
func NewToolExecutionClient(c config) *ToolExecutionClient {
	return &ToolExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolexecution.Hooks(f(g(h())))`.
func (c *ToolExecutionClient) Use(hooks ...Hook) {
	c.hooks.ToolExecution = append(c.hooks.ToolExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolexecution.Intercept(f(g(h())))`.
func (c *ToolExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolExecution = append(c.inters.ToolExecution, interceptors...)
}

// Create returns a builder for creating a ToolExecution entity.
func (c *ToolExecutionClient) Create() *ToolExecutionCreate {
	mutation := newToolExecutionMutation(c.config, OpCreate)
	return &ToolExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolExecution entities.
func (c *ToolExecutionClient) CreateBulk(builders ...*ToolExecutionCreate) *ToolExecutionCreateBulk {
	return &ToolExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolExecutionClient) MapCreateBulk(slice any, setFunc func(*ToolExecutionCreate, int)) *ToolExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolExecutionCreateBulk{err: fmt.Errorf("calling to ToolExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolExecution.
func (c *ToolExecutionClient) Update() *ToolExecutionUpdate {
	mutation := newToolExecutionMutation(c.config, OpUpdate)
	return &ToolExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolExecutionClient) UpdateOne(_m *ToolExecution) *ToolExecutionUpdateOne {
	mutation := newToolExecutionMutation(c.config, OpUpdateOne, withToolExecution(_m))
	return &ToolExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolExecutionClient) UpdateOneID(id string) *ToolExecutionUpdateOne {
	mutation := newToolExecutionMutation(c.config, OpUpdateOne, withToolExecutionID(id))
	return &ToolExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolExecution.
func (c *ToolExecutionClient) Delete() *ToolExecutionDelete {
	mutation := newToolExecutionMutation(c.config, OpDelete)
	return &ToolExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolExecutionClient) DeleteOne(_m *ToolExecution) *ToolExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolExecutionClient) DeleteOneID(id string) *ToolExecutionDeleteOne {
	builder := c.Delete().Where(toolexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolExecutionDeleteOne{builder}
}

// Query returns a query builder for ToolExecution.
func (c *ToolExecutionClient) Query() *ToolExecutionQuery {
	return &ToolExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolExecution entity by its id.
func (c *ToolExecutionClient) Get(ctx context.Context, id string) (*ToolExecution, error) {
	return c.Query().Where(toolexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolExecutionClient) GetX(ctx context.Context, id string) *ToolExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDecision queries the decision edge of a ToolExecution.
func (c *ToolExecutionClient) QueryDecision(_m *ToolExecution) *PlanDecisionQuery {
	query := (&PlanDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecution.Table, toolexecution.FieldID, id),
			sqlgraph.To(plandecision.Table, plandecision.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolexecution.DecisionTable, toolexecution.DecisionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecution queries the execution edge of a ToolExecution.
func (c *ToolExecutionClient) QueryExecution(_m *ToolExecution) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecution.Table, toolexecution.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolexecution.ExecutionTable, toolexecution.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlock queries the block edge of a ToolExecution.
func (c *ToolExecutionClient) QueryBlock(_m *ToolExecution) *CompletionBlockQuery {
	query := (&CompletionBlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecution.Table, toolexecution.FieldID, id),
			sqlgraph.To(completionblock.Table, completionblock.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, toolexecution.BlockTable, toolexecution.BlockColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolExecutionClient) Hooks() []Hook {
	return c.hooks.ToolExecution
}

// Interceptors returns the client interceptors.
func (c *ToolExecutionClient) Interceptors() []Interceptor {
	return c.inters.ToolExecution
}

func (c *ToolExecutionClient) mutate(ctx context.Context, m *ToolExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolExecution mutation op: %q", m.Op())
	}
}

// VisualizationClient is a client for the Visualization schema.
type VisualizationClient struct {
	config
}

// NewVisualizationClient returns a client for the Visualization from the given config.
func NewVisualizationClient(c config) *VisualizationClient {
	return &VisualizationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `visualization.Hooks(f(g(h())))`.
func (c *VisualizationClient) Use(hooks ...Hook) {
	c.hooks.Visualization = append(c.hooks.Visualization, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `visualization.Intercept(f(g(h())))`.
func (c *VisualizationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Visualization = append(c.inters.Visualization, interceptors...)
}

// Create returns a builder for creating a Visualization entity.
func (c *VisualizationClient) Create() *VisualizationCreate {
	mutation := newVisualizationMutation(c.config, OpCreate)
	return &VisualizationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Visualization entities.
func (c *VisualizationClient) CreateBulk(builders ...*VisualizationCreate) *VisualizationCreateBulk {
	return &VisualizationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VisualizationClient) MapCreateBulk(slice any, setFunc func(*VisualizationCreate, int)) *VisualizationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VisualizationCreateBulk{err: fmt.Errorf("calling to VisualizationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VisualizationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VisualizationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Visualization.
func (c *VisualizationClient) Update() *VisualizationUpdate {
	mutation := newVisualizationMutation(c.config, OpUpdate)
	return &VisualizationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VisualizationClient) UpdateOne(_m *Visualization) *VisualizationUpdateOne {
	mutation := newVisualizationMutation(c.config, OpUpdateOne, withVisualization(_m))
	return &VisualizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VisualizationClient) UpdateOneID(id string) *VisualizationUpdateOne {
	mutation := newVisualizationMutation(c.config, OpUpdateOne, withVisualizationID(id))
	return &VisualizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Visualization.
func (c *VisualizationClient) Delete() *VisualizationDelete {
	mutation := newVisualizationMutation(c.config, OpDelete)
	return &VisualizationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VisualizationClient) DeleteOne(_m *Visualization) *VisualizationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VisualizationClient) DeleteOneID(id string) *VisualizationDeleteOne {
	builder := c.Delete().Where(visualization.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VisualizationDeleteOne{builder}
}

// Query returns a query builder for Visualization.
func (c *VisualizationClient) Query() *VisualizationQuery {
	return &VisualizationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVisualization},
		inters: c.Interceptors(),
	}
}

// Get returns a Visualization entity by its id.
func (c *VisualizationClient) Get(ctx context.Context, id string) (*Visualization, error) {
	return c.Query().Where(visualization.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VisualizationClient) GetX(ctx context.Context, id string) *Visualization {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStep queries the step edge of a Visualization.
func (c *VisualizationClient) QueryStep(_m *Visualization) *StepQuery {
	query := (&StepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(visualization.Table, visualization.FieldID, id),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, visualization.StepTable, visualization.StepColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VisualizationClient) Hooks() []Hook {
	return c.hooks.Visualization
}

// Interceptors returns the client interceptors.
func (c *VisualizationClient) Interceptors() []Interceptor {
	return c.inters.Visualization
}

func (c *VisualizationClient) mutate(ctx context.Context, m *VisualizationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VisualizationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VisualizationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VisualizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VisualizationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Visualization mutation op: %q", m.Op())
	}
}

// WidgetClient is a client for the Widget schema.
type WidgetClient struct {
	config
}

// NewWidgetClient returns a client for the Widget from the given config.
func NewWidgetClient(c config) *WidgetClient {
	return &WidgetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `widget.Hooks(f(g(h())))`.
func (c *WidgetClient) Use(hooks ...Hook) {
	c.hooks.Widget = append(c.hooks.Widget, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `widget.Intercept(f(g(h())))`.
func (c *WidgetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Widget = append(c.inters.Widget, interceptors...)
}

// Create returns a builder for creating a Widget entity.
func (c *WidgetClient) Create() *WidgetCreate {
	mutation := newWidgetMutation(c.config, OpCreate)
	return &WidgetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Widget entities.
func (c *WidgetClient) CreateBulk(builders ...*WidgetCreate) *WidgetCreateBulk {
	return &WidgetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WidgetClient) MapCreateBulk(slice any, setFunc func(*WidgetCreate, int)) *WidgetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WidgetCreateBulk{err: fmt.Errorf("calling to WidgetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WidgetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WidgetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Widget.
func (c *WidgetClient) Update() *WidgetUpdate {
	mutation := newWidgetMutation(c.config, OpUpdate)
	return &WidgetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WidgetClient) UpdateOne(_m *Widget) *WidgetUpdateOne {
	mutation := newWidgetMutation(c.config, OpUpdateOne, withWidget(_m))
	return &WidgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WidgetClient) UpdateOneID(id string) *WidgetUpdateOne {
	mutation := newWidgetMutation(c.config, OpUpdateOne, withWidgetID(id))
	return &WidgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Widget.
func (c *WidgetClient) Delete() *WidgetDelete {
	mutation := newWidgetMutation(c.config, OpDelete)
	return &WidgetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WidgetClient) DeleteOne(_m *Widget) *WidgetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WidgetClient) DeleteOneID(id string) *WidgetDeleteOne {
	builder := c.Delete().Where(widget.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WidgetDeleteOne{builder}
}

// Query returns a query builder for Widget.
func (c *WidgetClient) Query() *WidgetQuery {
	return &WidgetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWidget},
		inters: c.Interceptors(),
	}
}

// Get returns a Widget entity by its id.
func (c *WidgetClient) Get(ctx context.Context, id string) (*Widget, error) {
	return c.Query().Where(widget.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WidgetClient) GetX(ctx context.Context, id string) *Widget {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Widget.
func (c *WidgetClient) QueryReport(_m *Widget) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(widget.Table, widget.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, widget.ReportTable, widget.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a Widget.
func (c *WidgetClient) QuerySteps(_m *Widget) *StepQuery {
	query := (&StepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(widget.Table, widget.FieldID, id),
			sqlgraph.To(step.Table, step.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, widget.StepsTable, widget.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WidgetClient) Hooks() []Hook {
	return c.hooks.Widget
}

// Interceptors returns the client interceptors.
func (c *WidgetClient) Interceptors() []Interceptor {
	return c.inters.Widget
}

func (c *WidgetClient) mutate(ctx context.Context, m *WidgetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WidgetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WidgetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WidgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WidgetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Widget mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentExecution, Completion, CompletionBlock, ContextSnapshot, DataQuery,
		DataSource, Instruction, PlanDecision, Report, Step, ToolExecution,
		Visualization, Widget []ent.Hook
	}
	inters struct {
		AgentExecution, Completion, CompletionBlock, ContextSnapshot, DataQuery,
		DataSource, Instruction, PlanDecision, Report, Step, ToolExecution,
		Visualization, Widget []ent.Interceptor
	}
)
