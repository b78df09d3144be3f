// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datalens-ai/datalens/ent/agentexecution"
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/ent/predicate"
	"github.com/datalens-ai/datalens/ent/toolexecution"
)

// ToolExecutionQuery is the builder for querying ToolExecution entities.
type ToolExecutionQuery struct {
	config
	ctx           *QueryContext
	order         []toolexecution.OrderOption
	inters        []Interceptor
	predicates    []predicate.ToolExecution
	withDecision  *PlanDecisionQuery
	withExecution *AgentExecutionQuery
	withBlock     *CompletionBlockQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ToolExecutionQuery builder.
func (_q *ToolExecutionQuery) Where(ps ...predicate.ToolExecution) *ToolExecutionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ToolExecutionQuery) Limit(limit int) *ToolExecutionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ToolExecutionQuery) Offset(offset int) *ToolExecutionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ToolExecutionQuery) Unique(unique bool) *ToolExecutionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ToolExecutionQuery) Order(o ...toolexecution.OrderOption) *ToolExecutionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDecision chains the current query on the "decision" edge.
func (_q *ToolExecutionQuery) QueryDecision() *PlanDecisionQuery {
	query := (&PlanDecisionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecution.Table, toolexecution.FieldID, selector),
			sqlgraph.To(plandecision.Table, plandecision.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolexecution.DecisionTable, toolexecution.DecisionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExecution chains the current query on the "execution" edge.
func (_q *ToolExecutionQuery) QueryExecution() *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecution.Table, toolexecution.FieldID, selector),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolexecution.ExecutionTable, toolexecution.ExecutionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBlock chains the current query on the "block" edge.
func (_q *ToolExecutionQuery) QueryBlock() *CompletionBlockQuery {
	query := (&CompletionBlockClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecution.Table, toolexecution.FieldID, selector),
			sqlgraph.To(completionblock.Table, completionblock.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, toolexecution.BlockTable, toolexecution.BlockColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ToolExecution entity from the query.
// Returns a *NotFoundError when no ToolExecution was found.
func (_q *ToolExecutionQuery) First(ctx context.Context) (*ToolExecution, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{toolexecution.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ToolExecutionQuery) FirstX(ctx context.Context) *ToolExecution {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ToolExecution ID from the query.
// Returns a *NotFoundError when no ToolExecution ID was found.
func (_q *ToolExecutionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{toolexecution.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ToolExecutionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ToolExecution entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ToolExecution entity is found.
// Returns a *NotFoundError when no ToolExecution entities are found.
func (_q *ToolExecutionQuery) Only(ctx context.Context) (*ToolExecution, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{toolexecution.Label}
	default:
		return nil, &NotSingularError{toolexecution.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ToolExecutionQuery) OnlyX(ctx context.Context) *ToolExecution {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ToolExecution ID in the query.
// Returns a *NotSingularError when more than one ToolExecution ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ToolExecutionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{toolexecution.Label}
	default:
		err = &NotSingularError{toolexecution.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ToolExecutionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ToolExecutions.
func (_q *ToolExecutionQuery) All(ctx context.Context) ([]*ToolExecution, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ToolExecution, *ToolExecutionQuery]()
	return withInterceptors[[]*ToolExecution](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ToolExecutionQuery) AllX(ctx context.Context) []*ToolExecution {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ToolExecution IDs.
func (_q *ToolExecutionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(toolexecution.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ToolExecutionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ToolExecutionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ToolExecutionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ToolExecutionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ToolExecutionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ToolExecutionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ToolExecutionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ToolExecutionQuery) Clone() *ToolExecutionQuery {
	if _q == nil {
		return nil
	}
	return &ToolExecutionQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]toolexecution.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.ToolExecution{}, _q.predicates...),
		withDecision:  _q.withDecision.Clone(),
		withExecution: _q.withExecution.Clone(),
		withBlock:     _q.withBlock.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDecision tells the query-builder to eager-load the nodes that are connected to
// the "decision" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ToolExecutionQuery) WithDecision(opts ...func(*PlanDecisionQuery)) *ToolExecutionQuery {
	query := (&PlanDecisionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDecision = query
	return _q
}

// WithExecution tells the query-builder to eager-load the nodes that are connected to
// the "execution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ToolExecutionQuery) WithExecution(opts ...func(*AgentExecutionQuery)) *ToolExecutionQuery {
	query := (&AgentExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExecution = query
	return _q
}

// WithBlock tells the query-builder to eager-load the nodes that are connected to
// the "block" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ToolExecutionQuery) WithBlock(opts ...func(*CompletionBlockQuery)) *ToolExecutionQuery {
	query := (&CompletionBlockClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBlock = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PlanDecisionID string `json:"plan_decision_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ToolExecution.Query().
//		GroupBy(toolexecution.FieldPlanDecisionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ToolExecutionQuery) GroupBy(field string, fields ...string) *ToolExecutionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ToolExecutionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = toolexecution.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PlanDecisionID string `json:"plan_decision_id,omitempty"`
//	}
//
//	client.ToolExecution.Query().
//		Select(toolexecution.FieldPlanDecisionID).
//		Scan(ctx, &v)
func (_q *ToolExecutionQuery) Select(fields ...string) *ToolExecutionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ToolExecutionSelect{ToolExecutionQuery: _q}
	sbuild.label = toolexecution.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ToolExecutionSelect configured with the given aggregations.
func (_q *ToolExecutionQuery) Aggregate(fns ...AggregateFunc) *ToolExecutionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ToolExecutionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !toolexecution.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ToolExecutionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ToolExecution, error) {
	var (
		nodes       = []*ToolExecution{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withDecision != nil,
			_q.withExecution != nil,
			_q.withBlock != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ToolExecution).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ToolExecution{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withDecision; query != nil {
		if err := _q.loadDecision(ctx, query, nodes, nil,
			func(n *ToolExecution, e *PlanDecision) { n.Edges.Decision = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExecution; query != nil {
		if err := _q.loadExecution(ctx, query, nodes, nil,
			func(n *ToolExecution, e *AgentExecution) { n.Edges.Execution = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBlock; query != nil {
		if err := _q.loadBlock(ctx, query, nodes,
			func(n *ToolExecution) { n.Edges.Block = []*CompletionBlock{} },
			func(n *ToolExecution, e *CompletionBlock) { n.Edges.Block = append(n.Edges.Block, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ToolExecutionQuery) loadDecision(ctx context.Context, query *PlanDecisionQuery, nodes []*ToolExecution, init func(*ToolExecution), assign func(*ToolExecution, *PlanDecision)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ToolExecution)
	for i := range nodes {
		fk := nodes[i].PlanDecisionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(plandecision.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "plan_decision_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ToolExecutionQuery) loadExecution(ctx context.Context, query *AgentExecutionQuery, nodes []*ToolExecution, init func(*ToolExecution), assign func(*ToolExecution, *AgentExecution)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ToolExecution)
	for i := range nodes {
		fk := nodes[i].AgentExecutionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agentexecution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_execution_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ToolExecutionQuery) loadBlock(ctx context.Context, query *CompletionBlockQuery, nodes []*ToolExecution, init func(*ToolExecution), assign func(*ToolExecution, *CompletionBlock)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ToolExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(completionblock.FieldToolExecutionID)
	}
	query.Where(predicate.CompletionBlock(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(toolexecution.BlockColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ToolExecutionID
		if fk == nil {
			return fmt.Errorf(`foreign-key "tool_execution_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "tool_execution_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ToolExecutionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ToolExecutionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(toolexecution.Table, toolexecution.Columns, sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolexecution.FieldID)
		for i := range fields {
			if fields[i] != toolexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDecision != nil {
			_spec.Node.AddColumnOnce(toolexecution.FieldPlanDecisionID)
		}
		if _q.withExecution != nil {
			_spec.Node.AddColumnOnce(toolexecution.FieldAgentExecutionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ToolExecutionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(toolexecution.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = toolexecution.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ToolExecutionGroupBy is the group-by builder for ToolExecution entities.
type ToolExecutionGroupBy struct {
	selector
	build *ToolExecutionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ToolExecutionGroupBy) Aggregate(fns ...AggregateFunc) *ToolExecutionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ToolExecutionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ToolExecutionQuery, *ToolExecutionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ToolExecutionGroupBy) sqlScan(ctx context.Context, root *ToolExecutionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ToolExecutionSelect is the builder for selecting fields of ToolExecution entities.
type ToolExecutionSelect struct {
	*ToolExecutionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ToolExecutionSelect) Aggregate(fns ...AggregateFunc) *ToolExecutionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ToolExecutionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ToolExecutionQuery, *ToolExecutionSelect](ctx, _s.ToolExecutionQuery, _s, _s.inters, v)
}

func (_s *ToolExecutionSelect) sqlScan(ctx context.Context, root *ToolExecutionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
