// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/ent/predicate"
	"github.com/datalens-ai/datalens/ent/toolexecution"
)

// CompletionBlockQuery is the builder for querying CompletionBlock entities.
type CompletionBlockQuery struct {
	config
	ctx               *QueryContext
	order             []completionblock.OrderOption
	inters            []Interceptor
	predicates        []predicate.CompletionBlock
	withParent        *CompletionQuery
	withPlanDecision  *PlanDecisionQuery
	withToolExecution *ToolExecutionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CompletionBlockQuery builder.
func (_q *CompletionBlockQuery) Where(ps ...predicate.CompletionBlock) *CompletionBlockQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CompletionBlockQuery) Limit(limit int) *CompletionBlockQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CompletionBlockQuery) Offset(offset int) *CompletionBlockQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CompletionBlockQuery) Unique(unique bool) *CompletionBlockQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CompletionBlockQuery) Order(o ...completionblock.OrderOption) *CompletionBlockQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryParent chains the current query on the "parent" edge.
func (_q *CompletionBlockQuery) QueryParent() *CompletionQuery {
	query := (&CompletionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(completionblock.Table, completionblock.FieldID, selector),
			sqlgraph.To(completion.Table, completion.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, completionblock.ParentTable, completionblock.ParentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPlanDecision chains the current query on the "plan_decision" edge.
func (_q *CompletionBlockQuery) QueryPlanDecision() *PlanDecisionQuery {
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
			sqlgraph.From(completionblock.Table, completionblock.FieldID, selector),
			sqlgraph.To(plandecision.Table, plandecision.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, completionblock.PlanDecisionTable, completionblock.PlanDecisionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryToolExecution chains the current query on the "tool_execution" edge.
func (_q *CompletionBlockQuery) QueryToolExecution() *ToolExecutionQuery {
	query := (&ToolExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(completionblock.Table, completionblock.FieldID, selector),
			sqlgraph.To(toolexecution.Table, toolexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, completionblock.ToolExecutionTable, completionblock.ToolExecutionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CompletionBlock entity from the query.
// Returns a *NotFoundError when no CompletionBlock was found.
func (_q *CompletionBlockQuery) First(ctx context.Context) (*CompletionBlock, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{completionblock.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CompletionBlockQuery) FirstX(ctx context.Context) *CompletionBlock {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CompletionBlock ID from the query.
// Returns a *NotFoundError when no CompletionBlock ID was found.
func (_q *CompletionBlockQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{completionblock.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CompletionBlockQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CompletionBlock entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CompletionBlock entity is found.
// Returns a *NotFoundError when no CompletionBlock entities are found.
func (_q *CompletionBlockQuery) Only(ctx context.Context) (*CompletionBlock, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{completionblock.Label}
	default:
		return nil, &NotSingularError{completionblock.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CompletionBlockQuery) OnlyX(ctx context.Context) *CompletionBlock {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CompletionBlock ID in the query.
// Returns a *NotSingularError when more than one CompletionBlock ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CompletionBlockQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{completionblock.Label}
	default:
		err = &NotSingularError{completionblock.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CompletionBlockQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CompletionBlocks.
func (_q *CompletionBlockQuery) All(ctx context.Context) ([]*CompletionBlock, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CompletionBlock, *CompletionBlockQuery]()
	return withInterceptors[[]*CompletionBlock](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CompletionBlockQuery) AllX(ctx context.Context) []*CompletionBlock {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CompletionBlock IDs.
func (_q *CompletionBlockQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(completionblock.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CompletionBlockQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CompletionBlockQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CompletionBlockQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CompletionBlockQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CompletionBlockQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CompletionBlockQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CompletionBlockQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CompletionBlockQuery) Clone() *CompletionBlockQuery {
	if _q == nil {
		return nil
	}
	return &CompletionBlockQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]completionblock.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.CompletionBlock{}, _q.predicates...),
		withParent:        _q.withParent.Clone(),
		withPlanDecision:  _q.withPlanDecision.Clone(),
		withToolExecution: _q.withToolExecution.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithParent tells the query-builder to eager-load the nodes that are connected to
// the "parent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CompletionBlockQuery) WithParent(opts ...func(*CompletionQuery)) *CompletionBlockQuery {
	query := (&CompletionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParent = query
	return _q
}

// WithPlanDecision tells the query-builder to eager-load the nodes that are connected to
// the "plan_decision" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CompletionBlockQuery) WithPlanDecision(opts ...func(*PlanDecisionQuery)) *CompletionBlockQuery {
	query := (&PlanDecisionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPlanDecision = query
	return _q
}

// WithToolExecution tells the query-builder to eager-load the nodes that are connected to
// the "tool_execution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CompletionBlockQuery) WithToolExecution(opts ...func(*ToolExecutionQuery)) *CompletionBlockQuery {
	query := (&ToolExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withToolExecution = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CompletionID string `json:"completion_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CompletionBlock.Query().
//		GroupBy(completionblock.FieldCompletionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CompletionBlockQuery) GroupBy(field string, fields ...string) *CompletionBlockGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CompletionBlockGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = completionblock.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CompletionID string `json:"completion_id,omitempty"`
//	}
//
//	client.CompletionBlock.Query().
//		Select(completionblock.FieldCompletionID).
//		Scan(ctx, &v)
func (_q *CompletionBlockQuery) Select(fields ...string) *CompletionBlockSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CompletionBlockSelect{CompletionBlockQuery: _q}
	sbuild.label = completionblock.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CompletionBlockSelect configured with the given aggregations.
func (_q *CompletionBlockQuery) Aggregate(fns ...AggregateFunc) *CompletionBlockSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CompletionBlockQuery) prepareQuery(ctx context.Context) error {
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
		if !completionblock.ValidColumn(f) {
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

func (_q *CompletionBlockQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CompletionBlock, error) {
	var (
		nodes       = []*CompletionBlock{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withParent != nil,
			_q.withPlanDecision != nil,
			_q.withToolExecution != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CompletionBlock).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CompletionBlock{config: _q.config}
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
	if query := _q.withParent; query != nil {
		if err := _q.loadParent(ctx, query, nodes, nil,
			func(n *CompletionBlock, e *Completion) { n.Edges.Parent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPlanDecision; query != nil {
		if err := _q.loadPlanDecision(ctx, query, nodes, nil,
			func(n *CompletionBlock, e *PlanDecision) { n.Edges.PlanDecision = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withToolExecution; query != nil {
		if err := _q.loadToolExecution(ctx, query, nodes, nil,
			func(n *CompletionBlock, e *ToolExecution) { n.Edges.ToolExecution = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CompletionBlockQuery) loadParent(ctx context.Context, query *CompletionQuery, nodes []*CompletionBlock, init func(*CompletionBlock), assign func(*CompletionBlock, *Completion)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CompletionBlock)
	for i := range nodes {
		fk := nodes[i].CompletionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(completion.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "completion_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CompletionBlockQuery) loadPlanDecision(ctx context.Context, query *PlanDecisionQuery, nodes []*CompletionBlock, init func(*CompletionBlock), assign func(*CompletionBlock, *PlanDecision)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CompletionBlock)
	for i := range nodes {
		if nodes[i].PlanDecisionID == nil {
			continue
		}
		fk := *nodes[i].PlanDecisionID
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
func (_q *CompletionBlockQuery) loadToolExecution(ctx context.Context, query *ToolExecutionQuery, nodes []*CompletionBlock, init func(*CompletionBlock), assign func(*CompletionBlock, *ToolExecution)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CompletionBlock)
	for i := range nodes {
		if nodes[i].ToolExecutionID == nil {
			continue
		}
		fk := *nodes[i].ToolExecutionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(toolexecution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "tool_execution_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CompletionBlockQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CompletionBlockQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(completionblock.Table, completionblock.Columns, sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionblock.FieldID)
		for i := range fields {
			if fields[i] != completionblock.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withParent != nil {
			_spec.Node.AddColumnOnce(completionblock.FieldCompletionID)
		}
		if _q.withPlanDecision != nil {
			_spec.Node.AddColumnOnce(completionblock.FieldPlanDecisionID)
		}
		if _q.withToolExecution != nil {
			_spec.Node.AddColumnOnce(completionblock.FieldToolExecutionID)
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

func (_q *CompletionBlockQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(completionblock.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = completionblock.Columns
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

// CompletionBlockGroupBy is the group-by builder for CompletionBlock entities.
type CompletionBlockGroupBy struct {
	selector
	build *CompletionBlockQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CompletionBlockGroupBy) Aggregate(fns ...AggregateFunc) *CompletionBlockGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CompletionBlockGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CompletionBlockQuery, *CompletionBlockGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CompletionBlockGroupBy) sqlScan(ctx context.Context, root *CompletionBlockQuery, v any) error {
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

// CompletionBlockSelect is the builder for selecting fields of CompletionBlock entities.
type CompletionBlockSelect struct {
	*CompletionBlockQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CompletionBlockSelect) Aggregate(fns ...AggregateFunc) *CompletionBlockSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CompletionBlockSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CompletionBlockQuery, *CompletionBlockSelect](ctx, _s.CompletionBlockQuery, _s, _s.inters, v)
}

func (_s *CompletionBlockSelect) sqlScan(ctx context.Context, root *CompletionBlockQuery, v any) error {
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
