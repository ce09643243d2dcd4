// Package query implements the natural-language query engine: an ordered
// cascade of pattern-matching handlers that turn a free-text question about
// the monitoring snapshot into an explanation plus an optional result
// table. No language model is involved; interpretation is keyword and
// entity matching against the fixed lexicon.
package query

import (
	"fmt"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/table"
)

// Provider supplies the current table snapshot for a query. Each call may
// return a fresh snapshot; the engine never mutates it.
type Provider interface {
	CurrentTable() (*table.Table, error)
}

// handler pairs a cheap trigger predicate with an executor. The executor
// may abstain (required entities missing), produce a result, or fail; a
// failure aborts the cascade and surfaces as an error explanation.
type handler struct {
	name  string
	match func(q string) bool
	run   func(q string, tbl *table.Table) (Result, error)
}

// Engine dispatches questions through the fixed handler cascade. It is
// built once and safe for concurrent use as long as each query gets its
// own snapshot from the provider.
type Engine struct {
	provider Provider
	handlers []handler
}

// New constructs an engine over the given snapshot provider. The handler
// order is fixed: most entity-specific shapes are tried first so that, for
// example, a question containing both "highest" and "correlation" is read
// as a correlation question.
func New(p Provider) *Engine {
	return &Engine{
		provider: p,
		handlers: []handler{
			correlationHandler(),
			comparisonHandler(),
			extremeHandler(),
			aggregationHandler(),
			siteHandler(),
			timeRangeHandler(),
			countHandler(),
			trendHandler(),
			summaryHandler(),
			listHandler(),
		},
	}
}

// Query interprets a question and returns an explanation with an optional
// result table. It never returns an error: snapshot failures, handler
// faults and stray panics all surface as an "Error processing query"
// explanation. A fault in a handler stops the cascade; lower-priority
// handlers are not consulted.
func (e *Engine) Query(question string) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = Response{Explanation: fmt.Sprintf("Error processing query: %v", r)}
		}
	}()

	q := strings.ToLower(strings.TrimSpace(question))
	tbl, err := e.provider.CurrentTable()
	if err != nil {
		return Response{Explanation: fmt.Sprintf("Error processing query: %v", err)}
	}

	for _, h := range e.handlers {
		if !h.match(q) {
			continue
		}
		res, err := h.run(q, tbl)
		if err != nil {
			return Response{Explanation: fmt.Sprintf("Error processing query: %v", err)}
		}
		if res.matched {
			return Response{Explanation: res.explanation, Table: res.table}
		}
	}
	return helpResponse()
}

// containsAny reports whether q contains any of the needles.
func containsAny(q string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(q, n) {
			return true
		}
	}
	return false
}
