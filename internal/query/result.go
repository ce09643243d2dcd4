package query

import (
	"fmt"
	"math"

	"github.com/ruheeh/waterchatbot/internal/table"
)

// Result is a handler's tagged outcome: either it matched the question and
// produced an answer, or it abstained and the dispatcher moves on. A
// matched result with a nil table is the "valid question, no data" case
// and still carries an explanation.
type Result struct {
	matched     bool
	explanation string
	table       *table.Table
}

// Matched builds a produced result. tbl may be nil for empty answers.
func Matched(explanation string, tbl *table.Table) Result {
	return Result{matched: true, explanation: explanation, table: tbl}
}

// Abstained signals the handler cannot answer this question. Not an error.
func Abstained() Result { return Result{} }

// Response is what Query returns to the caller: an explanation and an
// optional result table. Query never fails; faults become an explanation.
type Response struct {
	Explanation string
	Table       *table.Table
}

// num2 formats a value with two decimals for explanations.
func num2(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return fmt.Sprintf("%.2f", v)
}

// num1 formats a value with one decimal for explanations.
func num1(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return fmt.Sprintf("%.1f", v)
}
