package model

import (
	"fmt"
	"strings"
)

// LimitExpression is one of the fixed comparison templates the warehouse
// understands. The LOWERBOUND and HIGHERBOUND tokens are substituted with the
// limit's bounds when the expression is rendered.
type LimitExpression string

const (
	LowerBoundLeqXLeqHigherBound    LimitExpression = "LOWERBOUND <= X <= HIGHERBOUND"
	LowerBoundLeXLeqHigherBound     LimitExpression = "LOWERBOUND < X <= HIGHERBOUND"
	LowerBoundLeqXLeHigherBound     LimitExpression = "LOWERBOUND <= X < HIGHERBOUND"
	LowerBoundLeXLeHigherBound      LimitExpression = "LOWERBOUND < X < HIGHERBOUND"
	LowerBoundLeqX                  LimitExpression = "LOWERBOUND <= X"
	LowerBoundLeX                   LimitExpression = "LOWERBOUND < X"
	XLeqHigherBound                 LimitExpression = "X <= HIGHERBOUND"
	XLeHigherBound                  LimitExpression = "X < HIGHERBOUND"
	XEqHigherBound                  LimitExpression = "X == HIGHERBOUND"
	XNeqHigherBound                 LimitExpression = "X != HIGHERBOUND"
	XLeqLowerBoundOrHigherBoundLeqX LimitExpression = "X <= LOWERBOUND OR HIGHERBOUND <= X"
	XLeLowerBoundOrHigherBoundLeqX  LimitExpression = "X < LOWERBOUND or HIGHERBOUND <= X"
	XLeqLowerBoundOrHigherBoundLeX  LimitExpression = "X <= LOWERBOUND or HIGHERBOUND < X"
	XLeLowerBoundOrHigherBoundLeX   LimitExpression = "X < LOWERBOUND or HIGHERBOUND < X"
)

// LimitExpressions lists every template, in the order the warehouse
// documents them.
var LimitExpressions = []LimitExpression{
	LowerBoundLeqXLeqHigherBound,
	LowerBoundLeXLeqHigherBound,
	LowerBoundLeqXLeHigherBound,
	LowerBoundLeXLeHigherBound,
	LowerBoundLeqX,
	LowerBoundLeX,
	XLeqHigherBound,
	XLeHigherBound,
	XEqHigherBound,
	XNeqHigherBound,
	XLeqLowerBoundOrHigherBoundLeqX,
	XLeLowerBoundOrHigherBoundLeqX,
	XLeqLowerBoundOrHigherBoundLeX,
	XLeLowerBoundOrHigherBoundLeX,
}

// ParseLimitExpression matches a scenario token against the fixed templates.
func ParseLimitExpression(s string) (LimitExpression, error) {
	for _, expr := range LimitExpressions {
		if s == string(expr) {
			return expr, nil
		}
	}
	return "", fmt.Errorf("unknown limit expression %q", s)
}

// Limit is the boundary information attached to a measure. Template choice
// is independent of bound presence: the caller supplies bounds consistent
// with the chosen expression, and rendering substitutes whatever is there.
type Limit struct {
	Expression  LimitExpression
	LowerBound  string
	HigherBound string
}

// NewLimit pairs an expression template with its bounds.
func NewLimit(expr LimitExpression, lower, higher string) *Limit {
	return &Limit{Expression: expr, LowerBound: lower, HigherBound: higher}
}

// String renders the expression with the current bounds inserted.
func (l *Limit) String() string {
	s := strings.ReplaceAll(string(l.Expression), "LOWERBOUND", l.LowerBound)
	return strings.ReplaceAll(s, "HIGHERBOUND", l.HigherBound)
}
