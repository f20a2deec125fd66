package database

import (
	"database/sql"
	"strconv"
	"strings"
)

// Conditions collects where-clause fragments and their named arguments for
// list queries with optional filters.
type Conditions struct {
	conditions []string
	args       []interface{}
}

// Add appends a raw condition using the given named arguments.
func (c *Conditions) Add(condition string, args ...sql.NamedArg) {
	c.conditions = append(c.conditions, condition)
	for _, arg := range args {
		c.args = append(c.args, arg)
	}
}

// In restricts column to values. An empty slice adds nothing.
func (c *Conditions) In(column, param string, values []string) {
	c.list(column, param, values, " = ", " or ", "1=0")
}

// NotIn excludes values from column. An empty slice adds nothing.
func (c *Conditions) NotIn(column, param string, values []string) {
	c.list(column, param, values, " <> ", " and ", "1=1")
}

func (c *Conditions) list(column, param string, values []string, op, join, seed string) {
	if len(values) == 0 {
		return
	}

	parts := []string{seed}
	for i, v := range values {
		name := param + strconv.Itoa(i)
		parts = append(parts, column+op+"@"+name)
		c.args = append(c.args, sql.Named(name, v))
	}
	c.conditions = append(c.conditions, "("+strings.Join(parts, join)+")")
}

// Where returns " where a and b ..." or an empty string.
func (c *Conditions) Where() string {
	if len(c.conditions) == 0 {
		return ""
	}
	return " where " + c.And()
}

// And returns the conditions joined with "and", for appending to a query that
// already has a where clause.
func (c *Conditions) And() string {
	return strings.Join(c.conditions, " and ")
}

func (c *Conditions) Len() int {
	return len(c.conditions)
}

func (c *Conditions) Args() []interface{} {
	return c.args
}
