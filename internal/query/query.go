// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package query

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	StepMap      = "map"
	StepFilter   = "filter"
	StepSort     = "sort"
	StepGroup    = "group"
	StepCollapse = "collapse"
	StepJoin     = "join"
	StepPrint    = "print"

	// SkipColumn is the column name that discards its token. YAML nulls skip too.
	SkipColumn = "~"
)

var (
	queryFields = []string{"files", "encoding", "separator", "columns", "steps"}
	groupFields = []string{"by", "fields"}
)

// Query describes a pipeline: the files to read, how to split their lines into records
// and the steps to run on them.
type Query struct {
	Files     []string `json:"files,omitempty" yaml:"files,omitempty"`
	Encoding  string   `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Separator string   `json:"separator,omitempty" yaml:"separator,omitempty"`
	Columns   Columns  `json:"columns" yaml:"columns"`
	Steps     []Step   `json:"steps,omitempty" yaml:"steps,omitempty"`

	// dir is the directory relative file paths are resolved against.
	dir string
}

// UnmarshalYAML decodes a query rejecting unknown fields, nested queries included.
func (q *Query) UnmarshalYAML(value *yaml.Node) error {
	if err := knownFields(value, queryFields); err != nil {
		return err
	}

	type plain Query
	return value.Decode((*plain)(q))
}

// Step is a single pipeline operation. Kind tells which of the other fields is set.
type Step struct {
	Kind     string
	Map      Expressions
	Filter   Filter
	Sort     []string
	Group    Group
	Collapse Expressions
	Join     *Query
	Print    []string
}

// UnmarshalYAML decodes a step, a mapping with exactly one operation key.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: a step must hold exactly one operation", value.Line)
	}

	kind, body := value.Content[0].Value, value.Content[1]
	var err error
	switch kind {
	case StepMap:
		err = body.Decode(&s.Map)
	case StepFilter:
		err = body.Decode(&s.Filter)
	case StepSort:
		err = body.Decode(&s.Sort)
	case StepGroup:
		err = body.Decode(&s.Group)
	case StepCollapse:
		err = body.Decode(&s.Collapse)
	case StepJoin:
		s.Join = new(Query)
		err = body.Decode(s.Join)
	case StepPrint:
		err = body.Decode(&s.Print)
	default:
		return fmt.Errorf("line %d: unknown step %q", value.Line, kind)
	}
	if err != nil {
		return err
	}

	s.Kind = kind
	return nil
}

// Filter keeps the records whose Field is truthy, or the records satisfying every
// predicate expression of Where.
type Filter struct {
	Field string
	Where Expressions
}

// UnmarshalYAML decodes either a field name or a field to predicate mapping.
func (f *Filter) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&f.Field)
	}
	return value.Decode(&f.Where)
}

// Group merges the records sharing the By key and reduces their fields with the Fields
// expressions.
type Group struct {
	By     string      `json:"by" yaml:"by"`
	Fields Expressions `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// UnmarshalYAML decodes a group step rejecting unknown fields.
func (g *Group) UnmarshalYAML(value *yaml.Node) error {
	if err := knownFields(value, groupFields); err != nil {
		return err
	}

	type plain Group
	return value.Decode((*plain)(g))
}

// Columns lists the names assigned to the tokens of a line. Null entries decode to the
// empty name, which skips the token.
type Columns []string

// UnmarshalYAML decodes the column names keeping null entries.
func (c *Columns) UnmarshalYAML(value *yaml.Node) error {
	var names []*string
	if err := value.Decode(&names); err != nil {
		return err
	}

	*c = make(Columns, len(names))
	for i, name := range names {
		if name != nil {
			(*c)[i] = *name
		}
	}
	return nil
}

// Expressions maps field names to function expressions. Null expressions decode to the
// empty expression, which drops the field.
type Expressions map[string]string

// UnmarshalYAML decodes the expressions keeping null entries.
func (e *Expressions) UnmarshalYAML(value *yaml.Node) error {
	var expressions map[string]*string
	if err := value.Decode(&expressions); err != nil {
		return err
	}

	*e = make(Expressions, len(expressions))
	for field, expression := range expressions {
		(*e)[field] = ""
		if expression != nil {
			(*e)[field] = *expression
		}
	}
	return nil
}

// knownFields fails when the mapping node holds keys other than fields.
func knownFields(value *yaml.Node, fields []string) error {
	if value.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(value.Content); i += 2 {
		key := value.Content[i]
		if !slices.Contains(fields, key.Value) {
			return fmt.Errorf("line %d: field %s not found", key.Line, key.Value)
		}
	}
	return nil
}
