// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/mia-platform/cols/internal/aggregate"
	"github.com/mia-platform/cols/internal/lift"
	"github.com/mia-platform/cols/internal/record"
)

// Template parses text as a text/template executed against the record. Outputs that parse
// as numbers are returned as float64, every other output as a string. Referencing a field
// missing from the record fails the evaluation.
func Template(text string) (lift.Func, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrArguments
	}

	tmpl, err := template.New("expression").
		Option("missingkey=error").
		Funcs(templateFunctions()).
		Parse(text)
	if err != nil {
		return nil, err
	}

	return func(r record.Record) (any, error) {
		output := new(strings.Builder)
		if err := tmpl.Execute(output, map[string]any(r)); err != nil {
			return nil, err
		}

		result := strings.TrimSpace(output.String())
		if n, err := strconv.ParseFloat(result, 64); err == nil {
			return n, nil
		}
		return result, nil
	}, nil
}

func templateFunctions() template.FuncMap {
	return template.FuncMap{
		// numbers
		"add":    Add,
		"sub":    Sub,
		"mul":    Mul,
		"div":    Div,
		"number": toNumber,
		"round":  round,

		// strings
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"trim":       strings.TrimSpace,
		"trimPrefix": TrimPrefix,
		"trimSuffix": TrimSuffix,
		"replace":    Replace,
		"truncate":   Truncate,
		"split":      Split,
		"quote":      Quote,
		"format":     record.Format,

		// lists
		"len":   Len,
		"first": First,
		"last":  Last,
		"join":  Join,

		// aggregates
		"sum":     aggregate.Sum,
		"product": aggregate.Product,
		"min":     aggregate.Minimum,
		"max":     aggregate.Maximum,
		"avg":     aggregate.Average,
		"average": aggregate.Average,
		"count":   aggregate.Count,

		// encoding and ids
		"toJSON":    ToJSON,
		"sha256sum": Sha256Sum,
		"sha512sum": Sha512Sum,
		"uuid":      UUIDV4,
		"uuidv4":    UUIDV4,
		"uuidv6":    UUIDV6,
		"uuidv7":    UUIDV7,
		"now":       Now,
	}
}
