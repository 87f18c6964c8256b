package cmd

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"mtoohey.com/texui/internal/grid"
	"mtoohey.com/texui/internal/term"

	"github.com/alecthomas/kong"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// TypeMappers contains all the kong.TypeMapper options that should be used
// when parsing at the top-level.
var TypeMappers = []kong.Option{
	kong.NamedMapper("cell", kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("string", &s); err != nil {
			return err
		}

		r, err := grid.ParseCell(s)
		if err != nil {
			return err
		}

		target.Set(reflect.ValueOf(r).Convert(target.Type()))
		return nil
	})),

	kong.NamedMapper("boxstyle", kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("string", &s); err != nil {
			return err
		}

		if style, ok := grid.BoxStyles[s]; ok {
			s = style
		}

		target.SetString(s)
		return nil
	})),

	kong.TypeMapper(reflect.TypeOf(grid.Width{}), kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("string", &s); err != nil {
			return err
		}

		w, err := grid.ParseWidth(s)
		if err != nil {
			return err
		}

		target.Set(reflect.ValueOf(w))
		return nil
	})),

	kong.TypeMapper(reflect.TypeOf(grid.EdgePolicy(0)), enumMapper(grid.EdgePolicyNames, grid.ParseEdgePolicy)),
	kong.TypeMapper(reflect.TypeOf(grid.Anchor(0)), enumMapper(grid.AnchorNames, grid.ParseAnchor)),
	kong.TypeMapper(reflect.TypeOf(grid.Trigger(0)), enumMapper(grid.TriggerNames, grid.ParseTrigger)),
	kong.TypeMapper(reflect.TypeOf(grid.Connectivity(0)), enumMapper(grid.ConnectivityNames, grid.ParseConnectivity)),
	kong.TypeMapper(reflect.TypeOf(term.ClearMode(0)), enumMapper(term.ClearModeNames, term.ParseClearMode)),
}

// enumMapper decodes a value by name using parse, suggesting the closest of
// names when the value is unknown.
func enumMapper[T any](names []string, parse func(string) (T, error)) kong.MapperFunc {
	return func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("string", &s); err != nil {
			return err
		}

		v, err := parse(s)
		if err != nil {
			return unknownValueError(s, names)
		}

		target.Set(reflect.ValueOf(v))
		return nil
	}
}

func unknownValueError(s string, names []string) error {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}

	msg := fmt.Sprintf(`must be one of %s but got "%s"`, strings.Join(quoted, ","), s)
	if suggestion, ok := suggest(s, names); ok {
		msg += fmt.Sprintf(`, did you mean "%s"?`, suggestion)
	}

	return errors.New(msg)
}

// suggest returns the name that best matches s.
func suggest(s string, names []string) (string, bool) {
	if s == "" {
		return "", false
	}

	ranks := fuzzy.RankFindNormalizedFold(s, names)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)

	return ranks[0].Target, true
}
