package gotemplate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"
)

// registerDefaultFilters installs the filters the compiled page expressions
// rely on. Registration is process-wide in pongo2, so each filter is guarded
// against double registration.
func registerDefaultFilters() {
	for name, fn := range map[string]pongo2.FilterFunction{
		"trim":     filterTrim,
		"joinand":  filterJoinAnd,
		"datejoin": filterDateJoin,
		"longdate": filterLongDate,
	} {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterJoinAnd joins a collection with commas and "and" before the last
// item. Scalar input passes through unchanged, matching how a single stored
// selection reads.
func filterJoinAnd(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.CanSlice() || in.IsString() {
		return pongo2.AsValue(in.String()), nil
	}

	items := make([]string, 0, in.Len())
	for i := 0; i < in.Len(); i++ {
		item := strings.TrimSpace(in.Index(i).String())
		if item != "" {
			items = append(items, item)
		}
	}

	switch len(items) {
	case 0:
		return pongo2.AsValue(""), nil
	case 1:
		return pongo2.AsValue(items[0]), nil
	default:
		return pongo2.AsValue(strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]), nil
	}
}

// filterDateJoin reads the day/month/year parts for the key prefix given as
// the parameter out of the answer map and joins them into an ISO date.
// Incomplete or non-numeric parts yield "" so downstream formatting can fall
// through cleanly.
func filterDateJoin(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	data, ok := in.Interface().(map[string]any)
	if !ok {
		return pongo2.AsValue(""), nil
	}
	prefix := param.String()
	if prefix == "" {
		return pongo2.AsValue(""), nil
	}

	part := func(name string) (int, bool) {
		raw, ok := data[prefix+"-"+name]
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(raw)))
		if err != nil {
			return 0, false
		}
		return n, true
	}

	day, okDay := part("day")
	month, okMonth := part("month")
	year, okYear := part("year")
	if !okDay || !okMonth || !okYear {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(fmt.Sprintf("%04d-%02d-%02d", year, month, day)), nil
}

// filterLongDate formats an ISO date as the long GOV.UK style, e.g.
// "2 January 2006". Anything unparsable passes through untouched.
func filterLongDate(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	raw := strings.TrimSpace(in.String())
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return pongo2.AsValue(raw), nil
	}
	return pongo2.AsValue(parsed.Format("2 January 2006")), nil
}
