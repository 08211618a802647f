package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/algotrace/internal/bst"
	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/trace"
)

var stepHeader = []string{"step", "kind", "comparing", "swapping", "left", "right", "mid", "found", "index", "array"}

// WriteCSV writes one row per step. Position lists and the array are space separated.
func WriteCSV[T trace.Number](w io.Writer, tr trace.Trace[T]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(stepHeader); err != nil {
		return err
	}

	for i, s := range tr {
		row := []string{
			strconv.Itoa(i),
			string(s.Kind),
			joinInts(s.Comparing),
			joinInts(s.Swapping),
			"", "", "",
			strconv.FormatBool(s.Found),
			strconv.Itoa(s.Index),
			joinNumbers(s.Array),
		}
		if s.Bounds != nil {
			row[4] = strconv.Itoa(s.Bounds.Left)
			row[5] = strconv.Itoa(s.Bounds.Right)
			row[6] = strconv.Itoa(s.Bounds.Mid)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteVisitsCSV writes one row per traversal visit.
func WriteVisitsCSV(w io.Writer, visits []graph.Visit) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "node", "edge", "visited"}); err != nil {
		return err
	}

	for i, v := range visits {
		edge := ""
		if v.Edge != nil {
			edge = v.Edge.Key()
		}
		row := []string{strconv.Itoa(i), strconv.Itoa(v.Node), edge, joinInts(v.Visited)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTreeCSV writes one row per traced tree action with the in-order contents after it.
func WriteTreeCSV[T any](w io.Writer, steps []bst.Step[T]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "action", "value", "at", "inorder"}); err != nil {
		return err
	}

	for i, s := range steps {
		var inorder []string
		var walk func(v *bst.View[T])
		walk = func(v *bst.View[T]) {
			if v == nil {
				return
			}
			walk(v.Left)
			inorder = append(inorder, fmt.Sprint(v.Value))
			walk(v.Right)
		}
		walk(s.Tree)

		at := fmt.Sprint(s.At)
		if s.Action == bst.ActionMissing {
			at = ""
		}
		row := []string{strconv.Itoa(i), string(s.Action), fmt.Sprint(s.Value), at, strings.Join(inorder, " ")}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

func joinNumbers[T trace.Number](xs []T) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(float64(x), 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
