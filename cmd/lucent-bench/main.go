package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/lucent-dev/lucent/el"
	"github.com/lucent-dev/lucent/pkg/dom"
	"github.com/lucent-dev/lucent/pkg/reactive"
	"github.com/lucent-dev/lucent/pkg/reconcile"
)

func main() {
	var iters int

	rootCmd := &cobra.Command{
		Use:   "lucent-bench",
		Short: "Benchmark Lucent signal propagation and host diffing",
		Long: `Measures two hot paths: how fast a write to a source signal
propagates through a grid of computeds to a terminal effect, and how
fast the reconciler diffs a mutated list against the host tree.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runPropagation(iters)
			fmt.Println()
			runDiff(iters)
			return nil
		},
	}

	rootCmd.Flags().IntVar(&iters, "iters", 100, "samples per benchmark")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// runPropagation times a single Set on the source signal of a w×h
// computed grid until the terminal effect observes it.
func runPropagation(iters int) {
	tbl := table.NewWriter()
	tbl.SetTitle("signal propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"grid", "avg", "min", "p75", "p99", "max"})

	ww := []int{1, 10, 100}
	hh := []int{1, 10, 100}
	for _, w := range ww {
		for _, h := range hh {
			tbl.AppendRow(propagationRow(w, h, iters))
		}
	}
	tbl.Render()
}

func propagationRow(w, h, iters int) table.Row {
	src := reactive.NewSignal(0)

	// Each column reads the previous column's row of computeds, so a
	// write walks the full width before reaching the effect.
	prev := make([]*reactive.Computed[int], h)
	for i := range prev {
		prev[i] = reactive.NewComputed(func() int { return src.Get() + 1 })
	}
	for col := 1; col < w; col++ {
		in := prev
		next := make([]*reactive.Computed[int], h)
		for i := range next {
			row := i
			next[i] = reactive.NewComputed(func() int { return in[row].Get() + 1 })
		}
		prev = next
	}

	var sink int
	leaves := prev
	reactive.NewEffect(func() reactive.Cleanup {
		total := 0
		for _, c := range leaves {
			total += c.Get()
		}
		sink = total
		return nil
	})

	tm := tachymeter.New(&tachymeter.Config{Size: iters})
	for i := 0; i < iters; i++ {
		start := time.Now()
		src.Set(i + 1)
		tm.AddTime(time.Since(start))
	}
	_ = sink

	m := tm.Calc()
	return table.Row{
		fmt.Sprintf("%dx%d", w, h),
		m.Time.Avg, m.Time.Min, m.Time.P75, m.Time.P99, m.Time.Max,
	}
}

// runDiff times reconciling a mutated list of rows against the host
// tree at several list sizes.
func runDiff(iters int) {
	tbl := table.NewWriter()
	tbl.SetTitle("host diff")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"rows", "avg", "min", "p75", "p99", "max", "writes/op"})

	for _, rows := range []int{10, 100, 1000, 10000} {
		tbl.AppendRow(diffRow(rows, iters))
	}
	tbl.Render()
}

func diffRow(rows, iters int) table.Row {
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	doc.Body().AppendChild(root)
	d := reconcile.NewDelegator(root)

	list := func(rev int) *el.VNode {
		items := make([]*el.VNode, rows)
		for i := range items {
			items[i] = el.Li(
				el.Class("row"),
				el.Textf("row %d rev %d", i, rev),
			)
		}
		return el.Ul(el.ID("bench"), items)
	}

	reconcile.Render(list(0), root, d)

	tm := tachymeter.New(&tachymeter.Config{Size: iters})
	var writes uint64
	for i := 1; i <= iters; i++ {
		tree := list(i)
		start := time.Now()
		stats := reconcile.Diff(tree, root, d)
		tm.AddTime(time.Since(start))
		writes += uint64(stats.TextWrites + stats.AttrWrites)
	}

	m := tm.Calc()
	return table.Row{
		humanize.Comma(int64(rows)),
		m.Time.Avg, m.Time.Min, m.Time.P75, m.Time.P99, m.Time.Max,
		humanize.Comma(int64(writes / uint64(iters))),
	}
}
