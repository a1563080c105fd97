package main

import (
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucent-dev/lucent/el"
	"github.com/lucent-dev/lucent/internal/devserver"
	"github.com/lucent-dev/lucent/pkg/reactive"
)

func previewCmd() *cobra.Command {
	var (
		addr    string
		title   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve a live preview of a Lucent view",
		Long: `Starts an HTTP server that mounts a view server-side on every
page load and serves the rendered markup. Connected browsers reload
automatically when the server is asked to rerender.

The built-in demo view exercises signals, computeds, and the element
builders. Import the devserver package to preview your own producer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBanner()

			srv := devserver.NewServer(devserver.Options{
				Addr:     addr,
				Title:    title,
				Producer: demoView(),
				Verbose:  verbose,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			success("Preview server listening on %s", addr)
			info("Press Ctrl+C to stop")

			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8420", "listen address")
	cmd.Flags().StringVar(&title, "title", "Lucent Preview", "page title")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log requests")

	return cmd
}

// demoView builds the producer served by the preview command. Each
// request renders the current state of a small signal graph.
func demoView() func() *el.VNode {
	started := time.Now()
	var visits atomic.Int64

	name := reactive.NewSignal("world")
	greeting := reactive.NewComputed(func() string {
		return "Hello, " + name.Get() + "!"
	})

	return func() *el.VNode {
		n := visits.Add(1)
		return el.Div(el.ID("demo"),
			el.H1(el.Text(greeting.Get())),
			el.P(el.Textf("Page loads: %d", n)),
			el.P(el.Textf("Uptime: %s", time.Since(started).Round(time.Second))),
			el.Ul(
				el.Li(el.Text("Edit your view and call Rerender to push a reload.")),
				el.Li(el.Text("Prometheus metrics are exposed at /metrics.")),
			),
		)
	}
}
