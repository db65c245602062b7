package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/desktop"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/web"
)

// newServeCmd creates the serve subcommand
func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string
	var maxSessions int
	var open bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the wizard as a local web page",
		Long: `Start an HTTP server that renders the wizard in the browser.

Each browser gets its own wizard state, kept in memory only. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tpl, err := opts.loadTemplate()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := web.NewServer(tpl, web.Options{
				Addr:        addr,
				MaxSessions: maxSessions,
			})

			ln, err := srv.Listen()
			if err != nil {
				return err
			}

			if open {
				go openWhenListening(desktop.SystemBrowser{}, srv.URL())
			}

			return srv.Serve(ctx, ln)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", web.DefaultAddr, "Listen address")
	cmd.Flags().IntVar(&maxSessions, "max-sessions", web.DefaultMaxSessions, "Browser sessions kept in memory")
	cmd.Flags().BoolVarP(&open, "open", "o", false, "Open the wizard in the browser")

	return cmd
}

// openWhenListening opens url in the browser. Call it only after the
// listener is bound.
func openWhenListening(b desktop.Browser, url string) {
	if err := b.OpenURL(url); err != nil {
		log.Printf("could not open browser: %v", err)
	}
}

// cmdContext returns the command's context, or Background when run directly.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
