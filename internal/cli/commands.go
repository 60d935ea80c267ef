package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/docpanels/internal/catalog"
	"github.com/Makepad-fr/docpanels/internal/markdown"
	"github.com/Makepad-fr/docpanels/internal/panels"
	"github.com/Makepad-fr/docpanels/internal/store/snapshot"
	"github.com/Makepad-fr/docpanels/internal/tui"
	"github.com/Makepad-fr/docpanels/internal/ui"
	"github.com/Makepad-fr/docpanels/internal/web"
)

var formats = []string{"terminal", "markdown", "glamour", "html"}

func (a *app) showCommand() *cobra.Command {
	var format string
	var width int
	cmd := &cobra.Command{
		Use:   "show [section...]",
		Short: "Print sections (all of them by default, in page order)",
		Example: `  docpanels show
  docpanels show features security
  docpanels show --format html > docs.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.UI.Format
			}
			if !cmd.Flags().Changed("width") {
				width = a.cfg.UI.Width
			}
			fs, err := page(args)
			if err != nil {
				return err
			}
			a.logger.Debug("rendering sections", zap.Int("count", len(fs)), zap.String("format", format))
			return a.render(fs, format, width)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "terminal", "output format: "+strings.Join(formats, ", "))
	cmd.Flags().IntVarP(&width, "width", "w", 80, "wrap width for glamour output")
	return cmd
}

func (a *app) render(fs []panels.Fragment, format string, width int) error {
	switch format {
	case "terminal":
		fmt.Fprintln(a.stdout, ui.Page(fs, ui.Current()))
	case "markdown":
		fmt.Fprint(a.stdout, markdown.Page(fs))
	case "glamour":
		out, err := markdown.Render(markdown.Page(fs), "auto", width)
		if err != nil {
			return err
		}
		fmt.Fprint(a.stdout, out)
	case "html":
		if err := web.Page(web.Title, fs).Render(a.stdout); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		fmt.Fprintln(a.stdout)
	default:
		return usagef("unknown format %q (want one of %s)", format, strings.Join(formats, ", "))
	}
	return nil
}

func page(anchors []string) ([]panels.Fragment, error) {
	fs, unknown := panels.Page(anchors...)
	if unknown != "" {
		return nil, usagef("unknown section %q (want one of %s)", unknown, strings.Join(panels.Anchors(), ", "))
	}
	return fs, nil
}

func (a *app) sectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List section anchors",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range panels.Sections() {
				f := s.Render()
				fmt.Fprintf(a.stdout, "%-12s %s %s\n", s.Anchor, s.Title,
					ui.Current().Muted.Render(fmt.Sprintf("(%d)", f.Len())))
			}
		},
	}
}

func (a *app) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [section]",
		Short: "Page through the sections interactively",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := ""
			if len(args) == 1 {
				if _, ok := panels.Lookup(args[0]); !ok {
					return usagef("unknown section %q (want one of %s)", args[0], strings.Join(panels.Anchors(), ", "))
				}
				start = args[0]
			}
			return tui.Run(ui.Current(), start)
		},
	}
}

func (a *app) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sections as an HTML page",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Server.Addr
			}
			if !a.verbose {
				gin.SetMode(gin.ReleaseMode)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return web.Serve(ctx, addr, web.NewRouter())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}

func (a *app) exportCommand() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the backing data as JSON or YAML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return usagef("unknown export format %q (want json or yaml)", format)
			}
			if err := snapshot.Write(a.stdout, out, format, catalog.Current()); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if out != "" && out != snapshot.Stdout {
				ui.OK(a.stderr, "exported to "+out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "json or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", snapshot.Stdout, "output file, - for stdout")
	return cmd
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the backing data",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalog.ValidateCurrent(); err != nil {
				return fmt.Errorf("catalog invalid: %w", err)
			}
			ui.OK(a.stdout, fmt.Sprintf("catalog valid: %d features, %d tech categories, %d security measures",
				len(catalog.Features()), len(catalog.TechStack()), len(catalog.SecurityMeasures())))
			return nil
		},
	}
}
