package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"smart-scholar/internal/export"
	"smart-scholar/internal/input"
	"smart-scholar/internal/scholar"
	"smart-scholar/internal/webfetch"
)

func summarizeCmd(log *logrus.Logger) *cobra.Command {
	var file string
	var text string
	var lang string
	var visual bool
	var exports string
	var out string
	var theme string
	var font string
	var density string
	var includeVisual bool
	var model string
	var aiProvider string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a document, pasted text, or URL into markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			language := scholar.Language(strings.ToUpper(lang))

			src, err := input.Collect(scholar.TaskSummary, text, file, "", language)
			if err != nil {
				return err
			}

			// A pasted URL is fetched and converted to markdown locally so
			// the model sees the page content, not just its address. On any
			// failure the raw string goes through unchanged.
			if input.IsURL(src.Text) {
				if md, err := webfetch.NewClient(log).FetchMarkdown(ctx, src.Text); err != nil {
					log.WithError(err).Warn("URL fetch failed, passing the address through")
				} else {
					src.Text = md
				}
			}

			gen, err := newGenerator(ctx, aiProvider, model, log)
			if err != nil {
				return err
			}

			sess := scholar.NewSession()
			if err := sess.Begin(); err != nil {
				return err
			}
			summary, err := gen.Summarize(ctx, src)
			if err != nil {
				sess.Fail()
				return err
			}
			token := sess.PublishSummary(scholar.SummaryResult{
				MarkdownText: summary,
				Language:     language,
			})
			log.WithField("chars", len(summary)).Info("summary generated")

			if visual {
				if err := sess.BeginEnrichment(); err != nil {
					return err
				}
				v := gen.Visualize(ctx, summary, language)
				if sess.AttachVisual(token, v) {
					log.WithField("type", v.Type).Info("visualization attached")
				}
			}

			res, ok := sess.Summary()
			if !ok {
				return fmt.Errorf("no summary available")
			}

			cfg := scholar.PdfExportConfig{
				FontStyle:     font,
				ThemeColor:    theme,
				Density:       density,
				IncludeVisual: includeVisual,
			}
			for _, format := range splitFormats(exports) {
				var path string
				var err error
				switch format {
				case "md":
					path, err = export.WriteMarkdown(out, res)
				case "html":
					path, err = export.WriteHTML(out, res, cfg)
				case "pdf":
					path, err = export.WriteSummaryPDF(out, res, cfg)
				default:
					err = fmt.Errorf("unknown export format %q (use md, html, pdf)", format)
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	def := scholar.DefaultPdfConfig()
	cmd.Flags().StringVarP(&file, "file", "f", "", "document to summarize (.pdf or .txt)")
	cmd.Flags().StringVarP(&text, "text", "t", "", "raw text or an http(s) URL to summarize")
	cmd.Flags().StringVar(&lang, "lang", "EN", "output language: ID|EN")
	cmd.Flags().BoolVar(&visual, "visual", false, "derive a visualization from the summary")
	cmd.Flags().StringVar(&exports, "export", "md", "comma-separated export formats: md,html,pdf")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory for exports")
	cmd.Flags().StringVar(&theme, "theme", def.ThemeColor, "PDF accent color (hex)")
	cmd.Flags().StringVar(&font, "font", def.FontStyle, "PDF font style: serif|sans")
	cmd.Flags().StringVar(&density, "density", def.Density, "PDF text density: comfortable|compact")
	cmd.Flags().BoolVar(&includeVisual, "include-visual", def.IncludeVisual, "append the visualization page to the PDF")
	cmd.Flags().StringVar(&model, "model", "", "generative model name (default gemini-2.5-flash)")
	cmd.Flags().StringVar(&aiProvider, "ai", "gemini", "AI provider: off|gemini")
	return cmd
}
