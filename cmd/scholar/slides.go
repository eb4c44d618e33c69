package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"smart-scholar/internal/export"
	"smart-scholar/internal/input"
	"smart-scholar/internal/render"
	"smart-scholar/internal/scholar"
	"smart-scholar/internal/webfetch"
)

func slidesCmd(log *logrus.Logger) *cobra.Command {
	var file string
	var text string
	var instructions string
	var lang string
	var exports string
	var slideNum int
	var out string
	var model string
	var aiProvider string

	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Generate a slide deck from a document, text, or URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			language := scholar.Language(strings.ToUpper(lang))

			src, err := input.Collect(scholar.TaskSlides, text, file, instructions, language)
			if err != nil {
				return err
			}
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
			deck, err := gen.Slides(ctx, src)
			if err != nil {
				sess.Fail()
				return err
			}
			sess.PublishDeck(deck)
			log.WithFields(logrus.Fields{
				"slides": len(deck.Slides),
				"theme":  deck.AccentColor(),
			}).Info("deck generated")

			deck, _ = sess.Deck()
			for _, format := range splitFormats(exports) {
				var path string
				var err error
				switch format {
				case "pptx":
					path, err = export.WriteDeckPPTX(out, deck)
				case "pdf":
					path, err = export.WriteDeckPDF(out, deck)
				case "png":
					car := render.NewCarousel(deck)
					car.Goto(slideNum - 1)
					path, err = export.WriteSlidePNG(out, deck, car.Index())
				default:
					err = fmt.Errorf("unknown export format %q (use pptx, pdf, png)", format)
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "source document (.pdf, .txt, or .docx)")
	cmd.Flags().StringVarP(&text, "text", "t", "", "raw text or an http(s) URL")
	cmd.Flags().StringVarP(&instructions, "instructions", "i", "", "custom instructions for the deck")
	cmd.Flags().StringVar(&lang, "lang", "EN", "output language: ID|EN")
	cmd.Flags().StringVar(&exports, "export", "pptx", "comma-separated export formats: pptx,pdf,png")
	cmd.Flags().IntVar(&slideNum, "slide", 1, "1-based slide number for the png export")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory for exports")
	cmd.Flags().StringVar(&model, "model", "", "generative model name (default gemini-2.5-flash)")
	cmd.Flags().StringVar(&aiProvider, "ai", "gemini", "AI provider: off|gemini")
	return cmd
}
