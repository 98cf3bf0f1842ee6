package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/emurenMRz/mboxrender/internal/config"
	"github.com/emurenMRz/mboxrender/internal/eml"
	"github.com/emurenMRz/mboxrender/internal/labels"
	"github.com/emurenMRz/mboxrender/internal/mailbox"
	"github.com/emurenMRz/mboxrender/internal/mboxheader"
	"github.com/emurenMRz/mboxrender/internal/render"
	"github.com/emurenMRz/mboxrender/internal/rtfhtml"
)

type options struct {
	mode       string
	path       string
	msgIndex   int
	format     string
	locale     string
	hyperlinks bool
	strict     bool
}

func main() {
	var (
		mode       = flag.String("mode", "render", "Operation mode: render, headers, validate, item")
		inputPath  = flag.String("path", "", "Input mbox file path, or YAML item file for item mode (required)")
		msgIndex   = flag.Int("msg", -1, "Message index; all messages when negative")
		format     = flag.String("format", "text", "Header block format for headers mode: text, html")
		locale     = flag.String("locale", "", "Label locale, e.g. en or nl-NL")
		hyperlinks = flag.Bool("hyperlinks", true, "Render addresses and attachments as links in HTML output")
		strict     = flag.Bool("strict", false, "Fail when a required header field is empty")
		configPath = flag.String("config", "", "Config file path")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *inputPath == "" {
		logger.Error("-path is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}

	opts := options{
		mode:       *mode,
		path:       *inputPath,
		msgIndex:   *msgIndex,
		format:     *format,
		locale:     cfg.Locale,
		hyperlinks: cfg.Hyperlinks,
		strict:     cfg.Strict,
	}
	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "locale":
			opts.locale = *locale
		case "hyperlinks":
			opts.hyperlinks = *hyperlinks
		case "strict":
			opts.strict = *strict
		}
	})

	if err := run(os.Stdout, logger, opts); err != nil {
		logger.Error(opts.mode+" failed", "path", opts.path, "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, opts options) error {
	table, err := labels.Load(opts.locale)
	if err != nil {
		return err
	}

	renderer := render.New(table,
		render.WithConverter(rtfhtml.Converter{}),
		render.WithHyperlinks(opts.hyperlinks),
		render.WithStrict(opts.strict),
	)
	if opts.mode == "item" {
		return renderItemFile(w, renderer, opts.path)
	}

	messages, err := mailbox.ReadFile(opts.path)
	if err != nil {
		return err
	}
	if opts.msgIndex >= len(messages) {
		return fmt.Errorf("%w: #%d of %d", mailbox.ErrMessageNotFound, opts.msgIndex, len(messages))
	}

	indexes := make([]int, 0, len(messages))
	if opts.msgIndex >= 0 {
		indexes = append(indexes, opts.msgIndex)
	} else {
		for i := range messages {
			indexes = append(indexes, i)
		}
	}

	parser := eml.NewParser(table, logger)

	switch opts.mode {
	case "render":
		return renderMessages(w, parser, renderer, messages, indexes)
	case "headers":
		return showHeaders(w, renderer, messages, indexes, opts.format == "html")
	case "validate":
		return validateMessages(w, parser, table, messages, indexes)
	}
	return fmt.Errorf("unknown mode %q: use render, headers, validate or item", opts.mode)
}

func renderMessages(w io.Writer, parser *eml.Parser, renderer *render.Renderer, messages [][]byte, indexes []int) error {
	for n, i := range indexes {
		msg, err := parser.Parse(bytes.NewReader(messages[i]))
		if err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		doc, _, err := renderer.Render(msg.Email, msg.Body)
		if err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		if len(indexes) > 1 {
			if n > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "Message %d:\n", i)
		}
		fmt.Fprint(w, doc)
		if !strings.HasSuffix(doc, "\n") {
			fmt.Fprintln(w)
		}
	}
	return nil
}

func showHeaders(w io.Writer, renderer *render.Renderer, messages [][]byte, indexes []int, isHTML bool) error {
	for _, i := range indexes {
		headers, _ := mailbox.SplitHeaders(messages[i])
		item := mboxheader.KeyedItem(headers)
		if isHTML {
			item = mboxheader.HTMLKeyedItem(headers)
		}
		block, err := renderer.Header(item, render.NewRenderContext(isHTML, false))
		if err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		fmt.Fprintf(w, "Message %d:\n", i)
		fmt.Fprint(w, block)
	}
	return nil
}

func validateMessages(w io.Writer, parser *eml.Parser, table render.Labels, messages [][]byte, indexes []int) error {
	var allResults []mboxheader.ValidationResult

	for _, i := range indexes {
		headers, _ := mailbox.SplitHeaders(messages[i])
		allResults = append(allResults, mboxheader.ValidateHeaders(headers, i)...)

		msg, err := parser.Parse(bytes.NewReader(messages[i]))
		if errors.Is(err, eml.ErrEmptyMessage) {
			continue
		}
		if err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		results, err := mboxheader.ValidateItem(msg.Email, table, i)
		if err != nil {
			return err
		}
		allResults = append(allResults, results...)
	}

	outputText(w, allResults)
	return nil
}

func outputText(w io.Writer, results []mboxheader.ValidationResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No validation errors found.")
		return
	}

	for _, result := range results {
		switch result.Status {
		case mboxheader.StatusMissing:
			if result.Detail != "" {
				fmt.Fprintf(w, "Message %d: %s header is missing (%s)\n", result.MsgIndex, result.Field, result.Detail)
			} else {
				fmt.Fprintf(w, "Message %d: %s header is missing\n", result.MsgIndex, result.Field)
			}
		case mboxheader.StatusInvalid:
			fmt.Fprintf(w, "Message %d: %s header is invalid (%s)\n", result.MsgIndex, result.Field, result.Detail)
		case mboxheader.StatusDeleted:
			fmt.Fprintf(w, "Message %d: Status = D (marked deleted)\n", result.MsgIndex)
		}
	}
}
