package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/anshulkummar/ieeeconv/internal/api"
	"github.com/anshulkummar/ieeeconv/internal/config"
	"github.com/anshulkummar/ieeeconv/internal/docxml"
	"github.com/anshulkummar/ieeeconv/internal/ieee"
	"github.com/anshulkummar/ieeeconv/internal/mdimport"
	"github.com/anshulkummar/ieeeconv/internal/sample"
)

var version = "1.0.0"

func main() {
	rootCmd := rootCmd()
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(sampleCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		output    string
		twoColumn bool
	)
	cmd := &cobra.Command{
		Use:   "ieeeconv <input.docx> [output.docx]",
		Short: "Convert a word-processing document to IEEE conference format",
		Long: `ieeeconv converts a word-processing document to IEEE conference-paper
formatting: margins, fonts, spacing, block styles and (optionally) the
two-column layout. Markdown drafts (.md) are accepted as input too.

Code regions are recognized between literal "<code block start>" and
"<code block end>" marker lines and rendered as boxed monospace listings.`,
		Version:       version,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output
			if out == "" && len(args) > 1 {
				out = args[1]
			}
			return runConvert(args[0], out, twoColumn)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: input stem + _IEEE suffix)")
	cmd.Flags().BoolVarP(&twoColumn, "two-column", "2", false, "convert the page to the IEEE two-column layout")
	return cmd
}

func runConvert(input, output string, twoColumn bool) error {
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("input file not found: %s", input)
	}

	var (
		doc *docxml.Document
		err error
	)
	switch strings.ToLower(filepath.Ext(input)) {
	case ".docx":
		doc, err = docxml.Open(input)
	case ".md", ".markdown":
		var src []byte
		if src, err = os.ReadFile(input); err == nil {
			doc, err = mdimport.Import(src)
		}
	default:
		return fmt.Errorf("unsupported input type %q (expected .docx or .md)", filepath.Ext(input))
	}
	if err != nil {
		return err
	}

	ieee.Convert(doc, ieee.Options{TwoColumn: twoColumn})

	if output == "" {
		output = filepath.Join(filepath.Dir(input), api.OutputName(filepath.Base(input), twoColumn))
	}
	if err := doc.Save(output); err != nil {
		return err
	}
	fmt.Printf("IEEE-formatted document saved to: %s\n", output)
	return nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the upload/convert/download web service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			cfg := config.Load()

			srv := api.NewServer(log, cfg)
			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 120 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown.
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				httpServer.Shutdown(shutdownCtx)
			}()

			log.Info("starting ieeeconv server", "port", cfg.Port)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}

func sampleCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write sample input documents for trying the converter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := sample.WriteAll(dir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Printf("Sample document created: %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "examples", "directory to write the sample documents into")
	return cmd
}
