// Copyright © 2026 The curage-lang authors

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	octrace "go.opencensus.io/trace"

	"github.com/vain0x/curage-lang/curageutil"
	"github.com/vain0x/curage-lang/interp"
	"github.com/vain0x/curage-lang/interp/profiler"
)

var runProfile string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run file.curage",
	Short: "Run a curage source file",
	Long: `Run a curage source file.

The file is analyzed first and any diagnostics are printed as warnings;
they never stop execution on their own, though a statement that failed
to parse raises a runtime error when reached.

With --profile, every executed statement is traced and a per-statement
timing report is printed to stderr when the program finishes:
  --profile=otel          Trace through OpenTelemetry
  --profile=opencensus    Trace through OpenCensus`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file := args[0]
		res, source, err := curageutil.LoadFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if diags := res.Diagnostics(); len(diags) > 0 {
			if err := newRenderer().RenderAll(os.Stderr, file, source, diags); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}

		var opts []interp.Option
		ctx := context.Background()
		switch runProfile {
		case "":
		case "otel":
			exp := profiler.NewWriterExporter(os.Stderr)
			tp := sdktrace.NewTracerProvider(
				sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exp)),
			)
			otel.SetTracerProvider(tp)
			defer func() {
				if err := tp.Shutdown(ctx); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}()

			ann := profiler.NewOpenTelemetryAnnotator(ctx, profiler.WithFile(file))
			if err := ann.Enable(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer ann.Complete()
			opts = append(opts, interp.WithHook(ann))
		case "opencensus":
			octrace.RegisterExporter(profiler.NewOCWriterExporter(os.Stderr))
			octrace.ApplyConfig(octrace.Config{DefaultSampler: octrace.AlwaysSample()})

			ann := profiler.NewOpenCensusAnnotator(ctx, profiler.WithFile(file))
			if err := ann.Enable(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer ann.Complete()
			opts = append(opts, interp.WithHook(ann))
		default:
			fmt.Fprintf(os.Stderr, "unknown profile backend %q\n", runProfile)
			os.Exit(1)
		}

		if err := interp.New(opts...).Run(res.Program); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runProfile, "profile", "",
		`Trace statement execution: "otel" or "opencensus"`)
}
