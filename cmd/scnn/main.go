// Command scnn replays a captured network trace layer-by-layer through
// the sparse convolution engine and validates each layer's output
// against the reference activations captured alongside it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Omar-Awad/SCNN-GPU2/engine"
	"github.com/Omar-Awad/SCNN-GPU2/network"
	"github.com/Omar-Awad/SCNN-GPU2/report"
	"github.com/Omar-Awad/SCNN-GPU2/tensor"
	"github.com/Omar-Awad/SCNN-GPU2/trace"
	"github.com/Omar-Awad/SCNN-GPU2/validate"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "scnn:", r)
			os.Exit(1)
		}
	}()

	net := flag.String("net", "bvlc_alexnet", "network name: bvlc_alexnet or vgg_cnn_s")
	dir := flag.String("dir", "net_traces", "directory holding the captured trace files")
	chart := flag.String("chart", "", "if set, write a validation error bar chart to this SVG file")
	threads := flag.Int("threads", engine.DefaultConfig().Threads, "worker goroutines per channel group")
	i := flag.Int("i", engine.DefaultConfig().I, "processing element activation tile size")
	f := flag.Int("f", engine.DefaultConfig().F, "processing element weight tile size")
	oneImage := flag.Bool("one-image", engine.DefaultConfig().ForceOneImage, "restrict every layer to its first captured image")
	strict := flag.Bool("strict", false, "fail immediately on the first out-of-tolerance element instead of reporting a full mismatch count")
	flag.Parse()

	layers, ok := network.ByName(*net)
	if !ok {
		fmt.Fprintf(os.Stderr, "scnn: unknown network %q\n", *net)
		os.Exit(1)
	}

	cfg := engine.Config{I: *i, F: *f, Threads: *threads, ForceOneImage: *oneImage}
	drv := engine.Driver{Config: cfg}
	checker := validate.Validator{Strict: *strict}
	ctx := context.Background()

	var reports []validate.Report
	var avg report.Average
	total := time.Duration(0)

	for _, desc := range layers {
		start := time.Now()
		l, err := trace.Load(*dir, desc)
		trace.CheckErr(err)

		geom, err := l.Prepare(cfg.ForceOneImage)
		trace.CheckErr(err)

		partitions := engine.CompressWeights(l.Weights, geom)

		out := tensor.New([4]int{geom.N, geom.K, geom.W, geom.H})
		engine.SeedBias(out, l.Bias, geom.N, geom.K, geom.W, geom.H)

		if err := drv.Run(ctx, l, geom, partitions, out); err != nil {
			fmt.Fprintf(os.Stderr, "scnn: layer %s: %v\n", desc.Name, err)
			os.Exit(1)
		}
		if desc.ReLU {
			engine.ApplyReLU(out)
		}

		elapsed := time.Since(start)
		total += elapsed

		r, verr := checker.Check(desc.Name, out, l.Expected)
		reports = append(reports, r)
		avg.Add(r.MaxAbsError)
		status := "ok"
		if verr != nil {
			status = "FAIL: " + verr.Error()
			if *strict {
				fmt.Fprintln(os.Stderr, "scnn:", verr)
				os.Exit(1)
			}
		}
		fmt.Printf("%-10s %-5s %8s  max_err=%-10g %s\n", desc.Name, desc.Kind, elapsed.Round(time.Millisecond), r.MaxAbsError, status)
	}

	fmt.Printf("total: %s  mean_max_err=%.6f stddev=%.6f\n", total.Round(time.Millisecond), avg.Mean, avg.StdDev)

	if *chart != "" {
		if err := report.WriteErrorChart(*chart, reports); err != nil {
			fmt.Fprintln(os.Stderr, "scnn:", err)
		}
	}
}
