package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chrissnell/turngeometry/internal/calc"
	grpccontroller "github.com/chrissnell/turngeometry/internal/controllers/grpc"
	"github.com/chrissnell/turngeometry/pkg/precision"
	"github.com/chrissnell/turngeometry/pkg/trig"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: turncalc [flags] <operation> [args...]\n")
	fmt.Fprintf(os.Stderr, "       turncalc [flags] precision [-from deg] [-to deg] [-step deg]\n\n")
	fmt.Fprintf(os.Stderr, "Operations: %s\n\nFlags:\n", strings.Join(calc.Operations(), ", "))
	flag.PrintDefaults()
}

func main() {
	engine := trig.Default()
	flag.IntVar(&engine.SineTerms, "sine-terms", engine.SineTerms, "Correction terms in the sine series")
	flag.IntVar(&engine.CosineTerms, "cosine-terms", engine.CosineTerms, "Correction terms in the cosine series")
	flag.IntVar(&engine.ArcsineTerms, "arcsine-terms", engine.ArcsineTerms, "Terms in the arcsine series")
	flag.IntVar(&engine.ArctangentTerms, "arctangent-terms", engine.ArctangentTerms, "Correction terms in the arctangent series")
	server := flag.String("server", "", "Evaluate on a turngeometry gRPC server at host:port instead of locally")
	asJSON := flag.Bool("json", false, "Print results as JSON")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	if flag.Arg(0) == "precision" {
		if err := runPrecision(engine, flag.Args()[1:], *asJSON); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	args := make([]float64, 0, flag.NArg()-1)
	for _, s := range flag.Args()[1:] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing argument %q: %v\n", s, err)
			os.Exit(2)
		}
		args = append(args, v)
	}

	var res calc.Result
	var err error
	if *server != "" {
		res, err = evaluateRemote(*server, flag.Arg(0), args)
	} else {
		res, err = evaluateLocal(engine, flag.Arg(0), args)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		printJSON(res)
		return
	}
	fmt.Printf("%v %s\n", float64(res.Value), res.Unit)
}

func evaluateLocal(engine trig.Engine, op string, args []float64) (calc.Result, error) {
	c, err := calc.New(engine)
	if err != nil {
		return calc.Result{}, err
	}
	return c.Evaluate(op, args...)
}

func evaluateRemote(addr, op string, args []float64) (calc.Result, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return calc.Result{}, fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := grpccontroller.NewClient(conn).Evaluate(ctx, op, args...)
	if err != nil {
		return calc.Result{}, err
	}
	return calc.Result{Operation: resp.Operation, Value: resp.Value, Unit: resp.Unit}, nil
}

func runPrecision(engine trig.Engine, argv []string, asJSON bool) error {
	fs := flag.NewFlagSet("precision", flag.ExitOnError)
	opts := precision.Options{}
	fs.Float64Var(&opts.From, "from", -trig.ConvergenceLimit, "First angle of the sweep, in degrees")
	fs.Float64Var(&opts.To, "to", trig.ConvergenceLimit, "Last angle of the sweep, in degrees")
	fs.Float64Var(&opts.Step, "step", 1, "Sweep increment, in degrees")
	fs.Float64Var(&opts.Tolerance, "tolerance", precision.DefaultTolerance, "Error tolerance for the accurate range")
	verbose := fs.Bool("v", false, "Print every sample")
	if err := fs.Parse(argv); err != nil {
		return err
	}

	report, err := precision.Analyze(engine, opts)
	if err != nil {
		return err
	}

	if asJSON {
		if !*verbose {
			report.Samples = nil
		}
		printJSON(report)
		return nil
	}

	fmt.Printf("Precision sweep %v° to %v° step %v° (%d samples)\n", opts.From, opts.To, opts.Step, len(report.Samples))
	fmt.Printf("  Engine:            sine %d, cosine %d, arcsine %d, arctangent %d terms\n",
		engine.SineTerms, engine.CosineTerms, engine.ArcsineTerms, engine.ArctangentTerms)
	fmt.Printf("  Max sine error:    %.3e at %v°\n", report.MaxSineError, report.WorstSineDegree)
	fmt.Printf("  Mean sine error:   %.3e\n", report.MeanSineError)
	fmt.Printf("  Max cosine error:  %.3e\n", report.MaxCosineError)
	fmt.Printf("  Mean cosine error: %.3e\n", report.MeanCosineError)
	fmt.Printf("  Max Horner delta:  %.3e\n", report.MaxHornerDelta)
	fmt.Printf("  Accurate within:  ±%v°\n", report.AccurateWithin)

	if *verbose {
		for _, s := range report.Samples {
			fmt.Printf("  %9.3f°  sin %.12f (%.2e)  cos %.12f (%.2e)\n", s.Degree, s.Sine, s.SineError, s.Cosine, s.CosineError)
		}
	}
	return nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
