// Package main provides the Cotangent CLI.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"k8s.io/klog/v2"

	"github.com/cotangent-ml/cotangent/autodiff"
	"github.com/cotangent-ml/cotangent/value"
)

const version = "v0.1.0-dev"

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Printf("Cotangent %s\n", version)
			return
		case "demo":
			if err := runDemo(); err != nil {
				klog.Errorf("demo: %v", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Cotangent - pullback-tape automatic differentiation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate the built-in examples")
}

// runDemo differentiates two small expressions and prints derivative
// next to the analytic value, as a smoke check of the tape.
func runDemo() error {
	// manysin: sin applied five times, derivative is the cosine product.
	tape := autodiff.NewTape()
	x := tape.Input(value.FromReal(0.1))
	out := x
	var err error
	for i := 0; i < 5; i++ {
		out, err = tape.Record(autodiff.OpSin, out)
		if err != nil {
			return err
		}
	}
	grads, err := tape.Grad(out, x)
	if err != nil {
		return err
	}

	analytic := 1.0
	r := 0.1
	for i := 0; i < 5; i++ {
		analytic *= math.Cos(r)
		r = math.Sin(r)
	}
	fmt.Printf("manysin(5, 0.1)        = %.12f\n", out.Value().Real())
	fmt.Printf("  d/dx (tape)          = %.12f\n", grads[0].Real())
	fmt.Printf("  d/dx (analytic)      = %.12f\n\n", analytic)

	// Fan-out: z = x * sin(x), derivative sin(x) + x*cos(x).
	tape = autodiff.NewTape()
	x = tape.Input(value.FromReal(0.7))
	y, err := tape.Record(autodiff.OpSin, x)
	if err != nil {
		return err
	}
	z, err := tape.Record(autodiff.OpMul, x, y)
	if err != nil {
		return err
	}
	grads, err = tape.Grad(z, x)
	if err != nil {
		return err
	}

	fmt.Printf("x*sin(x) at x=0.7      = %.12f\n", z.Value().Real())
	fmt.Printf("  d/dx (tape)          = %.12f\n", grads[0].Real())
	fmt.Printf("  d/dx (analytic)      = %.12f\n", math.Sin(0.7)+0.7*math.Cos(0.7))
	return nil
}
