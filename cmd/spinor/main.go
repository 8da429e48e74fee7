// Package main provides the Spinor Quantum Framework CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spinor-ml/spinor/circuit"
	"github.com/spinor-ml/spinor/device"
	"github.com/spinor-ml/spinor/gradients"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Spinor Quantum Framework %s\n", version)
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintf(os.Stderr, "demo: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Spinor Quantum Framework - SPSA Gradients for Quantum Circuits in Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Estimate a two-parameter circuit gradient")
}

// demo estimates the gradient of <Z(0) X(1)> for a small entangling
// circuit and prints it next to the exact value.
func demo() error {
	x, y := 0.543, -0.654

	plan, err := gradients.GradRecorded(func(b *circuit.Builder) error {
		b.RX(x, 0)
		b.RY(y, 1)
		b.CNOT(0, 1)
		b.Expval(circuit.PauliZ(0).Tensor(circuit.PauliX(1)))
		return nil
	}, gradients.Config{NumDirections: 200, H: 1e-5})
	if err != nil {
		return err
	}

	sim := device.New(device.Config{Parallel: true})
	results, err := sim.Execute(plan.Tapes)
	if err != nil {
		return err
	}
	jac, err := plan.PostProcess(results)
	if err != nil {
		return err
	}

	fmt.Printf("circuit: RX(%.3f, 0) RY(%.3f, 1) CNOT(0, 1) -> <Z(0) X(1)>\n", x, y)
	fmt.Printf("tapes executed: %d\n", len(plan.Tapes))
	for p := 0; p < jac.NumParams(); p++ {
		fmt.Printf("d<O>/dp%d = %+.6f\n", p, jac.Entry(0, p).AsFloat64()[0])
	}
	return nil
}
