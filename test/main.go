package main

import (
	"fmt"
	"os"

	"github.com/sean-h/cmdpro"
)

func main() {
	proc := cmdpro.New()
	must(proc.AddParameter("path", cmdpro.Path, "--path", "--p"))
	must(proc.AddParameter("count", cmdpro.UInteger, "--count", "--c"))
	must(proc.AddParameter("verbose", cmdpro.Flag, "--verbose"))
	must(proc.Describe("path", "Input file to process"))
	must(proc.Describe("count", "Number of passes over the input"))
	must(proc.Describe("verbose", "Enable verbose output"))
	proc.SetHelpText(proc.Usage("cmdpro-demo"))
	proc.SetVersionText("cmdpro-demo v0.1.0")

	if err := proc.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:", err)
		os.Exit(1)
	}
	if proc.AbortFlag() {
		return
	}

	if value, err := proc.GetParameterValue("path"); err == nil {
		fmt.Println("path:", value.Path())
	}
	if value, err := proc.GetParameterValue("count"); err == nil {
		fmt.Println("count:", value.UInteger())
	}
	if value, err := proc.GetParameterValue("verbose"); err == nil {
		fmt.Println("verbose:", value.Bool())
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
