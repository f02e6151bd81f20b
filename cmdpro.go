package cmdpro

import "github.com/sean-h/cmdpro/core"

// New returns an empty Processor ready for parameter registration.
//
// Declare each parameter with a unique name, a type, and one or more flag
// aliases, then parse and query:
//
//	proc := cmdpro.New()
//	err := proc.AddParameter("path", cmdpro.Path, "--path", "--p")
//	if err != nil {
//		log.Fatal(err)
//	}
//	proc.SetHelpText("usage: mytool --path FILE")
//
//	if err := proc.ParseCommandLine(os.Args[1:]); err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(1)
//	}
//	if proc.AbortFlag() {
//		return // --help or --version already handled
//	}
//
//	value, err := proc.GetParameterValue("path")
//	if err == nil {
//		fmt.Println(value.Path())
//	}
//
// The library never terminates the process; malformed input is returned as
// an error for the caller to handle.
var New = core.New
