package cmd

import (
	"flag"

	"github.com/etnz/underwriting"
	"github.com/etnz/underwriting/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the application, built from the
// flags of every subcommand.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) { root.Flags[f.Name] = predictFlag("", f) })

	var names predict.Set
	for _, g := range groups() {
		for _, c := range g.commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: map[string]complete.Predictor{}, Args: predictArgs(c.Name())}
			fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = predictFlag(c.Name(), f) })
			root.Sub[c.Name()] = sub
			names = append(names, c.Name())
		}
	}
	root.Sub["help"] = &complete.Command{Args: names}
	return root
}

func predictArgs(command string) complete.Predictor {
	switch command {
	case "new":
		return predict.Set{"loan", "waterfall", "deal"}
	case "topic":
		names, _ := docs.List()
		return predict.Set(append(names, "*"))
	case "size", "depreciation", "costseg", "exchange":
		return predict.Nothing
	default:
		return predict.Files("*")
	}
}

func predictFlag(command string, f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch {
	case f.Name == "format":
		return predict.Set{FormatMarkdown, FormatRaw, FormatJSON, FormatHTML}
	case f.Name == "env-file", f.Name == "s":
		return predict.Files("*")
	case f.Name == "var":
		return predict.Set(underwriting.SensitivityVariables())
	case command == "size" && f.Name == "type":
		return predict.Set{string(underwriting.PermanentLoan), string(underwriting.ConstructionLoan), string(underwriting.BridgeLoan)}
	case command == "costseg" && f.Name == "type":
		return predict.Set{
			string(underwriting.Multifamily), string(underwriting.Office), string(underwriting.Retail),
			string(underwriting.Industrial), string(underwriting.Hospitality), string(underwriting.SelfStorage),
			string(underwriting.MixedUse), string(underwriting.OtherProperty),
		}
	default:
		return predict.Something
	}
}
