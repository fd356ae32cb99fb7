package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*choiceValue)(nil)

// choiceValue is a lowercased string flag restricted to a closed set.
type choiceValue struct {
	value   string
	choices []string
	valid   func(string) bool
}

// newChoiceValue accepts values for which valid reports true. choices is
// listed in the error for anything else.
func newChoiceValue(choices []string, valid func(string) bool) *choiceValue {
	return &choiceValue{choices: choices, valid: valid}
}

func (c *choiceValue) String() string { return c.value }

func (c *choiceValue) Set(s string) error {
	s = strings.ToLower(s)
	if !c.valid(s) {
		return fmt.Errorf("invalid choice %q (choose from %s)", s, strings.Join(c.choices, ", "))
	}
	c.value = s
	return nil
}

func (c *choiceValue) Type() string { return "string" }

// optionalChoice registers a choice flag that may be given without a value,
// in which case it takes def.
func optionalChoice(cmd *cobra.Command, v *choiceValue, name, shorthand, def, usage string) {
	f := cmd.Flags().VarPF(v, name, shorthand, usage)
	f.NoOptDefVal = def
}

// commandFlags returns the local and persistent flags of cmd in one set.
func commandFlags(cmd *cobra.Command) *pflag.FlagSet {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.AddFlagSet(cmd.Flags())
	fs.AddFlagSet(cmd.PersistentFlags())
	return fs
}

// takesOptionalValue reports whether f has a value that may be omitted.
func takesOptionalValue(f *pflag.Flag) bool {
	return f != nil && f.NoOptDefVal != "" && f.Value.Type() != "bool"
}

// joinOptionalValues binds the value of an optional-value flag to the flag
// so that pflag does not fall back to the flag's default:
//
//	--license mit   -> --license=mit
//	-l mit, -ql mit -> -l=mit, -ql=mit
//	-lmit           -> -l=mit
//
// A following token that starts with "-" is never consumed.
func joinOptionalValues(args []string, fs *pflag.FlagSet) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		var optional bool
		switch {
		case strings.HasPrefix(arg, "--"):
			optional = !strings.Contains(arg, "=") && takesOptionalValue(fs.Lookup(arg[2:]))
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			arg, optional = splitShortCluster(arg, fs)
		}

		if optional && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, arg+"="+args[i+1])
			i++
			continue
		}
		out = append(out, arg)
	}
	return out
}

// splitShortCluster walks a shorthand cluster such as "-ql" the way pflag
// does. When an optional-value flag carries its value inline ("-lmit") the
// value is joined with "=". The bool result reports whether the cluster ends
// in an optional-value flag that still lacks a value.
func splitShortCluster(arg string, fs *pflag.FlagSet) (string, bool) {
	for i := 1; i < len(arg); i++ {
		f := fs.ShorthandLookup(arg[i : i+1])
		switch {
		case f == nil:
			return arg, false
		case takesOptionalValue(f):
			rest := arg[i+1:]
			if rest == "" {
				return arg, true
			}
			if strings.HasPrefix(rest, "=") {
				return arg, false
			}
			return arg[:i+1] + "=" + rest, false
		case f.NoOptDefVal == "":
			// The rest of the cluster is this flag's value.
			return arg, false
		}
	}
	return arg, false
}

// helpIndex returns the position of -h/--help in args, or -1.
func helpIndex(args []string) int {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "-h" || arg == "--help" {
			return i
		}
	}
	return -1
}

// helpTopic returns the lowercased token following -h/--help in args, or "".
func helpTopic(args []string) string {
	i := helpIndex(args)
	if i < 0 || i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
		return ""
	}
	return strings.ToLower(args[i+1])
}
