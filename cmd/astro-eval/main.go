// Command astro-eval evaluates one kernel function from the command line:
//
//	astro-eval angular_separation 0 0 1 1
//	astro-eval -list
//
// Arguments are parsed according to the function's parameter types; the
// literal NULL passes a missing value.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/signalsfoundry/astro-kernel/catalog"
	"github.com/signalsfoundry/astro-kernel/internal/udf"
)

func main() {
	list := flag.Bool("list", false, "print every function signature and exit")
	catalogs := flag.String("catalogs", "", "JSON file with extra catalog descriptors")
	flag.Parse()

	if err := run(context.Background(), os.Stdout, *list, *catalogs, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "astro-eval:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, list bool, catalogFile string, args []string) error {
	provider, err := newProvider(catalogFile)
	if err != nil {
		return err
	}
	table, err := udf.NewTable(udf.Options{Catalog: provider})
	if err != nil {
		return err
	}

	if list {
		for _, sig := range table.Signatures() {
			fmt.Fprintln(out, formatSignature(sig))
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: astro-eval [-list] <function> [args...]")
	}

	sig, ok := table.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", udf.ErrUnknownFunction, args[0])
	}
	values, err := parseArgs(sig, args[1:])
	if err != nil {
		return err
	}
	v, err := table.Call(ctx, sig.Name, values...)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v.String())
	return nil
}

func newProvider(path string) (*catalog.Provider, error) {
	if path == "" {
		return catalog.New()
	}
	ds, err := catalog.LoadJSONFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.New(ds...)
}

func parseArgs(sig udf.Signature, raw []string) ([]udf.Value, error) {
	if len(raw) != sig.Arity() {
		return nil, fmt.Errorf("%w: %s", udf.ErrArity, formatSignature(sig))
	}
	out := make([]udf.Value, len(raw))
	for i, s := range raw {
		if strings.EqualFold(s, "null") {
			out[i] = udf.Null()
			continue
		}
		switch p := sig.Params[i]; p.Type {
		case udf.TypeDouble:
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s=%q", udf.ErrArgumentType, p.Name, s)
			}
			out[i] = udf.Double(f)
		case udf.TypeBigInt:
			n, err := strconv.ParseInt(s, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s=%q", udf.ErrArgumentType, p.Name, s)
			}
			out[i] = udf.BigInt(n)
		default:
			out[i] = udf.Varchar(s)
		}
	}
	return out, nil
}

func formatSignature(sig udf.Signature) string {
	params := make([]string, len(sig.Params))
	for i, p := range sig.Params {
		params[i] = p.Name + " " + p.Type.String()
	}
	ret := sig.Returns.String()
	if sig.Schema != "" {
		ret += "(" + sig.Schema + ")"
	}
	return fmt.Sprintf("%s(%s) -> %s", sig.Name, strings.Join(params, ", "), ret)
}
