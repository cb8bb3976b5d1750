// Package udf is the function table the host query engine binds to. The
// table is built once by NewTable and only read afterwards.
package udf

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/signalsfoundry/astro-kernel/core"
	"github.com/signalsfoundry/astro-kernel/internal/logging"
	"github.com/signalsfoundry/astro-kernel/model"
)

var (
	// ErrUnknownFunction is returned for a name absent from the table.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrArity is returned when a call passes the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrArgumentType is returned when an argument cannot bind to its parameter.
	ErrArgumentType = errors.New("argument type mismatch")
	// ErrDuplicateFunction is returned when two entries share a name.
	ErrDuplicateFunction = errors.New("duplicate function")
)

// Call outcomes reported to a Recorder.
const (
	OutcomeOK    = "ok"
	OutcomeNull  = "null"
	OutcomeError = "error"
)

// Param describes one positional parameter.
type Param struct {
	Name string
	Type Type
}

// Signature is the host-visible shape of a function. Schema names the
// result record for STRUCT-returning functions.
type Signature struct {
	Name        string
	Params      []Param
	Returns     Type
	Schema      string
	Description string
}

// Arity is the number of parameters.
func (s Signature) Arity() int { return len(s.Params) }

// Handler evaluates one row. Arguments are already checked for arity and
// type, and none is null. A domain violation returns Null(), nil.
type Handler func(args []Value) (Value, error)

type function struct {
	sig     Signature
	handler Handler
}

// CatalogInfo resolves catalog descriptors for catalog_info.
type CatalogInfo interface {
	Info(name string) model.CatalogDescriptor
}

// Recorder receives one observation per evaluated row.
type Recorder interface {
	ObserveCall(function, outcome string, elapsed time.Duration)
}

// BatchRecorder is implemented by recorders that also track batch sizes.
type BatchRecorder interface {
	ObserveBatch(function string, rows int)
}

// Options configures NewTable.
type Options struct {
	Catalog      CatalogInfo
	BatchWorkers int // goroutines per CallBatch; <= 1 evaluates inline
	Recorder     Recorder
	Logger       logging.Logger
}

// Table maps function names to signatures and handlers.
type Table struct {
	funcs    map[string]*function
	names    []string
	workers  int
	recorder Recorder
	log      logging.Logger
}

// NewTable builds the complete function table.
func NewTable(opts Options) (*Table, error) {
	t := &Table{
		funcs:    make(map[string]*function),
		workers:  opts.BatchWorkers,
		recorder: opts.Recorder,
		log:      opts.Logger,
	}
	if t.log == nil {
		t.log = logging.Noop()
	}

	var entries []*function
	entries = append(entries, constantFunctions()...)
	entries = append(entries, coordinateFunctions()...)
	entries = append(entries, photometryFunctions()...)
	entries = append(entries, cosmologyFunctions()...)
	entries = append(entries, bodyFunctions()...)
	entries = append(entries, orbitFunctions()...)
	entries = append(entries, sectorFunctions()...)
	entries = append(entries, catalogFunctions(opts.Catalog, t.Names)...)

	for _, f := range entries {
		if _, exists := t.funcs[f.sig.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFunction, f.sig.Name)
		}
		t.funcs[f.sig.Name] = f
		t.names = append(t.names, f.sig.Name)
	}
	sort.Strings(t.names)
	return t, nil
}

// Names lists every function name in sorted order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Lookup returns the signature registered under name.
func (t *Table) Lookup(name string) (Signature, bool) {
	f, ok := t.funcs[name]
	if !ok {
		return Signature{}, false
	}
	return f.sig, true
}

// Signatures lists every signature in name order.
func (t *Table) Signatures() []Signature {
	out := make([]Signature, 0, len(t.names))
	for _, n := range t.names {
		out = append(out, t.funcs[n].sig)
	}
	return out
}

// Call evaluates one row. Domain violations come back as Null() with a nil
// error; unknown functions, bad arguments and configuration errors are
// returned as errors.
func (t *Table) Call(ctx context.Context, name string, args ...Value) (Value, error) {
	f, ok := t.funcs[name]
	if !ok {
		return Null(), fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	v, err := t.eval(f, args)
	if err != nil {
		t.logger(ctx).Warn(ctx, "function call failed",
			logging.String("function", name),
			logging.String("error", err.Error()),
		)
	}
	return v, err
}

func (t *Table) eval(f *function, args []Value) (Value, error) {
	start := time.Now()
	v, err := f.invoke(args)
	if t.recorder != nil {
		outcome := OutcomeOK
		switch {
		case err != nil:
			outcome = OutcomeError
		case v.IsNull():
			outcome = OutcomeNull
		}
		t.recorder.ObserveCall(f.sig.Name, outcome, time.Since(start))
	}
	return v, err
}

func (f *function) invoke(args []Value) (Value, error) {
	if err := f.sig.check(args); err != nil {
		return Null(), err
	}
	for _, a := range args {
		if a.IsNull() {
			return Null(), nil
		}
	}
	v, err := f.handler(args)
	if err != nil {
		if core.IsDomainError(err) {
			return Null(), nil
		}
		return Null(), fmt.Errorf("%s: %w", f.sig.Name, err)
	}
	return v, nil
}

func (s Signature) check(args []Value) error {
	if len(args) != len(s.Params) {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, s.Name, len(s.Params), len(args))
	}
	for i, a := range args {
		if a.IsNull() {
			continue
		}
		if p := s.Params[i]; !accepts(p.Type, a.Type()) {
			return fmt.Errorf("%w: %s argument %d (%s) wants %s, got %s",
				ErrArgumentType, s.Name, i+1, p.Name, p.Type, a.Type())
		}
	}
	return nil
}

func (t *Table) logger(ctx context.Context) logging.Logger {
	return logging.LoggerFromContextOr(ctx, t.log)
}
