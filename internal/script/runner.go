package script

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/g-m-twostay/treap/Queues"
	"github.com/g-m-twostay/treap/Trees"
)

// Runner applies operations to Tree and writes one result per operation
// to Out.
type Runner struct {
	Tree   *Trees.Treap[int]
	Out    io.Writer
	Log    *slog.Logger
	Sketch bool // print with Treap.Sketch instead of Treap.String
	Color  bool // colour results even when Out is not a terminal

	yes, no *color.Color
}

// Stats counts what a Run did.
type Stats struct {
	Ops, Inserted, Deleted, Found int
}

func (r *Runner) result(b bool) string {
	if r.yes == nil {
		r.yes, r.no = color.New(color.FgGreen), color.New(color.FgRed)
		if r.Color {
			r.yes.EnableColor()
			r.no.EnableColor()
		} else {
			r.yes.DisableColor()
			r.no.DisableColor()
		}
	}
	if b {
		return r.yes.Sprint("true")
	}
	return r.no.Sprint("false")
}

func (r *Runner) dump() string {
	if r.Sketch {
		return r.Tree.Sketch()
	}
	return r.Tree.String()
}

func (r *Runner) apply(op Op, st *Stats) error {
	var ok bool
	switch op.Kind {
	case Add:
		if op.HasPriority {
			ok = r.Tree.InsertPriority(op.Key, op.Priority)
		} else {
			ok = r.Tree.Insert(op.Key)
		}
		if ok {
			st.Inserted++
		}
	case Delete:
		if ok = r.Tree.Remove(op.Key); ok {
			st.Deleted++
		}
	case Find:
		var err error
		if ok, err = r.Tree.Contains(op.Key); err != nil {
			return err
		}
		if ok {
			st.Found++
		}
	case Print:
		r.Log.Debug("print", slog.Int("line", op.Line), slog.Uint64("size", uint64(r.Tree.Size())))
		_, err := fmt.Fprintln(r.Out, r.dump())
		return err
	default:
		return fmt.Errorf("%w %v", ErrUnknownOp, op.Kind)
	}
	r.Log.Debug(op.Kind.String(), slog.Int("line", op.Line), slog.Int("key", op.Key), slog.Bool("result", ok))
	_, err := fmt.Fprintf(r.Out, "%s %d: %s\n", op.Kind, op.Key, r.result(ok))
	return err
}

// Run drains q in order. It stops before the next operation once ctx is
// done and returns ctx.Err().
func (r *Runner) Run(ctx context.Context, q *Queues.ArrayQueue[Op]) (Stats, error) {
	var st Stats
	if r.Log == nil {
		r.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	for !q.Empty() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		op, err := q.Pop()
		if err != nil {
			return st, err
		}
		if err = r.apply(op, &st); err != nil {
			return st, fmt.Errorf("line %d: %w", op.Line, err)
		}
		st.Ops++
	}
	r.Log.Info("script finished",
		slog.Int("ops", st.Ops),
		slog.Int("inserted", st.Inserted),
		slog.Int("deleted", st.Deleted),
		slog.Int("found", st.Found),
		slog.Uint64("size", uint64(r.Tree.Size())),
		slog.Uint64("depth", uint64(r.Tree.MaxDepth())),
	)
	return st, nil
}
