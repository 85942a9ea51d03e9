package qbe

import (
	"io"
	"strconv"
	"strings"
)

// writer accumulates the byte count of a sequence of writes and stops at
// the first error.
type writer struct {
	w     io.Writer
	total int64
	err   error
}

func (w *writer) str(s string) {
	if w.err != nil {
		return
	}
	n, err := io.WriteString(w.w, s)
	w.total += int64(n)
	w.err = err
}

func (w *writer) to(v io.WriterTo) {
	if w.err != nil {
		return
	}
	n, err := v.WriteTo(w.w)
	w.total += n
	w.err = err
}

func (w *writer) result() (int64, error) {
	return w.total, w.err
}

func (m *Module) WriteTo(w io.Writer) (int64, error) {
	out := &writer{w: w}
	for _, def := range m.Definitions {
		out.to(def)
		out.str("\n\n")
	}
	return out.result()
}

func (d *Data) WriteTo(w io.Writer) (int64, error) {
	out := &writer{w: w}
	out.to(d.Linkage)
	out.str("data ")
	out.to(d.Name)
	out.str(" = { ")
	for i, item := range d.Items {
		if i > 0 {
			out.str(", ")
		}
		out.to(item)
	}
	out.str(" }")
	return out.result()
}

func (lit StringLiteral) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, "b "+strconv.Quote(string(lit))+", b 0")
	return int64(n), err
}

func (f *Function) WriteTo(w io.Writer) (int64, error) {
	out := &writer{w: w}
	out.to(f.Linkage)
	out.str("function ")
	if f.ReturnType != nil && f.ReturnType != Void {
		out.to(f.ReturnType)
		out.str(" ")
	}
	out.str("$" + f.Name + "() {\n")
	for _, block := range f.Blocks {
		out.to(block)
		out.str("\n")
	}
	out.str("}")
	return out.result()
}

// WriteTo writes the linkage keywords followed by a space, or nothing for
// the default linkage.
func (l Linkage) WriteTo(w io.Writer) (int64, error) {
	var linkage []string
	if l.Export() {
		linkage = append(linkage, "export")
	}
	if l.Thread() {
		linkage = append(linkage, "thread")
	}
	if len(linkage) == 0 {
		return 0, nil
	}
	n, err := io.WriteString(w, strings.Join(linkage, " ")+" ")
	return int64(n), err
}

func (b *Block) WriteTo(w io.Writer) (int64, error) {
	out := &writer{w: w}
	out.str("@" + b.Name + "\n")
	for i, inst := range b.Instructions {
		if i > 0 {
			out.str("\n")
		}
		out.to(inst)
	}
	return out.result()
}

func (t *Temporary) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, "%"+t.name)
	return int64(n), err
}

func (t SimpleType) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(t))
	return int64(n), err
}

func (g *Global) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, "$"+g.name)
	return int64(n), err
}

func (c Constant) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, strconv.FormatInt(int64(c), 10))
	return int64(n), err
}

func (f Float) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, "d_"+strconv.FormatFloat(float64(f), 'g', -1, 64))
	return int64(n), err
}

func (r *Ret) WriteTo(w io.Writer) (int64, error) {
	out := &writer{w: w}
	out.str("\tret")
	if r.Value != nil {
		out.str(" ")
		out.to(r.Value)
	}
	return out.result()
}

func (c *Call) WriteTo(w io.Writer) (int64, error) {
	out := &writer{w: w}
	out.str("\t")
	if c.Out != nil {
		out.to(c.Out)
		out.str(" =")
		out.to(c.Type)
		out.str(" ")
	}
	out.str("call ")
	out.to(c.Base)
	out.str("(")
	for i, arg := range c.Args {
		if i > 0 {
			out.str(", ")
		}
		if c.Variadic > 0 && i == c.Variadic {
			out.str("..., ")
		}
		out.to(arg.Type())
		out.str(" ")
		out.to(arg)
	}
	out.str(")")
	return out.result()
}

func (t *threeAddress) WriteTo(w io.Writer) (int64, error) {
	out := &writer{w: w}
	out.str("\t")
	out.to(t.out)
	out.str(" =")
	out.to(t.typ)
	out.str(" " + t.name + " ")
	out.to(t.a)
	if t.b != nil {
		out.str(", ")
		out.to(t.b)
	}
	return out.result()
}
