// Package typespec binds textual type descriptors such as "u16",
// "list<string>" or "set<i32>" to concrete codecs, so that values given as
// strings can be encoded and decoded without compile-time types.
package typespec

import (
	"github.com/pkg/errors"
	"nop/codec"
	"sort"
	"strings"
)

var (
	ErrInvalidDescriptor = errors.New("invalid type descriptor")
	ErrUnknownType       = errors.New("unknown type")
	ErrInvalidValue      = errors.New("invalid value")
	ErrArity             = errors.New("wrong number of values")
)

type Kind string

const (
	KindScalar    Kind = "scalar"
	KindList      Kind = "list"
	KindSet       Kind = "set"
	KindHashSet   Kind = "hashset"
	KindLinkedSet Kind = "linkedset"
)

// Type is a parsed descriptor.
type Type struct {
	kind Kind
	elem string
	b    binder
}

func Parse(desc string) (*Type, error) {
	desc = strings.TrimSpace(desc)
	kind, elem := KindScalar, desc
	if open := strings.IndexByte(desc, '<'); open >= 0 {
		if !strings.HasSuffix(desc, ">") {
			return nil, errors.Wrapf(ErrInvalidDescriptor, "%q", desc)
		}
		kind = Kind(strings.TrimSpace(desc[:open]))
		elem = strings.TrimSpace(desc[open+1 : len(desc)-1])
		if kind == "" || kind == KindScalar || strings.ContainsAny(elem, "<>") {
			return nil, errors.Wrapf(ErrInvalidDescriptor, "%q", desc)
		}
	}

	entry, ok := scalars[elem]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%q", elem)
	}
	var bind func() binder
	switch kind {
	case KindScalar:
		bind = entry.scalar
	case KindList:
		bind = entry.list
	case KindSet:
		bind = entry.sorted
	case KindHashSet:
		bind = entry.hash
	case KindLinkedSet:
		bind = entry.linked
	default:
		return nil, errors.Wrapf(ErrUnknownType, "container %q", kind)
	}
	if bind == nil {
		return nil, errors.Wrapf(ErrUnknownType, "%s of %s", kind, elem)
	}
	return &Type{
		kind: kind,
		elem: elem,
		b:    bind(),
	}, nil
}

func MustParse(desc string) *Type {
	t, err := Parse(desc)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the canonical form of the descriptor.
func (t *Type) String() string {
	if t.kind == KindScalar {
		return t.elem
	}
	return string(t.kind) + "<" + t.elem + ">"
}

func (t *Type) Kind() Kind {
	return t.kind
}

// Elem returns the scalar name, which for a scalar type is the type itself.
func (t *Type) Elem() string {
	return t.elem
}

// Encode parses args and returns their encoding. Scalar types take exactly
// one argument; containers take any number.
func (t *Type) Encode(args []string) ([]byte, error) {
	return t.b.marshal(args)
}

// EncodeTo is Encode into a caller-supplied sink.
func (t *Type) EncodeTo(w codec.Writer, args []string) error {
	return t.b.write(w, args)
}

// Decode decodes exactly one value from data and renders it, one string per
// element in encoding order.
func (t *Type) Decode(data []byte) ([]string, error) {
	return t.b.unmarshal(data)
}

// DecodeFrom decodes one value from r.
func (t *Type) DecodeFrom(r codec.Reader) ([]string, error) {
	return t.b.read(r)
}

// Names lists every descriptor Parse accepts.
func Names() []string {
	var out []string
	for name, entry := range scalars {
		for kind, bind := range map[Kind]func() binder{
			KindScalar:    entry.scalar,
			KindList:      entry.list,
			KindSet:       entry.sorted,
			KindHashSet:   entry.hash,
			KindLinkedSet: entry.linked,
		} {
			if bind == nil {
				continue
			}
			if kind == KindScalar {
				out = append(out, name)
			} else {
				out = append(out, string(kind)+"<"+name+">")
			}
		}
	}
	sort.Strings(out)
	return out
}
