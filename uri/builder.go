package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/types"
	"github.com/ghettovoice/gouri/internal/util"
)

var (
	_ types.Renderer            = (*Builder)(nil)
	_ types.Equalable           = (*Builder)(nil)
	_ types.ValidFlag           = (*Builder)(nil)
	_ types.Cloneable[*Builder] = (*Builder)(nil)
)

// Builder is the mutable counterpart of [URI].
//
// Every component is an exported, typed field, so there is no way to set an
// unknown component. The host travels as a [Host] value: assigning a new one
// replaces the text and the classification together, which keeps the
// bracket-canonicalization invariant without a separate reclassification
// step. Use [Builder.SetHost] to assign from a raw string.
//
// A Builder is not safe for concurrent mutation; synchronize externally or
// work on a [Builder.Clone].
type Builder struct {
	Scheme   string
	User     string
	HasUser  bool
	Pass     string
	HasPass  bool
	Host     Host
	Port     uint16
	HasPort  bool
	Path     string
	Query    string
	Fragment string
}

// ParseBuilder parses a URI from the given input src (string or []byte)
// into a mutable Builder. See [Parse].
func ParseBuilder[T ~string | ~[]byte](src T) (*Builder, error) {
	u, err := Parse(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u.Builder(), nil
}

// SetHost classifies the raw host string and assigns the result.
func (b *Builder) SetHost(raw string) *Builder {
	b.Host = NewHost(raw)
	return b
}

// SetUser assigns the user and marks it present.
// A present user renders even when empty, as in "http://:pass@host".
func (b *Builder) SetUser(user string) *Builder {
	b.User, b.HasUser = user, true
	return b
}

// ClearUser removes the user.
func (b *Builder) ClearUser() *Builder {
	b.User, b.HasUser = "", false
	return b
}

// SetPass assigns the password and marks it present.
// An empty present password still renders as "user:@host".
func (b *Builder) SetPass(pass string) *Builder {
	b.Pass, b.HasPass = pass, true
	return b
}

// ClearPass removes the password.
func (b *Builder) ClearPass() *Builder {
	b.Pass, b.HasPass = "", false
	return b
}

// SetPort assigns the port and marks it present.
func (b *Builder) SetPort(port uint16) *Builder {
	b.Port, b.HasPort = port, true
	return b
}

// ClearPort removes the port.
func (b *Builder) ClearPort() *Builder {
	b.Port, b.HasPort = 0, false
	return b
}

// URI returns an immutable copy of the builder's current state.
// The copy carries the precomputed host classification.
func (b *Builder) URI() *URI {
	if b == nil {
		return nil
	}
	u := URI(b.parts())
	u.host = u.host.Clone()
	return &u
}

// Clone returns a copy of the Builder.
// The copy carries the precomputed host classification.
func (b *Builder) Clone() *Builder {
	if b == nil {
		return nil
	}
	b2 := *b
	b2.Host = b.Host.Clone()
	return &b2
}

// Equal compares this Builder with another for equality,
// component-wise like [URI.Equal].
func (b *Builder) Equal(val any) bool {
	var other *Builder
	switch v := val.(type) {
	case Builder:
		other = &v
	case *Builder:
		other = v
	default:
		return false
	}

	if b == other {
		return true
	} else if b == nil || other == nil {
		return false
	}
	return types.IsEqual(b.URI(), other.URI())
}

// IsValid checks whether the Builder carries at least one substantial component.
func (b *Builder) IsValid() bool {
	return b != nil &&
		(util.TrimSP(b.Scheme) != "" ||
			!b.Host.IsZero() ||
			util.TrimSP(b.Path) != "")
}

func (b *Builder) parts() parts {
	return parts{
		scheme:   b.Scheme,
		user:     b.User,
		hasUser:  b.HasUser,
		pass:     b.Pass,
		hasPass:  b.HasPass,
		host:     b.Host,
		port:     b.Port,
		hasPort:  b.HasPort,
		path:     b.Path,
		query:    b.Query,
		fragment: b.Fragment,
	}
}

// RenderTo writes the builder's current state to the provided writer.
func (b *Builder) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if b == nil {
		return 0, nil
	}
	return errtrace.Wrap2(b.parts().renderTo(w, opts))
}

// Render returns the string representation of the builder's current state
// built from the selected components. Nil options select all components.
func (b *Builder) Render(opts *RenderOptions) string {
	if b == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	b.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the full canonical string representation of the builder's
// current state.
func (b *Builder) String() string {
	if b == nil {
		return ""
	}
	return b.Render(nil)
}

// MarshalText implements [encoding.TextMarshaler].
func (b *Builder) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (b *Builder) UnmarshalText(text []byte) error {
	b1, err := ParseBuilder(string(text))
	if err != nil {
		*b = Builder{}
		return errtrace.Wrap(err)
	}
	*b = *b1
	return nil
}

// Format implements fmt.Formatter for custom formatting of the Builder.
func (b *Builder) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			b.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, b.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(b.String()))
		return
	default:
		type hideMethods Builder
		type Builder hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Builder)(b))
		return
	}
}
