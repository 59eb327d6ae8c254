package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/types"
	"github.com/ghettovoice/gouri/internal/util"
)

// Host represents the host component of a URI together with its classification.
type Host = types.Host

// NewHost classifies the raw host string and returns the resulting Host value.
// See [types.NewHost].
func NewHost(raw string) Host { return types.NewHost(raw) }

// HostType classifies the host component of a URI.
type HostType = types.HostType

// Host classifications.
const (
	HostNone = types.HostNone
	HostIP   = types.HostIP
	HostIPv4 = types.HostIPv4
	HostIPv6 = types.HostIPv6
	HostName = types.HostName
)

// Component identifies one of the eight named parts of a URI.
type Component = types.Component

// URI components in canonical assembly order.
const (
	ComponentScheme   = types.ComponentScheme
	ComponentUser     = types.ComponentUser
	ComponentPass     = types.ComponentPass
	ComponentHost     = types.ComponentHost
	ComponentPort     = types.ComponentPort
	ComponentPath     = types.ComponentPath
	ComponentQuery    = types.ComponentQuery
	ComponentFragment = types.ComponentFragment
)

// AllComponents returns all components in canonical assembly order.
func AllComponents() []Component { return types.AllComponents() }

// RenderOptions contains options for rendering URIs: the component
// selection and per-call override values.
type RenderOptions = types.RenderOptions

// Overrides maps components to per-call replacement values.
type Overrides = map[Component]string

var (
	_ types.Renderer        = (*URI)(nil)
	_ types.Equalable       = (*URI)(nil)
	_ types.ValidFlag       = (*URI)(nil)
	_ types.Cloneable[*URI] = (*URI)(nil)
)

// URI is an immutable URI value object.
//
// A URI is constructed from a string by [Parse] or copied from an existing
// value by [URI.Clone]; its components are never modified afterwards.
// Use [Builder] for the mutable counterpart.
type URI struct {
	scheme   string
	user     string
	hasUser  bool
	pass     string
	hasPass  bool
	host     Host
	port     uint16
	hasPort  bool
	path     string
	query    string
	fragment string
}

// Parse parses a URI from the given input src (string or []byte).
//
// The RFC 3986 component split is delegated to [net/url.Parse]; the host is
// then classified by [NewHost], so IPv6 literals are stored in bracketed
// canonical form. Inputs that cannot be split, or that split into no
// components at all, fail with [ErrInvalidURI].
func Parse[T ~string | ~[]byte](src T) (*URI, error) {
	s := string(src)
	if util.TrimSP(s) == "" {
		return nil, errtrace.Wrap(newInvalidURIError(s, errEmptyInput))
	}

	pu, err := url.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(newInvalidURIError(s, err))
	}

	u := &URI{
		scheme:   pu.Scheme,
		host:     NewHost(pu.Hostname()),
		path:     pu.EscapedPath(),
		query:    pu.RawQuery,
		fragment: pu.EscapedFragment(),
	}
	if pu.Opaque != "" {
		u.path = pu.Opaque
	}
	if pu.User != nil {
		u.user, u.hasUser = pu.User.Username(), true
		u.pass, u.hasPass = pu.User.Password()
	}
	if p := pu.Port(); p != "" {
		port, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return nil, errtrace.Wrap(newInvalidURIError(s, err))
		}
		u.port, u.hasPort = uint16(port), true
	}

	if u.scheme == "" && u.host.IsZero() && u.path == "" {
		return nil, errtrace.Wrap(newInvalidURIError(s, errNoComponents))
	}
	return u, nil
}

// Scheme returns the URI scheme, or an empty string when absent.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// User returns the user component, or an empty string when absent.
func (u *URI) User() string {
	if u == nil {
		return ""
	}
	return u.user
}

// Pass returns the password, in case it is set, and a bool flag indicating
// whether it is set.
func (u *URI) Pass() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.pass, u.hasPass
}

// Host returns the host value. The zero Host marks an absent host.
func (u *URI) Host() Host {
	if u == nil {
		return Host{}
	}
	return u.host
}

// Hostname returns the canonical host text: IPv6 literals bracketed,
// everything else as classified. Empty when the host is absent.
func (u *URI) Hostname() string {
	if u == nil {
		return ""
	}
	return u.host.String()
}

// HostType returns the host classification.
func (u *URI) HostType() HostType {
	if u == nil {
		return HostNone
	}
	return u.host.Type()
}

// Port returns the port, in case it is set, and a bool flag indicating
// whether it is set.
func (u *URI) Port() (uint16, bool) {
	if u == nil {
		return 0, false
	}
	return u.port, u.hasPort
}

// Path returns the path component, or an empty string when absent.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns the raw query component, or an empty string when absent.
func (u *URI) Query() string {
	if u == nil {
		return ""
	}
	return u.query
}

// Fragment returns the fragment component, or an empty string when absent.
func (u *URI) Fragment() string {
	if u == nil {
		return ""
	}
	return u.fragment
}

// Clone returns a copy of the URI.
//
// The copy carries the precomputed host classification; cloning never
// re-runs [NewHost].
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.host = u.host.Clone()
	return &u2
}

// Builder returns a mutable copy of the URI.
// The copy carries the precomputed host classification.
func (u *URI) Builder() *Builder {
	if u == nil {
		return nil
	}
	return &Builder{
		Scheme:   u.scheme,
		User:     u.user,
		HasUser:  u.hasUser,
		Pass:     u.pass,
		HasPass:  u.hasPass,
		Host:     u.host.Clone(),
		Port:     u.port,
		HasPort:  u.hasPort,
		Path:     u.path,
		Query:    u.query,
		Fragment: u.fragment,
	}
}

// Equal compares this URI with another for equality.
// Schemes compare case-insensitively, hosts per [Host.Equal],
// all other components byte-wise.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return util.EqFold(u.scheme, other.scheme) &&
		u.user == other.user &&
		u.hasUser == other.hasUser &&
		u.pass == other.pass &&
		u.hasPass == other.hasPass &&
		u.host.Equal(other.host) &&
		u.port == other.port &&
		u.hasPort == other.hasPort &&
		u.path == other.path &&
		u.query == other.query &&
		u.fragment == other.fragment
}

// IsValid checks whether the URI carries at least one substantial component.
func (u *URI) IsValid() bool {
	return u != nil &&
		(util.TrimSP(u.scheme) != "" ||
			!u.host.IsZero() ||
			util.TrimSP(u.path) != "")
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}
