package types

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"

	"github.com/ghettovoice/gouri/internal/util"
)

// HostType classifies the host component of a URI.
//
// HostIPv4 and HostIPv6 both carry the HostIP bit, so `typ&HostIP != 0`
// (or [HostType.IsIP]) matches any IP literal. HostIP is never assigned
// on its own.
type HostType uint8

const (
	// HostNone marks an absent host.
	HostNone HostType = 0
	// HostIP is the superclass bit shared by HostIPv4 and HostIPv6.
	HostIP HostType = 1 << 0
	// HostIPv4 marks a dotted-decimal IPv4 literal.
	HostIPv4 HostType = HostIP | 1<<1
	// HostIPv6 marks an IPv6 literal, stored in bracketed canonical form.
	HostIPv6 HostType = HostIP | 1<<2
	// HostName marks any present host that is not an IP literal.
	HostName HostType = 1 << 3
)

// IsIP reports whether the type is HostIPv4 or HostIPv6.
func (t HostType) IsIP() bool { return t&HostIP != 0 }

// String returns the lower-case type name.
func (t HostType) String() string {
	switch t {
	case HostNone:
		return "none"
	// NewHost never yields a bare HostIP, but hand-built masks still print.
	case HostIP:
		return "ip"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostName:
		return "name"
	default:
		return "unknown"
	}
}

// Host is a container for the host component of a URI together with its
// classification. The zero Host represents an absent host.
//
// Classification happens once, in [NewHost]. Replacing a host means
// constructing a new Host value, so the text and the type can never disagree.
type Host struct {
	text string // IPv6 literals are stored unbracketed
	ip   net.IP
	typ  HostType
}

// NewHost classifies the raw host string and returns the resulting Host value.
//
// An empty string yields the zero Host (type [HostNone]).
// A dotted-decimal IPv4 literal yields [HostIPv4] with the text kept as given.
// Otherwise one pair of surrounding brackets is stripped, if present, and the
// remainder is tested as an IPv6 literal, yielding [HostIPv6]; the canonical
// text is the unbracketed literal, rendered bracketed by [Host.String].
// Anything else yields [HostName] with the text kept as given.
// NewHost never fails: unparseable input is simply a name.
func NewHost(raw string) Host {
	if raw == "" {
		return Host{}
	}

	if strings.IndexByte(raw, ':') < 0 && strings.IndexByte(raw, '[') < 0 {
		if ip := net.ParseIP(raw); ip != nil {
			if v4 := ip.To4(); v4 != nil {
				return Host{text: raw, ip: v4, typ: HostIPv4}
			}
		}
	}

	lit := raw
	if len(lit) >= 2 && lit[0] == '[' && lit[len(lit)-1] == ']' {
		lit = lit[1 : len(lit)-1]
	}
	if strings.IndexByte(lit, ':') >= 0 {
		if ip := net.ParseIP(lit); ip != nil {
			return Host{text: lit, ip: ip, typ: HostIPv6}
		}
	}

	return Host{text: raw, typ: HostName}
}

// Text returns the host text without brackets, as classified.
func (h Host) Text() string { return h.text }

// IP returns the parsed IP representation when the host is an IP literal, otherwise nil.
func (h Host) IP() net.IP { return h.ip }

// Type returns the host classification.
func (h Host) Type() HostType { return h.typ }

// String returns the canonical textual form: IPv6 literals bracketed,
// everything else as classified.
func (h Host) String() string {
	if h.typ == HostIPv6 {
		return "[" + h.text + "]"
	}
	return h.text
}

// Format implements fmt.Formatter to support custom formatting verbs for Host values.
func (h Host) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, h.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(h.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, h.String())
			return
		}

		type hideMethods Host
		type Host hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Host(h))
		return
	}
}

// Clone returns a deep copy of the host including the underlying IP slice.
func (h Host) Clone() Host {
	h.ip = slices.Clone(h.ip)
	return h
}

// Equal reports whether the host equals the provided value, accepting Host and *Host.
// Names compare case-insensitively, IP literals by IP value.
func (h Host) Equal(val any) bool {
	var other Host
	switch v := val.(type) {
	case Host:
		other = v
	case *Host:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if h.typ != other.typ {
		return false
	}
	if h.ip != nil {
		return h.ip.Equal(other.ip)
	}
	return util.EqFold(h.text, other.text)
}

// IsZero reports whether the host is absent.
func (h Host) IsZero() bool { return h.typ == HostNone }

// MarshalText encodes the host into its canonical textual form.
func (h Host) MarshalText() (text []byte, err error) {
	return []byte(h.String()), nil
}

// UnmarshalText classifies a textual host into the receiver. It never fails.
func (h *Host) UnmarshalText(text []byte) error {
	*h = NewHost(string(text))
	return nil
}
