package uri

import (
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/types"
	"github.com/ghettovoice/gouri/internal/util"
)

// parts is a snapshot of the component fields shared by the rendering logic
// of [URI] and [Builder].
type parts struct {
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

// renderTo assembles the selected components into a URI string.
//
// Components are emitted in canonical order with their fixed separators:
// "scheme:", then the authority "//[user[:pass]@]host[:port]" when the
// resolved host is present, then the path verbatim, then "?query" and
// "#fragment". An overridden host is classified fresh for this call only;
// when the resolved host is absent the whole authority is suppressed,
// user, pass and port included.
func (p parts) renderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	sel, ov := opts.Selection()

	host := p.host
	if v, ok := ov[ComponentHost]; ok {
		host = NewHost(v)
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if scheme, ok := p.resolve(ComponentScheme, sel, ov); ok {
		cw.Fprint(scheme, ":")
	}
	if sel.Has(ComponentHost) && !host.IsZero() {
		cw.WriteString("//")
		if user, ok := p.resolveUser(sel, ov); ok {
			cw.WriteString(user)
			if pass, ok := p.resolvePass(sel, ov); ok {
				cw.Fprint(":", pass)
			}
			cw.WriteString("@")
		}
		cw.WriteString(host.String())
		if port, ok := p.resolve(ComponentPort, sel, ov); ok {
			cw.Fprint(":", port)
		}
	}
	if path, ok := p.resolve(ComponentPath, sel, ov); ok {
		cw.WriteString(path)
	}
	if query, ok := p.resolve(ComponentQuery, sel, ov); ok {
		cw.Fprint("?", query)
	}
	if frag, ok := p.resolve(ComponentFragment, sel, ov); ok {
		cw.Fprint("#", frag)
	}
	return errtrace.Wrap2(cw.Result())
}

// resolve yields the emission value for a component: nothing when the
// component is not selected, the override value when one is given, the
// stored field otherwise. An empty resolved value counts as absent and
// suppresses the component and its separator.
func (p parts) resolve(c Component, sel types.ComponentSet, ov Overrides) (string, bool) {
	if !sel.Has(c) {
		return "", false
	}
	if v, ok := ov[c]; ok {
		return v, v != ""
	}

	var v string
	switch c {
	case ComponentScheme:
		v = p.scheme
	case ComponentPort:
		if p.hasPort {
			v = strconv.FormatUint(uint64(p.port), 10)
		}
	case ComponentPath:
		v = p.path
	case ComponentQuery:
		v = p.query
	case ComponentFragment:
		v = p.fragment
	}
	return v, v != ""
}

// resolveUser is the user counterpart of resolve: an empty user still
// resolves when the userinfo section was present, so "http://:pass@host"
// keeps its empty user and the password with it.
func (p parts) resolveUser(sel types.ComponentSet, ov Overrides) (string, bool) {
	if !sel.Has(ComponentUser) {
		return "", false
	}
	if v, ok := ov[ComponentUser]; ok {
		return v, v != ""
	}
	return p.user, p.user != "" || p.hasUser
}

// resolvePass is the password counterpart of resolve: a stored password
// resolves on its presence flag, so "user:@host" keeps its empty password.
func (p parts) resolvePass(sel types.ComponentSet, ov Overrides) (string, bool) {
	if !sel.Has(ComponentPass) {
		return "", false
	}
	if v, ok := ov[ComponentPass]; ok {
		return v, v != ""
	}
	return p.pass, p.hasPass
}

func (u *URI) parts() parts {
	return parts{
		scheme:   u.scheme,
		user:     u.user,
		hasUser:  u.hasUser,
		pass:     u.pass,
		hasPass:  u.hasPass,
		host:     u.host,
		port:     u.port,
		hasPort:  u.hasPort,
		path:     u.path,
		query:    u.query,
		fragment: u.fragment,
	}
}

// RenderTo writes the URI to the provided writer.
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(u.parts().renderTo(w, opts))
}

// Render returns the string representation of the URI built from the
// selected components. Nil options select all components.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the full canonical string representation of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}
