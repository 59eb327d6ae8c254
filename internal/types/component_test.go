package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gouri/internal/types"
)

func TestComponent_String(t *testing.T) {
	t.Parallel()

	want := []string{"scheme", "user", "pass", "host", "port", "path", "query", "fragment"}
	var got []string
	for _, c := range types.AllComponents() {
		got = append(got, c.String())
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("component names mismatch (-got +want):\n%s", diff)
	}
	if got := types.Component(200).String(); got != "unknown" {
		t.Errorf("Component(200).String() = %q, want %q", got, "unknown")
	}
}

func TestComponentSet(t *testing.T) {
	t.Parallel()

	s := types.NewComponentSet(types.ComponentScheme, types.ComponentHost, types.ComponentPort)
	for _, c := range []types.Component{types.ComponentScheme, types.ComponentHost, types.ComponentPort} {
		if !s.Has(c) {
			t.Errorf("s.Has(%v) = false, want true", c)
		}
	}
	for _, c := range []types.Component{types.ComponentUser, types.ComponentPass, types.ComponentPath, types.ComponentQuery, types.ComponentFragment} {
		if s.Has(c) {
			t.Errorf("s.Has(%v) = true, want false", c)
		}
	}

	if types.NewComponentSet().Has(types.ComponentScheme) {
		t.Error("empty set must contain nothing")
	}
	if types.NewComponentSet(types.Component(200)).Has(types.Component(200)) {
		t.Error("out-of-range components must be ignored")
	}

	all := types.AllComponentSet()
	for _, c := range types.AllComponents() {
		if !all.Has(c) {
			t.Errorf("all.Has(%v) = false, want true", c)
		}
	}
}

func TestRenderOptions_Selection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts *types.RenderOptions
		want types.ComponentSet
	}{
		{"nil options", nil, types.AllComponentSet()},
		{"nil components", &types.RenderOptions{}, types.AllComponentSet()},
		{"empty components", &types.RenderOptions{Components: []types.Component{}}, 0},
		{
			"subset",
			&types.RenderOptions{Components: []types.Component{types.ComponentHost}},
			types.NewComponentSet(types.ComponentHost),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			sel, _ := c.opts.Selection()
			if sel != c.want {
				t.Errorf("Selection() set = %b, want %b", sel, c.want)
			}
		})
	}
}
