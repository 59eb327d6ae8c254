package types

// Component identifies one of the eight named parts of a URI.
type Component uint8

const (
	ComponentScheme Component = iota
	ComponentUser
	ComponentPass
	ComponentHost
	ComponentPort
	ComponentPath
	ComponentQuery
	ComponentFragment

	numComponents
)

var componentNames = [numComponents]string{
	"scheme", "user", "pass", "host", "port", "path", "query", "fragment",
}

// String returns the lower-case component name.
func (c Component) String() string {
	if c >= numComponents {
		return "unknown"
	}
	return componentNames[c]
}

// AllComponents returns all components in canonical assembly order.
func AllComponents() []Component {
	return []Component{
		ComponentScheme,
		ComponentUser,
		ComponentPass,
		ComponentHost,
		ComponentPort,
		ComponentPath,
		ComponentQuery,
		ComponentFragment,
	}
}

// ComponentSet is a membership set over [Component] values.
type ComponentSet uint8

// NewComponentSet returns a set containing the given components.
// Out-of-range values are ignored.
func NewComponentSet(cs ...Component) ComponentSet {
	var s ComponentSet
	for _, c := range cs {
		if c < numComponents {
			s |= 1 << c
		}
	}
	return s
}

// AllComponentSet returns a set containing every component.
func AllComponentSet() ComponentSet {
	return 1<<numComponents - 1
}

// Has reports whether the set contains the given component.
func (s ComponentSet) Has(c Component) bool {
	return c < numComponents && s&(1<<c) != 0
}
