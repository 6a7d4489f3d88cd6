// internal/roster/identity.go
package roster

// Identity is what a slot tracks: one specific name, or the wildcard.
// The wildcard matches any observed name not claimed by an earlier
// slot. An explicit tag replaces the original empty-string sentinel.
type Identity struct {
	name     string
	wildcard bool
}

// Name returns the identity tracking exactly s.
func Name(s string) Identity {
	return Identity{name: s}
}

// Wildcard returns the identity matching any name.
func Wildcard() Identity {
	return Identity{wildcard: true}
}

// Matches reports whether an observed name belongs to this identity.
func (id Identity) Matches(name string) bool {
	return id.wildcard || id.name == name
}

func (id Identity) String() string {
	if id.wildcard {
		return "*"
	}
	return id.name
}
