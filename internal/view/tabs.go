// Package view holds the small pieces of presentation state the site's
// sections share: tab groups, the testimonial carousel, and the event
// countdown. All of it is ephemeral per page view.
package view

// TabGroup tracks the single active key of a finite, statically known tab
// set. The zero-indexed first key is the initial state.
type TabGroup struct {
	keys   []string
	active int
}

// NewTabGroup builds a tab group over the given keys. At least one key is
// required; the first becomes active.
func NewTabGroup(keys ...string) *TabGroup {
	if len(keys) == 0 {
		panic("view: tab group needs at least one key")
	}
	return &TabGroup{keys: keys}
}

// Select activates the tab with the given key and reports whether the key was
// known. Unknown keys leave the active tab untouched.
func (g *TabGroup) Select(key string) bool {
	for i, k := range g.keys {
		if k == key {
			g.active = i
			return true
		}
	}
	return false
}

// Active returns the currently selected key.
func (g *TabGroup) Active() string {
	return g.keys[g.active]
}

// Keys returns the tab keys in display order.
func (g *TabGroup) Keys() []string {
	return g.keys
}
