package config

// Model is the format-agnostic representation of a loaded map.
type Model struct {
	// Cities in declaration order. Order is significant: it is the listing
	// order, and each city's Neighbors order drives the default strategy.
	Cities []*City
	// Trips are named, pre-configured walk requests.
	Trips []*Trip
}

// City is a single node of the map with its ordered neighbor list.
type City struct {
	Name      string
	Neighbors []string
	// Source is a human-readable location of the declaration, e.g.
	// "map.hcl:3,1-9". Used only in error messages.
	Source string
}

// Trip is a named walk request declared alongside the map.
type Trip struct {
	Name     string
	Start    string
	Goal     string
	Strategy string // Optional; empty means the application default.
	Source   string
}

// Merge appends the cities and trips of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Cities = append(m.Cities, other.Cities...)
	m.Trips = append(m.Trips, other.Trips...)
}

// FindTrip returns the trip with the given name, or nil.
func (m *Model) FindTrip(name string) *Trip {
	for _, t := range m.Trips {
		if t.Name == name {
			return t
		}
	}
	return nil
}
