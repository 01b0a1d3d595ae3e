package lanes

// DefaultStatus is assigned to every segment when it is added.
const DefaultStatus = "En servicio"

// Segment is a named stretch of bike lane (tramo).
type Segment struct {
	Name     string  `json:"name"`
	LengthKm float64 `json:"length_km"`
	Status   string  `json:"status"`
}

// ID implements registry.RegistryItem; segments are keyed by name.
func (s Segment) ID() string {
	return s.Name
}
