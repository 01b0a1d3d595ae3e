// Package lanes tracks named bike-lane segments, their length in kilometers and
// their operational status, and renders reports over them.
//
// Segments are kept in insertion order. Adding a name that already exists
// replaces its length, resets its status to DefaultStatus and keeps its
// original position.
package lanes

import (
	"strings"

	apperrors "carril-bici/internal/pkg/errors"
	"carril-bici/pkg/registry"
)

var (
	// ErrInvalidArgument matches errors returned for a blank name or a
	// non-positive length.
	ErrInvalidArgument = apperrors.Sentinel(apperrors.ErrCodeInvalidParam)
	// ErrNotFound matches errors returned for names that were never added.
	ErrNotFound = apperrors.Sentinel(apperrors.ErrCodeNotFound)
)

// Registry owns the set of segments. Each method is atomic; a
// read-then-write sequence across calls needs external coordination.
type Registry struct {
	segments registry.Registry[Segment]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		segments: registry.NewRegistry[Segment](),
	}
}

// Add inserts or replaces the segment name with the given length and resets
// its status to DefaultStatus.
func (r *Registry) Add(name string, lengthKm float64) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewError(apperrors.ErrCodeInvalidParam, "El nombre del tramo no puede estar vacío")
	}
	// !(x > 0) also rejects NaN.
	if !(lengthKm > 0) {
		return apperrors.NewError(apperrors.ErrCodeInvalidParam, "La longitud debe ser mayor que cero")
	}

	if err := r.segments.Register(Segment{Name: name, LengthKm: lengthKm, Status: DefaultStatus}); err != nil {
		return apperrors.WrapError(apperrors.ErrCodeInternalErr, "No se pudo registrar el tramo", err)
	}
	return nil
}

// UpdateStatus replaces the status of an existing segment verbatim.
func (r *Registry) UpdateStatus(name, status string) error {
	updated := r.segments.Modify(name, func(seg Segment) Segment {
		seg.Status = status
		return seg
	})
	if !updated {
		return notFound(name)
	}
	return nil
}

// ChangeStatus is the old name of UpdateStatus.
//
// Deprecated: use UpdateStatus.
func (r *Registry) ChangeStatus(name, status string) error {
	return r.UpdateStatus(name, status)
}

// Status returns the current status of the segment name.
func (r *Registry) Status(name string) (string, error) {
	seg, ok := r.segments.Get(name)
	if !ok {
		return "", notFound(name)
	}
	return seg.Status, nil
}

// Get returns a copy of the segment name.
func (r *Registry) Get(name string) (Segment, error) {
	seg, ok := r.segments.Get(name)
	if !ok {
		return Segment{}, notFound(name)
	}
	return seg, nil
}

// Contains reports whether name has been added.
func (r *Registry) Contains(name string) bool {
	return r.segments.Contains(name)
}

// Len returns the number of segments.
func (r *Registry) Len() int {
	return r.segments.Len()
}

// List returns the segments in insertion order.
func (r *Registry) List() []Segment {
	return r.segments.List()
}

// Segments returns a snapshot of name -> length in km. The map is a copy;
// writing to it does not affect the registry.
func (r *Registry) Segments() map[string]float64 {
	list := r.segments.List()
	out := make(map[string]float64, len(list))
	for _, seg := range list {
		out[seg.Name] = seg.LengthKm
	}
	return out
}

// TotalLength returns the sum of all segment lengths in km.
func (r *Registry) TotalLength() float64 {
	return sumLengths(r.segments.List())
}

func sumLengths(list []Segment) float64 {
	total := 0.0
	for _, seg := range list {
		total += seg.LengthKm
	}
	return total
}

func notFound(name string) error {
	return apperrors.NewErrorWithDetails(apperrors.ErrCodeNotFound, "El tramo indicado no existe", name)
}
