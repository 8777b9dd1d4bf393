// Package snapshot round-trips particle groups and solver metadata to disk.
//
// A dump holds every group's per-particle arrays, its constants and its
// output-array selection, plus a flat mapping of scalar solver parameters
// (elapsed time, timestep size). Two on-disk layouts are readable: the
// legacy version-1 layout (all properties, no constants section) and the
// current version-2 layout (output-selected properties, constants and the
// selection preserved). Payloads are gzip-compressed JSON.
package snapshot

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/lagsim/internal/particles"
)

const (
	// VersionLegacy is the historical layout: every property always
	// dumped, no constants.
	VersionLegacy = 1

	// VersionCurrent stores the output selection and constants, so a
	// partial dump round-trips exactly the selected arrays.
	VersionCurrent = 2
)

// ErrUnknownVersion indicates a dump whose version this codec does not
// understand. The wrapped message carries the version seen.
var ErrUnknownVersion = errors.New("snapshot: unknown format version")

type groupRecord struct {
	Count        int                  `json:"count"`
	Properties   map[string][]float64 `json:"properties"`
	Constants    map[string][]float64 `json:"constants,omitempty"`
	OutputArrays []string             `json:"output_arrays,omitempty"`
}

type fileRecord struct {
	Version    int                    `json:"version"`
	SolverData map[string]float64     `json:"solver_data"`
	Arrays     map[string]groupRecord `json:"arrays"`
}

// Snapshot is the in-memory form of a loaded dump.
type Snapshot struct {
	Version    int
	SolverData map[string]float64
	Groups     map[string]*particles.Group
}

// Group returns a loaded group by name.
func (s *Snapshot) Group(name string) (*particles.Group, bool) {
	g, ok := s.Groups[name]
	return g, ok
}

// Dump writes the current-format snapshot. For each group the
// output-selected properties are persisted (all properties when the
// selection is empty) along with its constants and the selection itself.
func Dump(path string, groups []*particles.Group, solverData map[string]float64) error {
	rec := fileRecord{
		Version:    VersionCurrent,
		SolverData: solverData,
		Arrays:     make(map[string]groupRecord, len(groups)),
	}

	for _, g := range groups {
		names := g.OutputArrays()
		if len(names) == 0 {
			names = g.PropertyNames()
		}

		props := make(map[string][]float64, len(names))
		for _, name := range names {
			buf, err := g.Property(name)
			if err != nil {
				return fmt.Errorf("snapshot: dumping group %q: %w", g.Name(), err)
			}
			props[name] = buf
		}

		consts := make(map[string][]float64)
		for _, name := range g.ConstantNames() {
			c, err := g.Constant(name)
			if err != nil {
				return fmt.Errorf("snapshot: dumping group %q: %w", g.Name(), err)
			}
			consts[name] = c
		}

		rec.Arrays[g.Name()] = groupRecord{
			Count:        g.Len(),
			Properties:   props,
			Constants:    consts,
			OutputArrays: g.OutputArrays(),
		}
	}

	return write(path, rec)
}

// DumpV1 writes the legacy layout: every property of every group, no
// constants, no output selection.
func DumpV1(path string, groups []*particles.Group, solverData map[string]float64) error {
	rec := fileRecord{
		Version:    VersionLegacy,
		SolverData: solverData,
		Arrays:     make(map[string]groupRecord, len(groups)),
	}

	for _, g := range groups {
		props := make(map[string][]float64)
		for _, name := range g.PropertyNames() {
			props[name] = g.MustProperty(name)
		}
		rec.Arrays[g.Name()] = groupRecord{Count: g.Len(), Properties: props}
	}

	return write(path, rec)
}

// Load reads a dump in either supported layout. The reconstructed groups
// hold exactly the dumped property names: all names for version 1, the
// output-selected names for version 2 (plus constants restored as
// constants). An unrecognized version fails fast.
func Load(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("snapshot: reading %s: %w", path, err)
	}
	defer zr.Close()

	var rec fileRecord
	if err := json.NewDecoder(zr).Decode(&rec); err != nil {
		return nil, fmt.Errorf("snapshot: decoding %s: %w", path, err)
	}

	switch rec.Version {
	case VersionLegacy, VersionCurrent:
	default:
		return nil, fmt.Errorf("%w: %d in %s", ErrUnknownVersion, rec.Version, path)
	}

	snap := &Snapshot{
		Version:    rec.Version,
		SolverData: rec.SolverData,
		Groups:     make(map[string]*particles.Group, len(rec.Arrays)),
	}

	for name, gr := range rec.Arrays {
		g := particles.NewGroup(name, gr.Count)
		for prop, values := range gr.Properties {
			if err := g.AddPropertyWith(prop, values); err != nil {
				return nil, fmt.Errorf("snapshot: loading group %q: %w", name, err)
			}
		}
		if rec.Version == VersionCurrent {
			for cname, values := range gr.Constants {
				g.SetConstant(cname, values...)
			}
			if len(gr.OutputArrays) > 0 {
				g.SetOutputArrays(gr.OutputArrays)
			}
		}
		snap.Groups[name] = g
	}

	return snap, nil
}

func write(path string, rec fileRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	zw := gzip.NewWriter(file)
	if err := json.NewEncoder(zw).Encode(rec); err != nil {
		zw.Close()
		return fmt.Errorf("snapshot: encoding %s: %w", path, err)
	}
	return zw.Close()
}
