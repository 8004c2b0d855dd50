// Package gjf reads Gaussian input files. The reader is deliberately
// primitive: it extracts the title section, the Cartesian atomic
// coordinates and, when present, the connectivity section, which is all
// the rendering pipeline needs. Z-matrix coordinates are not supported.
package gjf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tschijnmo/ccpoviz/internal/structure"
)

// lattSymbol marks a translation-vector row in the coordinate section.
const lattSymbol = "Tv"

// ParseFile reads a Gaussian input file from disk.
func ParseFile(name string) (*structure.Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open Gaussian input file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a Gaussian input file. The file consists of sections
// separated by blank lines: the route section, the title, the
// charge/multiplicity line followed by the coordinates, and an optional
// connectivity section.
func Parse(r io.Reader) (*structure.Structure, error) {
	sections, err := splitSections(r)
	if err != nil {
		return nil, err
	}
	if len(sections) < 3 {
		return nil, fmt.Errorf("no atomic coordinate section in the input")
	}

	atoms, lattVecs, err := parseCoords(sections[2])
	if err != nil {
		return nil, err
	}

	var bonds []structure.Bond
	if len(sections) > 3 {
		bonds, err = parseConnectivity(sections[3])
		if err != nil {
			return nil, err
		}
	}

	return &structure.Structure{
		Title:    sections[1],
		Atoms:    atoms,
		Bonds:    bonds,
		LattVecs: lattVecs,
	}, nil
}

// splitSections groups the stripped lines of the input into its
// blank-line-separated sections.
func splitSections(r io.Reader) ([][]string, error) {
	var sections [][]string
	var current []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				sections = append(sections, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading Gaussian input file: %w", err)
	}
	if len(current) > 0 {
		sections = append(sections, current)
	}
	return sections, nil
}

// parseCoords parses the coordinate section. The first line carries the
// charge and spin multiplicity and is skipped; each following line is an
// element symbol and three Cartesian components. Rows with the Tv symbol
// become lattice vectors rather than atoms.
func parseCoords(lines []string) ([]structure.Atom, []structure.Vec3, error) {
	var atoms []structure.Atom
	var lattVecs []structure.Vec3

	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, nil, fmt.Errorf("corrupt atomic coordinate in gjf file: %q", line)
		}

		var coord structure.Vec3
		for i := 0; i < 3; i++ {
			f, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("corrupt atomic coordinate in gjf file: %w", err)
			}
			coord[i] = f
		}

		if fields[0] == lattSymbol {
			lattVecs = append(lattVecs, coord)
			continue
		}
		atoms = append(atoms, structure.Atom{Symbol: fields[0], Coord: coord})
	}
	return atoms, lattVecs, nil
}

// parseConnectivity parses the connectivity section. Each line starts
// with a one-based atom index followed by neighbour/order pairs; the
// indices are converted to the zero-based form used everywhere else.
func parseConnectivity(lines []string) ([]structure.Bond, error) {
	var bonds []structure.Bond

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		beg, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("corrupt connectivity in gjf file: %w", err)
		}

		rest := fields[1:]
		if len(rest)%2 != 0 {
			return nil, fmt.Errorf("corrupt connectivity in gjf file: %q", line)
		}
		for i := 0; i < len(rest); i += 2 {
			end, err := strconv.Atoi(rest[i])
			if err != nil {
				return nil, fmt.Errorf("corrupt connectivity in gjf file: %w", err)
			}
			order, err := strconv.ParseFloat(rest[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("corrupt connectivity in gjf file: %w", err)
			}
			bonds = append(bonds, structure.Bond{Beg: beg - 1, End: end - 1, Order: order})
		}
	}
	return bonds, nil
}
