package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/toomuat/tsp/tsp"
)

// Instance is a parsed TSPLIB file.
type Instance struct {
	Name           string
	Comment        string
	Type           string
	EdgeWeightType string

	// Dimension is the declared DIMENSION, or len(Cities) when the header omits it.
	Dimension int

	Cities []tsp.City
}

const (
	coordSection = "NODE_COORD_SECTION"
	endOfFile    = "EOF"
)

// Load opens path and parses it.
func Load(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, err
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return Instance{}, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Parse reads a TSPLIB instance from r.
func Parse(r io.Reader) (Instance, error) {
	var (
		inst     Instance
		inCoords bool
		lineNo   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == endOfFile {
			break
		}

		if inCoords {
			if isSectionHeader(line) {
				inCoords = false
				continue
			}
			c, err := parseCoord(line)
			if err != nil {
				return Instance{}, fmt.Errorf("%w %d: %v", ErrMalformedLine, lineNo, err)
			}
			inst.Cities = append(inst.Cities, c)
			continue
		}

		if strings.HasPrefix(line, coordSection) {
			inCoords = true
			continue
		}
		if isSectionHeader(line) {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			// Rows of a skipped section.
			continue
		}
		if err := inst.setHeader(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return Instance{}, fmt.Errorf("%w %d: %v", ErrMalformedLine, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return Instance{}, err
	}

	if len(inst.Cities) == 0 {
		return Instance{}, ErrNoCoordinates
	}
	if inst.Dimension == 0 {
		inst.Dimension = len(inst.Cities)
	}
	if inst.Dimension != len(inst.Cities) {
		return Instance{}, fmt.Errorf("%w: declared %d, read %d", ErrDimensionMismatch, inst.Dimension, len(inst.Cities))
	}

	return inst, nil
}

func (inst *Instance) setHeader(key, value string) error {
	switch strings.ToUpper(key) {
	case "NAME":
		inst.Name = value
	case "COMMENT":
		if inst.Comment != "" {
			inst.Comment += "\n"
		}
		inst.Comment += value
	case "TYPE":
		inst.Type = value
	case "EDGE_WEIGHT_TYPE":
		inst.EdgeWeightType = value
	case "DIMENSION":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("DIMENSION %q", value)
		}
		inst.Dimension = n
	}

	return nil
}

// parseCoord parses an "id x y" row.
func parseCoord(line string) (tsp.City, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return tsp.City{}, fmt.Errorf("want \"id x y\", got %d fields", len(fields))
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return tsp.City{}, fmt.Errorf("node id %q", fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("x %q", fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tsp.City{}, fmt.Errorf("y %q", fields[2])
	}

	return tsp.City{X: x, Y: y}, nil
}

// isSectionHeader reports whether line opens a TSPLIB data section.
func isSectionHeader(line string) bool {
	return strings.HasSuffix(strings.Fields(line)[0], "_SECTION")
}
