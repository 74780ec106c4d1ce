package wgraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlProblem is the on-disk YAML shape of a Problem.
type yamlProblem struct {
	Nodes       int    `yaml:"nodes"`
	Source      int    `yaml:"source"`
	Destination int    `yaml:"destination"`
	Edges       []Edge `yaml:"edges"`
}

// Load reads a graph description from path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as the plain text format.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseText(f)
	}
}

// ParseText decodes the plain text format:
//
//	N
//	source destination
//	from to weight
//	...
//
// Fields are separated by any whitespace. Blank lines and lines starting
// with '#' are ignored. Every error wraps ErrSyntax or ErrNodeOutOfRange
// and names the offending line.
func ParseText(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)

	var (
		p      *Problem
		lineNo int
		header int // number of header lines consumed (0..2)
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch header {
		case 0:
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: want node count, got %d fields", ErrSyntax, lineNo, len(fields))
			}
			vals, err := atois(fields)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			g, err := New(vals[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p = &Problem{Graph: g}
			header++
		case 1:
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d: want \"source destination\", got %d fields", ErrSyntax, lineNo, len(fields))
			}
			vals, err := atois(fields)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			p.Source, p.Destination = vals[0], vals[1]
			header++
		default:
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: line %d: want \"from to weight\", got %d fields", ErrSyntax, lineNo, len(fields))
			}
			vals, err := atois(fields[:2])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			w, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			if err := p.Graph.AddEdge(vals[0], vals[1], w); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if header < 2 {
		return nil, fmt.Errorf("%w: missing header (node count and source/destination)", ErrSyntax)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// ParseYAML decodes a YAML graph description:
//
//	nodes: 3
//	source: 0
//	destination: 2
//	edges:
//	  - {from: 0, to: 1, weight: 1}
//	  - {from: 1, to: 2, weight: 2}
//
// Unknown keys are rejected.
func ParseYAML(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlProblem
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrSyntax)
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	g, err := New(doc.Nodes, WithEdgeCapacity(len(doc.Edges)))
	if err != nil {
		return nil, err
	}
	for i, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	p := &Problem{Graph: g, Source: doc.Source, Destination: doc.Destination}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// atois parses node indices and counts at the platform int size, so values
// that do not fit an int are rejected instead of truncated.
func atois(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, strconv.IntSize)
		if err != nil {
			return nil, err
		}
		out[i] = int(v)
	}

	return out, nil
}
