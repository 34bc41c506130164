package codec

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/akmonengine/gjk2d/actor"
)

// Fixture is a named pair of polygons with an optional expected verdict.
type Fixture struct {
	Name   string
	A, B   actor.Polygon
	Expect *bool
}

type fixtureFile struct {
	Cases []fixtureCase `yaml:"cases"`
}

type fixtureCase struct {
	Name   string `yaml:"name"`
	A      any    `yaml:"a"`
	B      any    `yaml:"b"`
	Expect *bool  `yaml:"expect"`
}

// LoadFixtures reads a YAML (or JSON) fixture file:
//
//	cases:
//	  - name: reference
//	    a: [[4, 11], [4, 5], [9, 9]]
//	    b: [[5, 7], [7, 3], [10, 2], [12, 7]]
//	    expect: true
//
// Unknown keys are rejected. Unnamed cases are called "case N", from 1.
func LoadFixtures(r io.Reader) ([]Fixture, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file fixtureFile
	if err := decoder.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrInvalidInput, "empty fixture file")
		}
		return nil, errors.Wrapf(ErrInvalidInput, "fixture file: %v", err)
	}

	fixtures := make([]Fixture, 0, len(file.Cases))
	for i, c := range file.Cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}

		a, err := DecodePolygon(c.A)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: shape a", name)
		}
		b, err := DecodePolygon(c.B)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: shape b", name)
		}

		fixtures = append(fixtures, Fixture{Name: name, A: a, B: b, Expect: c.Expect})
	}

	return fixtures, nil
}
