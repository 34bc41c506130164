// Package codec converts external vertex data into polygons.
//
// Every element must be a pair of finite numbers. Anything else is reported as
// an error matching ErrInvalidInput, with the position of the faulty value.
package codec

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/akmonengine/gjk2d/actor"
)

// ErrInvalidInput is matched by every decoding error of the package.
var ErrInvalidInput = errors.New("invalid input")

// DecodePoint converts a decoded [x, y] value (as produced by encoding/json or
// yaml.v3 into an any) to a point.
func DecodePoint(value any) (mgl64.Vec2, error) {
	switch v := value.(type) {
	case mgl64.Vec2:
		return checkFinite(v)
	case [2]float64:
		return checkFinite(mgl64.Vec2(v))
	case []float64:
		if len(v) != 2 {
			return mgl64.Vec2{}, errors.Wrapf(ErrInvalidInput, "expected 2 coordinates, got %d", len(v))
		}
		return checkFinite(mgl64.Vec2{v[0], v[1]})
	case []any:
		if len(v) != 2 {
			return mgl64.Vec2{}, errors.Wrapf(ErrInvalidInput, "expected 2 coordinates, got %d", len(v))
		}
		x, err := toFloat(v[0])
		if err != nil {
			return mgl64.Vec2{}, errors.Wrap(err, "x")
		}
		y, err := toFloat(v[1])
		if err != nil {
			return mgl64.Vec2{}, errors.Wrap(err, "y")
		}
		return checkFinite(mgl64.Vec2{x, y})
	default:
		return mgl64.Vec2{}, errors.Wrapf(ErrInvalidInput, "expected an [x, y] pair, got %T", value)
	}
}

// DecodePolygon converts a decoded list of [x, y] values to a polygon.
// An empty list is invalid.
func DecodePolygon(value any) (actor.Polygon, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidInput, "expected a list of vertices, got %T", value)
	}
	if len(items) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "polygon has no vertex")
	}

	polygon := make(actor.Polygon, len(items))
	for i, item := range items {
		point, err := DecodePoint(item)
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %d", i)
		}
		polygon[i] = point
	}

	return polygon, nil
}

// ParsePolygon parses a YAML or JSON list of pairs, e.g. "[[4, 11], [4, 5], [9, 9]]".
func ParsePolygon(text string) (actor.Polygon, error) {
	var value any
	if err := yaml.Unmarshal([]byte(text), &value); err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "%q: %v", text, err)
	}

	return DecodePolygon(value)
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	default:
		return 0, errors.Wrapf(ErrInvalidInput, "expected a number, got %T", value)
	}
}

func checkFinite(point mgl64.Vec2) (mgl64.Vec2, error) {
	for _, c := range point {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return mgl64.Vec2{}, errors.Wrapf(ErrInvalidInput, "non finite coordinate in %v", point)
		}
	}

	return point, nil
}
