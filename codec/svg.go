package codec

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/akmonengine/gjk2d/actor"
)

// SVGPolygon is a <polygon> element of an SVG document.
type SVGPolygon struct {
	// ID is the id attribute, possibly empty
	ID      string
	Polygon actor.Polygon
}

// DecodeSVG returns every <polygon> of the document, in document order.
// Transforms and other shapes are ignored.
func DecodeSVG(r io.Reader) ([]SVGPolygon, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidInput, "svg: %v", err)
	}

	elements := root.FindAll("polygon")
	polygons := make([]SVGPolygon, 0, len(elements))
	for i, element := range elements {
		polygon, err := parseSVGPoints(element.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "svg polygon %d", i)
		}
		polygons = append(polygons, SVGPolygon{ID: element.Attributes["id"], Polygon: polygon})
	}

	return polygons, nil
}

// parseSVGPoints parses the points attribute: coordinates separated by commas
// and/or whitespace, "1,2 3,4" or "1 2 3 4".
func parseSVGPoints(points string) (actor.Polygon, error) {
	fields := strings.Fields(strings.ReplaceAll(points, ",", " "))
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "polygon has no vertex")
	}
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "odd number of coordinates (%d)", len(fields))
	}

	polygon := make(actor.Polygon, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "vertex %d: x: %v", i/2, err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "vertex %d: y: %v", i/2, err)
		}

		point, err := checkFinite(mgl64.Vec2{x, y})
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %d", i/2)
		}
		polygon = append(polygon, point)
	}

	return polygon, nil
}
