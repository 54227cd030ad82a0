package physics

import (
	"fmt"

	"github.com/san-kum/wanderer/internal/dynamo"
	"gopkg.in/yaml.v3"
)

type StartMode string

const (
	StartRandom StartMode = "random"
	StartCenter StartMode = "center"
	StartPoint  StartMode = "point"
)

// StartPosition is a placement policy. Point is only read in StartPoint mode.
//
// In yaml it is either the scalar "random" or "center", or a mapping {x, y}.
type StartPosition struct {
	Mode  StartMode
	Point dynamo.Vec2
}

func RandomStart() StartPosition { return StartPosition{Mode: StartRandom} }
func CenterStart() StartPosition { return StartPosition{Mode: StartCenter} }

func PointStart(x, y float64) StartPosition {
	return StartPosition{Mode: StartPoint, Point: dynamo.Vec2{X: x, Y: y}}
}

func (s StartPosition) String() string {
	if s.Mode == StartPoint {
		return fmt.Sprintf("%.0f,%.0f", s.Point.X, s.Point.Y)
	}
	return string(s.Mode)
}

// ParseStartPosition accepts "random", "center" or "x,y".
func ParseStartPosition(s string) (StartPosition, error) {
	switch StartMode(s) {
	case StartRandom, StartCenter:
		return StartPosition{Mode: StartMode(s)}, nil
	}
	var x, y float64
	if _, err := fmt.Sscanf(s, "%g,%g", &x, &y); err != nil {
		return StartPosition{}, fmt.Errorf("unknown start position: %q", s)
	}
	return PointStart(x, y), nil
}

func (s StartPosition) Valid() bool {
	switch s.Mode {
	case StartRandom, StartCenter:
		return true
	case StartPoint:
		return s.Point.IsValid()
	}
	return false
}

func (s StartPosition) MarshalYAML() (any, error) {
	if s.Mode == StartPoint {
		return s.Point, nil
	}
	return string(s.Mode), nil
}

func (s *StartPosition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		mode := StartMode(node.Value)
		if mode != StartRandom && mode != StartCenter {
			return fmt.Errorf("line %d: unknown start position %q", node.Line, node.Value)
		}
		*s = StartPosition{Mode: mode}
		return nil
	case yaml.MappingNode:
		var p dynamo.Vec2
		if err := node.Decode(&p); err != nil {
			return err
		}
		*s = StartPosition{Mode: StartPoint, Point: p}
		return nil
	}
	return fmt.Errorf("line %d: start position must be a scalar or a mapping", node.Line)
}

// Place computes the starting position inside a container. An explicit point
// is returned verbatim and is not checked against the container.
func Place(src dynamo.Source, pos StartPosition, containerW, containerH, moverW, moverH float64) dynamo.Vec2 {
	switch pos.Mode {
	case StartCenter:
		return dynamo.Vec2{X: (containerW - moverW) / 2, Y: (containerH - moverH) / 2}
	case StartPoint:
		return pos.Point
	default:
		x := src.Float64() * (containerW - moverW)
		y := src.Float64() * (containerH - moverH)
		return dynamo.Vec2{X: x, Y: y}
	}
}
