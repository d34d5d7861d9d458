package derive

import (
	"math"

	"github.com/chayilhub/chayil/internal/domain"
)

// Sector describes one circular sector of the wheel-of-life chart.
// Angles are degrees with 0° pointing up, increasing clockwise.
type Sector struct {
	Name       string
	Score      int
	StartAngle float64
	EndAngle   float64
	Radius     float64
}

// Point is a 2D coordinate in the chart's coordinate space.
type Point struct {
	X float64
	Y float64
}

// WheelSectors maps the ordered category list onto equal angular spans,
// each with a radius proportional to its score. Only the raw scores are
// ever persisted; geometry is recomputed on every score change.
func WheelSectors(categories []domain.WheelCategory, maxRadius float64) []Sector {
	if len(categories) == 0 {
		return nil
	}
	span := 360.0 / float64(len(categories))
	sectors := make([]Sector, len(categories))
	for i, cat := range categories {
		sectors[i] = Sector{
			Name:       cat.Name,
			Score:      cat.Score,
			StartAngle: float64(i) * span,
			EndAngle:   float64(i+1) * span,
			Radius:     float64(cat.Score) / float64(domain.WheelScoreMax) * maxRadius,
		}
	}
	return sectors
}

// SectorPoint converts an angle and radius to chart coordinates around the
// given center, using the same up-is-zero clockwise convention.
func SectorPoint(center Point, angleDegrees, radius float64) Point {
	rad := (angleDegrees - 90) * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}
