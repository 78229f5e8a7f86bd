package frames

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates one frame.
type Summary struct {
	Key             int
	Points          int
	MeanFertility   float64
	MeanLife        float64
	WeightedLife    float64 // population-weighted life expectancy
	TotalPopulation int64
}

// Summary computes aggregate statistics over the frame, skipping NaN values.
func (f *Frame) Summary() Summary {
	s := Summary{Key: f.Key, Points: len(f.Points)}

	var fert, life, lifeW, weights []float64
	for _, p := range f.Points {
		s.TotalPopulation += p.Obs.Population
		if !math.IsNaN(p.Obs.Fertility) {
			fert = append(fert, p.Obs.Fertility)
		}
		if !math.IsNaN(p.Obs.LifeExpectancy) {
			life = append(life, p.Obs.LifeExpectancy)
			if p.Obs.Population > 0 {
				lifeW = append(lifeW, p.Obs.LifeExpectancy)
				weights = append(weights, float64(p.Obs.Population))
			}
		}
	}

	s.MeanFertility = mean(fert, nil)
	s.MeanLife = mean(life, nil)
	s.WeightedLife = mean(lifeW, weights)
	return s
}

func mean(x, weights []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, weights)
}

// Trend returns the summary of every frame in key order.
func (c *Collection) Trend() []Summary {
	out := make([]Summary, 0, c.Len())
	c.Each(func(f *Frame) {
		out = append(out, f.Summary())
	})
	return out
}
