package cutter

import (
	"fmt"
	"runtime"
	"sync"

	geojson "github.com/paulmach/go.geojson"
	"golang.org/x/sync/errgroup"
)

// A Pipeline cuts every feature of a collection concurrently, preserving
// feature order and attributes.
type Pipeline struct {
	cutter  *Cutter
	workers int
}

func NewPipeline(c *Cutter) *Pipeline {
	return &Pipeline{
		cutter:  c,
		workers: runtime.NumCPU(),
	}
}

// Workers caps the number of concurrent cut workers.
func (p *Pipeline) Workers(n int) *Pipeline {
	if n > 0 {
		p.workers = n
	}
	return p
}

// Run cuts all features of fc. A feature whose geometry cannot be cut is
// passed through unchanged with a feature-skipped diagnostic; only invalid
// cut lines abort the run.
func (p *Pipeline) Run(fc *geojson.FeatureCollection) (*geojson.FeatureCollection, []Diagnostic, error) {
	for i, l := range p.cutter.Lines {
		if err := l.validate(); err != nil {
			return nil, nil, fmt.Errorf("cut line %d: %w", i, err)
		}
	}

	results := make([]*geojson.Feature, len(fc.Features))
	var mu sync.Mutex
	var diags []Diagnostic

	var g errgroup.Group
	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for i := range fc.Features {
			jobs <- i
		}
		return nil
	})
	for w := 0; w < p.workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				f := fc.Features[i]
				geom, d, err := p.cutter.Cut(f.Geometry)
				if err != nil {
					geom = f.Geometry
					d = append(d, Diagnostic{
						Code:    DiagSkipped,
						Message: fmt.Sprintf("feature %d: %v", i, err),
					})
				}
				out := geojson.NewFeature(geom)
				out.ID = f.ID
				out.Properties = f.Properties
				out.BoundingBox = f.BoundingBox
				results[i] = out
				if len(d) > 0 {
					mu.Lock()
					diags = append(diags, d...)
					mu.Unlock()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	out := geojson.NewFeatureCollection()
	for _, f := range results {
		out.AddFeature(f)
	}
	return out, diags, nil
}
