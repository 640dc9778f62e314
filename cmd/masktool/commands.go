package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"objmask/internal/fixtures"
	"objmask/pkg/geometry"
	"objmask/pkg/object"
	"objmask/pkg/scale"
	"objmask/pkg/spatial"
	"objmask/pkg/visualization"
)

// scene builds the synthetic collection described by the configuration, or
// a checkerboard of cells when cells is positive.
func (o *options) scene(cells int) *object.Collection {
	if cells > 0 {
		side := max(1, min(o.cfg.Scene.Width, o.cfg.Scene.Height)/cells)
		return fixtures.Checkerboard(geometry.Point3i{}, cells, cells, side, side)
	}
	return fixtures.RandomRectangles(o.cfg.Scene.Seed, o.cfg.Scene.Objects, o.cfg.SceneExtent(), o.cfg.Scene.MaxSide)
}

// volumes lists the number of on-voxels of every mask.
func volumes(c *object.Collection) []float64 {
	out := make([]float64, c.Size())
	for i, m := range c.Masks() {
		out[i] = float64(m.NumberVoxelsOn())
	}
	return out
}

func newScaleCommand(o *options) *cobra.Command {
	var (
		cells  int
		render int
	)
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Scale a synthetic scene collectively and report how each object was scaled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			objects := o.scene(cells)
			opts, err := o.cfg.ScaleOptions(o.log)
			if err != nil {
				return err
			}
			factor := o.cfg.ScaleFactor()

			start := time.Now()
			res, err := scale.Collective(objects, factor, opts)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			collective := 0
			for i := 0; i < res.Size(); i++ {
				if res.Collective(i) {
					collective++
				}
			}
			before, beforeStd := stat.MeanStdDev(volumes(objects), nil)
			after := volumes(res.Scaled())
			o.log.WithFields(logrus.Fields{
				"objects":     res.Size(),
				"collective":  collective,
				"independent": res.Size() - collective,
				"elapsed":     elapsed.String(),
			}).Info("scaled scene")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scale factor:            %v\n", factor)
			fmt.Fprintf(out, "Objects:                 %d (%d collective, %d independent)\n", res.Size(), collective, res.Size()-collective)
			fmt.Fprintf(out, "Volume before (mean/sd): %.2f / %.2f\n", before, beforeStd)
			fmt.Fprintf(out, "Volume after (mean/sd):  %.2f / %.2f\n", stat.Mean(after, nil), stat.StdDev(after, nil))
			fmt.Fprintf(out, "Elapsed:                 %v\n", elapsed)

			if render < 0 {
				return nil
			}
			box, err := res.Scaled().BoundingBox()
			if err != nil {
				return err
			}
			viewer := visualization.NewViewer(res.Scaled(), geometry.Extent{
				X: box.CornerMaxExclusive().X, Y: box.CornerMaxExclusive().Y, Z: box.CornerMaxExclusive().Z,
			})
			plane, err := viewer.RenderPlane(render)
			if err != nil {
				return err
			}
			fmt.Fprint(out, plane)
			return nil
		},
	}
	cmd.Flags().IntVar(&cells, "checkerboard", 0, "use a checkerboard of N x N adjacent cells instead of random rectangles")
	cmd.Flags().IntVar(&render, "render", -1, "print the scaled z-plane with this index as text")
	return cmd
}

func newSeparateCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "separate",
		Short: "Group a synthetic scene into spatially separate clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			objects := o.scene(0)

			start := time.Now()
			idx := spatial.NewIndex(objects, o.cfg.IndexOptions(o.log))
			clusters := idx.SpatiallySeparate()
			elapsed := time.Since(start)

			sizes := make([]float64, len(clusters))
			largest := 0
			for i, c := range clusters {
				sizes[i] = float64(c.Size())
				largest = max(largest, c.Size())
			}
			mean, std := stat.MeanStdDev(sizes, nil)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Objects:                  %d\n", objects.Size())
			fmt.Fprintf(out, "Clusters:                 %d (largest %d)\n", len(clusters), largest)
			fmt.Fprintf(out, "Cluster size (mean/sd):   %.2f / %.2f\n", mean, std)
			fmt.Fprintf(out, "Intersecting box pairs:   %d\n", idx.IntersectionGraph().Edges().Len())
			fmt.Fprintf(out, "Elapsed:                  %v\n", elapsed)
			return nil
		},
	}
}
