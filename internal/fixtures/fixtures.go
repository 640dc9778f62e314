// Package fixtures builds synthetic masks and scenes for tests and for the
// masktool bench command.
package fixtures

import (
	"golang.org/x/exp/rand"

	"objmask/pkg/geometry"
	"objmask/pkg/object"
)

// Box is shorthand for a bounding box from corner and extent components.
func Box(x, y, z, ex, ey, ez int) geometry.BoundingBox {
	return geometry.NewBoundingBox(geometry.Point3i{X: x, Y: y, Z: z}, geometry.Extent{X: ex, Y: ey, Z: ez})
}

// Rectangle is a single-slice mask at z=0 with every voxel on.
func Rectangle(x, y, ex, ey int) *object.Mask {
	return object.NewMaskAllOn(Box(x, y, 0, ex, ey, 1))
}

// Checkerboard tiles cols x rows adjacent rectangles of cellX x cellY
// voxels, starting at corner, so that neighbours share borders without
// overlapping. Cells are ordered row by row.
func Checkerboard(corner geometry.Point3i, cols, rows, cellX, cellY int) *object.Collection {
	c := object.NewCollection()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c.Add(object.NewMaskAllOn(Box(
				corner.X+col*cellX, corner.Y+row*cellY, corner.Z,
				cellX, cellY, 1,
			)))
		}
	}
	return c
}

// Ellipse is a mask over box whose on-voxels lie inside the ellipse
// inscribed in each z-slice of the box.
func Ellipse(box geometry.BoundingBox) *object.Mask {
	m := object.NewMask(box)
	rx, ry := float64(box.Extent.X)/2, float64(box.Extent.Y)/2
	for z := 0; z < box.Extent.Z; z++ {
		for y := 0; y < box.Extent.Y; y++ {
			for x := 0; x < box.Extent.X; x++ {
				dx := (float64(x) + 0.5 - rx) / rx
				dy := (float64(y) + 0.5 - ry) / ry
				if dx*dx+dy*dy <= 1 {
					_ = m.SetOn(box.Corner.Add(geometry.Point3i{X: x, Y: y, Z: z}))
				}
			}
		}
	}
	return m
}

// RandomRectangles places n all-on boxes inside scene, each side between 1
// and maxSide voxels. The same seed always gives the same collection.
func RandomRectangles(seed uint64, n int, scene geometry.Extent, maxSide int) *object.Collection {
	r := rand.New(rand.NewSource(seed))
	c := object.NewCollection()
	for i := 0; i < n; i++ {
		ex := 1 + r.Intn(min(maxSide, scene.X))
		ey := 1 + r.Intn(min(maxSide, scene.Y))
		ez := 1 + r.Intn(min(maxSide, scene.Z))
		c.Add(object.NewMaskAllOn(Box(
			r.Intn(scene.X-ex+1), r.Intn(scene.Y-ey+1), r.Intn(scene.Z-ez+1),
			ex, ey, ez,
		)))
	}
	return c
}
