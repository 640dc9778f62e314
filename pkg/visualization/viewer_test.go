package visualization

import (
	"strings"
	"testing"

	"objmask/internal/fixtures"
	"objmask/pkg/geometry"
	"objmask/pkg/object"
)

func testScene() (*object.Collection, geometry.Extent) {
	objects := object.NewCollection(
		fixtures.Rectangle(0, 0, 2, 2),
		object.NewMaskAllOn(fixtures.Box(3, 1, 0, 2, 2, 2)),
	)
	return objects, geometry.Extent{X: 6, Y: 4, Z: 3}
}

// TestLabels verifies that each object is painted with its position plus one
func TestLabels(t *testing.T) {
	objects, scene := testScene()
	labels := NewViewer(objects, scene).Labels()

	if labels.Extent() != scene {
		t.Fatalf("Expected raster extent %v, got %v", scene, labels.Extent())
	}
	if got := labels.Count(1); got != 4 {
		t.Errorf("Expected 4 voxels of label 1, got %d", got)
	}
	if got := labels.Count(2); got != 8 {
		t.Errorf("Expected 8 voxels of label 2, got %d", got)
	}
	if got := labels.Get(geometry.Point3i{X: 4, Y: 2, Z: 1}); got != 2 {
		t.Errorf("Expected label 2 at (4,2,1), got %d", got)
	}
}

// TestLaterObjectsDrawnOnTop verifies overlap handling and clipping to the scene
func TestLaterObjectsDrawnOnTop(t *testing.T) {
	objects := object.NewCollection(
		fixtures.Rectangle(0, 0, 3, 3),
		fixtures.Rectangle(2, 2, 3, 3),
	)
	labels := NewViewer(objects, geometry.Extent{X: 4, Y: 4, Z: 1}).Labels()

	if got := labels.Get(geometry.Point3i{X: 2, Y: 2}); got != 2 {
		t.Errorf("Expected the later object at the overlap, got label %d", got)
	}
	if got := labels.Count(2); got != 4 {
		t.Errorf("Expected the second object clipped to 4 voxels, got %d", got)
	}
}

// TestExtractSlice verifies slice dimensions and grey levels along every axis
func TestExtractSlice(t *testing.T) {
	objects, scene := testScene()
	viewer := NewViewer(objects, scene)

	tests := []struct {
		axis          string
		position      int
		width, height int
		x, y          int
		expected      uint8
	}{
		{"z", 0, 6, 4, 1, 1, GreyLevel(1, 2)},
		{"z", 1, 6, 4, 1, 1, 0},
		{"Z", 1, 6, 4, 4, 2, 255},
		{"x", 3, 3, 4, 1, 2, 255},
		{"y", 1, 6, 3, 0, 0, GreyLevel(1, 2)},
	}
	for _, tt := range tests {
		img, err := viewer.ExtractSlice(tt.axis, tt.position)
		if err != nil {
			t.Fatalf("Failed to extract %s slice at %d: %v", tt.axis, tt.position, err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != tt.width || bounds.Dy() != tt.height {
			t.Errorf("Expected %s slice dimensions %dx%d, got %dx%d",
				tt.axis, tt.width, tt.height, bounds.Dx(), bounds.Dy())
		}
		if got := img.GrayAt(tt.x, tt.y).Y; got != tt.expected {
			t.Errorf("Expected %s slice %d value %d at (%d,%d), got %d",
				tt.axis, tt.position, tt.expected, tt.x, tt.y, got)
		}
	}
}

// TestExtractSliceErrors verifies invalid axes and positions are rejected
func TestExtractSliceErrors(t *testing.T) {
	objects, scene := testScene()
	viewer := NewViewer(objects, scene)

	cases := []struct {
		axis     string
		position int
	}{
		{"w", 0},
		{"x", -1},
		{"x", 6},
		{"y", 4},
		{"z", 3},
	}
	for _, c := range cases {
		if _, err := viewer.ExtractSlice(c.axis, c.position); err == nil {
			t.Errorf("Expected an error for axis %q position %d", c.axis, c.position)
		}
	}
}

// TestGreyLevel verifies levels are distinct and background stays black
func TestGreyLevel(t *testing.T) {
	if GreyLevel(0, 10) != 0 {
		t.Errorf("Expected background to be black")
	}
	seen := make(map[uint8]bool)
	for label := 1; label <= 255; label++ {
		level := GreyLevel(label, 255)
		if level == 0 {
			t.Fatalf("Label %d drawn as background", label)
		}
		if seen[level] {
			t.Fatalf("Grey level %d used twice", level)
		}
		seen[level] = true
	}
}

// TestExtractRegion verifies region extraction and its bounds checks
func TestExtractRegion(t *testing.T) {
	objects, scene := testScene()
	viewer := NewViewer(objects, scene)

	region, err := viewer.ExtractRegion(fixtures.Box(1, 1, 0, 3, 2, 2))
	if err != nil {
		t.Fatalf("Failed to extract region: %v", err)
	}
	if got := region.Get(geometry.Point3i{X: 0, Y: 0, Z: 0}); got != 1 {
		t.Errorf("Expected label 1 at the region corner, got %d", got)
	}
	if got := region.Get(geometry.Point3i{X: 2, Y: 1, Z: 1}); got != 2 {
		t.Errorf("Expected label 2 at (2,1,1) of the region, got %d", got)
	}

	if _, err := viewer.ExtractRegion(fixtures.Box(4, 0, 0, 3, 1, 1)); err == nil {
		t.Errorf("Expected an error for a region beyond the scene")
	}
	if _, err := viewer.ExtractRegion(fixtures.Box(0, 0, 0, 0, 1, 1)); err == nil {
		t.Errorf("Expected an error for an empty region")
	}
}

// TestRenderPlane verifies the text rendering of a plane
func TestRenderPlane(t *testing.T) {
	objects, scene := testScene()
	viewer := NewViewer(objects, scene)

	plane, err := viewer.RenderPlane(0)
	if err != nil {
		t.Fatalf("Failed to render plane: %v", err)
	}
	expected := strings.Join([]string{
		"11....",
		"11.22.",
		"...22.",
		"......",
	}, "\n") + "\n"
	if plane != expected {
		t.Errorf("Unexpected rendering:\n%s\nwant:\n%s", plane, expected)
	}

	if _, err := viewer.RenderPlane(3); err == nil {
		t.Errorf("Expected an error for a plane outside the scene")
	}
}
