package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/mental-nv/floodline/pkg/engine"
	"github.com/mental-nv/floodline/pkg/voxel"
)

// SVGOptions configures the debug cross-section renderer.
type SVGOptions struct {
	CellSize   int    // Pixel size of one grid cell (default: 32)
	Margin     int    // Canvas margin in pixels (default: 40)
	ShowLegend bool   // Draw the tag/color legend
	Title      string // Optional title
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{CellSize: 32, Margin: 40, ShowLegend: true, Title: "Floodline cross-section"}
}

var tagColor = map[voxel.Tag]string{
	voxel.Empty:   "#0f1320",
	voxel.Solid:   "#4299e1",
	voxel.Wall:    "#718096",
	voxel.Bedrock: "#2d3748",
	voxel.Water:   "#2b6cb0",
	voxel.Ice:     "#90cdf4",
	voxel.Porous:  "#9c6644",
	voxel.Drain:   "#48bb78",
}

// ExportSVG renders one horizontal (X-Z) cross-section of sim's grid at the
// given Y level as an SVG debug image.
func ExportSVG(sim *engine.Simulation, y int, opts SVGOptions) ([]byte, error) {
	if opts.CellSize <= 0 {
		opts.CellSize = 32
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	size := sim.Grid.Size()
	if y < 0 || y >= size.Y {
		return nil, fmt.Errorf("export: y=%d out of bounds [0,%d)", y, size.Y)
	}

	headerH := 0
	if opts.Title != "" {
		headerH = 30
	}
	legendW := 0
	if opts.ShowLegend {
		legendW = 160
	}

	width := size.X*opts.CellSize + 2*opts.Margin + legendW
	height := size.Z*opts.CellSize + 2*opts.Margin + headerH

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(width/2, 20, opts.Title, "text-anchor:middle;font-size:16px;fill:#e2e8f0;font-family:sans-serif")
	}

	top := opts.Margin + headerH
	for x := 0; x < size.X; x++ {
		for z := 0; z < size.Z; z++ {
			cell := sim.Grid.Get(voxel.Int3{X: x, Y: y, Z: z})
			color, ok := tagColor[cell.Tag]
			if !ok {
				color = "#000000"
			}
			px := opts.Margin + x*opts.CellSize
			pz := top + z*opts.CellSize
			style := fmt.Sprintf("fill:%s;stroke:#000;stroke-width:1", color)
			if cell.Anchored {
				style = fmt.Sprintf("fill:%s;stroke:#f6e05e;stroke-width:2", color)
			}
			canvas.Rect(px, pz, opts.CellSize, opts.CellSize, style)
		}
	}

	if sim.ActivePiece != nil {
		for _, pos := range sim.ActivePiece.WorldVoxels() {
			if pos.Y != y {
				continue
			}
			px := opts.Margin + pos.X*opts.CellSize
			pz := top + pos.Z*opts.CellSize
			canvas.Rect(px, pz, opts.CellSize, opts.CellSize, "fill:#ed8936;stroke:#fff;stroke-width:2")
		}
	}

	if opts.ShowLegend {
		drawSVGLegend(canvas, opts.Margin+size.X*opts.CellSize+20, top, sim)
	}

	canvas.End()
	return buf.Bytes(), nil
}

func drawSVGLegend(canvas *svg.SVG, x, y int, sim *engine.Simulation) {
	canvas.Text(x, y, fmt.Sprintf("tick %d", sim.Counters.Tick), "font-size:12px;fill:#cbd5e0;font-family:sans-serif")
	canvas.Text(x, y+16, fmt.Sprintf("status %s", sim.Status), "font-size:12px;fill:#cbd5e0;font-family:sans-serif")
	canvas.Text(x, y+32, fmt.Sprintf("gravity %s", sim.Gravity), "font-size:12px;fill:#cbd5e0;font-family:sans-serif")

	entries := []struct {
		tag   voxel.Tag
		label string
	}{
		{voxel.Solid, "Solid"}, {voxel.Wall, "Wall"}, {voxel.Bedrock, "Bedrock"},
		{voxel.Water, "Water"}, {voxel.Ice, "Ice"}, {voxel.Porous, "Porous"}, {voxel.Drain, "Drain"},
	}
	for i, e := range entries {
		ey := y + 56 + i*18
		canvas.Rect(x, ey-10, 12, 12, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", tagColor[e.tag]))
		canvas.Text(x+18, ey, e.label, "font-size:11px;fill:#cbd5e0;font-family:sans-serif")
	}
}

// SaveSVG writes the rendered cross-section to path.
func SaveSVG(sim *engine.Simulation, y int, opts SVGOptions, path string) error {
	data, err := ExportSVG(sim, y, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
