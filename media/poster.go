package media

import (
	"fmt"
	"hash/fnv"
	"image"
	"math"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// LoadPoster decodes the poster image behind a request into a cell raster,
// or synthesizes a deterministic placeholder when the request carries no
// path. It is the default LoadFunc and safe for concurrent use.
func LoadPoster(req Request) Result {
	if req.W < 1 || req.H < 1 {
		return Result{ID: req.ID, Gen: req.Gen, Err: fmt.Errorf("invalid raster size %dx%d", req.W, req.H)}
	}
	if req.Path == "" {
		return Result{ID: req.ID, Gen: req.Gen, Poster: Synthesize(req.ID, req.W, req.H)}
	}

	f, err := os.Open(req.Path)
	if err != nil {
		return Result{ID: req.ID, Gen: req.Gen, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Result{ID: req.ID, Gen: req.Gen, Err: fmt.Errorf("decode %s: %w", req.Path, err)}
	}

	return Result{ID: req.ID, Gen: req.Gen, Poster: Rasterize(img, req.W, req.H)}
}

// Rasterize downsamples an image into w×h cells. Each cell renders two
// vertical pixel blocks through the upper-half-block rune, doubling the
// effective vertical resolution of the preview.
func Rasterize(img image.Image, w, h int) *Raster {
	bounds := img.Bounds()
	iw := bounds.Dx()
	ih := bounds.Dy()
	r := &Raster{W: w, H: h, Cells: make([]RCell, w*h)}
	if iw == 0 || ih == 0 {
		return r
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := blockAverage(img, bounds, x, 2*y, w, 2*h)
			bot := blockAverage(img, bounds, x, 2*y+1, w, 2*h)
			st := tcell.StyleDefault.
				Foreground(toTcell(top)).
				Background(toTcell(bot))
			r.Cells[y*w+x] = RCell{Ch: '▀', Style: st}
		}
	}
	return r
}

// blockAverage averages the source pixels that map onto grid cell (gx, gy)
// of a gw×gh grid.
func blockAverage(img image.Image, bounds image.Rectangle, gx, gy, gw, gh int) colorful.Color {
	x0 := bounds.Min.X + gx*bounds.Dx()/gw
	x1 := bounds.Min.X + (gx+1)*bounds.Dx()/gw
	y0 := bounds.Min.Y + gy*bounds.Dy()/gh
	y1 := bounds.Min.Y + (gy+1)*bounds.Dy()/gh
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var sr, sg, sb float64
	n := 0
	for y := y0; y < y1 && y < bounds.Max.Y; y++ {
		for x := x0; x < x1 && x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			sr += float64(cr) / 0xffff
			sg += float64(cg) / 0xffff
			sb += float64(cb) / 0xffff
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: sr / float64(n), G: sg / float64(n), B: sb / float64(n)}
}

// Synthesize builds a placeholder raster from an identity: a hue picked by
// hash with a vertical lightness ramp, so every record gets a stable,
// distinguishable preview even without a poster on disk.
func Synthesize(id string, w, h int) *Raster {
	hash := fnv.New32a()
	hash.Write([]byte(id))
	hue := float64(hash.Sum32()%360)

	ramp := []rune(" ░▒▓█")
	r := &Raster{W: w, H: h, Cells: make([]RCell, w*h)}
	for y := 0; y < h; y++ {
		v := 0.25 + 0.55*float64(y)/math.Max(1, float64(h-1))
		base := colorful.Hsv(hue, 0.45, v)
		accent := colorful.Hsv(math.Mod(hue+40, 360), 0.55, v)
		for x := 0; x < w; x++ {
			idx := (x*len(ramp)/max(1, w) + y) % len(ramp)
			st := tcell.StyleDefault.
				Foreground(toTcell(accent)).
				Background(toTcell(base))
			r.Cells[y*w+x] = RCell{Ch: ramp[idx], Style: st}
		}
	}
	return r
}

func toTcell(c colorful.Color) tcell.Color {
	cr, cg, cb := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}
