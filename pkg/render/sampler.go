package render

import "github.com/taigrr/raycast/pkg/math3d"

// RayGenerator maps normalized device coordinates to primary rays.
// *Camera implements it.
type RayGenerator interface {
	RayFromNDC(x, y float64) math3d.Ray
}

// Sampler lays a k x k grid of sample points over each pixel and turns
// them into primary rays.
type Sampler struct {
	Width  int
	Height int
	K      int // Grid side; a pixel gets K*K rays
}

// NewSampler creates a sampler for the given raster size. The grid side is
// floor(sqrt(subsamples)); a count that is not a perfect square loses its
// remainder.
func NewSampler(width, height, subsamples int) Sampler {
	return Sampler{Width: width, Height: height, K: GridSize(subsamples)}
}

// Count returns the number of rays per pixel.
func (s Sampler) Count() int {
	return s.K * s.K
}

// NDC returns the device coordinates of subsample (i, j) of pixel (x, y).
// x grows right and y grows up; the pixel grid starts at the top-left.
func (s Sampler) NDC(x, y, i, j int) (ndcX, ndcY float64) {
	step := 1 / float64(s.K)
	subX := float64(x) + float64(i)*step
	subY := float64(y) + float64(j)*step
	ndcX = (subX/float64(s.Width))*2 - 1
	ndcY = -(subY/float64(s.Height))*2 + 1
	return ndcX, ndcY
}

// PixelRays appends the primary rays of pixel (x, y) to dst, i-major.
func (s Sampler) PixelRays(gen RayGenerator, x, y int, dst []math3d.Ray) []math3d.Ray {
	for i := 0; i < s.K; i++ {
		for j := 0; j < s.K; j++ {
			dst = append(dst, gen.RayFromNDC(s.NDC(x, y, i, j)))
		}
	}
	return dst
}
