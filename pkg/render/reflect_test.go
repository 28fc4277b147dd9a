package render

import (
	"testing"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

var (
	matte  = scene.NewMaterial("matte", scene.RGB(0.8, 0.1, 0.1))
	matte2 = scene.NewMaterial("matte2", scene.RGB(0.1, 0.1, 0.6))
	mirror = scene.NewMirror("mirror", scene.RGB(0.2, 0.2, 0.2), 0.5)
)

func reflectContext(oracle scene.Intersector, depth int) *Context {
	settings := DefaultSettings()
	settings.Phong = false
	settings.MaxDepth = depth
	return NewContext(testCamera(), scene.New("reflect"), oracle, settings)
}

func TestReflectDepthZeroIsBlack(t *testing.T) {
	oracle := &mockOracle{script: [][]scene.Hit{{flatHit(matte, 1)}}}
	ctx := reflectContext(oracle, 0)
	hit := flatHit(mirror, 1)

	for _, depth := range []int{0, -1} {
		if got := ctx.Reflect(&hit, math3d.V3(0, -1, 0), depth); !got.IsBlack() {
			t.Errorf("depth %d: got %v, want black", depth, got)
		}
	}
	if len(oracle.rays) != 0 {
		t.Errorf("depth 0 must not query the oracle, got %d queries", len(oracle.rays))
	}
}

func TestReflectNilHitIsBlack(t *testing.T) {
	ctx := reflectContext(&mockOracle{}, 3)
	if got := ctx.Reflect(nil, math3d.V3(0, -1, 0), 3); !got.IsBlack() {
		t.Errorf("got %v, want black", got)
	}
}

func TestReflectChains(t *testing.T) {
	tests := []struct {
		name   string
		script [][]scene.Hit
		depth  int
		want   scene.Color
	}{
		{
			name:  "miss",
			depth: 3,
			want:  scene.Black(),
		},
		{
			name:   "matte",
			script: [][]scene.Hit{{flatHit(matte, 1)}},
			depth:  3,
			want:   matte.Color,
		},
		{
			name:   "matte then matte sums",
			script: [][]scene.Hit{{flatHit(matte, 1)}, {flatHit(matte2, 1)}},
			depth:  3,
			want:   matte.Color.Add(matte2.Color),
		},
		{
			name:   "depth stops the chain",
			script: [][]scene.Hit{{flatHit(matte, 1)}, {flatHit(matte2, 1)}},
			depth:  1,
			want:   matte.Color,
		},
		{
			name:   "mirror discards what lies beyond",
			script: [][]scene.Hit{{flatHit(mirror, 1)}, {flatHit(matte, 1)}},
			depth:  3,
			want:   scene.Black(),
		},
		{
			name:   "mirror past matte drops the deeper part",
			script: [][]scene.Hit{{flatHit(matte, 1)}, {flatHit(mirror, 1)}, {flatHit(matte2, 1)}},
			depth:  3,
			want:   matte.Color,
		},
		{
			name:   "nil material passes through",
			script: [][]scene.Hit{{flatHit(nil, 1)}, {flatHit(matte2, 1)}},
			depth:  3,
			want:   matte2.Color,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := reflectContext(&mockOracle{script: tc.script}, tc.depth)
			hit := flatHit(mirror, 1)
			got := ctx.Reflect(&hit, math3d.V3(1, -1, 0).Normalize(), tc.depth)
			if !colorNear(got, tc.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReflectMirrorChainIsBlack(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		script := make([][]scene.Hit, n+1)
		for i := range script {
			script[i] = []scene.Hit{flatHit(mirror, 1)}
		}
		oracle := &mockOracle{script: script}
		ctx := reflectContext(oracle, n)
		hit := flatHit(mirror, 1)
		if got := ctx.Reflect(&hit, math3d.V3(0, -1, 0), n); !got.IsBlack() {
			t.Errorf("maxDepth %d: got %v, want black", n, got)
		}
		if len(oracle.rays) != n {
			t.Errorf("maxDepth %d: %d bounces cast, want %d", n, len(oracle.rays), n)
		}
	}
}

func TestReflectDirection(t *testing.T) {
	oracle := &mockOracle{}
	ctx := reflectContext(oracle, 1)
	hit := flatHit(mirror, 1)
	ctx.Reflect(&hit, math3d.V3(1, -1, 0), 1)

	if len(oracle.rays) != 1 {
		t.Fatalf("expected one bounce, got %d", len(oracle.rays))
	}
	want := math3d.V3(1, 1, 0).Normalize()
	if !oracle.rays[0].Direction.ApproxEqual(want, 1e-12) {
		t.Errorf("bounce direction = %v, want %v", oracle.rays[0].Direction, want)
	}
}

func TestTraceBlendsMirror(t *testing.T) {
	dark := scene.NewMirror("dark mirror", scene.Black(), 0.5)
	red := scene.NewMaterial("red", scene.RGB(1, 0, 0))

	tests := []struct {
		name    string
		mirrors bool
		depth   int
		want    scene.Color
	}{
		{"mirrors on", true, 1, scene.RGB(0.5, 0, 0)},
		{"mirrors off", false, 1, scene.Black()},
		{"depth zero", true, 0, scene.Black()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			oracle := &mockOracle{script: [][]scene.Hit{{flatHit(dark, 4)}, {flatHit(red, 1)}}}
			settings := DefaultSettings()
			settings.Phong = false
			settings.Mirrors = tc.mirrors
			settings.MaxDepth = tc.depth
			ctx := NewContext(testCamera(), scene.New("trace"), oracle, settings)

			got, hit, ok := ctx.Trace(math3d.NewRay(math3d.V3(0, 4, 0), math3d.V3(0, -1, 0)))
			if !ok || hit.Material != dark {
				t.Fatalf("expected primary hit on the mirror, got %+v", hit)
			}
			if !colorNear(got, tc.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTraceMiss(t *testing.T) {
	ctx := NewContext(testCamera(), scene.New("empty"), &mockOracle{}, DefaultSettings())
	got, _, ok := ctx.Trace(math3d.NewRay(math3d.Zero3(), math3d.Forward()))
	if ok || !got.IsBlack() {
		t.Errorf("miss should be black and not ok, got %v %v", got, ok)
	}
	if s := ctx.Stats(); s.PrimaryRays != 1 || s.OracleQueries != 1 {
		t.Errorf("stats = %+v", s)
	}
}
