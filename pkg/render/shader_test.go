package render

import (
	"math"
	"testing"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

func TestShadePhongOffReturnsBaseColor(t *testing.T) {
	sc := scene.New("flat")
	sc.AddLight(scene.NewPointLight(math3d.V3(0, 3, 0), scene.White(), 5))

	settings := DefaultSettings()
	settings.Phong = false

	mats := []*scene.Material{
		scene.NewMaterial("red", scene.RGB(1, 0, 0)),
		scene.NewMaterial("gray", scene.RGB(0.3, 0.3, 0.3)),
		scene.NewMaterial("over", scene.RGB(2, 0.5, 0)),
	}
	for _, m := range mats {
		t.Run(m.Name, func(t *testing.T) {
			ctx := NewContext(testCamera(), sc, &mockOracle{}, settings)
			if got := ctx.Shade(flatHit(m, 1)); got != m.Color {
				t.Errorf("Shade = %v, want %v", got, m.Color)
			}
		})
	}
}

func TestShadeNilMaterialIsBlack(t *testing.T) {
	sc := scene.New("nil")
	sc.AddLight(scene.NewPointLight(math3d.V3(0, 3, 0), scene.White(), 5))

	for _, phong := range []bool{false, true} {
		settings := DefaultSettings()
		settings.Phong = phong
		ctx := NewContext(testCamera(), sc, &mockOracle{}, settings)
		if got := ctx.Shade(flatHit(nil, 1)); !got.IsBlack() {
			t.Errorf("phong=%v: Shade = %v, want black", phong, got)
		}
	}
}

func TestShadeNoLightsIsBlack(t *testing.T) {
	sc := scene.New("dark")
	sc.AddLight(scene.NewAmbientLight(scene.White(), 1))

	ctx := NewContext(testCamera(), sc, &mockOracle{}, DefaultSettings())
	if got := ctx.Shade(flatHit(scene.NewMaterial("m", scene.White()), 1)); !got.IsBlack() {
		t.Errorf("Shade = %v, want black", got)
	}
}

func TestAttenuationDecreasesWithDistance(t *testing.T) {
	m := scene.NewMaterial("white", scene.White())
	settings := DefaultSettings()
	settings.Shadows = false

	prev := math.Inf(1)
	for _, d := range []float64{1, 1.5, 2, 3, 5, 8} {
		sc := scene.New("atten")
		sc.AddLight(scene.NewPointLight(math3d.V3(0, d, 0), scene.White(), 1))
		ctx := NewContext(testCamera(), sc, &mockOracle{}, settings)

		got := ctx.Shade(flatHit(m, 1)).R
		if got <= 0 {
			t.Fatalf("d=%v: expected positive light, got %v", d, got)
		}
		if got >= prev {
			t.Errorf("d=%v: %v not below %v", d, got, prev)
		}
		prev = got
	}
}

func TestShadeFormula(t *testing.T) {
	m := &scene.Material{
		Color:     scene.RGB(1, 0.5, 0.25),
		Specular:  scene.RGB(0.5, 0.5, 0.5),
		Shininess: 4,
	}
	light := scene.NewPointLight(math3d.V3(0, 2, 0), scene.RGB(1, 1, 0.5), 3)
	sc := scene.New("formula")
	sc.AddLight(light)

	cam := testCamera()
	cam.SetPosition(math3d.V3(0, 5, 0))

	settings := DefaultSettings()
	settings.Shadows = false
	ctx := NewContext(cam, sc, &mockOracle{}, settings)

	// Light and eye both straight above: N.L = N.H = 1, |L|^2 = 4.
	diffuse := m.Color.Mul(light.Color).Scale(3)
	specular := m.Specular.Mul(light.Color).Scale(4 * 0.5 * 3)
	want := diffuse.Add(specular).Scale(0.25)

	if got := ctx.Shade(flatHit(m, 1)); !colorNear(got, want, 1e-12) {
		t.Errorf("Shade = %v, want %v", got, want)
	}
}

func TestShadowsBlockLight(t *testing.T) {
	m := scene.NewMaterial("floor", scene.White())
	sc := scene.New("shadow")
	sc.AddLight(scene.NewPointLight(math3d.V3(0, 4, 0), scene.White(), 10))
	occluder := scene.NewSphere(math3d.V3(0, 2, 0), 0.5, m)
	sc.Add(occluder)

	// Unoccluded: light straight above at |L|^2 = 16, eye on +Z, so
	// N.L = 1 and N.H = 1/sqrt(2).
	specular := math.Pow(math.Sqrt(0.5), m.Shininess) * m.Shininess * 0.5
	lit := m.Color.Scale(10).Add(m.Specular.Scale(specular * 10)).Scale(1.0 / 16)

	tests := []struct {
		name    string
		shadows bool
		want    scene.Color
	}{
		{"shadows on", true, scene.Black()},
		{"shadows off", false, lit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings := DefaultSettings()
			settings.Shadows = tc.shadows
			ctx := NewContext(testCamera(), sc, sc.List(), settings)

			if got := ctx.Shade(flatHit(m, 1)); !colorNear(got, tc.want, 1e-12) {
				t.Errorf("Shade = %v, want %v", got, tc.want)
			}
			if tc.shadows && ctx.Stats().ShadowRays != 1 {
				t.Errorf("ShadowRays = %d, want 1", ctx.Stats().ShadowRays)
			}
		})
	}
}

func TestShadowIgnoresOccludersBeyondLight(t *testing.T) {
	m := scene.NewMaterial("floor", scene.White())
	sc := scene.New("beyond")
	sc.AddLight(scene.NewPointLight(math3d.V3(0, 2, 0), scene.White(), 1))

	oracle := &mockOracle{script: [][]scene.Hit{{flatHit(m, 2.5)}}}
	ctx := NewContext(testCamera(), sc, oracle, DefaultSettings())
	if ctx.Shade(flatHit(m, 1)).IsBlack() {
		t.Error("occluder past the light must not cast a shadow")
	}
	if len(oracle.rays) != 1 || oracle.rays[0].Origin != math3d.Zero3() {
		t.Errorf("shadow ray should start at the hit point, got %+v", oracle.rays)
	}
}

func TestLightSelection(t *testing.T) {
	sc := scene.New("lights")
	sc.AddLight(
		scene.NewAmbientLight(scene.White(), 1),
		scene.NewPointLight(math3d.V3(0, 2, 0), scene.White(), 1),
		scene.NewPointLight(math3d.V3(0, 3, 0), scene.White(), 1),
	)

	tests := []struct {
		name      string
		allLights bool
		want      int
	}{
		{"all point lights", true, 2},
		{"first point light", false, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings := DefaultSettings()
			settings.AllLights = tc.allLights
			ctx := NewContext(testCamera(), sc, &mockOracle{}, settings)
			lights := ctx.Lights()
			if len(lights) != tc.want {
				t.Fatalf("got %d lights, want %d", len(lights), tc.want)
			}
			if lights[0].Position != math3d.V3(0, 2, 0) {
				t.Errorf("first light = %v", lights[0].Position)
			}
		})
	}
}
