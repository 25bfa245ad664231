package builder

import (
	"strings"
	"testing"

	"github.com/astrolab/orbsim/internal/decmath"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validPositioned(name string) BodySpec {
	pos := decmath.NewVectorFromFloats(1, 2, 3)
	return BodySpec{Name: name, Mass: d("10"), Radius: d("1"), Position: &pos}
}

func TestBuildValidation(t *testing.T) {
	origin := decmath.Zero
	velocity := decmath.NewVectorFromFloats(0, 1, 0)
	orbit := &OrbitSpec{SemiMajorAxis: d("1000"), StartSpeed: d("10")}

	tests := []struct {
		name    string
		spec    BodySpec
		wantErr string
	}{
		{
			"missing name",
			BodySpec{Mass: d("1"), Position: &origin},
			"name is required",
		},
		{
			"zero mass",
			BodySpec{Name: "x", Mass: decimal.Zero, Position: &origin},
			"mass must be positive",
		},
		{
			"negative mass",
			BodySpec{Name: "x", Mass: d("-5"), Position: &origin},
			"mass must be positive",
		},
		{
			"negative radius",
			BodySpec{Name: "x", Mass: d("1"), Radius: d("-1"), Position: &origin},
			"radius must not be negative",
		},
		{
			"underspecified",
			BodySpec{Name: "x", Mass: d("1")},
			"either a position or orbital elements",
		},
		{
			"overspecified",
			BodySpec{Name: "x", Mass: d("1"), Position: &origin, Orbit: orbit},
			"mutually exclusive",
		},
		{
			"velocity with orbit",
			BodySpec{Name: "x", Mass: d("1"), Velocity: &velocity, Orbit: orbit},
			"conflicts with orbital elements",
		},
		{
			"non-positive axis",
			BodySpec{Name: "x", Mass: d("1"), Orbit: &OrbitSpec{StartSpeed: d("10")}},
			"semi-major axis must be positive",
		},
		{
			"negative start speed",
			BodySpec{Name: "x", Mass: d("1"), Orbit: &OrbitSpec{SemiMajorAxis: d("1000"), StartSpeed: d("-1")}},
			"start speed must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Add(tt.spec).Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildErrorNamesTheBody(t *testing.T) {
	_, err := New().
		Add(validPositioned("fine")).
		Add(BodySpec{Name: "broken", Mass: d("1")}).
		Build()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "broken") || !strings.Contains(err.Error(), "body 1") {
		t.Errorf("error does not locate the bad body: %v", err)
	}
}

func TestBuildPreservesDeclarationOrder(t *testing.T) {
	system, err := New().
		Add(validPositioned("first")).
		Add(validPositioned("second")).
		Add(validPositioned("third")).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	names := []string{"first", "second", "third"}
	for i, body := range system.Elements() {
		if body.Name() != names[i] {
			t.Errorf("body %d = %q, want %q", i, body.Name(), names[i])
		}
	}
}

func TestBuildExplicitVelocity(t *testing.T) {
	pos := decmath.NewVectorFromFloats(5, 0, 0)
	vel := decmath.NewVectorFromFloats(0, 7, 0)

	system, err := New().
		Add(BodySpec{Name: "mover", Mass: d("1"), Position: &pos, Velocity: &vel}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	body, _ := system.Find("mover")
	if !body.Velocity().Equal(vel) {
		t.Errorf("velocity = %s, want %s", body.Velocity(), vel)
	}
}

func TestBuildOrbitPlacement(t *testing.T) {
	origin := decmath.Zero

	system, err := New().
		Add(BodySpec{Name: "sun", Mass: d("1e30"), Position: &origin}).
		Add(BodySpec{Name: "probe", Mass: d("1000"), Orbit: &OrbitSpec{
			SemiMajorAxis: d("1000"),
			ThetaDeg:      90,
			StartSpeed:    d("10"),
		}}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	probe, _ := system.Find("probe")

	// theta = 90deg, no inclination: position on the +y axis, velocity
	// tangential along -x. cos(90deg) in float64 is ~6e-17, so x is tiny
	// but not exactly zero.
	tiny := d("1e-10")
	p := probe.Position()
	if p.X.Abs().GreaterThan(tiny) {
		t.Errorf("position x = %s, want ~0", p.X)
	}
	if !p.Y.Equal(d("1000")) {
		t.Errorf("position y = %s, want 1000", p.Y)
	}
	if !p.Z.IsZero() {
		t.Errorf("position z = %s, want 0", p.Z)
	}

	v := probe.Velocity()
	if !v.X.Equal(d("-10")) {
		t.Errorf("velocity x = %s, want -10", v.X)
	}
	if v.Y.Abs().GreaterThan(tiny) || v.Z.Abs().GreaterThan(tiny) {
		t.Errorf("velocity off tangent: %s", v)
	}
}

func TestBuildOrbitInclination(t *testing.T) {
	origin := decmath.Zero

	system, err := New().
		Add(BodySpec{Name: "sun", Mass: d("1e30"), Position: &origin}).
		Add(BodySpec{Name: "tilted", Mass: d("1000"), Orbit: &OrbitSpec{
			SemiMajorAxis:  d("1000"),
			InclinationDeg: 90,
			ThetaDeg:       90,
			StartSpeed:     d("10"),
		}}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	// With the plane tilted a quarter turn about x, the theta=90 point
	// moves from +y to +z.
	tilted, _ := system.Find("tilted")
	p := tilted.Position()
	tiny := d("1e-10")
	if p.X.Abs().GreaterThan(tiny) || p.Y.Abs().GreaterThan(tiny) {
		t.Errorf("position off the z axis: %s", p)
	}
	if !p.Z.Equal(d("1000")) {
		t.Errorf("position z = %s, want 1000", p.Z)
	}
}

func TestBuildOrbitAroundHeaviestBody(t *testing.T) {
	lightPos := decmath.NewVectorFromFloats(-500, 0, 0)
	heavyPos := decmath.NewVectorFromFloats(2000, 0, 0)
	heavyVel := decmath.NewVectorFromFloats(0, 3, 0)

	system, err := New().
		Add(BodySpec{Name: "light", Mass: d("10"), Position: &lightPos}).
		Add(BodySpec{Name: "heavy", Mass: d("1e30"), Position: &heavyPos, Velocity: &heavyVel}).
		Add(BodySpec{Name: "moon", Mass: d("1"), Orbit: &OrbitSpec{
			SemiMajorAxis: d("100"),
			StartSpeed:    d("5"),
		}}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	// theta = 0: offset (a, 0, 0) from the heavy body, velocity tangential
	// (0, s, 0) on top of the reference velocity.
	moon, _ := system.Find("moon")
	if !moon.Position().Equal(decmath.NewVectorFromFloats(2100, 0, 0)) {
		t.Errorf("position = %s, want (2100, 0, 0)", moon.Position())
	}
	if !moon.Velocity().Equal(decmath.NewVectorFromFloats(0, 8, 0)) {
		t.Errorf("velocity = %s, want (0, 8, 0)", moon.Velocity())
	}
}

func TestBuildOrbitWithoutReferenceUsesOrigin(t *testing.T) {
	system, err := New().
		Add(BodySpec{Name: "lone", Mass: d("1"), Orbit: &OrbitSpec{
			SemiMajorAxis: d("100"),
			StartSpeed:    d("5"),
		}}).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	lone, _ := system.Find("lone")
	if !lone.Position().Equal(decmath.NewVectorFromFloats(100, 0, 0)) {
		t.Errorf("position = %s, want (100, 0, 0)", lone.Position())
	}
	if !lone.Velocity().Equal(decmath.NewVectorFromFloats(0, 5, 0)) {
		t.Errorf("velocity = %s, want (0, 5, 0)", lone.Velocity())
	}
}
