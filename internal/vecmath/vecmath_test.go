package vecmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func randomVector(r *rand.Rand) Vector {
	return Vec(r.Float64()*200-100, r.Float64()*200-100, r.Float64()*200-100)
}

func TestNormalizeUnitLength(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		v := randomVector(r)
		if v == Zero {
			continue
		}
		require.InDelta(t, 1.0, v.Normalize().Len(), eps, "v=%s", v)
	}
}

func TestNormalizeZero(t *testing.T) {
	n := Zero.Normalize()
	require.Equal(t, Zero, n)
	require.False(t, math.IsNaN(n.X()))
}

func TestFromAxisAngleUnit(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		q := FromAxisAngle(randomVector(r), r.Float64()*4*math.Pi-2*math.Pi)
		require.InDelta(t, 1.0, q.Len(), eps)
	}
	require.Equal(t, Identity(), FromAxisAngle(Zero, 1))
}

func TestQuaternionNormalizeZero(t *testing.T) {
	require.Equal(t, Identity(), Quat(0, 0, 0, 0).Normalize())
}

func TestMultiplyNotCommutative(t *testing.T) {
	a := FromAxisAngle(Up, math.Pi/2)
	b := FromAxisAngle(Right, math.Pi/2)
	require.False(t, a.Multiply(b).ApproxEqual(b.Multiply(a), 1e-6))
}

func TestRotateAppliesAxisAngleFirst(t *testing.T) {
	q := FromAxisAngle(Right, 0.3)
	got := q.Rotate(Up, 0.7)
	want := FromAxisAngle(Up, 0.7).Multiply(q)
	require.True(t, got.ApproxEqual(want, eps))
}

func TestApproxEqualIsAbsolute(t *testing.T) {
	require.True(t, Vec(0, 0, -1).ApproxEqual(Vec(6e-17, 0, -1), 1e-9))
	require.True(t, Vec(1e-6, 0, 0).ApproxEqual(Zero, 1e-3))
	require.False(t, Vec(1000, 0, 0).ApproxEqual(Vec(1000.5, 0, 0), 1e-3))
	require.True(t, Vec(1, 2, 3).ApproxEqual(Vec(1.05, 2, 2.95), 0.05+1e-12))

	q := FromAxisAngle(Up, 0.3)
	require.True(t, q.ApproxEqual(Quat(q.V[0], q.V[1]+1e-10, q.V[2], q.W-1e-10), 1e-9))
	require.False(t, q.ApproxEqual(Quat(q.V[0], q.V[1], q.V[2], q.W+1e-3), 1e-6))
	require.True(t, Identity().ApproxEqual(Quat(1e-17, 0, 0, 1), 1e-12))
}

func TestVectorRotateMatchesQuaternion(t *testing.T) {
	for _, angle := range []float64{0.4, math.Pi / 2, -2.1} {
		v := Vec(0.3, -1, 2)
		require.True(t, v.Rotate(Up, angle).ApproxEqual(FromAxisAngle(Up, angle).Apply(v), 1e-9))
		require.InDelta(t, Vec(0, 0, 1).Angle()+angle, Vec(0, 0, 1).Rotate(Up, angle).Angle(), 1e-9)
	}
}

func TestVectorRotate(t *testing.T) {
	v := Right.Rotate(Up, math.Pi/2)
	require.True(t, v.ApproxEqual(Vec(0, 0, -1), 1e-9), "got %s", v)
	require.Equal(t, Right, Right.Rotate(Zero, 1))
}

func TestAngle(t *testing.T) {
	require.InDelta(t, 0.0, Forward.Angle(), eps)
	require.InDelta(t, math.Pi/2, Right.Angle(), eps)
}
