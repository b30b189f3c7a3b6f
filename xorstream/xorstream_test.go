package xorstream_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tinynum/nprand/mtstream"
	"github.com/tinynum/nprand/xorstream"
)

func TestReproducibility(t *testing.T) {
	a := xorstream.New(12345)
	b := xorstream.New(12345)
	if diff := cmp.Diff(a.Random(100), b.Random(100)); diff != "" {
		t.Errorf("same seed produced different streams (-a +b):\n%s", diff)
	}

	a.Seed(12345)
	first := a.Random(10)
	a.Random(100)
	a.Seed(12345)
	if diff := cmp.Diff(first, a.Random(10)); diff != "" {
		t.Errorf("reseed did not reproduce the stream (-want +got):\n%s", diff)
	}
}

func TestZeroSeedIsUsable(t *testing.T) {
	// A raw zero state would wedge xorshift; splitmix64 expansion avoids it.
	e := xorstream.New(0)
	draws := e.Random(100)
	allSame := true
	for _, v := range draws[1:] {
		if v != draws[0] {
			allSame = false
		}
		if v < 0 || v >= 1 {
			t.Fatalf("draw %v out of [0, 1)", v)
		}
	}
	if allSame {
		t.Error("seed 0 produced a constant stream")
	}
}

func TestSeedsDiverge(t *testing.T) {
	a := xorstream.New(1)
	b := xorstream.New(2)
	if diff := cmp.Diff(a.Random(10), b.Random(10)); diff == "" {
		t.Error("different seeds produced the same stream")
	}
}

func TestIndependentOfReferenceStream(t *testing.T) {
	alt := xorstream.New(12345)
	ref := mtstream.New()
	ref.Seed(12345)

	a := alt.Random(11)
	r := ref.Random(11)
	same := true
	for i := range a {
		if a[i] != r[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("alternate stream unexpectedly matches the reference stream")
	}
}

func TestRandInt(t *testing.T) {
	e := xorstream.New(3)

	v, err := e.RandInt(0, 10, 10000)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[int64]bool)
	for i, x := range v {
		if x < 0 || x >= 10 {
			t.Fatalf("draw #%d = %d out of [0, 10)", i, x)
		}
		seen[x] = true
	}
	if len(seen) != 10 {
		t.Errorf("expected all 10 values of the range to appear, got %d", len(seen))
	}

	if _, err := e.RandInt(4, 4, 1); err == nil {
		t.Error("expected an error for low == high")
	}
}

func TestUniformRange(t *testing.T) {
	e := xorstream.New(9)
	for i, v := range e.Uniform(10, 20, 10000) {
		if v < 10 || v >= 20 {
			t.Fatalf("draw #%d = %v out of [10, 20)", i, v)
		}
	}
}

func TestSeedClearsGaussCache(t *testing.T) {
	e := xorstream.New(42)
	want := e.Normal(0, 1, 1)

	e.Seed(42)
	e.Normal(0, 1, 1)
	e.Seed(42)
	if diff := cmp.Diff(want, e.Normal(0, 1, 1)); diff != "" {
		t.Errorf("gaussian cache survived a reseed (-want +got):\n%s", diff)
	}
}
