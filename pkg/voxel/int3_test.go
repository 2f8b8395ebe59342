package voxel

import "testing"

func TestInt3Arithmetic(t *testing.T) {
	a := Int3{1, 2, 3}
	b := Int3{4, -1, 2}

	if got := a.Add(b); got != (Int3{5, 1, 5}) {
		t.Errorf("Add = %+v, want {5 1 5}", got)
	}
	if got := a.Sub(b); got != (Int3{-3, 3, 1}) {
		t.Errorf("Sub = %+v, want {-3 3 1}", got)
	}
	if got := a.Scale(2); got != (Int3{2, 4, 6}) {
		t.Errorf("Scale = %+v, want {2 4 6}", got)
	}
	if got := a.Dot(b); got != 1*4+2*-1+3*2 {
		t.Errorf("Dot = %d, want %d", got, 1*4+2*-1+3*2)
	}
	if got := a.Neg(); got != (Int3{-1, -2, -3}) {
		t.Errorf("Neg = %+v, want {-1 -2 -3}", got)
	}
}

func TestInt3Less(t *testing.T) {
	cases := []struct {
		a, b Int3
		want bool
	}{
		{Int3{0, 0, 0}, Int3{1, 0, 0}, true},
		{Int3{1, 0, 0}, Int3{0, 0, 0}, false},
		{Int3{0, 0, 0}, Int3{0, 1, 0}, true},
		{Int3{0, 0, 1}, Int3{0, 0, 2}, true},
		{Int3{1, 1, 1}, Int3{1, 1, 1}, false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.want {
			t.Errorf("%+v.Less(%+v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestNeighbors6Coverage(t *testing.T) {
	seen := map[Int3]bool{}
	for _, n := range Neighbors6 {
		seen[n] = true
	}
	want := []Int3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	for _, w := range want {
		if !seen[w] {
			t.Errorf("Neighbors6 missing %+v", w)
		}
	}
	if len(seen) != 6 {
		t.Errorf("Neighbors6 has duplicates, got %d unique of 6", len(seen))
	}
}
