package subtle

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"
)

func TestConstantTimeByteEq(t *testing.T) {
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			x := byte(i)
			y := byte(j)
			if (ConstantTimeByteEq(x, y) == 1) != (x == y) {
				t.Fatalf("(%d, %d): expected %t", x, y, x == y)
			}
		}
	}
}

func TestConstantTimeByteLessOrEq(t *testing.T) {
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			x := byte(i)
			y := byte(j)
			if (ConstantTimeByteLessOrEq(x, y) == 1) != (x <= y) {
				t.Fatalf("(%d, %d): expected %t", x, y, x <= y)
			}
		}
	}
}

func TestConstantTimeByteInRange(t *testing.T) {
	ranges := []struct {
		lo, hi byte
	}{
		{'0', '9'},
		{'A', 'Z'},
		{'a', 'z'},
		{'+', '+'},
		{0, 0xff},
	}
	for _, r := range ranges {
		for i := 0; i < 256; i++ {
			c := byte(i)
			want := c >= r.lo && c <= r.hi
			if got := ConstantTimeByteInRange(c, r.lo, r.hi) == 1; got != want {
				t.Fatalf("[%q, %q] %#02x: expected %t", r.lo, r.hi, c, want)
			}
		}
	}
}

func TestConstantTimeSelect(t *testing.T) {
	d := 2 * time.Second
	if testing.Short() {
		d = 100 * time.Millisecond
	}
	tm := time.NewTimer(d)

	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; ; i++ {
		select {
		case <-tm.C:
			t.Logf("iter: %d", i)
			return
		default:
		}

		x := int(rng.Int31())
		y := int(rng.Int31())
		if got := ConstantTimeSelect(1, x, y); got != x {
			t.Fatalf("#%d: ConstantTimeSelect(1, %d, %d) = %d", i, x, y, got)
		}
		if got := ConstantTimeSelect(0, x, y); got != y {
			t.Fatalf("#%d: ConstantTimeSelect(0, %d, %d) = %d", i, x, y, got)
		}
		want := x <= y
		if got := ConstantTimeLessOrEq(x, y) == 1; got != want {
			t.Fatalf("#%d: ConstantTimeLessOrEq(%d, %d) != %t", i, x, y, want)
		}
	}
}
