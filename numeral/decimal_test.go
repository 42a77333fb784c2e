package numeral

import (
	"errors"
	"testing"

	"gopkg.in/inf.v0"
)

func TestReduce(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   *inf.Dec
		want string
	}{
		{inf.NewDec(1500, 3), "1.5"},
		{inf.NewDec(1000, 3), "1"},
		{inf.NewDec(25, -2), "2500"},
		{inf.NewDec(0, 5), "0"},
		{inf.NewDec(-120, 1), "-12"},
		{inf.NewDec(7, 0), "7"},
	}
	for _, tt := range cases {
		if got := reduce(tt.in).String(); got != tt.want {
			t.Errorf("reduce(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestReduceDoesNotMutate(t *testing.T) {
	t.Parallel()

	d := inf.NewDec(1500, 3)
	_ = reduce(d)
	if d.String() != "1.500" {
		t.Errorf("reduce mutated its argument: %s", d)
	}
}

func TestQuo(t *testing.T) {
	t.Parallel()

	got, err := quo(inf.NewDec(1, 0), inf.NewDec(8, 0))
	if err != nil {
		t.Fatalf("quo: %v", err)
	}
	if s := reduce(got).String(); s != "0.125" {
		t.Errorf("1/8 = %s", s)
	}

	if _, err := quo(inf.NewDec(1, 0), new(inf.Dec)); !errors.Is(err, ErrUnparsable) {
		t.Errorf("1/0 error = %v, want ErrUnparsable", err)
	}
}

func TestShift(t *testing.T) {
	t.Parallel()

	if got := reduce(shift(inf.NewDec(15, 1), 3)).String(); got != "1500" {
		t.Errorf("shift(1.5, 3) = %s", got)
	}
	if got := reduce(shift(inf.NewDec(15, 1), -2)).String(); got != "0.015" {
		t.Errorf("shift(1.5, -2) = %s", got)
	}
}
