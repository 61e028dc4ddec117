package lattice

import (
	"fmt"
	"reflect"
	"testing"
)

func TestEnumOrder(t *testing.T) {
	tests := []struct {
		lower, upper, length int
		want                 [][]int
	}{
		{1, 2, 2, [][]int{{1, 1}, {2, 1}, {2, 2}}},
		{1, 2, 3, [][]int{{1, 1, 1}, {2, 1, 1}, {2, 2, 1}, {2, 2, 2}}},
		{4, 4, 3, [][]int{{4, 4, 4}}},
		{0, 1, 1, [][]int{{0}, {1}}},
	}

	for _, test := range tests {
		enum, err := NewEnum(test.lower, test.upper, test.length)
		if err != nil {
			t.Fatalf("NewEnum(%d, %d, %d): %v", test.lower, test.upper, test.length, err)
		}

		var got [][]int
		for s, ok := enum.Next(); ok; s, ok = enum.Next() {
			got = append(got, s)
		}

		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Enum(%d, %d, %d): got %v, want %v",
				test.lower, test.upper, test.length, got, test.want)
		}
	}
}

func TestEnumBadBounds(t *testing.T) {
	_, err := NewEnum(3, 2, 3)
	if err == nil {
		t.Fatal("NewEnum(3, 2, 3): expected an error, got nil")
	}
	if err.Error() != "lower bound exceeds upper bound" {
		t.Errorf("NewEnum(3, 2, 3): got error %q", err)
	}
}

// binomial returns n choose k.
func binomial(n, k int) int {
	res := 1
	for i := 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}
	return res
}

// TestEnumCount checks that the enumerator visits every combination with
// repetition exactly once: C(upper-lower+length, length) distinct sets, all
// within bounds and ordered from largest to smallest member.
func TestEnumCount(t *testing.T) {
	tests := []struct {
		lower, upper, length int
	}{
		{0, 4, 3},
		{1, 5, 2},
		{2, 2, 5},
		{0, 9, 3},
		{-3, 3, 3},
	}

	for _, test := range tests {
		enum, err := NewEnum(test.lower, test.upper, test.length)
		if err != nil {
			t.Fatalf("NewEnum(%d, %d, %d): %v", test.lower, test.upper, test.length, err)
		}

		seen := make(map[string]bool)
		count := 0
		for s, ok := enum.Next(); ok; s, ok = enum.Next() {
			count++
			for k, v := range s {
				if v < test.lower || v > test.upper {
					t.Fatalf("Enum(%d, %d, %d): member %d out of bounds in %v",
						test.lower, test.upper, test.length, v, s)
				}
				if k > 0 && s[k-1] < v {
					t.Fatalf("Enum(%d, %d, %d): %v is not ordered",
						test.lower, test.upper, test.length, s)
				}
			}

			key := fmt.Sprint(s)
			if seen[key] {
				t.Fatalf("Enum(%d, %d, %d): %v visited twice",
					test.lower, test.upper, test.length, s)
			}
			seen[key] = true
		}

		want := binomial(test.upper-test.lower+test.length, test.length)
		if count != want {
			t.Errorf("Enum(%d, %d, %d): got %d sets, want %d",
				test.lower, test.upper, test.length, count, want)
		}
	}
}

// TestEnumSnapshot checks that a returned set is independent from the
// internal state of the enumerator and from the sets returned afterwards.
func TestEnumSnapshot(t *testing.T) {
	enum, err := NewEnum(1, 3, 3)
	if err != nil {
		t.Fatal(err)
	}

	first, ok := enum.Next()
	if !ok {
		t.Fatal("Next: expected a set")
	}
	first[0] = -99
	first[2] = -99

	second, ok := enum.Next()
	if !ok {
		t.Fatal("Next: expected a second set")
	}
	if !reflect.DeepEqual(second, []int{2, 1, 1}) {
		t.Errorf("Next after modifying the previous set: got %v, want [2 1 1]", second)
	}

	third, _ := enum.Next()
	if &second[0] == &third[0] {
		t.Error("Next: two sets share the same backing array")
	}
}
