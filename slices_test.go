package stack

import (
	"slices"
	"testing"
)

func Test_popLast(t *testing.T) {
	t.Parallel()
	value, rest := popLast([]int{1, 2, 5, 6})
	if value != 6 || slices.Compare(rest, []int{1, 2, 5}) != 0 {
		t.Fatalf("expected value 6 and rest [1 2 5], got %d and %v", value, rest)
	}
}

func Test_popLastN(t *testing.T) {
	t.Parallel()
	type Scenario struct {
		ExpectedPopped []int
		ExpectedRest   []int
		Slice          []int
		N              uint
	}
	scenarios := []Scenario{
		{
			ExpectedPopped: []int{5, 6},
			ExpectedRest:   []int{1, 2},
			Slice:          []int{1, 2, 5, 6},
			N:              2,
		},
		{
			ExpectedPopped: []int{1, 2, 5, 6},
			ExpectedRest:   []int{},
			Slice:          []int{1, 2, 5, 6},
			N:              4,
		},
		{
			ExpectedPopped: []int{},
			ExpectedRest:   []int{1, 2},
			Slice:          []int{1, 2},
			N:              0,
		},
	}
	for _, scenario := range scenarios {
		scenario := scenario
		t.Run("", func(t *testing.T) {
			popped, rest := popLastN(scenario.Slice, scenario.N)
			if slices.Compare(popped, scenario.ExpectedPopped) != 0 || slices.Compare(rest, scenario.ExpectedRest) != 0 {
				t.Fatalf("tried popping last %d, expected %v and rest %v, but got %v and %v",
					scenario.N, scenario.ExpectedPopped, scenario.ExpectedRest, popped, rest)
			}
		})
	}
}

func Test_lastN(t *testing.T) {
	t.Parallel()
	type Scenario struct {
		Expected []int
		Slice    []int
		N        uint
	}
	scenarios := []Scenario{
		{
			Expected: []int{6},
			Slice:    []int{1, 2, 5, 6},
			N:        1,
		},
		{
			Expected: []int{2, 5, 6},
			Slice:    []int{1, 2, 5, 6},
			N:        3,
		},
	}
	for _, scenario := range scenarios {
		scenario := scenario
		t.Run("", func(t *testing.T) {
			result := lastN(scenario.Slice, scenario.N)
			if slices.Compare(result, scenario.Expected) != 0 {
				t.Fatalf("expected last %d to be %v, got %v", scenario.N, scenario.Expected, result)
			}
		})
	}
}

func Test_lastN_copies(t *testing.T) {
	t.Parallel()
	source := []int{1, 2, 3}
	result := lastN(source, 2)
	result[0] = 55
	if source[1] != 2 {
		t.Fatalf("expected source to stay untouched, got %v", source)
	}
}
