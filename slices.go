package stack

import "slices"

func popLast[S ~[]E, E any](slice S) (E, S) {
	return slice[len(slice)-1], slice[:len(slice)-1]
}

// popLastN cuts the last n elements off and returns them in their original
// order together with the shortened slice.
func popLastN[S ~[]E, E any](slice S, n uint) (S, S) {
	cut := uint(len(slice)) - n
	return slices.Clone(slice[cut:]), slice[:cut]
}

// lastN copies the last n elements in their original order.
func lastN[S ~[]E, E any](slice S, n uint) S {
	return slices.Clone(slice[uint(len(slice))-n:])
}
