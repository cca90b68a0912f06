package pure

import "github.com/on-the-ground/fcache/cachedfn"

func TableizeI1O2[I1 comparable, O1, O2 any](
	pureFn func(I1) (O1, O2),
) func(I1) (O1, O2) {
	return cachedfn.New1O2(pureFn).Call
}

func TableizeI2O2[I1, I2 comparable, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
) func(I1, I2) (O1, O2) {
	return cachedfn.New2O2(pureFn).Call
}

func TableizeI3O2[I1, I2, I3 comparable, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
) func(I1, I2, I3) (O1, O2) {
	return cachedfn.New3O2(pureFn).Call
}

func TableizeI4O2[I1, I2, I3, I4 comparable, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
) func(I1, I2, I3, I4) (O1, O2) {
	return cachedfn.New4O2(pureFn).Call
}
