package pure

import "github.com/on-the-ground/fcache/cachedfn"

func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
) func(I1) O1 {
	return cachedfn.New1(pureFn).Call
}

func TableizeI2O1[I1, I2 comparable, O1 any](
	pureFn func(I1, I2) O1,
) func(I1, I2) O1 {
	return cachedfn.New2(pureFn).Call
}

func TableizeI3O1[I1, I2, I3 comparable, O1 any](
	pureFn func(I1, I2, I3) O1,
) func(I1, I2, I3) O1 {
	return cachedfn.New3(pureFn).Call
}

func TableizeI4O1[I1, I2, I3, I4 comparable, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
) func(I1, I2, I3, I4) O1 {
	return cachedfn.New4(pureFn).Call
}
