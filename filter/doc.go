// Package filter binds pixel kernels to live parameter state.
//
// A Filter is a parameterized image operation; the built-in set lives in
// filter/builtin and is looked up by name through the registry package.
// A Descriptor wraps one exclusively owned Filter together with its
// parameter configuration, a stashed snapshot for undo, and the operation
// type that decides how Apply routes its inputs:
//
//   - OperationSingle: one image in, the same extent out
//   - OperationBlend: the second image is opacity-scaled and used as background
//   - OperationLookup: a lookup table image is bound from a LookupStore
//   - OperationCustom: the filter receives both images as given
//
// A Chain applies an ordered list of descriptors (or other chains) as one
// logical filter. Descriptors and chains are single-owner values; they do
// no internal locking.
//
// Parameter access on a Descriptor fails soft: an unknown key or a type
// mismatch is logged, leaves the state unchanged, and returns param.NotSet
// (for floats) or a zero value. Apply never returns a partial image
// together with an error.
package filter
