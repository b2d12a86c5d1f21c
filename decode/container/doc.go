// Package container decodes generic collections built from caller-supplied
// element decoders.
//
// Every counted collection is a Word64 big-endian element count followed by
// that many elements. Tags for Optional and Either are a single byte: 0
// selects the absent/left case, anything else the present/right case.
//
// Map, IntMap, Set and IntSet trust the encoder: the elements must already be
// in strictly ascending order with no duplicate keys. The decoders do not
// check this, and construction is a single linear pass. Out-of-order input
// decodes without error: a map keeps encoded order, so iteration is not
// ascending, and a duplicate key keeps its first position with the last
// value; a set keeps every element as given, so Contains, which
// binary-searches, may miss members. MapStrict and SetStrict verify the order
// and fail instead.
package container
