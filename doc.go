// Package statichuff implements static Huffman coding of text.
//
// The pipeline runs in one direction:
//
//     text → Count → FrequencyTable → Build → Tree → Derive → Encoding
//
// An Encoding is then used for any number of Encode and Decode calls.
// Encode packs codewords most-significant-bit first into an EncodedData,
// which records how many bits of its final byte are valid.
//
// The trees are not canonical: only the prefix property and minimum weighted
// path length are guaranteed.  Build is deterministic, however, so a receiver
// holding the same FrequencyTable rebuilds the same Encoding.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package statichuff
