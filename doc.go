// Package huffpack implements a self-describing Huffman byte codec.
//
// A compressed stream consists of the Huffman tree itself, serialized in
// preorder, followed by the code of every input byte, followed by a single
// sentinel byte that tells the reader how many bits of the final payload byte
// are valid.  There is no header, length field, or checksum.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://codingchallenges.fyi/challenges/challenge-huffman>
//
package huffpack
