// Package chunker implements content-defined chunking (CDC): a rolling hash
// over a sliding window (RollingHasher), a reusable per-chunk cryptographic
// digest (Digester), and the Slicer that drives the two together to split a
// byte stream into variable-size, boundary-stable chunks.
//
// Unlike the GF(2)-polynomial Rabin fingerprint this package's lineage
// originally used, the rolling hash here is the classic Rabin-Karp
// polynomial hash computed in ordinary modular integer arithmetic (see
// PolynomialRollingHasher), with a moving-sum variant available as a
// cheaper alternative (MovingSumRollingHasher).
package chunker
