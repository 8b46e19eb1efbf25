// Package lcs computes the longest common subsequence (LCS) of two
// sequences using Nakatsu's algorithm, chosen (per spec) because its
// running time degrades gracefully -- approaching linear -- when the two
// inputs are mostly identical, the expected case for two versions of the
// same file.
package lcs

// Nakatsu returns one longest common subsequence of a and b. If several
// maximal subsequences exist, exactly one is returned; no attempt is made
// to pick among them.
//
// Reference: Nakatsu, Kambayashi, Yajima (1982), "A Longest Common
// Subsequence Algorithm Suitable for Similar Text Strings",
// https://doi.org/10.1007/BF00264437
//
// Time:  O(n*(m-p))  Space: O(m^2)
// where n,m are the input lengths (m the shorter) and p is the LCS length.
// The paper's full triangular matrix is retained (rather than Kumar's
// linear-space variant) because trace-back needs it.
func Nakatsu[T comparable](a, b []T) []T {
	// sigma (m_string) is the shorter of the two; tau (n_string) the longer.
	var m_string, n_string []T
	if len(a) <= len(b) {
		m_string, n_string = a, b
	} else {
		m_string, n_string = b, a
	}
	m_len := len(m_string)
	n_len := len(n_string)

	if m_len == 0 {
		return nil
	}

	// L_i(k) denotes the largest h such that m_string(i:m) and
	// n_string(h:n) share a common subsequence of length k. l is stored as
	// an (m_len+1) x (m_len+1) matrix, column-major: l[(k-1)*width + (i-1)]
	// holds L_i(k), 1-indexed per the paper; a stored 0 marks "unreachable".
	width := m_len + 1
	l := make([]int, width*width)

	// Seed the diagonal that represents "no characters consumed yet" (k=0
	// boundary) to 0, marking those cells unreachable.
	i := m_len
	for range width {
		l[i] = 0
		i += m_len
	}

	diagonalLen := m_len
	for diagonalLen > 0 {
		solved := true
		prevL := 0 // L_{i+1}(k-1)

		for j := 1; j <= diagonalLen; j++ {
			row := diagonalLen - j + 1
			index := (j-1)*width + row - 1

			lowerBound := l[index+1]
			upperBound := n_len + 1
			if j >= 2 && prevL != 0 {
				upperBound = prevL
			}

			l[index] = lowerBound
			searched := m_string[row-1]
			for h := upperBound - 1; h > lowerBound; h-- {
				if n_string[h-1] == searched {
					l[index] = h
					break
				}
			}

			prevL = l[index]
			if l[index] == 0 {
				solved = false
				break
			}
		}

		if solved {
			break
		}
		diagonalLen--
	}

	if diagonalLen == 0 {
		return nil
	}

	// Trace back the subsequence of length diagonalLen.
	result := make([]T, 0, diagonalLen)
	index := (diagonalLen - 1) * width
	for {
		for l[index] == l[index+1] {
			index++
		}
		result = append(result, n_string[l[index]-1])
		if index <= m_len {
			break
		}
		index -= m_len
	}

	return result
}
