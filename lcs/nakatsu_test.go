package lcs_test

import (
	"testing"

	"github.com/blockdiff/deltasync/lcs"
)

func runLCS(t *testing.T, a, b, want string) {
	t.Helper()
	got := lcs.Nakatsu([]byte(a), []byte(b))
	if string(got) != want {
		t.Errorf("Nakatsu(%q, %q) = %q, want %q", a, b, string(got), want)
	}
}

func TestNakatsuBcdababVsCbacbaaba(t *testing.T) {
	got := lcs.Nakatsu([]byte("bcdabab"), []byte("cbacbaaba"))
	if len(got) != 5 {
		t.Fatalf("len(lcs) = %d, want 5 (got %q)", len(got), string(got))
	}
}

func TestNakatsuEquilibriumVsEiger(t *testing.T) {
	runLCS(t, "equilibrium", "eiger", "eir")
}

func TestNakatsuBlockchainSentences(t *testing.T) {
	a := "a blockchain is a growing list of records"
	b := "the blockchain - an ever-growing decentralized ledger"
	runLCS(t, a, b, " blockchain  a growing li er")
}

func TestNakatsuEmptyInputs(t *testing.T) {
	if got := lcs.Nakatsu([]byte{}, []byte("anything")); len(got) != 0 {
		t.Errorf("expected empty LCS, got %q", string(got))
	}
	if got := lcs.Nakatsu([]byte("anything"), []byte{}); len(got) != 0 {
		t.Errorf("expected empty LCS, got %q", string(got))
	}
	if got := lcs.Nakatsu([]byte{}, []byte{}); len(got) != 0 {
		t.Errorf("expected empty LCS, got %q", string(got))
	}
}

func TestNakatsuNoCommonElements(t *testing.T) {
	if got := lcs.Nakatsu([]byte("abc"), []byte("xyz")); len(got) != 0 {
		t.Errorf("expected empty LCS, got %q", string(got))
	}
}

func TestNakatsuIsCommonSubsequenceOfBoth(t *testing.T) {
	a := []byte("the quick brown fox jumps over the lazy dog")
	b := []byte("quick brown foxes jump over lazy dogs daily")

	got := lcs.Nakatsu(a, b)
	if !isSubsequence(got, a) {
		t.Errorf("result %q is not a subsequence of a %q", got, a)
	}
	if !isSubsequence(got, b) {
		t.Errorf("result %q is not a subsequence of b %q", got, b)
	}
}

func isSubsequence[T comparable](sub, full []T) bool {
	i := 0
	for _, v := range full {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	return i == len(sub)
}

func TestNakatsuIdenticalInputs(t *testing.T) {
	a := []byte("repeat repeat repeat")
	got := lcs.Nakatsu(a, a)
	if string(got) != string(a) {
		t.Errorf("Nakatsu(a, a) = %q, want %q", got, a)
	}
}
