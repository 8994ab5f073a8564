package compactbits

import (
	"math/big"
	"testing"
)

func TestCompactToBigRoundTrip(t *testing.T) {
	tests := []uint32{0x1e7fffff, 0x207fffff, 0x1e21bc1c, 504155340}

	for _, compact := range tests {
		target := CompactToBig(compact)
		got := BigToCompact(target)
		if got != compact {
			t.Errorf("BigToCompact(CompactToBig(0x%x)) = 0x%x, want 0x%x", compact, got, compact)
		}
	}
}

func TestBigToCompactZero(t *testing.T) {
	if got := BigToCompact(big.NewInt(0)); got != 0 {
		t.Errorf("BigToCompact(0) = %d, want 0", got)
	}
}

func TestTestnetScaledBitsDerivation(t *testing.T) {
	const testnetBits = 0x1e7fffff
	const bps = 10
	const referenceScale = 100
	const wantScaledBits = 504155340

	target := CompactToBig(testnetBits)
	scaledTarget := new(big.Int).Mul(target, big.NewInt(bps))
	scaledTarget.Div(scaledTarget, big.NewInt(referenceScale))

	got := BigToCompact(scaledTarget)
	if got != wantScaledBits {
		t.Errorf("derived testnet-11 bits = %d, want %d", got, wantScaledBits)
	}
}
