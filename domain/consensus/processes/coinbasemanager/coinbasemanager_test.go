package coinbasemanager

import (
	"testing"

	"github.com/waglayla/waglaylad/domain/consensus/utils/constants"
)

// legacyCalcBlockSubsidy recomputes subsidy assuming exactly 1 block per
// second, bypassing the BPS-scaled table entirely. It exists to cross-check
// a 1-BPS manager's precomputed table against the literal constants table it
// was built from.
func legacyCalcBlockSubsidy(deflationaryPhaseDAAScore, preDeflationaryPhaseBaseSubsidy, daaScore uint64) uint64 {
	if daaScore < deflationaryPhaseDAAScore {
		return preDeflationaryPhaseBaseSubsidy
	}

	months := (daaScore - deflationaryPhaseDAAScore) / constants.SecondsPerMonth
	if months >= uint64(len(constants.SubsidyByMonthTable)) {
		return 0
	}
	return constants.SubsidyByMonthTable[months]
}

func TestCalcBlockSubsidyPhaseBoundary(t *testing.T) {
	const deflationary = 15_778_800
	const preBase = 50_000_000_000
	manager := New(150, 204, deflationary, preBase, 1000, 0)

	tests := []struct {
		daaScore uint64
		want     uint64
	}{
		{deflationary - 1, preBase},
		{deflationary, constants.SubsidyByMonthTable[0]},
		{deflationary + 12*constants.SecondsPerMonth, constants.SubsidyByMonthTable[12]},
	}

	for _, tt := range tests {
		got := manager.CalcBlockSubsidy(tt.daaScore)
		if got != tt.want {
			t.Errorf("CalcBlockSubsidy(%d) = %d, want %d", tt.daaScore, got, tt.want)
		}
	}
}

func TestCalcBlockSubsidyDepletion(t *testing.T) {
	const deflationary = 15_778_800
	const preBase = 50_000_000_000
	manager := New(150, 204, deflationary, preBase, 1000, 0)

	blocksPerMonth := constants.SecondsPerMonth // bps == 1 at 1000ms/block
	daaScore := deflationary + uint64(len(constants.SubsidyByMonthTable))*blocksPerMonth

	got := manager.CalcBlockSubsidy(daaScore)
	if got != 0 {
		t.Fatalf("CalcBlockSubsidy(%d) = %d, want 0 (table should be fully depleted)", daaScore, got)
	}
}

func TestCalcBlockSubsidyAgreesWithLegacyAt1BPS(t *testing.T) {
	const deflationary = 15_778_800
	const preBase = 50_000_000_000
	manager := New(150, 204, deflationary, preBase, 1000, 0)

	for month := 0; month < len(constants.SubsidyByMonthTable)+2; month++ {
		daaScore := deflationary + uint64(month)*constants.SecondsPerMonth
		got := manager.CalcBlockSubsidy(daaScore)
		want := legacyCalcBlockSubsidy(deflationary, preBase, daaScore)
		if got != want {
			t.Errorf("month %d: CalcBlockSubsidy(%d) = %d, want %d (legacy 1-BPS value)", month, daaScore, got, want)
		}
	}
}

func TestScaledTableMatchesMasterAt1BPS(t *testing.T) {
	manager := New(150, 204, 15_778_800, 50_000_000_000, 1000, 0).(*coinbaseManager)

	for i, want := range constants.SubsidyByMonthTable {
		if manager.subsidyByMonthTable[i] != want {
			t.Errorf("subsidyByMonthTable[%d] = %d, want %d (1 BPS must reproduce the master table exactly)",
				i, manager.subsidyByMonthTable[i], want)
		}
	}
}

func TestScaledTableIsCeilDivOfMasterTable(t *testing.T) {
	const bps = 10
	manager := New(150, 204, 15_778_800*bps, 50_000_000_000/bps, 100, 0).(*coinbaseManager)

	for i, master := range constants.SubsidyByMonthTable {
		want := ceilDiv(master, bps)
		if manager.subsidyByMonthTable[i] != want {
			t.Errorf("subsidyByMonthTable[%d] = %d, want %d (ceil_div(%d, %d))",
				i, manager.subsidyByMonthTable[i], want, master, bps)
		}
	}
}

// TestHighBPSTotalRewardsDelta documents the small over-issuance ceiling
// division introduces at a non-1 BPS rate: summed over every block in the
// deflationary phase, a 10-BPS network mints slightly more in total than the
// 1-BPS baseline, because each of the 269 months rounds its per-block
// subsidy up rather than down.
func TestHighBPSTotalRewardsDelta(t *testing.T) {
	const bps = 10

	var baselineTotal uint64
	for _, subsidy := range constants.SubsidyByMonthTable {
		baselineTotal += subsidy * constants.SecondsPerMonth
	}

	var scaledTotal uint64
	blocksPerMonth := constants.SecondsPerMonth * bps
	for _, master := range constants.SubsidyByMonthTable {
		scaledTotal += ceilDiv(master, bps) * blocksPerMonth
	}

	deltaInSompi := scaledTotal - baselineTotal
	deltaInWaglayla := deltaInSompi / constants.SompiPerWaglayla

	const expectedDeltaInWaglayla = 51
	if deltaInWaglayla != expectedDeltaInWaglayla {
		t.Errorf("10 BPS over-issuance = %d WALA, want %d WALA", deltaInWaglayla, expectedDeltaInWaglayla)
	}
}

func TestNewPanicsOnIndivisibleBlockTime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected New to panic on a target time that doesn't evenly divide 1000")
		}
	}()

	New(150, 204, 0, 0, 300, 0)
}
