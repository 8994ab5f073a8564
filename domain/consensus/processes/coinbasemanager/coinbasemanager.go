// Package coinbasemanager builds and validates the expected coinbase
// transaction of a block: the subsidy it mints, the reward outputs it pays
// to its mergeset ancestors, and the payload encoding its miner's identity.
// Every operation here is a pure function of its arguments - no I/O, no
// locks, no clock, no randomness - so a single coinbaseManager may be shared
// freely across goroutines once constructed.
package coinbasemanager

import (
	"github.com/pkg/errors"
	"github.com/waglayla/waglaylad/domain/consensus/model"
	"github.com/waglayla/waglaylad/domain/consensus/utils/constants"
)

type coinbaseManager struct {
	coinbasePayloadScriptPublicKeyMaxLength uint8
	maxCoinbasePayloadLength                int

	deflationaryPhaseDAAScore       uint64
	preDeflationaryPhaseBaseSubsidy uint64
	hfRelaunchDAAScore              uint64

	targetTimePerBlockInMilliseconds uint64
	blocksPerMonth                    uint64
	subsidyByMonthTable               [constants.SubsidyByMonthTableSize]uint64
}

// New instantiates a new CoinbaseManager for a network with the given
// parameters. targetTimePerBlockInMilliseconds must evenly divide 1000; this
// is asserted here rather than left to silently truncate the block rate.
func New(
	coinbasePayloadScriptPublicKeyMaxLength uint8,
	maxCoinbasePayloadLength int,
	deflationaryPhaseDAAScore uint64,
	preDeflationaryPhaseBaseSubsidy uint64,
	targetTimePerBlockInMilliseconds uint64,
	hfRelaunchDAAScore uint64,
) model.CoinbaseManager {

	if 1000%targetTimePerBlockInMilliseconds != 0 {
		panic(errors.Errorf("targetTimePerBlockInMilliseconds of %d does not evenly divide 1000",
			targetTimePerBlockInMilliseconds))
	}

	blocksPerSecond := 1000 / targetTimePerBlockInMilliseconds
	blocksPerMonth := constants.SecondsPerMonth * blocksPerSecond

	var subsidyByMonthTable [constants.SubsidyByMonthTableSize]uint64
	for i, baseSubsidy := range constants.SubsidyByMonthTable {
		subsidyByMonthTable[i] = ceilDiv(baseSubsidy, blocksPerSecond)
	}

	return &coinbaseManager{
		coinbasePayloadScriptPublicKeyMaxLength: coinbasePayloadScriptPublicKeyMaxLength,
		maxCoinbasePayloadLength:                maxCoinbasePayloadLength,

		deflationaryPhaseDAAScore:       deflationaryPhaseDAAScore,
		preDeflationaryPhaseBaseSubsidy: preDeflationaryPhaseBaseSubsidy,
		hfRelaunchDAAScore:              hfRelaunchDAAScore,

		targetTimePerBlockInMilliseconds: targetTimePerBlockInMilliseconds,
		blocksPerMonth:                   blocksPerMonth,
		subsidyByMonthTable:              subsidyByMonthTable,
	}
}

// ceilDiv computes the ceiling of numerator/denominator using only integer
// arithmetic. Used to rescale the 1-BPS subsidy table to the network's
// actual block rate without ever under-issuing relative to the baseline.
func ceilDiv(numerator, denominator uint64) uint64 {
	return (numerator + denominator - 1) / denominator
}

// CalcBlockSubsidy returns the subsidy amount a block at the given DAA score
// is entitled to mint. Below deflationaryPhaseDAAScore every block mints the
// flat pre-deflationary subsidy; from there on, the subsidy steps down once
// per elapsed month according to the BPS-scaled table, and is zero once the
// table is exhausted.
func (c *coinbaseManager) CalcBlockSubsidy(daaScore uint64) uint64 {
	if daaScore < c.deflationaryPhaseDAAScore {
		return c.preDeflationaryPhaseBaseSubsidy
	}

	monthsSinceDeflationaryPhaseStarted := (daaScore - c.deflationaryPhaseDAAScore) / c.blocksPerMonth
	if monthsSinceDeflationaryPhaseStarted >= uint64(len(c.subsidyByMonthTable)) {
		return 0
	}

	return c.subsidyByMonthTable[monthsSinceDeflationaryPhaseStarted]
}
