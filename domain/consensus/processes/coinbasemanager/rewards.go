package coinbasemanager

import (
	"github.com/pkg/errors"
	"github.com/waglayla/waglaylad/domain/consensus/model"
	"github.com/waglayla/waglaylad/domain/consensus/model/externalapi"
	"github.com/waglayla/waglaylad/domain/consensus/utils/constants"
	"github.com/waglayla/waglaylad/domain/consensus/utils/subnetworks"
)

// coinbaseOutputsForMergeset distributes reward across a block's mergeset:
// every blue ancestor inside the DAA window with a non-zero reward is paid
// its own output, while every red ancestor inside the DAA window has its
// reward folded into a single output paid to the merging block's own miner
// (emitted only when that sum is non-zero). It returns the
// ordered output list and whether any red reward was folded in.
//
// A mergeset hash with no entry in mergesetRewards is a programming error on
// the caller's part, not a condition this function reports as an error - the
// caller is expected to supply reward data for every hash it passes in.
func coinbaseOutputsForMergeset(
	ghostdagData *externalapi.GhostdagData,
	mergesetRewards map[externalapi.DomainHash]*externalapi.BlockRewardData,
	mergesetNonDAA map[externalapi.DomainHash]struct{},
	minerData externalapi.MinerData,
) ([]*externalapi.DomainTransactionOutput, bool) {

	outputs := make([]*externalapi.DomainTransactionOutput, 0, len(ghostdagData.MergeSetBlues))

	for _, blue := range ghostdagData.MergeSetBlues {
		if _, isNonDAA := mergesetNonDAA[*blue]; isNonDAA {
			continue
		}

		reward, ok := mergesetRewards[*blue]
		if !ok {
			panic(errors.Errorf("no reward data for mergeset blue block %s", blue))
		}

		amount := reward.Subsidy + reward.TotalFees
		if amount == 0 {
			continue
		}

		outputs = append(outputs, externalapi.NewTransactionOutput(amount, reward.ScriptPublicKey))
	}

	redReward := uint64(0)
	for _, red := range ghostdagData.MergeSetReds {
		if _, isNonDAA := mergesetNonDAA[*red]; isNonDAA {
			continue
		}

		reward, ok := mergesetRewards[*red]
		if !ok {
			panic(errors.Errorf("no reward data for mergeset red block %s", red))
		}

		redReward += reward.Subsidy + reward.TotalFees
	}

	hasRedReward := redReward > 0
	if hasRedReward {
		outputs = append(outputs, externalapi.NewTransactionOutput(redReward, minerData.ScriptPublicKey))
	}

	return outputs, hasRedReward
}

// ExpectedCoinbaseTransaction builds the coinbase transaction a block at
// daaScore, mined by minerData, is expected to carry: it pays out the
// block's mergeset per coinbaseOutputsForMergeset, and encodes the block's
// blue score, its own subsidy (from CalcBlockSubsidy) and minerData into the
// transaction's payload.
func (c *coinbaseManager) ExpectedCoinbaseTransaction(
	daaScore uint64,
	minerData externalapi.MinerData,
	ghostdagData *externalapi.GhostdagData,
	mergesetRewards map[externalapi.DomainHash]*externalapi.BlockRewardData,
	mergesetNonDAA map[externalapi.DomainHash]struct{},
) (*model.CoinbaseTransactionTemplate, error) {

	outputs, hasRedReward := coinbaseOutputsForMergeset(ghostdagData, mergesetRewards, mergesetNonDAA, minerData)

	subsidy := c.CalcBlockSubsidy(daaScore)

	payload, err := c.SerializeCoinbasePayload(&externalapi.CoinbaseData{
		BlueScore: ghostdagData.BlueScore,
		Subsidy:   subsidy,
		MinerData: minerData,
	})
	if err != nil {
		return nil, err
	}

	tx := &externalapi.DomainTransaction{
		Version:      constants.TXVersion,
		Inputs:       []*externalapi.DomainTransactionInput{},
		Outputs:      outputs,
		LockTime:     0,
		SubnetworkID: subnetworks.SubnetworkIDCoinbase,
		Gas:          0,
		Payload:      payload,
		Mass:         0,
	}

	return &model.CoinbaseTransactionTemplate{
		Transaction:  tx,
		HasRedReward: hasRedReward,
	}, nil
}
