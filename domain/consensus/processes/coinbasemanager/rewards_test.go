package coinbasemanager

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/waglayla/waglaylad/domain/consensus/model/externalapi"
)

func TestCoinbaseOutputsForMergeset(t *testing.T) {
	b1 := externalapi.DomainHash{1}
	b2 := externalapi.DomainHash{2}
	b3 := externalapi.DomainHash{3}
	r1 := externalapi.DomainHash{4}

	k1 := externalapi.ScriptPublicKey{Version: 0, Script: []byte{0xa1}}
	k2 := externalapi.ScriptPublicKey{Version: 0, Script: []byte{0xa2}}
	k3 := externalapi.ScriptPublicKey{Version: 0, Script: []byte{0xa3}}
	kr := externalapi.ScriptPublicKey{Version: 0, Script: []byte{0xaf}}
	km := externalapi.ScriptPublicKey{Version: 0, Script: []byte{0xbe}}

	ghostdagData := &externalapi.GhostdagData{
		BlueScore:     100,
		MergeSetBlues: []*externalapi.DomainHash{&b1, &b2, &b3},
		MergeSetReds:  []*externalapi.DomainHash{&r1},
	}

	mergesetRewards := map[externalapi.DomainHash]*externalapi.BlockRewardData{
		b1: externalapi.NewBlockRewardData(100, 5, k1),
		b2: externalapi.NewBlockRewardData(0, 0, k2), // filtered by mergesetNonDAA below
		b3: externalapi.NewBlockRewardData(0, 0, k3), // zero amount, omitted
		r1: externalapi.NewBlockRewardData(10, 1, kr),
	}
	mergesetNonDAA := map[externalapi.DomainHash]struct{}{b2: {}}

	minerData := externalapi.MinerData{ScriptPublicKey: km}

	outputs, hasRedReward := coinbaseOutputsForMergeset(ghostdagData, mergesetRewards, mergesetNonDAA, minerData)

	expected := []*externalapi.DomainTransactionOutput{
		externalapi.NewTransactionOutput(105, k1),
		externalapi.NewTransactionOutput(11, km),
	}

	if !reflect.DeepEqual(outputs, expected) {
		t.Fatalf("got %s, want %s", spew.Sdump(outputs), spew.Sdump(expected))
	}
	if !hasRedReward {
		t.Fatal("expected hasRedReward to be true")
	}
}

func TestExpectedCoinbaseTransaction(t *testing.T) {
	manager := New(150, 204, 15_778_800, 50_000_000_000, 1000, 0)

	b1 := externalapi.DomainHash{1}
	k1 := externalapi.ScriptPublicKey{Version: 0, Script: []byte{0xa1}}
	km := externalapi.ScriptPublicKey{Version: 0, Script: []byte{0xbe}}

	ghostdagData := &externalapi.GhostdagData{
		BlueScore:     100,
		MergeSetBlues: []*externalapi.DomainHash{&b1},
		MergeSetReds:  []*externalapi.DomainHash{},
	}
	mergesetRewards := map[externalapi.DomainHash]*externalapi.BlockRewardData{
		b1: externalapi.NewBlockRewardData(50_000_000_000, 7, k1),
	}
	minerData := externalapi.MinerData{ScriptPublicKey: km, ExtraData: []byte("v0.1")}

	template, err := manager.ExpectedCoinbaseTransaction(1, minerData, ghostdagData, mergesetRewards, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if template.HasRedReward {
		t.Fatal("expected no red reward with an empty mergeset-reds list")
	}

	if len(template.Transaction.Outputs) != 1 {
		t.Fatalf("expected exactly one output, got %d", len(template.Transaction.Outputs))
	}
	if template.Transaction.Outputs[0].Value != 50_000_000_007 {
		t.Fatalf("got output value %d, want %d", template.Transaction.Outputs[0].Value, 50_000_000_007)
	}

	if len(template.Transaction.Inputs) != 0 {
		t.Fatal("coinbase transactions must have no inputs")
	}

	coinbaseData, err := manager.DeserializeCoinbasePayload(template.Transaction.Payload)
	if err != nil {
		t.Fatalf("payload embedded in the built transaction does not deserialize: %v", err)
	}
	if coinbaseData.BlueScore != ghostdagData.BlueScore {
		t.Errorf("payload blue score = %d, want %d", coinbaseData.BlueScore, ghostdagData.BlueScore)
	}
	if coinbaseData.Subsidy != manager.CalcBlockSubsidy(1) {
		t.Errorf("payload subsidy = %d, want %d", coinbaseData.Subsidy, manager.CalcBlockSubsidy(1))
	}
}

func TestCoinbaseOutputsForMergesetMissingRewardPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a mergeset blue with no reward data")
		}
	}()

	b1 := externalapi.DomainHash{1}
	ghostdagData := &externalapi.GhostdagData{
		MergeSetBlues: []*externalapi.DomainHash{&b1},
	}

	coinbaseOutputsForMergeset(ghostdagData, nil, nil, externalapi.MinerData{})
}
