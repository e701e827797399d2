// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// unitTestParams returns the network parameters used by unit tests.  They
// are the main network values with relaxed node policy.  The genesis block
// and checkpoints are those of the main network, but the genesis hash is not
// verified.
func unitTestParams() *Params {
	p := mainNetParams()

	p.Name = "unittest"
	p.Network = UnitTest
	p.DefaultPort = "51478"
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	hash := p.GenesisBlock.Header.HashWith(p.HeaderHasher)
	p.GenesisHash = &hash
	p.VerifyGenesis = false

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.ReduceMinDifficulty = false
	p.MineBlocksOnDemand = true

	p.Checkpoints = genesisCheckpoints(p)
	return p
}

// UnitTestBuilder builds unit test network parameters with test specific
// overrides.  Every Build call returns a fresh value, so test cases never
// share mutable parameters.
type UnitTestBuilder struct {
	enforceBlockUpgradeMajority *uint64
	rejectBlockOutdatedMajority *uint64
	toCheckBlockUpgradeMajority *uint64
	defaultConsistencyChecks    *bool
	allowMinDifficultyBlocks    *bool
	skipProofOfWorkCheck        *bool
}

// NewUnitTestBuilder returns a builder with no overrides.
func NewUnitTestBuilder() *UnitTestBuilder {
	return &UnitTestBuilder{}
}

// SetEnforceBlockUpgradeMajority overrides BlockEnforceNumRequired.
func (b *UnitTestBuilder) SetEnforceBlockUpgradeMajority(n uint64) *UnitTestBuilder {
	b.enforceBlockUpgradeMajority = &n
	return b
}

// SetRejectBlockOutdatedMajority overrides BlockRejectNumRequired.
func (b *UnitTestBuilder) SetRejectBlockOutdatedMajority(n uint64) *UnitTestBuilder {
	b.rejectBlockOutdatedMajority = &n
	return b
}

// SetToCheckBlockUpgradeMajority overrides BlockUpgradeNumToCheck.
func (b *UnitTestBuilder) SetToCheckBlockUpgradeMajority(n uint64) *UnitTestBuilder {
	b.toCheckBlockUpgradeMajority = &n
	return b
}

// SetDefaultConsistencyChecks overrides DefaultConsistencyChecks.
func (b *UnitTestBuilder) SetDefaultConsistencyChecks(v bool) *UnitTestBuilder {
	b.defaultConsistencyChecks = &v
	return b
}

// SetAllowMinDifficultyBlocks overrides ReduceMinDifficulty.
func (b *UnitTestBuilder) SetAllowMinDifficultyBlocks(v bool) *UnitTestBuilder {
	b.allowMinDifficultyBlocks = &v
	return b
}

// SetSkipProofOfWorkCheck overrides SkipProofOfWorkCheck.
func (b *UnitTestBuilder) SetSkipProofOfWorkCheck(v bool) *UnitTestBuilder {
	b.skipProofOfWorkCheck = &v
	return b
}

// Build returns new unit test parameters with the overrides applied.
func (b *UnitTestBuilder) Build() (*Params, error) {
	p := unitTestParams()
	if b.enforceBlockUpgradeMajority != nil {
		p.BlockEnforceNumRequired = *b.enforceBlockUpgradeMajority
	}
	if b.rejectBlockOutdatedMajority != nil {
		p.BlockRejectNumRequired = *b.rejectBlockOutdatedMajority
	}
	if b.toCheckBlockUpgradeMajority != nil {
		p.BlockUpgradeNumToCheck = *b.toCheckBlockUpgradeMajority
	}
	if b.defaultConsistencyChecks != nil {
		p.DefaultConsistencyChecks = *b.defaultConsistencyChecks
	}
	if b.allowMinDifficultyBlocks != nil {
		p.ReduceMinDifficulty = *b.allowMinDifficultyBlocks
	}
	if b.skipProofOfWorkCheck != nil {
		p.SkipProofOfWorkCheck = *b.skipProofOfWorkCheck
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
