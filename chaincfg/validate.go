// Copyright (c) 2017 The Decred developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/luxcore/luxd/blockchain"
)

// These errors are wrapped by Validate to describe parameters which are not
// internally consistent.
var (
	// ErrInvalidThreshold describes a rule change activation threshold
	// larger than the miner confirmation window.
	ErrInvalidThreshold = errors.New("rule change threshold exceeds confirmation window")

	// ErrInvalidMajority describes a block version enforce or reject
	// majority larger than the number of blocks checked.
	ErrInvalidMajority = errors.New("block version majority exceeds blocks checked")

	// ErrInvalidBit describes an enabled deployment whose bit does not fit
	// in the block version.
	ErrInvalidBit = errors.New("deployment bit out of range")

	// ErrInvalidWindow describes an enabled deployment which expires
	// before it starts.
	ErrInvalidWindow = errors.New("deployment expires before it starts")

	// ErrDuplicateBit describes two enabled deployments sharing a bit.
	ErrDuplicateBit = errors.New("deployment bit used more than once")

	// ErrInvalidCheckpoints describes a checkpoint table which does not
	// start at genesis, is not strictly ascending or lacks a hash.
	ErrInvalidCheckpoints = errors.New("invalid checkpoints")

	// ErrInvalidPowLimit describes limit or genesis difficulty bits which
	// are unusable or easier than the proof of work limit.
	ErrInvalidPowLimit = errors.New("invalid proof of work limit")

	// ErrInvalidSporkKey describes a spork key which is not a secp256k1
	// public key.
	ErrInvalidSporkKey = errors.New("invalid spork public key")

	// ErrInvalidDummyAddr describes a darksend pool dummy address which is
	// not a pay-to-pubkey-hash address of the network.
	ErrInvalidDummyAddr = errors.New("invalid darksend pool dummy address")
)

// validateDeployments checks the deployment windows: every deployment which
// can activate has a bit in range, a window that does not end before it
// starts and a bit of its own.
func validateDeployments(p *Params) error {
	var used uint32
	for id := range p.Deployments {
		d := &p.Deployments[id]
		if d.Disabled() {
			continue
		}
		if d.BitNumber > 31 {
			return fmt.Errorf("%w: %s bit %d", ErrInvalidBit,
				DeploymentName(id), d.BitNumber)
		}
		if d.ExpireTime < d.StartTime {
			return fmt.Errorf("%w: %s window [%d, %d]", ErrInvalidWindow,
				DeploymentName(id), d.StartTime, d.ExpireTime)
		}
		if used&d.Mask() != 0 {
			return fmt.Errorf("%w: %s bit %d", ErrDuplicateBit,
				DeploymentName(id), d.BitNumber)
		}
		used |= d.Mask()
	}
	return nil
}

// validateCheckpoints checks the checkpoints are strictly increasing and
// start with the genesis block.
func validateCheckpoints(p *Params) error {
	cps := p.Checkpoints.Checkpoints
	if len(cps) == 0 || cps[0].Height != 0 || cps[0].Hash == nil ||
		*cps[0].Hash != *p.GenesisHash {

		return fmt.Errorf("%w: first checkpoint is not the genesis block",
			ErrInvalidCheckpoints)
	}
	for i := 1; i < len(cps); i++ {
		if cps[i].Height <= cps[i-1].Height {
			return fmt.Errorf("%w: height %d follows %d",
				ErrInvalidCheckpoints, cps[i].Height, cps[i-1].Height)
		}
		if cps[i].Hash == nil {
			return fmt.Errorf("%w: no hash at height %d",
				ErrInvalidCheckpoints, cps[i].Height)
		}
	}
	return nil
}

// validatePowLimit checks the compact limit and the genesis difficulty are
// within the proof of work limit.
func validatePowLimit(p *Params) error {
	for _, bits := range []uint32{p.PowLimitBits, p.GenesisBlock.Header.Bits} {
		target, negative, overflow := blockchain.CompactToBig(bits)
		if negative || overflow || target.Sign() == 0 ||
			target.Cmp(p.PowLimit) > 0 {

			return fmt.Errorf("%w: bits %08x against limit %064x",
				ErrInvalidPowLimit, bits, p.PowLimit)
		}
	}
	return nil
}

// validateKeys checks the spork key is a secp256k1 public key and the dummy
// address is a pay-to-pubkey-hash address of the network.
func validateKeys(p *Params) error {
	if _, err := btcec.ParsePubKey(p.SporkPubKey); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSporkKey, err)
	}

	addrParams := p.AddressParams()
	addr, err := btcutil.DecodeAddress(p.DarksendPoolDummyAddress, addrParams)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDummyAddr, err)
	}
	if _, ok := addr.(*btcutil.AddressPubKeyHash); !ok || !addr.IsForNet(addrParams) {
		return fmt.Errorf("%w: %s is not a pay-to-pubkey-hash address "+
			"of %s", ErrInvalidDummyAddr, p.DarksendPoolDummyAddress, p.Name)
	}
	return nil
}

// Validate checks the internal consistency of the parameters.
func (p *Params) Validate() error {
	if p.RuleChangeActivationThreshold > p.MinerConfirmationWindow {
		return fmt.Errorf("%w: %d > %d", ErrInvalidThreshold,
			p.RuleChangeActivationThreshold, p.MinerConfirmationWindow)
	}
	if p.BlockEnforceNumRequired > p.BlockUpgradeNumToCheck ||
		p.BlockRejectNumRequired > p.BlockUpgradeNumToCheck {

		return fmt.Errorf("%w: enforce %d, reject %d, checked %d",
			ErrInvalidMajority, p.BlockEnforceNumRequired,
			p.BlockRejectNumRequired, p.BlockUpgradeNumToCheck)
	}

	validators := []func(*Params) error{
		validateDeployments,
		validateCheckpoints,
		validatePowLimit,
		validateKeys,
	}
	for _, validate := range validators {
		if err := validate(p); err != nil {
			return err
		}
	}
	return nil
}
