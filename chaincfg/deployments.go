// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// DeploymentSegwit defines the rule change deployment ID for the
	// Segregated Witness (segwit) soft-fork package. The segwit package
	// includes the deployment of BIPS 141, 142, 144, 145, 147 and 173.
	DeploymentSegwit

	// DeploymentSmartContracts defines the deployment ID of the smart
	// contracts hard fork.  It only reserves its version bit: activation
	// is by block height (Params.FirstSCBlock), so the deployment is
	// unwired and never activates through version bits signalling.
	DeploymentSmartContracts

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// noTimeout is the expire time used by windows which never time out.
const noTimeout = 999999999999

// deploymentNames maps deployment IDs to their names for pretty printing.
var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy:      "testdummy",
	DeploymentCSV:            "csv",
	DeploymentSegwit:         "segwit",
	DeploymentSmartContracts: "smartcontracts",
}

// DeploymentName returns the name of the deployment ID.
func DeploymentName(id int) string {
	if id < 0 || id >= DefinedDeployments {
		return fmt.Sprintf("unknown deployment (%d)", id)
	}
	return deploymentNames[id]
}

// DeploymentError identifies an error that indicates a deployment ID was
// specified that does not exist.
type DeploymentError int

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e DeploymentError) Error() string {
	return fmt.Sprintf("deployment ID %d does not exist", int(e))
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime uint64

	// Unwired marks a deployment which only reserves its bit.  It has no
	// window and never activates.
	Unwired bool
}

// Disabled reports whether the deployment can never activate.  A zero width
// window is the disabled sentinel.
func (d *ConsensusDeployment) Disabled() bool {
	return d.Unwired || d.StartTime == d.ExpireTime
}

// Mask returns the block version bit mask of the deployment.
func (d *ConsensusDeployment) Mask() uint32 {
	return 1 << d.BitNumber
}

// DeploymentWindow returns the signalling window of the deployment with the
// given ID.
func (p *Params) DeploymentWindow(id int) (ConsensusDeployment, error) {
	if id < 0 || id >= DefinedDeployments {
		return ConsensusDeployment{}, DeploymentError(id)
	}
	return p.Deployments[id], nil
}
