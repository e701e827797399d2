// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrAlreadySelected describes an error where a network is selected
	// after a different network was already made active.
	ErrAlreadySelected = errors.New("a different network is already selected")

	// ErrNoActiveNetwork describes an error where the active parameters
	// are requested before any network was selected.
	ErrNoActiveNetwork = errors.New("no network selected")
)

// builders maps each network to the function building its parameters.
var builders = map[Network]func() *Params{
	MainNet:    mainNetParams,
	TestNet:    testNetParams,
	RegTest:    regTestParams,
	UnitTest:   unitTestParams,
	SegWitTest: segWitTestParams,
}

// Create builds, validates and, for networks with a fixed genesis block,
// verifies fresh parameters for net.  The caller owns the returned value.
func Create(net Network) (*Params, error) {
	build, ok := builders[net]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNetwork, net)
	}

	p := build()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s parameters: %w", net, err)
	}
	if p.VerifyGenesis {
		if err := verifyGenesis(p); err != nil {
			log.Criticalf("Refusing %s parameters: %v", net, err)
			return nil, err
		}
	}

	log.Debugf("Built %s parameters (genesis %v, %v headers)", net,
		p.GenesisHash, p.HeaderHashAlgo)
	return p, nil
}

// Registry hands out the shared parameters of each network and tracks the
// network selected for the process.  Parameters are built on first use and
// the same instance is returned afterward.  A network can be selected only
// once.
//
// Registry is safe for concurrent access.
type Registry struct {
	mtx    sync.Mutex
	built  map[Network]*Params
	active *Params
}

// NewRegistry returns a registry with no network selected.
func NewRegistry() *Registry {
	return &Registry{
		built: make(map[Network]*Params),
	}
}

// params returns the cached parameters of net, building them when needed.
//
// This function MUST be called with the registry lock held.
func (r *Registry) params(net Network) (*Params, error) {
	if p, ok := r.built[net]; ok {
		return p, nil
	}
	p, err := Create(net)
	if err != nil {
		return nil, err
	}
	r.built[net] = p
	return p, nil
}

// Params returns the shared parameters of net without selecting it.
func (r *Registry) Params(net Network) (*Params, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.params(net)
}

// Select makes net the active network and returns its parameters.
// Selecting the active network again returns the same parameters, while
// selecting any other network fails with ErrAlreadySelected.
func (r *Registry) Select(net Network) (*Params, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.active != nil {
		if r.active.Network != net {
			return nil, fmt.Errorf("%w: %v is active, requested %v",
				ErrAlreadySelected, r.active.Network, net)
		}
		return r.active, nil
	}

	p, err := r.params(net)
	if err != nil {
		return nil, err
	}
	r.active = p
	log.Infof("Selected %s network", net)
	return p, nil
}

// Active returns the parameters of the selected network.
func (r *Registry) Active() (*Params, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.active == nil {
		return nil, ErrNoActiveNetwork
	}
	return r.active, nil
}

// defaultRegistry is the registry behind the package level functions.
var defaultRegistry = NewRegistry()

// Select makes net the active network of the process and returns its
// parameters.
func Select(net Network) (*Params, error) {
	return defaultRegistry.Select(net)
}

// MustSelect is like Select but panics on error.  It is intended for
// process start up where running with the wrong parameters is not an
// option.
func MustSelect(net Network) *Params {
	p, err := Select(net)
	if err != nil {
		panic(fmt.Sprintf("failed to select %v network: %v", net, err))
	}
	return p
}

// ActiveParams returns the parameters of the network selected for the
// process.  It panics when no network has been selected.
func ActiveParams() *Params {
	p, err := defaultRegistry.Active()
	if err != nil {
		panic(err)
	}
	return p
}

// ParamsFor returns the shared parameters of net without selecting it.
func ParamsFor(net Network) (*Params, error) {
	return defaultRegistry.Params(net)
}
