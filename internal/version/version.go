// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the LUX utilities provided in this repository.
package version

import (
	"fmt"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 5
	Minor uint = 2
	Patch uint = 0
)

var (
	// PreRelease is defined as a variable so it can be overridden during the
	// build process with:
	// '-ldflags "-X github.com/luxcore/luxd/internal/version.PreRelease=foo"'
	// if needed.
	PreRelease = "beta"

	// BuildMetadata is defined as a variable so it can be overridden during
	// the build process with:
	// '-ldflags "-X github.com/luxcore/luxd/internal/version.BuildMetadata=foo"'
	// if needed.
	BuildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (http://semver.org/).
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

	// Dots separate identifiers in build metadata but are not allowed in
	// the pre-release tag used here.
	preRelease := strings.ReplaceAll(normalize(PreRelease), ".", "")
	if preRelease != "" {
		version += "-" + preRelease
	}
	if build := normalize(BuildMetadata); build != "" {
		version += "+" + build
	}
	return version
}

// normalize strips all characters which are not valid in a semantic version
// identifier.
func normalize(str string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(semanticAlphabet, r) {
			return r
		}
		return -1
	}, str)
}
