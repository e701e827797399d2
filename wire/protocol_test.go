// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018 The LUX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "testing"

// TestLuxNetStringer tests the stringized output for LUX net types.
func TestLuxNetStringer(t *testing.T) {
	tests := []struct {
		in    LuxNet
		want  string
		start [4]byte
	}{
		{MainNet, "MainNet", [4]byte{0xf6, 0xa8, 0xd3, 0xc4}},
		{TestNet, "TestNet", [4]byte{0x53, 0x66, 0x55, 0xac}},
		{RegTest, "RegTest", [4]byte{0xa1, 0xcf, 0x7e, 0xac}},
		{SegWitTest, "SegWitTest", [4]byte{0xf9, 0x73, 0xc9, 0xa7}},
		{0xffffffff, "Unknown LuxNet (4294967295)", [4]byte{0xff, 0xff, 0xff, 0xff}},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, got, test.want)
		}
		if got := test.in.MessageStart(); got != test.start {
			t.Errorf("MessageStart #%d\n got: %x want: %x", i, got,
				test.start)
		}
	}
}
