// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package videosurface

import "testing"

func TestDefaultHDRParamsMatchesSpecConstants(t *testing.T) {
	p := DefaultHDRParams()
	if p.Primaries != PrimariesBT2020 {
		t.Errorf("Primaries = %v, want PrimariesBT2020", p.Primaries)
	}
	if p.TransferFunction != TransferFunctionST2084 {
		t.Errorf("TransferFunction = %v, want TransferFunctionST2084", p.TransferFunction)
	}
	if p.MinLuminanceCdm2 != 0.0001 || p.MaxLuminanceCdm2 != 1000 || p.RefLuminanceCdm2 != 203 {
		t.Errorf("luminance = {%v,%v,%v}, want {0.0001,1000,203}",
			p.MinLuminanceCdm2, p.MaxLuminanceCdm2, p.RefLuminanceCdm2)
	}
	if p.MasteringMinCdm2 != 1 || p.MasteringMaxCdm2 != 1000 {
		t.Errorf("mastering = {%v,%v}, want {1,1000}", p.MasteringMinCdm2, p.MasteringMaxCdm2)
	}
}

func TestErrNoHDRIncludesReason(t *testing.T) {
	err := errNoHDR("no color management global")
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if got := err.Error(); got == "" {
		t.Fatal("expected non-empty error message")
	}
}
