//go:build cgo && darwin

package mach

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindgren/taskstat/internal/layout"
)

// TestLayoutMatchesKernelHeaders cross-checks every hard-coded constant
// in this package against the values the C compiler measured from the
// system headers. A failure here means the kernel structure layout has
// diverged and decoding would corrupt the reported statistics.
func TestLayoutMatchesKernelHeaders(t *testing.T) {
	tests := []struct {
		name string
		want uint64
		got  func() uint64
	}{
		{"sizeof(mach_task_basic_info)", taskBasicInfoSizeOf, layout.SizeofTaskBasicInfo},
		{"sizeof(mach_task_basic_info.virtual_size)", 8, layout.SizeofTaskBasicInfoVirtualSize},
		{"sizeof(mach_task_basic_info.resident_size)", 8, layout.SizeofTaskBasicInfoResidentSize},
		{"sizeof(vm_region_basic_info_64)", vmRegionBasicInfo64SizeOf, layout.SizeofVMRegionBasicInfo64},
		{"sizeof(vm_region_basic_info_64.reserved)", 4, layout.SizeofVMRegionBasicInfo64Reserved},
		{"GLOBAL_SHARED_TEXT_SEGMENT", globalSharedTextSegment, layout.GlobalSharedTextSegment},
		{"SHARED_TEXT_REGION_SIZE", sharedTextRegionSize, layout.SharedTextRegionSize},
		{"SHARED_DATA_REGION_SIZE", sharedDataRegionSize, layout.SharedDataRegionSize},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.got())
		})
	}
}

// The tests below prove that a value written at the offset the C
// compiler reports for a field lands in the corresponding Go struct
// field when the payload is decoded. The Go field offsets may differ
// from the C ones (vm_region_basic_info_64 is 4-byte packed), so this
// is the property that actually matters.

func TestVirtualSizeDecodesFromProbedOffset(t *testing.T) {
	buf := make([]byte, layout.SizeofTaskBasicInfo())
	binary.NativeEndian.PutUint64(buf[layout.OffsetofTaskBasicInfoVirtualSize():], math.MaxUint64)

	var info taskBasicInfo
	require.NoError(t, decodeStruct(buf, uint64(len(buf)), &info))
	assert.Equal(t, mach_vm_size_t(math.MaxUint64), info.VirtualSize)
}

func TestResidentSizeDecodesFromProbedOffset(t *testing.T) {
	buf := make([]byte, layout.SizeofTaskBasicInfo())
	binary.NativeEndian.PutUint64(buf[layout.OffsetofTaskBasicInfoResidentSize():], math.MaxUint64)

	var info taskBasicInfo
	require.NoError(t, decodeStruct(buf, uint64(len(buf)), &info))
	assert.Equal(t, mach_vm_size_t(math.MaxUint64), info.ResidentSize)
}

func TestReservedDecodesFromProbedOffset(t *testing.T) {
	buf := make([]byte, layout.SizeofVMRegionBasicInfo64())
	binary.NativeEndian.PutUint32(buf[layout.OffsetofVMRegionBasicInfo64Reserved():], math.MaxInt32)

	var region vmRegionBasicInfo64
	require.NoError(t, decodeStruct(buf, uint64(len(buf)), &region))
	assert.Equal(t, boolean_t(math.MaxInt32), region.Reserved)
}
