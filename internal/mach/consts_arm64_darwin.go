//go:build arm64

package mach

// Macro values from xnu/osfmk/mach/shared_memory_server.h. Note that
// __arm__ is not defined for 64-bit arm, so the generic values apply.
const (
	globalSharedTextSegment uint64 = 0x90000000

	sharedTextRegionSize uint64 = 0x10000000
	sharedDataRegionSize uint64 = 0x10000000
)

// Expected structure sizes. The cgo probe in internal/layout measures
// the authoritative values; the test suite fails if these drift.
const (
	taskBasicInfoSizeOf       = 48 // sizeof(struct mach_task_basic_info)
	vmRegionBasicInfo64SizeOf = 36 // sizeof(struct vm_region_basic_info_64)
)

// Fundamental scalar types from xnu/osfmk/mach/arm/vm_types.h,
// xnu/bsd/arm/_types.h, xnu/osfmk/mach/arm/boolean.h, and
// xnu/osfmk/mach/arm/kern_return.h. Widths are explicit so the structs
// in this package can be decoded with encoding/binary.
type (
	integer_t = int32  // typedef int integer_t;
	natural_t = uint32 // typedef __darwin_natural_t natural_t;

	mach_vm_offset_t = uint64 // typedef uint64_t mach_vm_offset_t;
	mach_vm_size_t   = uint64 // typedef uint64_t mach_vm_size_t;

	boolean_t     = int32 // typedef int boolean_t;
	kern_return_t = int   // typedef int kern_return_t;
)
