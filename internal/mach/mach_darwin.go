//go:build darwin

package mach

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ebitengine/purego"
)

// Derived Mach types from xnu/osfmk/mach. policy_t is an int in C and
// pinned to 32 bits here for struct decoding. task_info_t and
// vm_region_info_t are integer_t* in C; []byte keeps the type system
// happy while matching the calling convention.
type (
	mach_port_t            = natural_t // typedef natural_t mach_port_t;
	mach_msg_type_number_t = natural_t // typedef natural_t mach_msg_type_number_t;
	policy_t               = int32     // typedef int policy_t;

	task_flavor_t = natural_t // typedef natural_t task_flavor_t;
	task_info_t   = []byte    // typedef integer_t *task_info_t;

	vm_map_t           = mach_port_t // typedef mach_port_t vm_map_t;
	vm_region_flavor_t = int32       // typedef int vm_region_flavor_t;
	vm_region_info_t   = []byte      // typedef int *vm_region_info_t;
)

// Field types of struct vm_region_basic_info_64, pinned to the widths
// of their native definitions in xnu/osfmk/mach.
type (
	memory_object_offset_t = uint64 // typedef unsigned long long memory_object_offset_t;
	vm_behavior_t          = int32  // typedef int vm_behavior_t;
	vm_inherit_t           = uint32 // typedef unsigned int vm_inherit_t;
	vm_prot_t              = int32  // typedef int vm_prot_t;
)

// time_value_t from xnu/osfmk/mach/time_value.h.
type time_value_t struct {
	Seconds      integer_t
	MicroSeconds integer_t
}

const (
	// task_info() flavor for taskBasicInfo; always 64-bit basic info.
	machTaskBasicInfoFlavor task_flavor_t = 20

	// MACH_TASK_BASIC_INFO_COUNT, the payload size in integer_t units.
	taskBasicInfoCount mach_msg_type_number_t = taskBasicInfoSizeOf / 4

	// mach_vm_region() flavor for vmRegionBasicInfo64.
	vmRegionBasicInfo64Flavor vm_region_flavor_t = 9

	// VM_REGION_BASIC_INFO_COUNT_64.
	vmRegionBasicInfo64Count mach_msg_type_number_t = vmRegionBasicInfo64SizeOf / 4
)

// taskBasicInfo mirrors struct mach_task_basic_info in
// xnu/osfmk/mach/task_info.h, the architecture-independent task
// statistics payload.
type taskBasicInfo struct {
	VirtualSize     mach_vm_size_t // virtual memory size (bytes)
	ResidentSize    mach_vm_size_t // resident memory size (bytes)
	ResidentSizeMax mach_vm_size_t // maximum resident memory size (bytes)
	UserTime        time_value_t   // total user run time for terminated threads
	SystemTime      time_value_t   // total system run time for terminated threads
	Policy          policy_t       // default policy for new threads
	SuspendCount    integer_t      // suspend count for task
}

// vmRegionBasicInfo64 mirrors struct vm_region_basic_info_64 in
// xnu/osfmk/mach/vm_region.h. The C struct is inside
// #pragma pack(push, 4), so unsafe.Sizeof of this Go struct does not
// match the native sizeof; vmRegionBasicInfo64SizeOf does.
type vmRegionBasicInfo64 struct {
	Protection     vm_prot_t
	MaxProtection  vm_prot_t
	Inheritance    vm_inherit_t
	Shared         boolean_t
	Reserved       boolean_t
	Offset         memory_object_offset_t
	Behavior       vm_behavior_t
	UserWiredCount uint16
}

var machTaskSelf func() mach_port_t

var taskInfo func(
	mach_port_t,
	task_flavor_t,
	task_info_t,
	*mach_msg_type_number_t,
) kern_return_t

var machVMRegion func(
	vm_map_t,
	*mach_vm_offset_t, /* IN/OUT */
	*mach_vm_size_t, /* OUT */
	vm_region_flavor_t, /* IN */
	vm_region_info_t, /* OUT */
	*mach_msg_type_number_t, /* IN/OUT */
	*mach_port_t, /* OUT */
) kern_return_t

func init() {
	lib, err := purego.Dlopen("/usr/lib/system/libsystem_kernel.dylib",
		purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return
	}

	// RegisterLibFunc panics on a missing symbol. Swallow the panic and
	// leave the function pointers nil; TaskMemory reports the gap as an
	// error instead of taking the process down.
	defer func() {
		_ = recover()
	}()

	purego.RegisterLibFunc(&machTaskSelf, lib, "mach_task_self")
	purego.RegisterLibFunc(&taskInfo, lib, "task_info")
	purego.RegisterLibFunc(&machVMRegion, lib, "mach_vm_region")
}

// Memory is the memory footprint of the current task.
type Memory struct {
	VirtualBytes  uint64
	ResidentBytes uint64
}

// TaskMemory reports the current task's memory usage the way ps(1)
// determines it: task_info(MACH_TASK_BASIC_INFO), with the virtual size
// reduced by the shared text and data regions when the task has the
// global shared text segment mapped.
//
// https://github.com/apple-oss-distributions/adv_cmds/blob/8744084ea0ff41ca4bb96b0f9c22407d0e48e9b7/ps/tasks.c#L132
func TaskMemory() (Memory, error) {
	info, err := basicTaskInfo()
	if err != nil {
		return Memory{}, err
	}

	mem := Memory{
		VirtualBytes:  info.VirtualSize,
		ResidentBytes: info.ResidentSize,
	}

	adjustment := sharedTextRegionSize + sharedDataRegionSize
	if mem.VirtualBytes > adjustment && sharedRegionReserved() {
		mem.VirtualBytes -= adjustment
	}

	return mem, nil
}

// basicTaskInfo fetches struct mach_task_basic_info for the current task.
func basicTaskInfo() (*taskBasicInfo, error) {
	if taskInfo == nil {
		return nil, fmt.Errorf("task_info() is not available")
	}

	buf := make([]byte, taskBasicInfoSizeOf)
	count := taskBasicInfoCount

	if ret := taskInfo(machTaskSelf(), machTaskBasicInfoFlavor, buf, &count); ret != 0 {
		return nil, fmt.Errorf("task_info() returned %d", ret)
	}

	var info taskBasicInfo
	if err := decodeStruct(buf, uint64(count)*4, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// sharedRegionReserved reports whether the global shared text segment is
// mapped into the current task as a full reserved shared text region.
// Any failure along the way means no adjustment.
func sharedRegionReserved() bool {
	if machVMRegion == nil {
		return false
	}

	buf := make([]byte, vmRegionBasicInfo64SizeOf)
	address := globalSharedTextSegment
	count := vmRegionBasicInfo64Count
	var size mach_vm_size_t
	var objectName mach_port_t

	ret := machVMRegion(machTaskSelf(), &address, &size,
		vmRegionBasicInfo64Flavor, buf, &count, &objectName)
	if ret != 0 {
		return false
	}

	var region vmRegionBasicInfo64
	if err := decodeStruct(buf, uint64(count)*4, &region); err != nil {
		return false
	}

	return region.Reserved != 0 && size == sharedTextRegionSize
}

// decodeStruct decodes a kernel payload into data. got is the payload
// size the kernel actually wrote; a payload shorter than the buffer
// means the kernel's idea of the structure no longer matches ours, and
// decoding it would read garbage.
func decodeStruct(buf []byte, got uint64, data any) error {
	if got < uint64(len(buf)) {
		return fmt.Errorf("kernel wrote %d bytes, want %d", got, len(buf))
	}
	return binary.Read(bytes.NewReader(buf), binary.NativeEndian, data)
}
