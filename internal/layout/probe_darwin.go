//go:build cgo && darwin

package layout

/*
size_t taskstat_global_shared_text_segment();
size_t taskstat_shared_text_region_size();
size_t taskstat_shared_data_region_size();

size_t taskstat_sizeof_task_basic_info();
size_t taskstat_offsetof_task_basic_info_virtual_size();
size_t taskstat_sizeof_task_basic_info_virtual_size();
size_t taskstat_offsetof_task_basic_info_resident_size();
size_t taskstat_sizeof_task_basic_info_resident_size();

size_t taskstat_sizeof_vm_region_basic_info_64();
size_t taskstat_offsetof_vm_region_basic_info_64_reserved();
size_t taskstat_sizeof_vm_region_basic_info_64_reserved();
*/
import "C"

// GlobalSharedTextSegment returns the base address of the global shared
// text segment, the GLOBAL_SHARED_TEXT_SEGMENT kernel macro.
func GlobalSharedTextSegment() uint64 {
	return uint64(C.taskstat_global_shared_text_segment())
}

// SharedTextRegionSize returns the SHARED_TEXT_REGION_SIZE kernel macro.
func SharedTextRegionSize() uint64 {
	return uint64(C.taskstat_shared_text_region_size())
}

// SharedDataRegionSize returns the SHARED_DATA_REGION_SIZE kernel macro.
func SharedDataRegionSize() uint64 {
	return uint64(C.taskstat_shared_data_region_size())
}

// SizeofTaskBasicInfo returns sizeof(struct mach_task_basic_info).
func SizeofTaskBasicInfo() uint64 {
	return uint64(C.taskstat_sizeof_task_basic_info())
}

// OffsetofTaskBasicInfoVirtualSize returns the byte offset of the
// virtual_size field within struct mach_task_basic_info.
func OffsetofTaskBasicInfoVirtualSize() uint64 {
	return uint64(C.taskstat_offsetof_task_basic_info_virtual_size())
}

// SizeofTaskBasicInfoVirtualSize returns the byte size of the
// virtual_size field.
func SizeofTaskBasicInfoVirtualSize() uint64 {
	return uint64(C.taskstat_sizeof_task_basic_info_virtual_size())
}

// OffsetofTaskBasicInfoResidentSize returns the byte offset of the
// resident_size field within struct mach_task_basic_info.
func OffsetofTaskBasicInfoResidentSize() uint64 {
	return uint64(C.taskstat_offsetof_task_basic_info_resident_size())
}

// SizeofTaskBasicInfoResidentSize returns the byte size of the
// resident_size field.
func SizeofTaskBasicInfoResidentSize() uint64 {
	return uint64(C.taskstat_sizeof_task_basic_info_resident_size())
}

// SizeofVMRegionBasicInfo64 returns sizeof(struct vm_region_basic_info_64).
func SizeofVMRegionBasicInfo64() uint64 {
	return uint64(C.taskstat_sizeof_vm_region_basic_info_64())
}

// OffsetofVMRegionBasicInfo64Reserved returns the byte offset of the
// reserved field within struct vm_region_basic_info_64.
func OffsetofVMRegionBasicInfo64Reserved() uint64 {
	return uint64(C.taskstat_offsetof_vm_region_basic_info_64_reserved())
}

// SizeofVMRegionBasicInfo64Reserved returns the byte size of the
// reserved field.
func SizeofVMRegionBasicInfo64Reserved() uint64 {
	return uint64(C.taskstat_sizeof_vm_region_basic_info_64_reserved())
}
