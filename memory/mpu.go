package memory

// Protection region register layout.
const (
	MPU_ENABLED = 0x0000_0001 // Region is active.
	MPU_EXECUTE = 0x0000_0002 // Region permits instruction fetch.
	MPU_WRITE   = 0x0000_0004 // Region permits stores.
	MPU_READ    = 0x0000_0008 // Region permits loads.

	MPU_SIZE_SHIFT = 8
	MPU_SIZE_MASK  = 0x15 // Size encoding bits, after MPU_SIZE_SHIFT.
	MPU_BASE_MASK  = 0xFFFF_F000

	MPU_REGIONS = 8
)

// Access is the kind of access a protection check is made for.
type Access uint32

//go:generate go tool stringer -linecomment -type=Access
const (
	ACCESS_EXECUTE = Access(MPU_EXECUTE) // execute
	ACCESS_WRITE   = Access(MPU_WRITE)   // write
	ACCESS_READ    = Access(MPU_READ)    // read
)

// Mpu is the user mode memory protection unit.
type Mpu [MPU_REGIONS]uint32

// MakeRegion builds a protection region register.
func MakeRegion(base uint32, size uint32, access ...Access) (region uint32) {
	region = MPU_ENABLED | (base & MPU_BASE_MASK) | ((size & MPU_SIZE_MASK) << MPU_SIZE_SHIFT)
	for _, acc := range access {
		region |= uint32(acc)
	}
	return
}

// Mask returns the address mask a region register covers.
func Mask(region uint32) uint32 {
	size := (region >> MPU_SIZE_SHIFT) & MPU_SIZE_MASK
	return uint32(MPU_BASE_MASK) << size
}

// Allows reports whether any enabled region grants access to addr.
// Regions are scanned in order and the first match wins.
func (mpu *Mpu) Allows(access Access, addr uint32) bool {
	for _, region := range mpu {
		if region&MPU_ENABLED == 0 {
			continue
		}
		if region&uint32(access) == 0 {
			continue
		}
		mask := Mask(region)
		if addr&mask == region&mask {
			return true
		}
	}

	return false
}

// Reset disables all regions.
func (mpu *Mpu) Reset() {
	clear(mpu[:])
}
