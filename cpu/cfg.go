package cpu

// CfgReg is a system configuration register index.
type CfgReg int

//go:generate go tool stringer -linecomment -type=CfgReg
const (
	CFG_REG_EPC      = CfgReg(1)  // epc
	CFG_REG_ECAUSE   = CfgReg(2)  // ecause
	CFG_REG_EDATA    = CfgReg(3)  // edata
	CFG_REG_ESTATUS  = CfgReg(4)  // estatus
	CFG_REG_ESCRATCH = CfgReg(5)  // escratch
	CFG_REG_STATUS   = CfgReg(6)  // status
	CFG_REG_IPC      = CfgReg(7)  // ipc
	CFG_REG_ICAUSE   = CfgReg(8)  // icause
	CFG_REG_ISTATUS  = CfgReg(9)  // istatus
	CFG_REG_INTVEC   = CfgReg(10) // intvec
	CFG_REG_TIMER    = CfgReg(11) // timer
	CFG_REG_DMPU0    = CfgReg(16) // dmpu0
	CFG_REG_DMPU1    = CfgReg(17) // dmpu1
	CFG_REG_DMPU2    = CfgReg(18) // dmpu2
	CFG_REG_DMPU3    = CfgReg(19) // dmpu3
	CFG_REG_DMPU4    = CfgReg(20) // dmpu4
	CFG_REG_DMPU5    = CfgReg(21) // dmpu5
	CFG_REG_DMPU6    = CfgReg(22) // dmpu6
	CFG_REG_DMPU7    = CfgReg(23) // dmpu7
)

// ReadCfg returns a configuration register. Unknown indices read as zero.
func (cpu *Cpu) ReadCfg(index CfgReg) (value uint32) {
	switch index {
	case CFG_REG_EPC:
		value = cpu.Exception.Epc
	case CFG_REG_ECAUSE:
		value = cpu.Exception.Ecause
	case CFG_REG_EDATA:
		value = cpu.Exception.Edata
	case CFG_REG_ESTATUS:
		value = cpu.Exception.Estatus
	case CFG_REG_ESCRATCH:
		value = cpu.Exception.Escratch
	case CFG_REG_STATUS:
		value = cpu.Status
	case CFG_REG_IPC:
		value = cpu.Interrupt.Ipc
	case CFG_REG_ICAUSE:
		value = cpu.Interrupt.Icause
	case CFG_REG_ISTATUS:
		value = cpu.Interrupt.Istatus
	case CFG_REG_INTVEC:
		value = cpu.Interrupt.Intvec
	case CFG_REG_TIMER:
		value = uint32(cpu.Interrupt.Timer)
	case CFG_REG_DMPU0, CFG_REG_DMPU1, CFG_REG_DMPU2, CFG_REG_DMPU3,
		CFG_REG_DMPU4, CFG_REG_DMPU5, CFG_REG_DMPU6, CFG_REG_DMPU7:
		value = cpu.Mpu[index-CFG_REG_DMPU0]
	}

	return
}

// WriteCfg sets a configuration register. Cause and status registers keep
// only their low 8 bits; unknown indices are ignored.
func (cpu *Cpu) WriteCfg(index CfgReg, value uint32) {
	switch index {
	case CFG_REG_EPC:
		cpu.Exception.Epc = value
	case CFG_REG_ECAUSE:
		cpu.Exception.Ecause = value & 0xff
	case CFG_REG_EDATA:
		cpu.Exception.Edata = value
	case CFG_REG_ESTATUS:
		cpu.Exception.Estatus = value & 0xff
	case CFG_REG_ESCRATCH:
		cpu.Exception.Escratch = value
	case CFG_REG_STATUS:
		cpu.Status = value & 0xff
	case CFG_REG_IPC:
		cpu.Interrupt.Ipc = value
	case CFG_REG_ICAUSE:
		cpu.Interrupt.Icause = value & 0xff
	case CFG_REG_ISTATUS:
		cpu.Interrupt.Istatus = value & 0xff
	case CFG_REG_INTVEC:
		cpu.Interrupt.Intvec = value
	case CFG_REG_TIMER:
		cpu.Interrupt.Timer = int32(value)
	case CFG_REG_DMPU0, CFG_REG_DMPU1, CFG_REG_DMPU2, CFG_REG_DMPU3,
		CFG_REG_DMPU4, CFG_REG_DMPU5, CFG_REG_DMPU6, CFG_REG_DMPU7:
		cpu.Mpu[index-CFG_REG_DMPU0] = value
	}
}
