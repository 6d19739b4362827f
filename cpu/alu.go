package cpu

// doAlu performs the requested ALU action, and returns the output value.
// The c field selects the shift variant for ALU_OP_SHIFT.
func doAlu(op CodeAluOp, a uint32, b uint32, c int32) (output uint32) {
	switch op {
	case ALU_OP_AND:
		output = a & b
	case ALU_OP_OR:
		output = a | b
	case ALU_OP_XOR:
		output = a ^ b
	case ALU_OP_SHIFT:
		amount := b & 0x1f
		switch CodeShift(c & 3) {
		case SHIFT_LSL:
			output = a << amount
		case SHIFT_NONE:
			output = 0
		case SHIFT_LSR:
			output = a >> amount
		case SHIFT_ASR:
			output = uint32(int32(a) >> amount)
		}
	case ALU_OP_ADD:
		output = a + b
	case ALU_OP_SUB:
		output = a - b
	case ALU_OP_CLT:
		if int32(a) < int32(b) {
			output = 1
		}
	case ALU_OP_CLTU:
		if a < b {
			output = 1
		}
	}

	return
}

// doMul performs the requested multiply or divide.
// Division by zero yields all ones, and remainder by zero the dividend.
// Signed overflow wraps, as Go integer division does.
func doMul(op CodeMulOp, a uint32, b uint32) (output uint32) {
	switch op {
	case MUL_OP_MUL:
		output = a * b
	case MUL_OP_DIVU:
		if b == 0 {
			output = 0xffffffff
		} else {
			output = a / b
		}
	case MUL_OP_DIVS:
		switch {
		case b == 0:
			output = 0xffffffff
		default:
			output = uint32(int32(a) / int32(b))
		}
	case MUL_OP_MODU:
		if b == 0 {
			output = a
		} else {
			output = a % b
		}
	case MUL_OP_MODS:
		switch {
		case b == 0:
			output = a
		default:
			output = uint32(int32(a) % int32(b))
		}
	}

	return
}

// doBranch evaluates a branch predicate.
func doBranch(op CodeBranchOp, a uint32, b uint32) (taken bool) {
	switch op {
	case BRANCH_OP_EQ:
		taken = a == b
	case BRANCH_OP_NE:
		taken = a != b
	case BRANCH_OP_LT:
		taken = int32(a) < int32(b)
	case BRANCH_OP_GE:
		taken = int32(a) >= int32(b)
	case BRANCH_OP_LTU:
		taken = a < b
	case BRANCH_OP_GEU:
		taken = a >= b
	default:
		taken = true
	}

	return
}

// doIdx bounds checks index against bound and scales it by the element size.
func doIdx(op CodeIdxOp, index uint32, bound uint32) (output uint32, err error) {
	if index >= bound {
		err = Fault{Cause: CAUSE_INDEX_OVERFLOW, Data: index}
		return
	}

	switch op {
	case IDX_OP_1:
		output = index
	case IDX_OP_2:
		output = index * 2
	case IDX_OP_4:
		output = index * 4
	}

	return
}
