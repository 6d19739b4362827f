package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpu(f *testing.F) {
	f.Add(uint32(MakeCodeAluImm(ALU_OP_ADD, 0, 0, 5)), uint32(1), uint32(2))
	f.Add(uint32(MakeCodeLoad(SIZE_WORD, 0, 1, 0)), uint32(0x100), uint32(0))
	f.Add(uint32(MakeCodeJump(0, 4)), uint32(0), uint32(0))
	f.Add(uint32(MakeCodeMul(MUL_OP_DIVS, 0, 1, 2)), uint32(0x80000000), uint32(0xffffffff))
	f.Add(uint32(MakeCodeCfg(CFG_OP_READ, 0, 0, int32(CFG_REG_EPC))), uint32(0), uint32(0))

	f.Fuzz(func(t *testing.T, word uint32, r1 uint32, r2 uint32) {
		assert := assert.New(t)

		code := Code(word)
		switch code.Kind() {
		case KIND_LD, KIND_ST:
			if code.Op() > SIZE_WORD {
				t.Skip("unsupported access size")
			}
		}

		cpu := newTestCpu(t)
		cpu.Pc += 4
		cpu.Register[1] = r1
		cpu.Register[2] = r2

		err := cpu.Execute(code)
		assert.NoError(err)
		assert.Equal(uint32(0), cpu.Register[REG_ZERO])
	})
}
