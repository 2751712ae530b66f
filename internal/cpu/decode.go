package cpu

// Prefix is the opcode that selects the prefixed instruction space for
// the byte that follows it.
const Prefix uint8 = 0xCB

// Decode returns the instruction for opcode. When prefixed is true the
// opcode is looked up in the space reached through Prefix. The second
// return value is false when no instruction exists for the byte; Decode
// itself never fails, the caller decides what that means.
func Decode(opcode uint8, prefixed bool) (Instruction, bool) {
	var in *Instruction
	if prefixed {
		in = instructionSetCB[opcode]
	} else {
		in = instructionSet[opcode]
	}
	if in == nil {
		return Instruction{}, false
	}
	return *in, true
}

// instructionSet maps a single opcode byte to its instruction. A nil entry is
// not decodable.
var instructionSet = [256]*Instruction{
	// 0x00 - 0x3F loads, 8/16-bit inc/dec, accumulator rotates, relative jumps
	0x00: {Op: OpNOP},
	0x01: {Op: OpLDN16, Target: OperandBC},
	0x02: {Op: OpLD, Target: OperandBCMem, Source: OperandA},
	0x03: {Op: OpINC, Target: OperandBC},
	0x04: {Op: OpINC, Target: OperandB},
	0x05: {Op: OpDEC, Target: OperandB},
	0x06: {Op: OpLD, Target: OperandB, Source: OperandN8},
	0x07: {Op: OpRLCA},
	0x08: {Op: OpLD16, Target: OperandN16Mem, Source: OperandSP},
	0x09: {Op: OpADDHL, Source: OperandBC},
	0x0A: {Op: OpLD, Target: OperandA, Source: OperandBCMem},
	0x0B: {Op: OpDEC, Target: OperandBC},
	0x0C: {Op: OpINC, Target: OperandC},
	0x0D: {Op: OpDEC, Target: OperandC},
	0x0E: {Op: OpLD, Target: OperandC, Source: OperandN8},
	0x0F: {Op: OpRRCA},
	0x11: {Op: OpLDN16, Target: OperandDE},
	0x12: {Op: OpLD, Target: OperandDEMem, Source: OperandA},
	0x13: {Op: OpINC, Target: OperandDE},
	0x14: {Op: OpINC, Target: OperandD},
	0x15: {Op: OpDEC, Target: OperandD},
	0x16: {Op: OpLD, Target: OperandD, Source: OperandN8},
	0x17: {Op: OpRLA},
	0x18: {Op: OpJR, Cond: CondAlways},
	0x19: {Op: OpADDHL, Source: OperandDE},
	0x1A: {Op: OpLD, Target: OperandA, Source: OperandDEMem},
	0x1B: {Op: OpDEC, Target: OperandDE},
	0x1C: {Op: OpINC, Target: OperandE},
	0x1D: {Op: OpDEC, Target: OperandE},
	0x1E: {Op: OpLD, Target: OperandE, Source: OperandN8},
	0x1F: {Op: OpRRA},
	0x20: {Op: OpJR, Cond: CondNZ},
	0x21: {Op: OpLDN16, Target: OperandHL},
	0x22: {Op: OpLD, Target: OperandHLIMem, Source: OperandA},
	0x23: {Op: OpINC, Target: OperandHL},
	0x24: {Op: OpINC, Target: OperandH},
	0x25: {Op: OpDEC, Target: OperandH},
	0x26: {Op: OpLD, Target: OperandH, Source: OperandN8},
	0x27: {Op: OpDAA},
	0x28: {Op: OpJR, Cond: CondZ},
	0x29: {Op: OpADDHL, Source: OperandHL},
	0x2A: {Op: OpLD, Target: OperandA, Source: OperandHLIMem},
	0x2B: {Op: OpDEC, Target: OperandHL},
	0x2C: {Op: OpINC, Target: OperandL},
	0x2D: {Op: OpDEC, Target: OperandL},
	0x2E: {Op: OpLD, Target: OperandL, Source: OperandN8},
	0x2F: {Op: OpCPL},
	0x30: {Op: OpJR, Cond: CondNC},
	0x31: {Op: OpLDN16, Target: OperandSP},
	0x32: {Op: OpLD, Target: OperandHLDMem, Source: OperandA},
	0x33: {Op: OpINC, Target: OperandSP},
	0x34: {Op: OpINC, Target: OperandHLMem},
	0x35: {Op: OpDEC, Target: OperandHLMem},
	0x36: {Op: OpLD, Target: OperandHLMem, Source: OperandN8},
	0x37: {Op: OpSCF},
	0x38: {Op: OpJR, Cond: CondC},
	0x39: {Op: OpADDHL, Source: OperandSP},
	0x3A: {Op: OpLD, Target: OperandA, Source: OperandHLDMem},
	0x3B: {Op: OpDEC, Target: OperandSP},
	0x3C: {Op: OpINC, Target: OperandA},
	0x3D: {Op: OpDEC, Target: OperandA},
	0x3E: {Op: OpLD, Target: OperandA, Source: OperandN8},
	0x3F: {Op: OpCCF},

	// 0x40 - 0x7F LD r, r' (0x76 is HALT)
	0x40: {Op: OpLD, Target: OperandB, Source: OperandB},
	0x41: {Op: OpLD, Target: OperandB, Source: OperandC},
	0x42: {Op: OpLD, Target: OperandB, Source: OperandD},
	0x43: {Op: OpLD, Target: OperandB, Source: OperandE},
	0x44: {Op: OpLD, Target: OperandB, Source: OperandH},
	0x45: {Op: OpLD, Target: OperandB, Source: OperandL},
	0x46: {Op: OpLD, Target: OperandB, Source: OperandHLMem},
	0x47: {Op: OpLD, Target: OperandB, Source: OperandA},
	0x48: {Op: OpLD, Target: OperandC, Source: OperandB},
	0x49: {Op: OpLD, Target: OperandC, Source: OperandC},
	0x4A: {Op: OpLD, Target: OperandC, Source: OperandD},
	0x4B: {Op: OpLD, Target: OperandC, Source: OperandE},
	0x4C: {Op: OpLD, Target: OperandC, Source: OperandH},
	0x4D: {Op: OpLD, Target: OperandC, Source: OperandL},
	0x4E: {Op: OpLD, Target: OperandC, Source: OperandHLMem},
	0x4F: {Op: OpLD, Target: OperandC, Source: OperandA},
	0x50: {Op: OpLD, Target: OperandD, Source: OperandB},
	0x51: {Op: OpLD, Target: OperandD, Source: OperandC},
	0x52: {Op: OpLD, Target: OperandD, Source: OperandD},
	0x53: {Op: OpLD, Target: OperandD, Source: OperandE},
	0x54: {Op: OpLD, Target: OperandD, Source: OperandH},
	0x55: {Op: OpLD, Target: OperandD, Source: OperandL},
	0x56: {Op: OpLD, Target: OperandD, Source: OperandHLMem},
	0x57: {Op: OpLD, Target: OperandD, Source: OperandA},
	0x58: {Op: OpLD, Target: OperandE, Source: OperandB},
	0x59: {Op: OpLD, Target: OperandE, Source: OperandC},
	0x5A: {Op: OpLD, Target: OperandE, Source: OperandD},
	0x5B: {Op: OpLD, Target: OperandE, Source: OperandE},
	0x5C: {Op: OpLD, Target: OperandE, Source: OperandH},
	0x5D: {Op: OpLD, Target: OperandE, Source: OperandL},
	0x5E: {Op: OpLD, Target: OperandE, Source: OperandHLMem},
	0x5F: {Op: OpLD, Target: OperandE, Source: OperandA},
	0x60: {Op: OpLD, Target: OperandH, Source: OperandB},
	0x61: {Op: OpLD, Target: OperandH, Source: OperandC},
	0x62: {Op: OpLD, Target: OperandH, Source: OperandD},
	0x63: {Op: OpLD, Target: OperandH, Source: OperandE},
	0x64: {Op: OpLD, Target: OperandH, Source: OperandH},
	0x65: {Op: OpLD, Target: OperandH, Source: OperandL},
	0x66: {Op: OpLD, Target: OperandH, Source: OperandHLMem},
	0x67: {Op: OpLD, Target: OperandH, Source: OperandA},
	0x68: {Op: OpLD, Target: OperandL, Source: OperandB},
	0x69: {Op: OpLD, Target: OperandL, Source: OperandC},
	0x6A: {Op: OpLD, Target: OperandL, Source: OperandD},
	0x6B: {Op: OpLD, Target: OperandL, Source: OperandE},
	0x6C: {Op: OpLD, Target: OperandL, Source: OperandH},
	0x6D: {Op: OpLD, Target: OperandL, Source: OperandL},
	0x6E: {Op: OpLD, Target: OperandL, Source: OperandHLMem},
	0x6F: {Op: OpLD, Target: OperandL, Source: OperandA},
	0x70: {Op: OpLD, Target: OperandHLMem, Source: OperandB},
	0x71: {Op: OpLD, Target: OperandHLMem, Source: OperandC},
	0x72: {Op: OpLD, Target: OperandHLMem, Source: OperandD},
	0x73: {Op: OpLD, Target: OperandHLMem, Source: OperandE},
	0x74: {Op: OpLD, Target: OperandHLMem, Source: OperandH},
	0x75: {Op: OpLD, Target: OperandHLMem, Source: OperandL},
	0x77: {Op: OpLD, Target: OperandHLMem, Source: OperandA},
	0x78: {Op: OpLD, Target: OperandA, Source: OperandB},
	0x79: {Op: OpLD, Target: OperandA, Source: OperandC},
	0x7A: {Op: OpLD, Target: OperandA, Source: OperandD},
	0x7B: {Op: OpLD, Target: OperandA, Source: OperandE},
	0x7C: {Op: OpLD, Target: OperandA, Source: OperandH},
	0x7D: {Op: OpLD, Target: OperandA, Source: OperandL},
	0x7E: {Op: OpLD, Target: OperandA, Source: OperandHLMem},
	0x7F: {Op: OpLD, Target: OperandA, Source: OperandA},

	// 0x80 - 0xBF ALU A, r
	0x80: {Op: OpADD, Target: OperandA, Source: OperandB},
	0x81: {Op: OpADD, Target: OperandA, Source: OperandC},
	0x82: {Op: OpADD, Target: OperandA, Source: OperandD},
	0x83: {Op: OpADD, Target: OperandA, Source: OperandE},
	0x84: {Op: OpADD, Target: OperandA, Source: OperandH},
	0x85: {Op: OpADD, Target: OperandA, Source: OperandL},
	0x86: {Op: OpADD, Target: OperandA, Source: OperandHLMem},
	0x87: {Op: OpADD, Target: OperandA, Source: OperandA},
	0x88: {Op: OpADC, Target: OperandA, Source: OperandB},
	0x89: {Op: OpADC, Target: OperandA, Source: OperandC},
	0x8A: {Op: OpADC, Target: OperandA, Source: OperandD},
	0x8B: {Op: OpADC, Target: OperandA, Source: OperandE},
	0x8C: {Op: OpADC, Target: OperandA, Source: OperandH},
	0x8D: {Op: OpADC, Target: OperandA, Source: OperandL},
	0x8E: {Op: OpADC, Target: OperandA, Source: OperandHLMem},
	0x8F: {Op: OpADC, Target: OperandA, Source: OperandA},
	0x90: {Op: OpSUB, Target: OperandA, Source: OperandB},
	0x91: {Op: OpSUB, Target: OperandA, Source: OperandC},
	0x92: {Op: OpSUB, Target: OperandA, Source: OperandD},
	0x93: {Op: OpSUB, Target: OperandA, Source: OperandE},
	0x94: {Op: OpSUB, Target: OperandA, Source: OperandH},
	0x95: {Op: OpSUB, Target: OperandA, Source: OperandL},
	0x96: {Op: OpSUB, Target: OperandA, Source: OperandHLMem},
	0x97: {Op: OpSUB, Target: OperandA, Source: OperandA},
	0x98: {Op: OpSBC, Target: OperandA, Source: OperandB},
	0x99: {Op: OpSBC, Target: OperandA, Source: OperandC},
	0x9A: {Op: OpSBC, Target: OperandA, Source: OperandD},
	0x9B: {Op: OpSBC, Target: OperandA, Source: OperandE},
	0x9C: {Op: OpSBC, Target: OperandA, Source: OperandH},
	0x9D: {Op: OpSBC, Target: OperandA, Source: OperandL},
	0x9E: {Op: OpSBC, Target: OperandA, Source: OperandHLMem},
	0x9F: {Op: OpSBC, Target: OperandA, Source: OperandA},
	0xA0: {Op: OpAND, Target: OperandA, Source: OperandB},
	0xA1: {Op: OpAND, Target: OperandA, Source: OperandC},
	0xA2: {Op: OpAND, Target: OperandA, Source: OperandD},
	0xA3: {Op: OpAND, Target: OperandA, Source: OperandE},
	0xA4: {Op: OpAND, Target: OperandA, Source: OperandH},
	0xA5: {Op: OpAND, Target: OperandA, Source: OperandL},
	0xA6: {Op: OpAND, Target: OperandA, Source: OperandHLMem},
	0xA7: {Op: OpAND, Target: OperandA, Source: OperandA},
	0xA8: {Op: OpXOR, Target: OperandA, Source: OperandB},
	0xA9: {Op: OpXOR, Target: OperandA, Source: OperandC},
	0xAA: {Op: OpXOR, Target: OperandA, Source: OperandD},
	0xAB: {Op: OpXOR, Target: OperandA, Source: OperandE},
	0xAC: {Op: OpXOR, Target: OperandA, Source: OperandH},
	0xAD: {Op: OpXOR, Target: OperandA, Source: OperandL},
	0xAE: {Op: OpXOR, Target: OperandA, Source: OperandHLMem},
	0xAF: {Op: OpXOR, Target: OperandA, Source: OperandA},
	0xB0: {Op: OpOR, Target: OperandA, Source: OperandB},
	0xB1: {Op: OpOR, Target: OperandA, Source: OperandC},
	0xB2: {Op: OpOR, Target: OperandA, Source: OperandD},
	0xB3: {Op: OpOR, Target: OperandA, Source: OperandE},
	0xB4: {Op: OpOR, Target: OperandA, Source: OperandH},
	0xB5: {Op: OpOR, Target: OperandA, Source: OperandL},
	0xB6: {Op: OpOR, Target: OperandA, Source: OperandHLMem},
	0xB7: {Op: OpOR, Target: OperandA, Source: OperandA},
	0xB8: {Op: OpCP, Target: OperandA, Source: OperandB},
	0xB9: {Op: OpCP, Target: OperandA, Source: OperandC},
	0xBA: {Op: OpCP, Target: OperandA, Source: OperandD},
	0xBB: {Op: OpCP, Target: OperandA, Source: OperandE},
	0xBC: {Op: OpCP, Target: OperandA, Source: OperandH},
	0xBD: {Op: OpCP, Target: OperandA, Source: OperandL},
	0xBE: {Op: OpCP, Target: OperandA, Source: OperandHLMem},
	0xBF: {Op: OpCP, Target: OperandA, Source: OperandA},

	// 0xC0 - 0xFF control flow, stack, high page loads and ALU A, d8
	0xC0: {Op: OpRET, Cond: CondNZ},
	0xC1: {Op: OpPOP, Target: OperandBC},
	0xC2: {Op: OpJP, Source: OperandN16, Cond: CondNZ},
	0xC3: {Op: OpJP, Source: OperandN16, Cond: CondAlways},
	0xC4: {Op: OpCALL, Cond: CondNZ},
	0xC5: {Op: OpPUSH, Source: OperandBC},
	0xC6: {Op: OpADD, Target: OperandA, Source: OperandN8},
	0xC7: {Op: OpRST, Vector: 0x00},
	0xC8: {Op: OpRET, Cond: CondZ},
	0xC9: {Op: OpRET, Cond: CondAlways},
	0xCA: {Op: OpJP, Source: OperandN16, Cond: CondZ},
	0xCC: {Op: OpCALL, Cond: CondZ},
	0xCD: {Op: OpCALL, Cond: CondAlways},
	0xCE: {Op: OpADC, Target: OperandA, Source: OperandN8},
	0xCF: {Op: OpRST, Vector: 0x08},
	0xD0: {Op: OpRET, Cond: CondNC},
	0xD1: {Op: OpPOP, Target: OperandDE},
	0xD2: {Op: OpJP, Source: OperandN16, Cond: CondNC},
	0xD4: {Op: OpCALL, Cond: CondNC},
	0xD5: {Op: OpPUSH, Source: OperandDE},
	0xD6: {Op: OpSUB, Target: OperandA, Source: OperandN8},
	0xD7: {Op: OpRST, Vector: 0x10},
	0xD8: {Op: OpRET, Cond: CondC},
	0xDA: {Op: OpJP, Source: OperandN16, Cond: CondC},
	0xDC: {Op: OpCALL, Cond: CondC},
	0xDE: {Op: OpSBC, Target: OperandA, Source: OperandN8},
	0xDF: {Op: OpRST, Vector: 0x18},
	0xE0: {Op: OpLDH, Target: OperandN8Mem, Source: OperandA},
	0xE1: {Op: OpPOP, Target: OperandHL},
	0xE2: {Op: OpLDH, Target: OperandCMem, Source: OperandA},
	0xE5: {Op: OpPUSH, Source: OperandHL},
	0xE6: {Op: OpAND, Target: OperandA, Source: OperandN8},
	0xE7: {Op: OpRST, Vector: 0x20},
	0xE8: {Op: OpADDSP},
	0xE9: {Op: OpJP, Source: OperandHL, Cond: CondAlways},
	0xEA: {Op: OpLD, Target: OperandN16Mem, Source: OperandA},
	0xEE: {Op: OpXOR, Target: OperandA, Source: OperandN8},
	0xEF: {Op: OpRST, Vector: 0x28},
	0xF0: {Op: OpLDH, Target: OperandA, Source: OperandN8Mem},
	0xF1: {Op: OpPOP, Target: OperandAF},
	0xF2: {Op: OpLDH, Target: OperandA, Source: OperandCMem},
	0xF5: {Op: OpPUSH, Source: OperandAF},
	0xF6: {Op: OpOR, Target: OperandA, Source: OperandN8},
	0xF7: {Op: OpRST, Vector: 0x30},
	0xF8: {Op: OpLDHLSP},
	0xF9: {Op: OpLD16, Target: OperandSP, Source: OperandHL},
	0xFA: {Op: OpLD, Target: OperandA, Source: OperandN16Mem},
	0xFE: {Op: OpCP, Target: OperandA, Source: OperandN8},
	0xFF: {Op: OpRST, Vector: 0x38},
}

// instructionSetCB maps the byte following 0xCB to its instruction.
var instructionSetCB = [256]*Instruction{
	// 0x00 - 0x3F rotates, shifts and SWAP
	0x00: {Op: OpRLC, Target: OperandB},
	0x01: {Op: OpRLC, Target: OperandC},
	0x02: {Op: OpRLC, Target: OperandD},
	0x03: {Op: OpRLC, Target: OperandE},
	0x04: {Op: OpRLC, Target: OperandH},
	0x05: {Op: OpRLC, Target: OperandL},
	0x06: {Op: OpRLC, Target: OperandHLMem},
	0x07: {Op: OpRLC, Target: OperandA},
	0x08: {Op: OpRRC, Target: OperandB},
	0x09: {Op: OpRRC, Target: OperandC},
	0x0A: {Op: OpRRC, Target: OperandD},
	0x0B: {Op: OpRRC, Target: OperandE},
	0x0C: {Op: OpRRC, Target: OperandH},
	0x0D: {Op: OpRRC, Target: OperandL},
	0x0E: {Op: OpRRC, Target: OperandHLMem},
	0x0F: {Op: OpRRC, Target: OperandA},
	0x10: {Op: OpRL, Target: OperandB},
	0x11: {Op: OpRL, Target: OperandC},
	0x12: {Op: OpRL, Target: OperandD},
	0x13: {Op: OpRL, Target: OperandE},
	0x14: {Op: OpRL, Target: OperandH},
	0x15: {Op: OpRL, Target: OperandL},
	0x16: {Op: OpRL, Target: OperandHLMem},
	0x17: {Op: OpRL, Target: OperandA},
	0x18: {Op: OpRR, Target: OperandB},
	0x19: {Op: OpRR, Target: OperandC},
	0x1A: {Op: OpRR, Target: OperandD},
	0x1B: {Op: OpRR, Target: OperandE},
	0x1C: {Op: OpRR, Target: OperandH},
	0x1D: {Op: OpRR, Target: OperandL},
	0x1E: {Op: OpRR, Target: OperandHLMem},
	0x1F: {Op: OpRR, Target: OperandA},
	0x20: {Op: OpSLA, Target: OperandB},
	0x21: {Op: OpSLA, Target: OperandC},
	0x22: {Op: OpSLA, Target: OperandD},
	0x23: {Op: OpSLA, Target: OperandE},
	0x24: {Op: OpSLA, Target: OperandH},
	0x25: {Op: OpSLA, Target: OperandL},
	0x26: {Op: OpSLA, Target: OperandHLMem},
	0x27: {Op: OpSLA, Target: OperandA},
	0x28: {Op: OpSRA, Target: OperandB},
	0x29: {Op: OpSRA, Target: OperandC},
	0x2A: {Op: OpSRA, Target: OperandD},
	0x2B: {Op: OpSRA, Target: OperandE},
	0x2C: {Op: OpSRA, Target: OperandH},
	0x2D: {Op: OpSRA, Target: OperandL},
	0x2E: {Op: OpSRA, Target: OperandHLMem},
	0x2F: {Op: OpSRA, Target: OperandA},
	0x30: {Op: OpSWAP, Target: OperandB},
	0x31: {Op: OpSWAP, Target: OperandC},
	0x32: {Op: OpSWAP, Target: OperandD},
	0x33: {Op: OpSWAP, Target: OperandE},
	0x34: {Op: OpSWAP, Target: OperandH},
	0x35: {Op: OpSWAP, Target: OperandL},
	0x36: {Op: OpSWAP, Target: OperandHLMem},
	0x37: {Op: OpSWAP, Target: OperandA},
	0x38: {Op: OpSRL, Target: OperandB},
	0x39: {Op: OpSRL, Target: OperandC},
	0x3A: {Op: OpSRL, Target: OperandD},
	0x3B: {Op: OpSRL, Target: OperandE},
	0x3C: {Op: OpSRL, Target: OperandH},
	0x3D: {Op: OpSRL, Target: OperandL},
	0x3E: {Op: OpSRL, Target: OperandHLMem},
	0x3F: {Op: OpSRL, Target: OperandA},

	// 0x40 - 0x7F BIT b, r
	0x40: {Op: OpBIT, Source: OperandB, Bit: 0},
	0x41: {Op: OpBIT, Source: OperandC, Bit: 0},
	0x42: {Op: OpBIT, Source: OperandD, Bit: 0},
	0x43: {Op: OpBIT, Source: OperandE, Bit: 0},
	0x44: {Op: OpBIT, Source: OperandH, Bit: 0},
	0x45: {Op: OpBIT, Source: OperandL, Bit: 0},
	0x46: {Op: OpBIT, Source: OperandHLMem, Bit: 0},
	0x47: {Op: OpBIT, Source: OperandA, Bit: 0},
	0x48: {Op: OpBIT, Source: OperandB, Bit: 1},
	0x49: {Op: OpBIT, Source: OperandC, Bit: 1},
	0x4A: {Op: OpBIT, Source: OperandD, Bit: 1},
	0x4B: {Op: OpBIT, Source: OperandE, Bit: 1},
	0x4C: {Op: OpBIT, Source: OperandH, Bit: 1},
	0x4D: {Op: OpBIT, Source: OperandL, Bit: 1},
	0x4E: {Op: OpBIT, Source: OperandHLMem, Bit: 1},
	0x4F: {Op: OpBIT, Source: OperandA, Bit: 1},
	0x50: {Op: OpBIT, Source: OperandB, Bit: 2},
	0x51: {Op: OpBIT, Source: OperandC, Bit: 2},
	0x52: {Op: OpBIT, Source: OperandD, Bit: 2},
	0x53: {Op: OpBIT, Source: OperandE, Bit: 2},
	0x54: {Op: OpBIT, Source: OperandH, Bit: 2},
	0x55: {Op: OpBIT, Source: OperandL, Bit: 2},
	0x56: {Op: OpBIT, Source: OperandHLMem, Bit: 2},
	0x57: {Op: OpBIT, Source: OperandA, Bit: 2},
	0x58: {Op: OpBIT, Source: OperandB, Bit: 3},
	0x59: {Op: OpBIT, Source: OperandC, Bit: 3},
	0x5A: {Op: OpBIT, Source: OperandD, Bit: 3},
	0x5B: {Op: OpBIT, Source: OperandE, Bit: 3},
	0x5C: {Op: OpBIT, Source: OperandH, Bit: 3},
	0x5D: {Op: OpBIT, Source: OperandL, Bit: 3},
	0x5E: {Op: OpBIT, Source: OperandHLMem, Bit: 3},
	0x5F: {Op: OpBIT, Source: OperandA, Bit: 3},
	0x60: {Op: OpBIT, Source: OperandB, Bit: 4},
	0x61: {Op: OpBIT, Source: OperandC, Bit: 4},
	0x62: {Op: OpBIT, Source: OperandD, Bit: 4},
	0x63: {Op: OpBIT, Source: OperandE, Bit: 4},
	0x64: {Op: OpBIT, Source: OperandH, Bit: 4},
	0x65: {Op: OpBIT, Source: OperandL, Bit: 4},
	0x66: {Op: OpBIT, Source: OperandHLMem, Bit: 4},
	0x67: {Op: OpBIT, Source: OperandA, Bit: 4},
	0x68: {Op: OpBIT, Source: OperandB, Bit: 5},
	0x69: {Op: OpBIT, Source: OperandC, Bit: 5},
	0x6A: {Op: OpBIT, Source: OperandD, Bit: 5},
	0x6B: {Op: OpBIT, Source: OperandE, Bit: 5},
	0x6C: {Op: OpBIT, Source: OperandH, Bit: 5},
	0x6D: {Op: OpBIT, Source: OperandL, Bit: 5},
	0x6E: {Op: OpBIT, Source: OperandHLMem, Bit: 5},
	0x6F: {Op: OpBIT, Source: OperandA, Bit: 5},
	0x70: {Op: OpBIT, Source: OperandB, Bit: 6},
	0x71: {Op: OpBIT, Source: OperandC, Bit: 6},
	0x72: {Op: OpBIT, Source: OperandD, Bit: 6},
	0x73: {Op: OpBIT, Source: OperandE, Bit: 6},
	0x74: {Op: OpBIT, Source: OperandH, Bit: 6},
	0x75: {Op: OpBIT, Source: OperandL, Bit: 6},
	0x76: {Op: OpBIT, Source: OperandHLMem, Bit: 6},
	0x77: {Op: OpBIT, Source: OperandA, Bit: 6},
	0x78: {Op: OpBIT, Source: OperandB, Bit: 7},
	0x79: {Op: OpBIT, Source: OperandC, Bit: 7},
	0x7A: {Op: OpBIT, Source: OperandD, Bit: 7},
	0x7B: {Op: OpBIT, Source: OperandE, Bit: 7},
	0x7C: {Op: OpBIT, Source: OperandH, Bit: 7},
	0x7D: {Op: OpBIT, Source: OperandL, Bit: 7},
	0x7E: {Op: OpBIT, Source: OperandHLMem, Bit: 7},
	0x7F: {Op: OpBIT, Source: OperandA, Bit: 7},

	// 0x80 - 0xBF RES b, r
	0x80: {Op: OpRES, Target: OperandB, Bit: 0},
	0x81: {Op: OpRES, Target: OperandC, Bit: 0},
	0x82: {Op: OpRES, Target: OperandD, Bit: 0},
	0x83: {Op: OpRES, Target: OperandE, Bit: 0},
	0x84: {Op: OpRES, Target: OperandH, Bit: 0},
	0x85: {Op: OpRES, Target: OperandL, Bit: 0},
	0x86: {Op: OpRES, Target: OperandHLMem, Bit: 0},
	0x87: {Op: OpRES, Target: OperandA, Bit: 0},
	0x88: {Op: OpRES, Target: OperandB, Bit: 1},
	0x89: {Op: OpRES, Target: OperandC, Bit: 1},
	0x8A: {Op: OpRES, Target: OperandD, Bit: 1},
	0x8B: {Op: OpRES, Target: OperandE, Bit: 1},
	0x8C: {Op: OpRES, Target: OperandH, Bit: 1},
	0x8D: {Op: OpRES, Target: OperandL, Bit: 1},
	0x8E: {Op: OpRES, Target: OperandHLMem, Bit: 1},
	0x8F: {Op: OpRES, Target: OperandA, Bit: 1},
	0x90: {Op: OpRES, Target: OperandB, Bit: 2},
	0x91: {Op: OpRES, Target: OperandC, Bit: 2},
	0x92: {Op: OpRES, Target: OperandD, Bit: 2},
	0x93: {Op: OpRES, Target: OperandE, Bit: 2},
	0x94: {Op: OpRES, Target: OperandH, Bit: 2},
	0x95: {Op: OpRES, Target: OperandL, Bit: 2},
	0x96: {Op: OpRES, Target: OperandHLMem, Bit: 2},
	0x97: {Op: OpRES, Target: OperandA, Bit: 2},
	0x98: {Op: OpRES, Target: OperandB, Bit: 3},
	0x99: {Op: OpRES, Target: OperandC, Bit: 3},
	0x9A: {Op: OpRES, Target: OperandD, Bit: 3},
	0x9B: {Op: OpRES, Target: OperandE, Bit: 3},
	0x9C: {Op: OpRES, Target: OperandH, Bit: 3},
	0x9D: {Op: OpRES, Target: OperandL, Bit: 3},
	0x9E: {Op: OpRES, Target: OperandHLMem, Bit: 3},
	0x9F: {Op: OpRES, Target: OperandA, Bit: 3},
	0xA0: {Op: OpRES, Target: OperandB, Bit: 4},
	0xA1: {Op: OpRES, Target: OperandC, Bit: 4},
	0xA2: {Op: OpRES, Target: OperandD, Bit: 4},
	0xA3: {Op: OpRES, Target: OperandE, Bit: 4},
	0xA4: {Op: OpRES, Target: OperandH, Bit: 4},
	0xA5: {Op: OpRES, Target: OperandL, Bit: 4},
	0xA6: {Op: OpRES, Target: OperandHLMem, Bit: 4},
	0xA7: {Op: OpRES, Target: OperandA, Bit: 4},
	0xA8: {Op: OpRES, Target: OperandB, Bit: 5},
	0xA9: {Op: OpRES, Target: OperandC, Bit: 5},
	0xAA: {Op: OpRES, Target: OperandD, Bit: 5},
	0xAB: {Op: OpRES, Target: OperandE, Bit: 5},
	0xAC: {Op: OpRES, Target: OperandH, Bit: 5},
	0xAD: {Op: OpRES, Target: OperandL, Bit: 5},
	0xAE: {Op: OpRES, Target: OperandHLMem, Bit: 5},
	0xAF: {Op: OpRES, Target: OperandA, Bit: 5},
	0xB0: {Op: OpRES, Target: OperandB, Bit: 6},
	0xB1: {Op: OpRES, Target: OperandC, Bit: 6},
	0xB2: {Op: OpRES, Target: OperandD, Bit: 6},
	0xB3: {Op: OpRES, Target: OperandE, Bit: 6},
	0xB4: {Op: OpRES, Target: OperandH, Bit: 6},
	0xB5: {Op: OpRES, Target: OperandL, Bit: 6},
	0xB6: {Op: OpRES, Target: OperandHLMem, Bit: 6},
	0xB7: {Op: OpRES, Target: OperandA, Bit: 6},
	0xB8: {Op: OpRES, Target: OperandB, Bit: 7},
	0xB9: {Op: OpRES, Target: OperandC, Bit: 7},
	0xBA: {Op: OpRES, Target: OperandD, Bit: 7},
	0xBB: {Op: OpRES, Target: OperandE, Bit: 7},
	0xBC: {Op: OpRES, Target: OperandH, Bit: 7},
	0xBD: {Op: OpRES, Target: OperandL, Bit: 7},
	0xBE: {Op: OpRES, Target: OperandHLMem, Bit: 7},
	0xBF: {Op: OpRES, Target: OperandA, Bit: 7},

	// 0xC0 - 0xFF SET b, r
	0xC0: {Op: OpSET, Target: OperandB, Bit: 0},
	0xC1: {Op: OpSET, Target: OperandC, Bit: 0},
	0xC2: {Op: OpSET, Target: OperandD, Bit: 0},
	0xC3: {Op: OpSET, Target: OperandE, Bit: 0},
	0xC4: {Op: OpSET, Target: OperandH, Bit: 0},
	0xC5: {Op: OpSET, Target: OperandL, Bit: 0},
	0xC6: {Op: OpSET, Target: OperandHLMem, Bit: 0},
	0xC7: {Op: OpSET, Target: OperandA, Bit: 0},
	0xC8: {Op: OpSET, Target: OperandB, Bit: 1},
	0xC9: {Op: OpSET, Target: OperandC, Bit: 1},
	0xCA: {Op: OpSET, Target: OperandD, Bit: 1},
	0xCB: {Op: OpSET, Target: OperandE, Bit: 1},
	0xCC: {Op: OpSET, Target: OperandH, Bit: 1},
	0xCD: {Op: OpSET, Target: OperandL, Bit: 1},
	0xCE: {Op: OpSET, Target: OperandHLMem, Bit: 1},
	0xCF: {Op: OpSET, Target: OperandA, Bit: 1},
	0xD0: {Op: OpSET, Target: OperandB, Bit: 2},
	0xD1: {Op: OpSET, Target: OperandC, Bit: 2},
	0xD2: {Op: OpSET, Target: OperandD, Bit: 2},
	0xD3: {Op: OpSET, Target: OperandE, Bit: 2},
	0xD4: {Op: OpSET, Target: OperandH, Bit: 2},
	0xD5: {Op: OpSET, Target: OperandL, Bit: 2},
	0xD6: {Op: OpSET, Target: OperandHLMem, Bit: 2},
	0xD7: {Op: OpSET, Target: OperandA, Bit: 2},
	0xD8: {Op: OpSET, Target: OperandB, Bit: 3},
	0xD9: {Op: OpSET, Target: OperandC, Bit: 3},
	0xDA: {Op: OpSET, Target: OperandD, Bit: 3},
	0xDB: {Op: OpSET, Target: OperandE, Bit: 3},
	0xDC: {Op: OpSET, Target: OperandH, Bit: 3},
	0xDD: {Op: OpSET, Target: OperandL, Bit: 3},
	0xDE: {Op: OpSET, Target: OperandHLMem, Bit: 3},
	0xDF: {Op: OpSET, Target: OperandA, Bit: 3},
	0xE0: {Op: OpSET, Target: OperandB, Bit: 4},
	0xE1: {Op: OpSET, Target: OperandC, Bit: 4},
	0xE2: {Op: OpSET, Target: OperandD, Bit: 4},
	0xE3: {Op: OpSET, Target: OperandE, Bit: 4},
	0xE4: {Op: OpSET, Target: OperandH, Bit: 4},
	0xE5: {Op: OpSET, Target: OperandL, Bit: 4},
	0xE6: {Op: OpSET, Target: OperandHLMem, Bit: 4},
	0xE7: {Op: OpSET, Target: OperandA, Bit: 4},
	0xE8: {Op: OpSET, Target: OperandB, Bit: 5},
	0xE9: {Op: OpSET, Target: OperandC, Bit: 5},
	0xEA: {Op: OpSET, Target: OperandD, Bit: 5},
	0xEB: {Op: OpSET, Target: OperandE, Bit: 5},
	0xEC: {Op: OpSET, Target: OperandH, Bit: 5},
	0xED: {Op: OpSET, Target: OperandL, Bit: 5},
	0xEE: {Op: OpSET, Target: OperandHLMem, Bit: 5},
	0xEF: {Op: OpSET, Target: OperandA, Bit: 5},
	0xF0: {Op: OpSET, Target: OperandB, Bit: 6},
	0xF1: {Op: OpSET, Target: OperandC, Bit: 6},
	0xF2: {Op: OpSET, Target: OperandD, Bit: 6},
	0xF3: {Op: OpSET, Target: OperandE, Bit: 6},
	0xF4: {Op: OpSET, Target: OperandH, Bit: 6},
	0xF5: {Op: OpSET, Target: OperandL, Bit: 6},
	0xF6: {Op: OpSET, Target: OperandHLMem, Bit: 6},
	0xF7: {Op: OpSET, Target: OperandA, Bit: 6},
	0xF8: {Op: OpSET, Target: OperandB, Bit: 7},
	0xF9: {Op: OpSET, Target: OperandC, Bit: 7},
	0xFA: {Op: OpSET, Target: OperandD, Bit: 7},
	0xFB: {Op: OpSET, Target: OperandE, Bit: 7},
	0xFC: {Op: OpSET, Target: OperandH, Bit: 7},
	0xFD: {Op: OpSET, Target: OperandL, Bit: 7},
	0xFE: {Op: OpSET, Target: OperandHLMem, Bit: 7},
	0xFF: {Op: OpSET, Target: OperandA, Bit: 7},
}
