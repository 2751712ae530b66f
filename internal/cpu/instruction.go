package cpu

import (
	"fmt"
	"strings"
)

// Op identifies the operation of an Instruction.
type Op uint8

const (
	OpNOP Op = iota
	OpLD     // LD r/(rr)/(a16), r/d8/(rr)/(a16)
	OpLDH    // LDH (a8)/(C), A and the reverse
	OpLDN16  // LD rr, d16
	OpLD16   // LD (a16), SP and LD SP, HL
	OpLDHLSP // LD HL, SP+r8
	OpINC
	OpDEC
	OpADD
	OpADC
	OpSUB
	OpSBC
	OpAND
	OpXOR
	OpOR
	OpCP
	OpADDHL // ADD HL, rr
	OpADDSP // ADD SP, r8
	OpDAA
	OpCPL
	OpSCF
	OpCCF
	OpRLCA
	OpRRCA
	OpRLA
	OpRRA
	OpJR
	OpJP
	OpCALL
	OpRET
	OpRST
	OpPUSH
	OpPOP

	// prefixed
	OpRLC
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSWAP
	OpSRL
	OpBIT
	OpRES
	OpSET
)

var opNames = [...]string{
	OpNOP:    "NOP",
	OpLD:     "LD",
	OpLDH:    "LDH",
	OpLDN16:  "LD",
	OpLD16:   "LD",
	OpLDHLSP: "LD",
	OpINC:    "INC",
	OpDEC:    "DEC",
	OpADD:    "ADD",
	OpADC:    "ADC",
	OpSUB:    "SUB",
	OpSBC:    "SBC",
	OpAND:    "AND",
	OpXOR:    "XOR",
	OpOR:     "OR",
	OpCP:     "CP",
	OpADDHL:  "ADD",
	OpADDSP:  "ADD",
	OpDAA:    "DAA",
	OpCPL:    "CPL",
	OpSCF:    "SCF",
	OpCCF:    "CCF",
	OpRLCA:   "RLCA",
	OpRRCA:   "RRCA",
	OpRLA:    "RLA",
	OpRRA:    "RRA",
	OpJR:     "JR",
	OpJP:     "JP",
	OpCALL:   "CALL",
	OpRET:    "RET",
	OpRST:    "RST",
	OpPUSH:   "PUSH",
	OpPOP:    "POP",
	OpRLC:    "RLC",
	OpRRC:    "RRC",
	OpRL:     "RL",
	OpRR:     "RR",
	OpSLA:    "SLA",
	OpSRA:    "SRA",
	OpSWAP:   "SWAP",
	OpSRL:    "SRL",
	OpBIT:    "BIT",
	OpRES:    "RES",
	OpSET:    "SET",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// Operand selects where an instruction reads from or writes to.
type Operand uint8

const (
	OperandNone Operand = iota

	// 8-bit registers
	OperandA
	OperandB
	OperandC
	OperandD
	OperandE
	OperandH
	OperandL

	// 16-bit registers
	OperandAF
	OperandBC
	OperandDE
	OperandHL
	OperandSP

	// immediates following the opcode
	OperandN8
	OperandN16

	// memory
	OperandBCMem  // (BC)
	OperandDEMem  // (DE)
	OperandHLMem  // (HL)
	OperandHLIMem // (HL+), HL incremented after the access
	OperandHLDMem // (HL-), HL decremented after the access
	OperandN16Mem // (a16)
	OperandCMem   // (C), 0xFF00 + C
	OperandN8Mem  // (a8), 0xFF00 + d8
)

var operandNames = [...]string{
	OperandNone:   "",
	OperandA:      "A",
	OperandB:      "B",
	OperandC:      "C",
	OperandD:      "D",
	OperandE:      "E",
	OperandH:      "H",
	OperandL:      "L",
	OperandAF:     "AF",
	OperandBC:     "BC",
	OperandDE:     "DE",
	OperandHL:     "HL",
	OperandSP:     "SP",
	OperandN8:     "d8",
	OperandN16:    "d16",
	OperandBCMem:  "(BC)",
	OperandDEMem:  "(DE)",
	OperandHLMem:  "(HL)",
	OperandHLIMem: "(HL+)",
	OperandHLDMem: "(HL-)",
	OperandN16Mem: "(a16)",
	OperandCMem:   "(C)",
	OperandN8Mem:  "(a8)",
}

func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return fmt.Sprintf("Operand(%d)", o)
}

// writable8 reports whether a byte can be stored through the operand.
func (o Operand) writable8() bool {
	return o >= OperandA && o <= OperandL || o >= OperandBCMem && o <= OperandN8Mem
}

// readable8 reports whether a byte can be read through the operand.
func (o Operand) readable8() bool {
	return o == OperandN8 || o.writable8()
}

// modifiable reports whether the operand can be read and written back
// in place, as the read-modify-write instructions do.
func (o Operand) modifiable() bool {
	return o >= OperandA && o <= OperandL || o == OperandHLMem
}

// is16Bit reports whether the operand names a 16-bit register.
func (o Operand) is16Bit() bool {
	return o >= OperandAF && o <= OperandSP
}

// highPage reports whether the operand addresses 0xFF00 - 0xFFFF.
func (o Operand) highPage() bool {
	return o == OperandCMem || o == OperandN8Mem
}

// Condition is the flag test of a conditional jump, call or return.
type Condition uint8

const (
	CondAlways Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

func (c Condition) String() string {
	switch c {
	case CondAlways:
		return ""
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	}
	return fmt.Sprintf("Condition(%d)", c)
}

// Instruction is a decoded opcode. Which fields are meaningful depends on
// Op: Target is written, Source is read, Cond gates control flow, Bit
// selects the bit of BIT/RES/SET and Vector is the RST target.
type Instruction struct {
	Op     Op
	Target Operand
	Source Operand
	Cond   Condition
	Bit    uint8
	Vector uint8
}

// String returns the instruction in assembler notation, e.g. "LD (HL-), A".
func (i Instruction) String() string {
	var args []string
	switch i.Op {
	case OpJR:
		args = append(args, i.Cond.String(), "r8")
	case OpJP:
		if i.Source == OperandHL {
			args = append(args, i.Cond.String(), "(HL)")
		} else {
			args = append(args, i.Cond.String(), "a16")
		}
	case OpCALL:
		args = append(args, i.Cond.String(), "a16")
	case OpRET:
		args = append(args, i.Cond.String())
	case OpRST:
		args = append(args, fmt.Sprintf("%02XH", i.Vector))
	case OpBIT:
		args = append(args, fmt.Sprint(i.Bit), i.Source.String())
	case OpRES, OpSET:
		args = append(args, fmt.Sprint(i.Bit), i.Target.String())
	case OpLDN16:
		args = append(args, i.Target.String(), "d16")
	case OpLDHLSP:
		args = append(args, "HL", "SP+r8")
	case OpADDSP:
		args = append(args, "SP", "r8")
	case OpADDHL:
		args = append(args, "HL", i.Source.String())
	default:
		args = append(args, i.Target.String(), i.Source.String())
	}

	var nonEmpty []string
	for _, a := range args {
		if a != "" {
			nonEmpty = append(nonEmpty, a)
		}
	}
	name := i.Op.String()
	// the (C) forms are written LD, only the (a8) forms are LDH
	if i.Op == OpLDH && (i.Target == OperandCMem || i.Source == OperandCMem) {
		name = "LD"
	}
	if len(nonEmpty) == 0 {
		return name
	}
	return name + " " + strings.Join(nonEmpty, ", ")
}
