package syscalls

// X32SyscallBit is set in the syscall register of x32 tasks
// (__X32_SYSCALL_BIT in asm/unistd.h).
const X32SyscallBit = 0x40000000

// Personality is what the sampler knows about a thread's execution mode.
type Personality uint8

const (
	PersonalityUnknown Personality = iota
	PersonalityNative
	PersonalityX32
)

// SelectABI picks the numbering space for a thread. Anything the sampler
// could not classify resolves natively.
func SelectABI(p Personality) ABI {
	if p == PersonalityX32 {
		return ABIX32
	}
	return ABICommon
}

// PersonalityOf classifies a raw syscall register value. Only the x32 bit
// is meaningful; negative values carry no personality.
func PersonalityOf(raw int64) Personality {
	if raw < 0 {
		return PersonalityUnknown
	}
	if raw&X32SyscallBit != 0 {
		return PersonalityX32
	}
	return PersonalityNative
}

// SplitRaw separates a raw syscall register value into the table number
// and the ABI it should be resolved in.
func SplitRaw(raw int64) (int64, ABI) {
	abi := SelectABI(PersonalityOf(raw))
	if abi == ABIX32 {
		return raw &^ X32SyscallBit, abi
	}
	return raw, abi
}
