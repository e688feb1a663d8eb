package clp

// Mode selects the simplex variant the engine runs.
// The numeric value is the selector passed across the native boundary.
type Mode int32

const (
	// Primal runs the primal simplex method.
	Primal Mode = 0
	// Dual runs the dual simplex method.
	Dual Mode = 1
)

// ParseMode returns the Mode named by s. Only "primal" and "dual" are
// accepted; anything else is an ErrInvalidMode contract violation.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "primal":
		return Primal, nil
	case "dual":
		return Dual, nil
	default:
		return 0, newError("ParseMode", "", ErrInvalidMode, "unrecognised mode %q", s)
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == Primal || m == Dual
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Primal:
		return "primal"
	case Dual:
		return "dual"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, newError("MarshalText", "", ErrInvalidMode, "mode %d", int32(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
