package cartridge

import "fmt"

// Type is the cartridge type, stored at 0x0147 in the header. It
// describes which memory bank controller the cartridge uses, and
// what additional hardware is present.
type Type uint8

const (
	ROM                     Type = 0x00
	MBC1                    Type = 0x01
	MBC1RAM                 Type = 0x02
	MBC1RAMBATT             Type = 0x03
	MBC2                    Type = 0x05
	MBC2BATT                Type = 0x06
	ROMRAM                  Type = 0x08
	ROMRAMBATT              Type = 0x09
	MMM01                   Type = 0x0B
	MMM01RAM                Type = 0x0C
	MMM01RAMBATT            Type = 0x0D
	MBC3TIMERBATT           Type = 0x0F
	MBC3TIMERRAMBATT        Type = 0x10
	MBC3                    Type = 0x11
	MBC3RAM                 Type = 0x12
	MBC3RAMBATT             Type = 0x13
	MBC5                    Type = 0x19
	MBC5RAM                 Type = 0x1A
	MBC5RAMBATT             Type = 0x1B
	MBC5RUMBLE              Type = 0x1C
	MBC5RUMBLERAM           Type = 0x1D
	MBC5RUMBLERAMBATT       Type = 0x1E
	MBC6                    Type = 0x20
	MBC7SENSORRUMBLERAMBATT Type = 0x22
	POCKETCAMERA            Type = 0xFC
	BANDAITAMA5             Type = 0xFD
	HUDSONHUC3              Type = 0xFE
	HUDSONHUC1RAMBATT       Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:                     "ROM only",
	MBC1:                    "MBC1",
	MBC1RAM:                 "MBC1 + RAM",
	MBC1RAMBATT:             "MBC1 + RAM + battery",
	MBC2:                    "MBC2",
	MBC2BATT:                "MBC2 + battery",
	ROMRAM:                  "ROM + RAM",
	ROMRAMBATT:              "ROM + RAM + battery",
	MMM01:                   "MMM01",
	MMM01RAM:                "MMM01 + RAM",
	MMM01RAMBATT:            "MMM01 + RAM + battery",
	MBC3TIMERBATT:           "MBC3 + timer + battery",
	MBC3TIMERRAMBATT:        "MBC3 + timer + RAM + battery",
	MBC3:                    "MBC3",
	MBC3RAM:                 "MBC3 + RAM",
	MBC3RAMBATT:             "MBC3 + RAM + battery",
	MBC5:                    "MBC5",
	MBC5RAM:                 "MBC5 + RAM",
	MBC5RAMBATT:             "MBC5 + RAM + battery",
	MBC5RUMBLE:              "MBC5 + rumble",
	MBC5RUMBLERAM:           "MBC5 + rumble + RAM",
	MBC5RUMBLERAMBATT:       "MBC5 + rumble + RAM + battery",
	MBC6:                    "MBC6",
	MBC7SENSORRUMBLERAMBATT: "MBC7 + sensor + rumble + RAM + battery",
	POCKETCAMERA:            "Pocket Camera",
	BANDAITAMA5:             "Bandai Tama 5",
	HUDSONHUC3:              "HuC3",
	HUDSONHUC1RAMBATT:       "HuC1 + RAM + battery",
}

// Known reports whether t is a cartridge type that real hardware uses.
func (t Type) Known() bool {
	_, ok := typeNames[t]
	return ok
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02X)", uint8(t))
}

// HasBattery reports whether the cartridge keeps its external RAM
// powered by a battery, and so should be persisted between runs.
func (t Type) HasBattery() bool {
	switch t {
	case MBC1RAMBATT, MBC2BATT, ROMRAMBATT, MMM01RAMBATT,
		MBC3TIMERBATT, MBC3TIMERRAMBATT, MBC3RAMBATT,
		MBC5RAMBATT, MBC5RUMBLERAMBATT, MBC7SENSORRUMBLERAMBATT,
		HUDSONHUC1RAMBATT:
		return true
	}
	return false
}
